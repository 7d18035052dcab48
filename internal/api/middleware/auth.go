package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/fitclub/booking-service/internal/api/handlers"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"
)

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"

	msgMissingUserID = "требуется заголовок X-User-ID"
	msgInvalidUserID = "некорректный заголовок X-User-ID"
)

// Auth извлекает аутентифицированную личность из заголовков запроса
// Проверка подписи токена выполняется выше по цепочке (API gateway),
// сюда приходит уже проверенная личность
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(headerUserID)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		if role := r.Header.Get(headerUserRole); role != "" {
			ctx = context.WithValue(ctx, userRoleKey, role)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID аутентифицированного пользователя из контекста
func GetUserID(r *http.Request) (int64, bool) {
	userID, ok := r.Context().Value(userIDKey).(int64)
	return userID, ok
}

// GetUserRole возвращает роль из контекста, если она была передана
func GetUserRole(r *http.Request) (string, bool) {
	role, ok := r.Context().Value(userRoleKey).(string)
	return role, ok
}
