package create_training_booking

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitclub/booking-service/internal/domain"
	userRepo "github.com/fitclub/booking-service/internal/infra/storage/user"
	"github.com/fitclub/booking-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepo struct {
	users    map[int64]*domain.User
	profiles map[int64]*domain.TrainerProfile
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetTrainerProfile(_ context.Context, userID int64) (*domain.TrainerProfile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, userRepo.ErrProfileNotFound
	}
	return p, nil
}

type fakeBookingRepo struct {
	memberBookings  []*domain.Booking
	trainerBookings []*domain.Booking
	created         *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	b.ID = 200
	b.CreatedAt = time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)
	f.created = b
	return b, nil
}

// Фильтр по участнику и по тренеру различается заполненным полем
func (f *fakeBookingRepo) List(_ context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	if filter.UserID != nil {
		return f.memberBookings, nil
	}
	return f.trainerBookings, nil
}

type fakeNotificationRepo struct {
	created *domain.Notification
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	n.ID = 1
	f.created = n
	return n, nil
}

func memberAndTrainer() *fakeUserRepo {
	return &fakeUserRepo{
		users: map[int64]*domain.User{
			1: {ID: 1, Role: domain.RoleMember},
			7: {ID: 7, Role: domain.RoleTrainer},
		},
		profiles: map[int64]*domain.TrainerProfile{
			7: {UserID: 7, TrainerType: domain.TrainerTypeBoth},
		},
	}
}

func newTestUseCase(users *fakeUserRepo, bookings *fakeBookingRepo, notifications *fakeNotificationRepo) *UseCase {
	uc := NewUseCase(users, bookings, notifications, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)}
	return uc
}

func trainingRequest() *Request {
	return &Request{
		UserID:    1,
		TrainerID: 7,
		StartTime: time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 10, 15, 11, 0, 0, 0, time.UTC),
	}
}

func TestExecute_Success(t *testing.T) {
	bookings := &fakeBookingRepo{}
	notifications := &fakeNotificationRepo{}
	uc := newTestUseCase(memberAndTrainer(), bookings, notifications)

	resp, err := uc.Execute(context.Background(), trainingRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(200), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, int64(7), resp.TrainerID)

	// Напоминание за сутки до начала тренировки
	require.NotNil(t, notifications.created)
	assert.Equal(t, time.Date(2025, 10, 14, 10, 0, 0, 0, time.UTC), notifications.created.ScheduledFor)
}

func TestExecute_NearTermReminderClampedToNow(t *testing.T) {
	notifications := &fakeNotificationRepo{}
	uc := newTestUseCase(memberAndTrainer(), &fakeBookingRepo{}, notifications)

	// Тренировка через два часа: до начала меньше суток
	req := trainingRequest()
	req.StartTime = time.Date(2025, 10, 10, 14, 0, 0, 0, time.UTC)
	req.EndTime = time.Date(2025, 10, 10, 15, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Напоминание не уходит в прошлое, а планируется на текущий момент
	require.NotNil(t, notifications.created)
	assert.Equal(t, time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC), notifications.created.ScheduledFor)
}

func TestExecute_InvalidTimeRange(t *testing.T) {
	uc := newTestUseCase(memberAndTrainer(), &fakeBookingRepo{}, &fakeNotificationRepo{})

	req := trainingRequest()
	req.StartTime, req.EndTime = req.EndTime, req.StartTime

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	// Нулевая длительность тоже отклоняется
	req = trainingRequest()
	req.EndTime = req.StartTime

	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestExecute_StartTimeInPast(t *testing.T) {
	uc := newTestUseCase(memberAndTrainer(), &fakeBookingRepo{}, &fakeNotificationRepo{})

	req := trainingRequest()
	req.StartTime = time.Date(2025, 10, 9, 10, 0, 0, 0, time.UTC)
	req.EndTime = time.Date(2025, 10, 9, 11, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStartTimeInPast)
}

func TestExecute_NotAMember(t *testing.T) {
	users := memberAndTrainer()
	users.users[1].Role = domain.RoleAdmin
	uc := newTestUseCase(users, &fakeBookingRepo{}, &fakeNotificationRepo{})

	_, err := uc.Execute(context.Background(), trainingRequest())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestExecute_TrainerNotFound(t *testing.T) {
	users := memberAndTrainer()
	delete(users.users, 7)
	uc := newTestUseCase(users, &fakeBookingRepo{}, &fakeNotificationRepo{})

	_, err := uc.Execute(context.Background(), trainingRequest())
	assert.ErrorIs(t, err, ErrTrainerNotFound)
}

func TestExecute_GroupOnlyTrainer(t *testing.T) {
	users := memberAndTrainer()
	users.profiles[7].TrainerType = domain.TrainerTypeGroup
	uc := newTestUseCase(users, &fakeBookingRepo{}, &fakeNotificationRepo{})

	_, err := uc.Execute(context.Background(), trainingRequest())
	assert.ErrorIs(t, err, ErrTrainerNotFound)
}

func TestExecute_UserDoubleBooked(t *testing.T) {
	overlap := domain.NewTrainingBooking(1, 9,
		time.Date(2025, 10, 15, 10, 30, 0, 0, time.UTC),
		time.Date(2025, 10, 15, 11, 30, 0, 0, time.UTC),
		nil,
	)
	bookings := &fakeBookingRepo{memberBookings: []*domain.Booking{overlap}}
	uc := newTestUseCase(memberAndTrainer(), bookings, &fakeNotificationRepo{})

	_, err := uc.Execute(context.Background(), trainingRequest())
	assert.ErrorIs(t, err, ErrUserDoubleBooked)
}

func TestExecute_TrainerUnavailable(t *testing.T) {
	overlap := domain.NewTrainingBooking(2, 7,
		time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 10, 15, 11, 0, 0, 0, time.UTC),
		nil,
	)
	bookings := &fakeBookingRepo{trainerBookings: []*domain.Booking{overlap}}
	uc := newTestUseCase(memberAndTrainer(), bookings, &fakeNotificationRepo{})

	_, err := uc.Execute(context.Background(), trainingRequest())
	assert.ErrorIs(t, err, ErrTrainerUnavailable)
}

func TestExecute_NotesTooLong(t *testing.T) {
	uc := newTestUseCase(memberAndTrainer(), &fakeBookingRepo{}, &fakeNotificationRepo{})

	req := trainingRequest()
	req.Notes = ptr.Ptr(strings.Repeat("x", domain.MaxNotesLength+1))

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
