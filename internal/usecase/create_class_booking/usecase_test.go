package create_class_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitclub/booking-service/internal/domain"
	classRepo "github.com/fitclub/booking-service/internal/infra/storage/class"
	userRepo "github.com/fitclub/booking-service/internal/infra/storage/user"
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
	users map[int64]*domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type fakeClassRepo struct {
	class *domain.GroupClass
}

func (f *fakeClassRepo) GetByID(_ context.Context, id int64) (*domain.GroupClass, error) {
	if f.class == nil || f.class.ID != id {
		return nil, classRepo.ErrClassNotFound
	}
	return f.class, nil
}

type fakeBookingRepo struct {
	existing  []*domain.Booking
	confirmed int
	createErr error
	created   *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	b.ID = 100
	b.CreatedAt = time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)
	f.created = b
	return b, nil
}

func (f *fakeBookingRepo) List(_ context.Context, _ domain.BookingFilter) ([]*domain.Booking, error) {
	return f.existing, nil
}

func (f *fakeBookingRepo) CountConfirmedForOccurrence(_ context.Context, _ int64, _ time.Time) (int, error) {
	return f.confirmed, nil
}

type fakeNotificationRepo struct {
	created *domain.Notification
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	n.ID = 1
	f.created = n
	return n, nil
}

// Среда по расписанию: занятие id=3 проводится по средам 18:00-19:00
func yogaClass() *domain.GroupClass {
	return &domain.GroupClass{
		ID:       3,
		Name:     "Yoga",
		Capacity: 2,
		Schedule: []domain.ScheduleSlot{
			{DayOfWeek: 3, StartTime: "18:00", EndTime: "19:00"},
		},
	}
}

func member(id int64) *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*domain.User{
		id: {ID: id, Role: domain.RoleMember},
	}}
}

func newTestUseCase(users *fakeUserRepo, classes *fakeClassRepo, bookings *fakeBookingRepo, notifications *fakeNotificationRepo) *UseCase {
	uc := NewUseCase(users, classes, bookings, notifications, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_Success(t *testing.T) {
	bookings := &fakeBookingRepo{}
	notifications := &fakeNotificationRepo{}
	uc := newTestUseCase(member(1), &fakeClassRepo{class: yogaClass()}, bookings, notifications)

	// 2025-10-15 — среда
	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		ClassID:   3,
		ClassDate: time.Date(2025, 10, 15, 9, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), resp.ClassDate)

	// Напоминание запланировано за сутки до начала занятия (18:00 - 24h)
	require.NotNil(t, notifications.created)
	assert.Equal(t, domain.NotificationStatusPending, notifications.created.Status)
	assert.Equal(t, time.Date(2025, 10, 14, 18, 0, 0, 0, time.UTC), notifications.created.ScheduledFor)
	assert.Equal(t, int64(100), notifications.created.BookingID)
}

func TestExecute_SameDayBookingReminderClampedToNow(t *testing.T) {
	// Занятие по пятницам, бронирование в пятницу днём: до начала меньше суток
	class := yogaClass()
	class.Schedule = []domain.ScheduleSlot{
		{DayOfWeek: 5, StartTime: "18:00", EndTime: "19:00"},
	}

	notifications := &fakeNotificationRepo{}
	uc := newTestUseCase(member(1), &fakeClassRepo{class: class}, &fakeBookingRepo{}, notifications)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		ClassID:   3,
		ClassDate: time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// Напоминание не уходит в прошлое, а планируется на текущий момент
	require.NotNil(t, notifications.created)
	assert.Equal(t, time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC), notifications.created.ScheduledFor)
}

func TestExecute_NotAMember(t *testing.T) {
	staff := &fakeUserRepo{users: map[int64]*domain.User{
		1: {ID: 1, Role: domain.RoleTrainer},
	}}
	uc := newTestUseCase(staff, &fakeClassRepo{class: yogaClass()}, &fakeBookingRepo{}, &fakeNotificationRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		ClassID:   3,
		ClassDate: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestExecute_UnknownUser(t *testing.T) {
	uc := newTestUseCase(&fakeUserRepo{users: map[int64]*domain.User{}},
		&fakeClassRepo{class: yogaClass()}, &fakeBookingRepo{}, &fakeNotificationRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    99,
		ClassID:   3,
		ClassDate: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestExecute_DateInPast(t *testing.T) {
	uc := newTestUseCase(member(1), &fakeClassRepo{class: yogaClass()}, &fakeBookingRepo{}, &fakeNotificationRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		ClassID:   3,
		ClassDate: time.Date(2025, 10, 8, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_BookingTodayIsAllowed(t *testing.T) {
	uc := newTestUseCase(member(1), &fakeClassRepo{class: yogaClass()}, &fakeBookingRepo{}, &fakeNotificationRepo{})

	// "Сегодня" фиксированного времени — пятница 2025-10-10, занятие по средам
	_, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		ClassID:   3,
		ClassDate: time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC),
	})
	// Сегодняшний день проходит проверку даты, но пятница не в расписании
	assert.ErrorIs(t, err, ErrClassNotScheduled)
}

func TestExecute_ClassNotFound(t *testing.T) {
	uc := newTestUseCase(member(1), &fakeClassRepo{}, &fakeBookingRepo{}, &fakeNotificationRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		ClassID:   3,
		ClassDate: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrClassNotFound)
}

func TestExecute_NotScheduledOnThatDay(t *testing.T) {
	uc := newTestUseCase(member(1), &fakeClassRepo{class: yogaClass()}, &fakeBookingRepo{}, &fakeNotificationRepo{})

	// 2025-10-16 — четверг, занятие по средам
	_, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		ClassID:   3,
		ClassDate: time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrClassNotScheduled)
}

func TestExecute_DuplicateBooking(t *testing.T) {
	existing := domain.NewGroupClassBooking(1, 3, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC))
	bookings := &fakeBookingRepo{existing: []*domain.Booking{existing}}
	uc := newTestUseCase(member(1), &fakeClassRepo{class: yogaClass()}, bookings, &fakeNotificationRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		ClassID:   3,
		ClassDate: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrDuplicateBooking)
}

func TestExecute_ClassFull(t *testing.T) {
	bookings := &fakeBookingRepo{confirmed: 2} // вместимость yogaClass = 2
	uc := newTestUseCase(member(1), &fakeClassRepo{class: yogaClass()}, bookings, &fakeNotificationRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		ClassID:   3,
		ClassDate: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrClassFull)
}

func TestExecute_SeatFreedByCancellation(t *testing.T) {
	// После отмены одного из двух бронирований место освобождается
	bookings := &fakeBookingRepo{confirmed: 1}
	notifications := &fakeNotificationRepo{}
	uc := newTestUseCase(member(1), &fakeClassRepo{class: yogaClass()}, bookings, notifications)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		ClassID:   3,
		ClassDate: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
}
