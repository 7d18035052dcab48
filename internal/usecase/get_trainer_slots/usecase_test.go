package get_trainer_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitclub/booking-service/internal/domain"
	userRepo "github.com/fitclub/booking-service/internal/infra/storage/user"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

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
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) List(_ context.Context, _ domain.BookingFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func personalTrainer(id int64) *fakeUserRepo {
	return &fakeUserRepo{
		users: map[int64]*domain.User{
			id: {ID: id, Role: domain.RoleTrainer},
		},
		profiles: map[int64]*domain.TrainerProfile{
			id: {UserID: id, TrainerType: domain.TrainerTypePersonal},
		},
	}
}

func TestExecute_FullGrid(t *testing.T) {
	uc := NewUseCase(personalTrainer(7), &fakeBookingRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		TrainerID: 7,
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// Рабочее окно 08:00-20:00 с часовыми слотами даёт 12 слотов
	require.Len(t, resp.Slots, 12)

	assert.Equal(t, "08:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "09:00", resp.Slots[0].EndTime.String())
	assert.Equal(t, "08:00 - 09:00", resp.Slots[0].Label)
	assert.Equal(t, "19:00", resp.Slots[11].StartTime.String())
	assert.Equal(t, "20:00", resp.Slots[11].EndTime.String())

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
	}
}

func TestExecute_BookedSlotMarkedUnavailable(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	booking := domain.NewTrainingBooking(1, 7,
		time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 10, 15, 11, 0, 0, 0, time.UTC),
		nil,
	)

	uc := NewUseCase(personalTrainer(7), &fakeBookingRepo{bookings: []*domain.Booking{booking}}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{TrainerID: 7, Date: date})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 12)

	for _, slot := range resp.Slots {
		if slot.StartTime == "10:00" {
			assert.False(t, slot.Available, "slot %s should be taken", slot.Label)
		} else {
			assert.True(t, slot.Available, "slot %s should be free", slot.Label)
		}
	}
}

func TestExecute_AdjacentBookingDoesNotBlockSlot(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	// Тренировка 11:00-12:00 граничит со слотом 10:00-11:00, но не пересекает его
	booking := domain.NewTrainingBooking(1, 7,
		time.Date(2025, 10, 15, 11, 0, 0, 0, time.UTC),
		time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC),
		nil,
	)

	uc := NewUseCase(personalTrainer(7), &fakeBookingRepo{bookings: []*domain.Booking{booking}}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{TrainerID: 7, Date: date})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		switch slot.StartTime {
		case "10:00":
			assert.True(t, slot.Available)
		case "11:00":
			assert.False(t, slot.Available)
		}
	}
}

func TestExecute_PartialOverlapBlocksBothSlots(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	// Тренировка 10:30-11:30 пересекает слоты 10:00-11:00 и 11:00-12:00
	booking := domain.NewTrainingBooking(1, 7,
		time.Date(2025, 10, 15, 10, 30, 0, 0, time.UTC),
		time.Date(2025, 10, 15, 11, 30, 0, 0, time.UTC),
		nil,
	)

	uc := NewUseCase(personalTrainer(7), &fakeBookingRepo{bookings: []*domain.Booking{booking}}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{TrainerID: 7, Date: date})
	require.NoError(t, err)

	taken := 0
	for _, slot := range resp.Slots {
		if !slot.Available {
			taken++
			assert.Contains(t, []string{"10:00", "11:00"}, slot.StartTime.String())
		}
	}
	assert.Equal(t, 2, taken)
}

func TestExecute_TrainerNotFound(t *testing.T) {
	uc := NewUseCase(&fakeUserRepo{users: map[int64]*domain.User{}}, &fakeBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		TrainerID: 99,
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrTrainerNotFound)
}

func TestExecute_MemberIsNotATrainer(t *testing.T) {
	repo := &fakeUserRepo{
		users: map[int64]*domain.User{
			5: {ID: 5, Role: domain.RoleMember},
		},
	}
	uc := NewUseCase(repo, &fakeBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		TrainerID: 5,
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrTrainerNotFound)
}

func TestExecute_GroupOnlyTrainerHasNoSlots(t *testing.T) {
	repo := &fakeUserRepo{
		users: map[int64]*domain.User{
			7: {ID: 7, Role: domain.RoleTrainer},
		},
		profiles: map[int64]*domain.TrainerProfile{
			7: {UserID: 7, TrainerType: domain.TrainerTypeGroup},
		},
	}
	uc := NewUseCase(repo, &fakeBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		TrainerID: 7,
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrTrainerNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(personalTrainer(7), &fakeBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{TrainerID: 0, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{TrainerID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
