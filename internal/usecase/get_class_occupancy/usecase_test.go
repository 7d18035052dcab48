package get_class_occupancy

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitclub/booking-service/internal/domain"
	classRepo "github.com/fitclub/booking-service/internal/infra/storage/class"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

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
	confirmed int
}

func (f *fakeBookingRepo) CountConfirmedForOccurrence(_ context.Context, _ int64, _ time.Time) (int, error) {
	return f.confirmed, nil
}

func TestExecute_Occupancy(t *testing.T) {
	class := &domain.GroupClass{ID: 3, Capacity: 20}
	uc := NewUseCase(&fakeClassRepo{class: class}, &fakeBookingRepo{confirmed: 15}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ClassID: 3,
		Date:    time.Date(2025, 10, 15, 18, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, 20, resp.Occupancy.Capacity)
	assert.Equal(t, 15, resp.Occupancy.Booked)
	assert.Equal(t, 5, resp.Occupancy.Available)
	assert.False(t, resp.Occupancy.IsFull)

	// Дата в ответе нормализована к началу дня
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), resp.Date)
}

func TestExecute_FullClass(t *testing.T) {
	class := &domain.GroupClass{ID: 3, Capacity: 10}
	uc := NewUseCase(&fakeClassRepo{class: class}, &fakeBookingRepo{confirmed: 10}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ClassID: 3,
		Date:    time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Occupancy.Available)
	assert.True(t, resp.Occupancy.IsFull)
}

func TestExecute_ClassNotFound(t *testing.T) {
	uc := NewUseCase(&fakeClassRepo{}, &fakeBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ClassID: 42,
		Date:    time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrClassNotFound)
}
