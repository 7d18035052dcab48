package classes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitclub/booking-service/internal/domain"
	userRepo "github.com/fitclub/booking-service/internal/infra/storage/user"
	"github.com/fitclub/booking-service/internal/service/classes/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeClassRepo struct {
	classes []*domain.GroupClass
	created *domain.GroupClass
}

func (f *fakeClassRepo) Create(_ context.Context, c *domain.GroupClass) (*domain.GroupClass, error) {
	c.ID = 3
	f.created = c
	return c, nil
}

func (f *fakeClassRepo) List(_ context.Context) ([]*domain.GroupClass, error) {
	return f.classes, nil
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

func (f *fakeUserRepo) GetTrainerProfile(_ context.Context, _ int64) (*domain.TrainerProfile, error) {
	return nil, userRepo.ErrProfileNotFound
}

func adminAndTrainer() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*domain.User{
		5: {ID: 5, Role: domain.RoleAdmin},
		7: {ID: 7, Role: domain.RoleTrainer},
	}}
}

func createRequest() *models.CreateClassRequest {
	return &models.CreateClassRequest{
		UserID:    5,
		Name:      "Yoga",
		Capacity:  20,
		TrainerID: 7,
		Schedule: []models.ScheduleSlotRequest{
			{DayOfWeek: 3, StartTime: "18:00", EndTime: "19:00"},
		},
	}
}

func TestCreate_Success(t *testing.T) {
	repo := &fakeClassRepo{}
	svc := NewService(repo, adminAndTrainer(), fakeTxManager{}, nopLogger{})

	resp, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, "Yoga", resp.Name)
	assert.Equal(t, int64(7), resp.TrainerID)
	require.Len(t, resp.Schedule, 1)
	assert.Equal(t, 3, resp.Schedule[0].DayOfWeek)

	require.NotNil(t, repo.created)
	assert.Equal(t, 20, repo.created.Capacity)
}

func TestCreate_MemberIsDenied(t *testing.T) {
	users := adminAndTrainer()
	users.users[5].Role = domain.RoleMember
	svc := NewService(&fakeClassRepo{}, users, fakeTxManager{}, nopLogger{})

	_, err := svc.Create(context.Background(), createRequest())
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreate_UnknownRequesterIsDenied(t *testing.T) {
	users := adminAndTrainer()
	delete(users.users, 5)
	svc := NewService(&fakeClassRepo{}, users, fakeTxManager{}, nopLogger{})

	_, err := svc.Create(context.Background(), createRequest())
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreate_TrainerNotFound(t *testing.T) {
	users := adminAndTrainer()
	delete(users.users, 7)
	svc := NewService(&fakeClassRepo{}, users, fakeTxManager{}, nopLogger{})

	_, err := svc.Create(context.Background(), createRequest())
	assert.ErrorIs(t, err, ErrTrainerNotFound)
}

func TestCreate_TrainerRoleRequired(t *testing.T) {
	users := adminAndTrainer()
	users.users[7].Role = domain.RoleMember
	svc := NewService(&fakeClassRepo{}, users, fakeTxManager{}, nopLogger{})

	_, err := svc.Create(context.Background(), createRequest())
	assert.ErrorIs(t, err, ErrTrainerNotFound)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *models.CreateClassRequest)
	}{
		{
			name:   "empty name",
			mutate: func(req *models.CreateClassRequest) { req.Name = "" },
		},
		{
			name:   "zero capacity",
			mutate: func(req *models.CreateClassRequest) { req.Capacity = 0 },
		},
		{
			name:   "capacity over limit",
			mutate: func(req *models.CreateClassRequest) { req.Capacity = domain.MaxClassCapacity + 1 },
		},
		{
			name:   "empty schedule",
			mutate: func(req *models.CreateClassRequest) { req.Schedule = nil },
		},
		{
			name: "day of week out of range",
			mutate: func(req *models.CreateClassRequest) {
				req.Schedule[0].DayOfWeek = 7
			},
		},
		{
			name: "malformed start time",
			mutate: func(req *models.CreateClassRequest) {
				req.Schedule[0].StartTime = "25:00"
			},
		},
		{
			name: "start not before end",
			mutate: func(req *models.CreateClassRequest) {
				req.Schedule[0].StartTime = "19:00"
				req.Schedule[0].EndTime = "18:00"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeClassRepo{}, adminAndTrainer(), fakeTxManager{}, nopLogger{})

			req := createRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestList_ReturnsAllClasses(t *testing.T) {
	repo := &fakeClassRepo{classes: []*domain.GroupClass{
		{ID: 1, Name: "Yoga", Capacity: 20},
		{ID: 2, Name: "Pilates", Capacity: 15},
	}}
	svc := NewService(repo, adminAndTrainer(), fakeTxManager{}, nopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Classes, 2)
	assert.Equal(t, "Yoga", resp.Classes[0].Name)
	assert.Equal(t, "Pilates", resp.Classes[1].Name)
}
