package memberships

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitclub/booking-service/internal/domain"
	membershipRepo "github.com/fitclub/booking-service/internal/infra/storage/membership"
	userRepo "github.com/fitclub/booking-service/internal/infra/storage/user"
	"github.com/fitclub/booking-service/internal/service/memberships/models"
)

// Service сервис жизненного цикла абонементов
//
// "Действующий" абонемент всегда вычисляется запросом
// (status in (active, cancelled) and end_date >= now), на пользователе
// никаких денормализованных ссылок не хранится
type Service struct {
	membershipRepo MembershipRepository
	paymentRepo    PaymentRepository
	userRepo       UserRepository
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewService создает новый экземпляр сервиса абонементов
func NewService(
	membershipRepo MembershipRepository,
	paymentRepo PaymentRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		membershipRepo: membershipRepo,
		paymentRepo:    paymentRepo,
		userRepo:       userRepo,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Subscribe оформляет новый абонемент и фиксирует оплату
// Реального платёжного шлюза нет: платёж сразу записывается как completed
func (s *Service) Subscribe(ctx context.Context, req *models.SubscribeRequest) (*models.MembershipResponse, error) {
	s.logger.Info("Subscribe: user=%d, package=%d", req.UserID, req.PackageID)

	if req.PackageID <= 0 {
		return nil, fmt.Errorf("%w: packageID must be positive", ErrInvalidInput)
	}

	if err := s.checkMember(ctx, req.UserID); err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()

	pkg, err := s.membershipRepo.GetPackageByID(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, membershipRepo.ErrPackageNotFound) {
			s.logger.Warn("Subscribe: package id=%d not found", req.PackageID)
			return nil, ErrPackageNotFound
		}
		s.logger.Error("Subscribe: failed to get package id=%d: %v", req.PackageID, err)
		return nil, fmt.Errorf("%w: Subscribe - failed to get package: %v", ErrInternal, err)
	}

	var created *domain.Membership

	// Проверка на существующий абонемент и вставка идут в сериализуемой
	// транзакции, чтобы два конкурентных Subscribe не создали два действующих
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		_, err := s.membershipRepo.GetCurrentByUserID(txCtx, req.UserID, now)
		if err == nil {
			s.logger.Warn("Subscribe: user=%d already has a current membership", req.UserID)
			return ErrAlreadySubscribed
		}
		if !errors.Is(err, membershipRepo.ErrMembershipNotFound) {
			s.logger.Error("Subscribe: failed to get current membership for user=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: Subscribe - failed to get current membership: %v", ErrInternal, err)
		}

		membership := &domain.Membership{
			UserID:    req.UserID,
			PackageID: pkg.ID,
			StartDate: now,
			EndDate:   now.AddDate(0, domain.MembershipPeriodMonths, 0),
			Status:    domain.MembershipStatusActive,
			AutoRenew: true,
		}

		created, err = s.membershipRepo.Create(txCtx, membership)
		if err != nil {
			s.logger.Error("Subscribe: failed to create membership for user=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: Subscribe - failed to create membership: %v", ErrInternal, err)
		}

		payment := &domain.Payment{
			UserID:       req.UserID,
			MembershipID: created.ID,
			Amount:       pkg.Price,
			Status:       domain.PaymentStatusCompleted,
			Description:  fmt.Sprintf("Subscription: %s", pkg.Name),
		}

		if _, err := s.paymentRepo.Create(txCtx, payment); err != nil {
			s.logger.Error("Subscribe: failed to create payment for user=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: Subscribe - failed to create payment: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Subscribe: user=%d subscribed, membership id=%d, paid %.2f",
		req.UserID, created.ID, pkg.Price)

	return models.FromDomainMembership(created, now), nil
}

// ChangePackage назначает тарифный пакет, вступающий в силу после конца
// текущего периода. Текущий период не меняется
// Автоматической материализации next_package_id в новый абонемент нет,
// это обязанность внешнего процесса продления
func (s *Service) ChangePackage(ctx context.Context, req *models.ChangePackageRequest) (*models.MembershipResponse, error) {
	s.logger.Info("ChangePackage: user=%d, package=%d", req.UserID, req.PackageID)

	if req.PackageID <= 0 {
		return nil, fmt.Errorf("%w: packageID must be positive", ErrInvalidInput)
	}

	if err := s.checkMember(ctx, req.UserID); err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()

	pkg, err := s.membershipRepo.GetPackageByID(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, membershipRepo.ErrPackageNotFound) {
			s.logger.Warn("ChangePackage: package id=%d not found", req.PackageID)
			return nil, ErrPackageNotFound
		}
		s.logger.Error("ChangePackage: failed to get package id=%d: %v", req.PackageID, err)
		return nil, fmt.Errorf("%w: ChangePackage - failed to get package: %v", ErrInternal, err)
	}

	current, err := s.getCurrent(ctx, req.UserID, now, "ChangePackage")
	if err != nil {
		return nil, err
	}

	current.NextPackageID = &pkg.ID

	if err := s.membershipRepo.Update(ctx, current); err != nil {
		s.logger.Error("ChangePackage: failed to update membership id=%d: %v", current.ID, err)
		return nil, fmt.Errorf("%w: ChangePackage - failed to update membership: %v", ErrInternal, err)
	}

	s.logger.Info("ChangePackage: membership id=%d will switch to package=%d at %s",
		current.ID, pkg.ID, current.EndDate.Format(domain.DateFormat))

	return models.FromDomainMembership(current, now), nil
}

// Cancel отключает автопродление текущего абонемента
// Абонемент остаётся действующим до конца оплаченного периода
func (s *Service) Cancel(ctx context.Context, userID int64) (*models.MembershipResponse, error) {
	s.logger.Info("Cancel: user=%d", userID)

	if err := s.checkMember(ctx, userID); err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()

	current, err := s.getCurrent(ctx, userID, now, "Cancel")
	if err != nil {
		return nil, err
	}

	if !current.CanBeCancelled(now) {
		s.logger.Warn("Cancel: membership id=%d is not active, status=%s", current.ID, current.Status)
		return nil, ErrNotActive
	}

	current.Status = domain.MembershipStatusCancelled
	current.AutoRenew = false
	current.CancelledAt = &now
	current.NextPackageID = nil

	if err := s.membershipRepo.Update(ctx, current); err != nil {
		s.logger.Error("Cancel: failed to update membership id=%d: %v", current.ID, err)
		return nil, fmt.Errorf("%w: Cancel - failed to update membership: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: membership id=%d cancelled, usable until %s",
		current.ID, current.EndDate.Format(domain.DateFormat))

	return models.FromDomainMembership(current, now), nil
}

// Reactivate восстанавливает отменённый, но не истёкший абонемент
func (s *Service) Reactivate(ctx context.Context, userID int64) (*models.MembershipResponse, error) {
	s.logger.Info("Reactivate: user=%d", userID)

	if err := s.checkMember(ctx, userID); err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()

	current, err := s.getCurrent(ctx, userID, now, "Reactivate")
	if err != nil {
		return nil, err
	}

	if !current.CanBeReactivated(now) {
		s.logger.Warn("Reactivate: membership id=%d is not cancelled, status=%s", current.ID, current.Status)
		return nil, ErrNotCancelled
	}

	current.Status = domain.MembershipStatusActive
	current.AutoRenew = true
	current.CancelledAt = nil

	if err := s.membershipRepo.Update(ctx, current); err != nil {
		s.logger.Error("Reactivate: failed to update membership id=%d: %v", current.ID, err)
		return nil, fmt.Errorf("%w: Reactivate - failed to update membership: %v", ErrInternal, err)
	}

	s.logger.Info("Reactivate: membership id=%d reactivated", current.ID)

	return models.FromDomainMembership(current, now), nil
}

// Current получает действующий абонемент пользователя
func (s *Service) Current(ctx context.Context, userID int64) (*models.MembershipResponse, error) {
	s.logger.Info("Current: user=%d", userID)

	now := s.timeProvider.Now()

	current, err := s.getCurrent(ctx, userID, now, "Current")
	if err != nil {
		return nil, err
	}

	return models.FromDomainMembership(current, now), nil
}

// History получает все абонементы пользователя, новые первыми
func (s *Service) History(ctx context.Context, userID int64) (*models.MembershipListResponse, error) {
	s.logger.Info("History: user=%d", userID)

	memberships, err := s.membershipRepo.GetHistoryByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("History: failed to get memberships for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: History - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("History: fetched %d memberships for user=%d", len(memberships), userID)
	return models.FromDomainMembershipList(memberships, s.timeProvider.Now()), nil
}

// Payments получает платежи пользователя, новые первыми
func (s *Service) Payments(ctx context.Context, userID int64) (*models.PaymentListResponse, error) {
	s.logger.Info("Payments: user=%d", userID)

	payments, err := s.paymentRepo.ListByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Payments: failed to get payments for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Payments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Payments: fetched %d payments for user=%d", len(payments), userID)
	return models.FromDomainPaymentList(payments), nil
}

// Packages получает каталог тарифных пакетов
func (s *Service) Packages(ctx context.Context) (*models.PackageListResponse, error) {
	packages, err := s.membershipRepo.ListPackages(ctx)
	if err != nil {
		s.logger.Error("Packages: failed to list packages: %v", err)
		return nil, fmt.Errorf("%w: Packages - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPackageList(packages), nil
}

// checkMember проверяет, что пользователь существует и является участником
func (s *Service) checkMember(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("checkMember: user id=%d not found", userID)
			return ErrForbidden
		}
		s.logger.Error("checkMember: failed to get user id=%d: %v", userID, err)
		return fmt.Errorf("%w: checkMember - failed to get user: %v", ErrInternal, err)
	}

	if !user.IsMember() {
		s.logger.Warn("checkMember: user id=%d is not a member", userID)
		return ErrForbidden
	}

	return nil
}

// getCurrent получает действующий абонемент или ErrNoCurrentMembership
func (s *Service) getCurrent(ctx context.Context, userID int64, now time.Time, op string) (*domain.Membership, error) {
	current, err := s.membershipRepo.GetCurrentByUserID(ctx, userID, now)
	if err != nil {
		if errors.Is(err, membershipRepo.ErrMembershipNotFound) {
			s.logger.Warn("%s: user=%d has no current membership", op, userID)
			return nil, ErrNoCurrentMembership
		}
		s.logger.Error("%s: failed to get current membership for user=%d: %v", op, userID, err)
		return nil, fmt.Errorf("%w: %s - failed to get current membership: %v", ErrInternal, op, err)
	}
	return current, nil
}
