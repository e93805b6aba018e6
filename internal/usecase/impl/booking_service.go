// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"fitclub/config"
	"fitclub/internal/domain/entity"
	domainerrors "fitclub/internal/domain/errors"
	"fitclub/internal/domain/repository"
	"fitclub/internal/usecase"
)

// bookingService implements the BookingUsecase interface.
//
// Every booking flow runs inside a single transaction that locks the group
// class row before reading the current booking count, so two concurrent
// requests for the last remaining seat cannot both succeed. The unique
// (client, group class) index backstops the duplicate check.
type bookingService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	bookingRepo repository.BookingRepository
	policy      config.PolicyConfig
	logger      *slog.Logger
}

// BookingServiceParams holds dependencies for BookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	BookingRepo repository.BookingRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		bookingRepo: params.BookingRepo,
		policy:      params.Config.Policy,
		logger:      params.Logger,
	}
}

// BookClass books a client into a group class. Precondition order: class
// exists, capacity available, no duplicate booking. First failure wins.
func (srv *bookingService) BookClass(ctx context.Context, clientID, groupClassID uuid.UUID) (*usecase.BookingResult, error) {
	var result *usecase.BookingResult

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		classes := repos.NewClassRepository()
		bookings := repos.NewBookingRepository()

		class, err := classes.FindGroupClassByIDForUpdate(ctx, groupClassID)
		if err != nil {
			if errors.Is(err, repository.ErrClassNotFound) {
				return domainerrors.ErrClassNotFound
			}

			return errors.Wrap(err, "failed to load group class for booking")
		}

		capacity := class.Group.CapacityOrDefault(srv.policy.MaxClassCapacity)
		if err := srv.ensureSeatAvailable(ctx, bookings, clientID, groupClassID, capacity); err != nil {
			return err
		}

		booking, detail := newBookingRecords(clientID, groupClassID, nil, entity.ReservationToPay, nil)
		if err := srv.insertBooking(ctx, bookings, booking, detail); err != nil {
			return err
		}

		result = &usecase.BookingResult{
			BookingID:    booking.ID,
			ClientID:     clientID,
			GroupClassID: groupClassID,
			Status:       detail.Status,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("group class booked",
		slog.String("clientId", clientID.String()),
		slog.String("groupClassId", groupClassID.String()),
	)

	return result, nil
}

// ReserveForClient reserves a seat on behalf of a client, optionally charging
// an existing membership. Membership validation and the booking insert commit
// together or not at all.
func (srv *bookingService) ReserveForClient(ctx context.Context, input *usecase.ReserveInput) (*usecase.BookingResult, error) {
	var result *usecase.BookingResult

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		users := repos.NewUserRepository()
		classes := repos.NewClassRepository()
		bookings := repos.NewBookingRepository()
		memberships := repos.NewMembershipRepository()

		if _, err := users.FindByIDAndRole(ctx, input.ReceptionistID, entity.RoleReceptionist); err != nil {
			return roleLookupError(err)
		}
		if _, err := users.FindByIDAndRole(ctx, input.ClientID, entity.RoleClient); err != nil {
			return roleLookupError(err)
		}

		class, err := classes.FindGroupClassByIDForUpdate(ctx, input.GroupClassID)
		if err != nil {
			if errors.Is(err, repository.ErrClassNotFound) {
				return domainerrors.ErrClassNotFound
			}

			return errors.Wrap(err, "failed to load group class for reservation")
		}

		// The reception channel enforces the club-wide ceiling rather than the
		// per-class capacity.
		if err := srv.ensureSeatAvailable(ctx, bookings, input.ClientID, input.GroupClassID, srv.policy.MaxClassCapacity); err != nil {
			return err
		}

		status := entity.ReservationToPay
		if input.MembershipID != nil {
			status, err = srv.validateMembership(ctx, memberships, *input.MembershipID, input.ClientID, class.Slot.Date)
			if err != nil {
				return err
			}
		}

		receptionistID := input.ReceptionistID
		booking, detail := newBookingRecords(input.ClientID, input.GroupClassID, input.MembershipID, status, &receptionistID)
		if err := srv.insertBooking(ctx, bookings, booking, detail); err != nil {
			return err
		}

		result = &usecase.BookingResult{
			BookingID:    booking.ID,
			ClientID:     input.ClientID,
			GroupClassID: input.GroupClassID,
			Status:       status,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("group class reserved at reception",
		slog.String("clientId", input.ClientID.String()),
		slog.String("groupClassId", input.GroupClassID.String()),
		slog.String("receptionistId", input.ReceptionistID.String()),
		slog.String("status", string(result.Status)),
	)

	return result, nil
}

// ListClientBookings returns the client's booking history.
func (srv *bookingService) ListClientBookings(ctx context.Context, clientID uuid.UUID) ([]*entity.BookingWithClass, error) {
	bookings, err := srv.bookingRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list client bookings")
	}

	return bookings, nil
}

// ensureSeatAvailable checks the capacity ceiling and the duplicate-booking
// invariant, in that order. Callers must hold the class row lock.
func (srv *bookingService) ensureSeatAvailable(ctx context.Context, bookings repository.BookingRepository, clientID, groupClassID uuid.UUID, capacity int) error {
	count, err := bookings.CountByGroupClass(ctx, groupClassID)
	if err != nil {
		return errors.Wrap(err, "failed to count bookings")
	}
	if count >= int64(capacity) {
		return domainerrors.ErrClassFull
	}

	exists, err := bookings.Exists(ctx, clientID, groupClassID)
	if err != nil {
		return errors.Wrap(err, "failed to check existing booking")
	}
	if exists {
		return domainerrors.ErrAlreadyBooked
	}

	return nil
}

// validateMembership verifies ownership and validity of a membership and
// derives the reservation status from its payment state.
func (srv *bookingService) validateMembership(ctx context.Context, memberships repository.MembershipRepository, membershipID, clientID uuid.UUID, classDate time.Time) (entity.ReservationStatus, error) {
	membership, err := memberships.FindByID(ctx, membershipID)
	if err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return "", domainerrors.ErrInvalidMembership
		}

		return "", errors.Wrap(err, "failed to load membership")
	}
	if membership.ClientID != clientID {
		return "", domainerrors.ErrInvalidMembership
	}
	if !membership.CoversDate(classDate) {
		return "", domainerrors.ErrMembershipNotValid
	}

	payment, err := memberships.FindPayment(ctx, membershipID)
	if err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return entity.ReservationToPay, nil
		}

		return "", errors.Wrap(err, "failed to load membership payment")
	}
	if payment.Status == entity.PaymentActivated {
		return entity.ReservationPaid, nil
	}

	return entity.ReservationToPay, nil
}

// insertBooking writes the booking row and its companion detail record.
func (srv *bookingService) insertBooking(ctx context.Context, bookings repository.BookingRepository, booking *entity.Booking, detail *entity.BookingDetail) error {
	if err := bookings.Create(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrDuplicateBooking) {
			return domainerrors.ErrAlreadyBooked
		}
		if errors.Is(err, repository.ErrClassNotFound) {
			return domainerrors.ErrClassNotFound
		}

		return errors.Wrap(err, "failed to create booking")
	}

	if err := bookings.CreateDetail(ctx, detail); err != nil {
		return errors.Wrap(err, "failed to create booking detail")
	}

	return nil
}

func newBookingRecords(clientID, groupClassID uuid.UUID, membershipID *uuid.UUID, status entity.ReservationStatus, bookedByID *uuid.UUID) (*entity.Booking, *entity.BookingDetail) {
	now := time.Now().UTC()

	booking := &entity.Booking{
		ID:           uuid.New(),
		ClientID:     clientID,
		GroupClassID: groupClassID,
		BookedAt:     now,
	}
	detail := &entity.BookingDetail{
		ClientID:     clientID,
		GroupClassID: groupClassID,
		MembershipID: membershipID,
		Status:       status,
		BookedByID:   bookedByID,
		CreatedAt:    now,
	}

	return booking, detail
}

// roleLookupError maps a repository user lookup failure to the domain error.
func roleLookupError(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrRoleMismatch
	}

	return errors.Wrap(err, "failed to resolve user role")
}
