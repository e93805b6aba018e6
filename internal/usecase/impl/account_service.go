package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"fitclub/internal/domain/entity"
	domainerrors "fitclub/internal/domain/errors"
	"fitclub/internal/domain/repository"
	"fitclub/internal/domain/service"
	"fitclub/internal/usecase"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	tokens    service.TokenService
	logger    *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Tokens    service.TokenService
	Logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		tokens:    params.Tokens,
		logger:    params.Logger,
	}
}

// Login verifies the credentials and issues an access token. Unknown emails
// and wrong passwords are indistinguishable to the caller.
func (srv *accountService) Login(ctx context.Context, email, password string) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up user by email")
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokens.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.logger.Info("user logged in",
		slog.String("userId", user.ID.String()),
		slog.String("role", string(user.Role)),
	)

	return &usecase.LoginOutput{
		AccessToken: token,
		UserID:      user.ID,
		Role:        user.Role,
	}, nil
}

// DeleteClient removes a client account after password confirmation. Dependent
// records are removed in one transaction: membership payments first, then
// booking details, bookings, memberships, individual class links, and finally
// the user row and its orphaned address.
func (srv *accountService) DeleteClient(ctx context.Context, clientID uuid.UUID, password string) error {
	client, err := srv.userRepo.FindByIDAndRole(ctx, clientID, entity.RoleClient)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to look up client")
	}

	if !srv.hasher.Check(password, client.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		users := repos.NewUserRepository()
		addresses := repos.NewAddressRepository()
		classes := repos.NewClassRepository()
		bookings := repos.NewBookingRepository()
		memberships := repos.NewMembershipRepository()

		if err := memberships.DeletePaymentsByClient(ctx, clientID); err != nil {
			return errors.Wrap(err, "failed to delete membership payments")
		}
		if err := bookings.DeleteDetailsByClient(ctx, clientID); err != nil {
			return errors.Wrap(err, "failed to delete booking details")
		}
		if err := bookings.DeleteByClient(ctx, clientID); err != nil {
			return errors.Wrap(err, "failed to delete bookings")
		}
		if err := memberships.DeleteByClient(ctx, clientID); err != nil {
			return errors.Wrap(err, "failed to delete memberships")
		}
		if err := classes.DetachClientFromIndividualClasses(ctx, clientID); err != nil {
			return errors.Wrap(err, "failed to detach individual classes")
		}
		if err := users.Delete(ctx, clientID); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}
		if client.AddressID != nil {
			if err := addresses.DeleteIfOrphaned(ctx, *client.AddressID); err != nil {
				return errors.Wrap(err, "failed to clean up address")
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.logger.Info("client account deleted",
		slog.String("clientId", clientID.String()),
	)

	return nil
}
