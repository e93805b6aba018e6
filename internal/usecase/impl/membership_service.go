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
	"fitclub/internal/domain/service"
	"fitclub/internal/usecase"
)

// membershipService implements the MembershipUsecase interface.
type membershipService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	membershipRepo repository.MembershipRepository
	hasher         service.PasswordHasher
	policy         config.PolicyConfig
	logger         *slog.Logger
}

// MembershipServiceParams holds dependencies for MembershipService, injected by Fx.
type MembershipServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	MembershipRepo repository.MembershipRepository
	Hasher         service.PasswordHasher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewMembershipService is the constructor for membershipService.
func NewMembershipService(params MembershipServiceParams) usecase.MembershipUsecase {
	return &membershipService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		membershipRepo: params.MembershipRepo,
		hasher:         params.Hasher,
		policy:         params.Config.Policy,
		logger:         params.Logger,
	}
}

// Catalog returns the static membership offering list. One-time passes are
// sold at reception only; every other type is available to clients directly.
func (srv *membershipService) Catalog() []usecase.CatalogItem {
	types := []entity.MembershipType{
		entity.MembershipOneTimePass,
		entity.MembershipMonthly,
		entity.MembershipQuarterly,
		entity.MembershipAnnual,
	}

	items := make([]usecase.CatalogItem, 0, len(types)*2)
	for _, t := range types {
		for _, withSauna := range []bool{false, true} {
			variant := "GYM"
			if withSauna {
				variant = "GYM_SAUNA"
			}
			channel := "CLIENT"
			if t.ReceptionOnly() {
				channel = "RECEPTION_ONLY"
			}
			items = append(items, usecase.CatalogItem{
				Type:            t,
				Variant:         variant,
				PurchaseChannel: channel,
				AllowedPayment:  []entity.PaymentMethod{entity.PaymentOnline, entity.PaymentCash},
			})
		}
	}

	return items
}

// PurchaseForClient performs a client self-purchase. Payment is ACTIVATED only
// when paid through the online channel; anything else stays TO_PAY until
// confirmed at reception.
func (srv *membershipService) PurchaseForClient(ctx context.Context, clientID uuid.UUID, input *usecase.PurchaseInput) (*usecase.MembershipResult, error) {
	if err := validatePurchase(input); err != nil {
		return nil, err
	}
	if input.Type.ReceptionOnly() {
		return nil, domainerrors.ErrPurchaseChannelForbidden
	}

	if _, err := srv.userRepo.FindByIDAndRole(ctx, clientID, entity.RoleClient); err != nil {
		return nil, roleLookupError(err)
	}

	status := entity.PaymentToPay
	if input.Method == entity.PaymentOnline {
		status = entity.PaymentActivated
	}

	result, err := srv.createMembership(ctx, clientID, nil, input, status)
	if err != nil {
		return nil, err
	}

	srv.logger.Info("membership purchased",
		slog.String("clientId", clientID.String()),
		slog.String("type", string(input.Type)),
		slog.String("paymentStatus", string(status)),
	)

	return result, nil
}

// SellAtReception performs a staff-assisted sale. When no client id is given,
// the receptionist fast-registers a new client inline; the registration and
// the sale commit together. Payment is collected in person, so the payment
// record is ACTIVATED regardless of method.
func (srv *membershipService) SellAtReception(ctx context.Context, input *usecase.SellInput) (*usecase.MembershipResult, error) {
	if err := validatePurchase(&input.Purchase); err != nil {
		return nil, err
	}

	if _, err := srv.userRepo.FindByIDAndRole(ctx, input.ReceptionistID, entity.RoleReceptionist); err != nil {
		return nil, roleLookupError(err)
	}

	var result *usecase.MembershipResult

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		users := repos.NewUserRepository()
		memberships := repos.NewMembershipRepository()

		clientID, err := srv.resolveClient(ctx, users, input)
		if err != nil {
			return err
		}

		receptionistID := input.ReceptionistID
		result, err = srv.insertMembership(ctx, memberships, clientID, &receptionistID, &input.Purchase, entity.PaymentActivated)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("membership sold at reception",
		slog.String("clientId", result.ClientID.String()),
		slog.String("receptionistId", input.ReceptionistID.String()),
		slog.String("type", string(input.Purchase.Type)),
	)

	return result, nil
}

// ListClientMemberships returns the client's purchase history, newest first.
func (srv *membershipService) ListClientMemberships(ctx context.Context, clientID uuid.UUID) ([]*usecase.MembershipResult, error) {
	if _, err := srv.userRepo.FindByIDAndRole(ctx, clientID, entity.RoleClient); err != nil {
		return nil, roleLookupError(err)
	}

	rows, err := srv.membershipRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list client memberships")
	}

	results := make([]*usecase.MembershipResult, 0, len(rows))
	for _, row := range rows {
		result := membershipResult(&row.Membership)
		if row.Payment != nil {
			result.PaymentStatus = row.Payment.Status
			result.PaymentMethod = row.Payment.Method
		} else {
			// Legacy rows may predate the payments table.
			result.PaymentStatus = entity.PaymentStatus("UNKNOWN")
			result.PaymentMethod = entity.PaymentCash
		}
		results = append(results, result)
	}

	return results, nil
}

// resolveClient returns the id of the client the sale applies to, creating the
// client inline when the fast-registration fields are supplied.
func (srv *membershipService) resolveClient(ctx context.Context, users repository.UserRepository, input *usecase.SellInput) (uuid.UUID, error) {
	if input.ClientID != nil {
		if _, err := users.FindByIDAndRole(ctx, *input.ClientID, entity.RoleClient); err != nil {
			return uuid.Nil, roleLookupError(err)
		}

		return *input.ClientID, nil
	}

	newClient := input.NewClient
	if !newClientComplete(newClient) {
		return uuid.Nil, domainerrors.ErrMissingClientFields
	}

	if _, err := users.FindByEmail(ctx, newClient.Email); err == nil {
		return uuid.Nil, domainerrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return uuid.Nil, errors.Wrap(err, "failed to check email uniqueness")
	}

	hash, err := srv.hasher.Hash(newClient.Password)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to hash password")
	}

	client := &entity.User{
		ID:           uuid.New(),
		FirstName:    newClient.FirstName,
		LastName:     newClient.LastName,
		BirthDate:    newClient.BirthDate,
		Email:        newClient.Email,
		Phone:        newClient.Phone,
		Gender:       newClient.Gender,
		PasswordHash: hash,
		Role:         entity.RoleClient,
		AddressID:    newClient.AddressID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := users.Create(ctx, client); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return uuid.Nil, domainerrors.ErrEmailAlreadyExists
		}

		return uuid.Nil, errors.Wrap(err, "failed to fast-register client")
	}

	return client.ID, nil
}

// createMembership runs the insert pair inside its own transaction for the
// self-purchase path.
func (srv *membershipService) createMembership(ctx context.Context, clientID uuid.UUID, receptionistID *uuid.UUID, input *usecase.PurchaseInput, status entity.PaymentStatus) (*usecase.MembershipResult, error) {
	var result *usecase.MembershipResult

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		result, err = srv.insertMembership(ctx, repos.NewMembershipRepository(), clientID, receptionistID, input, status)

		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// insertMembership writes the membership and its payment record.
func (srv *membershipService) insertMembership(ctx context.Context, memberships repository.MembershipRepository, clientID uuid.UUID, receptionistID *uuid.UUID, input *usecase.PurchaseInput, status entity.PaymentStatus) (*usecase.MembershipResult, error) {
	startDate := time.Date(input.StartDate.Year(), input.StartDate.Month(), input.StartDate.Day(), 0, 0, 0, 0, time.UTC)

	membership := &entity.Membership{
		ID:             uuid.New(),
		Type:           input.Type,
		WithSauna:      input.WithSauna,
		Price:          entity.ComputePrice(input.Type, input.WithSauna, srv.policy.SaunaSurcharge, input.PriceOverride),
		StartDate:      startDate,
		EndDate:        entity.ComputeEndDate(input.Type, startDate),
		ClientID:       clientID,
		ReceptionistID: receptionistID,
		CreatedAt:      time.Now().UTC(),
	}
	if err := memberships.Create(ctx, membership); err != nil {
		return nil, errors.Wrap(err, "failed to create membership")
	}

	payment := &entity.MembershipPayment{
		MembershipID: membership.ID,
		Status:       status,
		Method:       input.Method,
		CreatedAt:    time.Now().UTC(),
	}
	if err := memberships.CreatePayment(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to create membership payment")
	}

	result := membershipResult(membership)
	result.PaymentStatus = payment.Status
	result.PaymentMethod = payment.Method

	return result, nil
}

// newClientComplete reports whether every mandatory fast-registration field is
// present. The optional address reference is excluded.
func newClientComplete(c *usecase.NewClientInput) bool {
	if c == nil {
		return false
	}

	return c.FirstName != "" && c.LastName != "" && !c.BirthDate.IsZero() &&
		c.Email != "" && c.Phone != "" && c.Gender.IsValid() && c.Password != ""
}

func validatePurchase(input *usecase.PurchaseInput) error {
	if !input.Type.IsValid() || !input.Method.IsValid() {
		return domainerrors.ErrInvalidPurchaseInput
	}
	if input.PriceOverride != nil && *input.PriceOverride < 0 {
		return domainerrors.ErrNegativePriceOverride
	}

	return nil
}

func membershipResult(m *entity.Membership) *usecase.MembershipResult {
	return &usecase.MembershipResult{
		MembershipID: m.ID,
		ClientID:     m.ClientID,
		Type:         m.Type,
		WithSauna:    m.WithSauna,
		Price:        m.Price,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
	}
}
