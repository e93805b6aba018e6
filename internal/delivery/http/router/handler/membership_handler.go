package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fitclub/internal/delivery/http/response"
	"fitclub/internal/domain/entity"
	"fitclub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MembershipHandler holds dependencies for membership-related handlers.
type MembershipHandler struct {
	uc     usecase.MembershipUsecase
	logger *slog.Logger
}

// NewMembershipHandler is the constructor for MembershipHandler, injected by Fx.
func NewMembershipHandler(uc usecase.MembershipUsecase, logger *slog.Logger) *MembershipHandler {
	return &MembershipHandler{
		uc:     uc,
		logger: logger,
	}
}

// Catalog returns the membership offering list.
func (h *MembershipHandler) Catalog(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Catalog(), "Membership catalog")
}

type purchaseRequest struct {
	Type          string `json:"type" validate:"required"`
	StartDate     string `json:"start_date" validate:"required"`
	WithSauna     bool   `json:"with_sauna"`
	PaymentMethod string `json:"payment_method" validate:"required"`
	PriceOverride *int   `json:"price_override"`
}

func (r *purchaseRequest) toInput() (*usecase.PurchaseInput, error) {
	startDate, err := parseDate(r.StartDate)
	if err != nil {
		return nil, errors.Wrap(err, "invalid start_date")
	}

	return &usecase.PurchaseInput{
		Type:          entity.MembershipType(r.Type),
		StartDate:     startDate,
		WithSauna:     r.WithSauna,
		Method:        entity.PaymentMethod(r.PaymentMethod),
		PriceOverride: r.PriceOverride,
	}, nil
}

// Purchase handles a client self-purchase of a membership.
func (h *MembershipHandler) Purchase(c echo.Context) error {
	clientID, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid client id")
	}

	var req purchaseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	result, err := h.uc.PurchaseForClient(c.Request().Context(), clientID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Membership purchased")
}

// ListClientMemberships returns the client's purchase history.
func (h *MembershipHandler) ListClientMemberships(c echo.Context) error {
	clientID, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid client id")
	}

	results, err := h.uc.ListClientMemberships(c.Request().Context(), clientID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, results, "Client memberships")
}

type newClientRequest struct {
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	BirthDate string     `json:"birth_date"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Gender    string     `json:"gender"`
	Password  string     `json:"password"`
	AddressID *uuid.UUID `json:"address_id"`
}

type sellRequest struct {
	ReceptionistID uuid.UUID         `json:"receptionist_id" validate:"required"`
	ClientID       *uuid.UUID        `json:"client_id"`
	NewClient      *newClientRequest `json:"new_client"`
	purchaseRequest
}

// Sell handles a reception-assisted membership sale, optionally
// fast-registering a new client.
func (h *MembershipHandler) Sell(c echo.Context) error {
	var req sellRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	purchase, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	input := &usecase.SellInput{
		ReceptionistID: req.ReceptionistID,
		ClientID:       req.ClientID,
		Purchase:       *purchase,
	}
	if req.NewClient != nil {
		var birthDate time.Time
		if req.NewClient.BirthDate != "" {
			birthDate, err = parseDate(req.NewClient.BirthDate)
			if err != nil {
				return response.BadRequest(c, "INVALID_INPUT", "invalid birth_date")
			}
		}
		input.NewClient = &usecase.NewClientInput{
			FirstName: req.NewClient.FirstName,
			LastName:  req.NewClient.LastName,
			BirthDate: birthDate,
			Email:     req.NewClient.Email,
			Phone:     req.NewClient.Phone,
			Gender:    entity.Gender(req.NewClient.Gender),
			Password:  req.NewClient.Password,
			AddressID: req.NewClient.AddressID,
		}
	}

	result, err := h.uc.SellAtReception(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Membership sold")
}
