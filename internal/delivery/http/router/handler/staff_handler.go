package handler

import (
	"log/slog"
	"net/http"

	"fitclub/internal/delivery/http/response"
	"fitclub/internal/domain/entity"
	"fitclub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StaffHandler holds dependencies for staff-management handlers.
type StaffHandler struct {
	uc     usecase.StaffUsecase
	logger *slog.Logger
}

// NewStaffHandler is the constructor for StaffHandler, injected by Fx.
func NewStaffHandler(uc usecase.StaffUsecase, logger *slog.Logger) *StaffHandler {
	return &StaffHandler{
		uc:     uc,
		logger: logger,
	}
}

type addressRequest struct {
	City            string `json:"city" validate:"required"`
	PostalCode      string `json:"postal_code" validate:"required"`
	StreetName      string `json:"street_name" validate:"required"`
	StreetNumber    string `json:"street_number" validate:"required"`
	ApartmentNumber string `json:"apartment_number"`
}

type createStaffRequest struct {
	ManagerID    uuid.UUID      `json:"manager_id" validate:"required"`
	Role         string         `json:"role" validate:"required"`
	FirstName    string         `json:"first_name" validate:"required"`
	LastName     string         `json:"last_name" validate:"required"`
	BirthDate    string         `json:"birth_date" validate:"required"`
	Email        string         `json:"email" validate:"required,email"`
	Phone        string         `json:"phone" validate:"required"`
	Gender       string         `json:"gender" validate:"required,oneof=M F"`
	Password     string         `json:"password" validate:"required,min=8"`
	ContractType string         `json:"contract_type"`
	Salary       *int           `json:"salary"`
	Bio          string         `json:"bio"`
	Address      addressRequest `json:"address" validate:"required"`
}

// CreateStaff handles the creation of a staff member. Manager only.
func (h *StaffHandler) CreateStaff(c echo.Context) error {
	var req createStaffRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid staff input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "invalid birth_date")
	}

	result, err := h.uc.CreateStaff(c.Request().Context(), &usecase.CreateStaffInput{
		ManagerID:    req.ManagerID,
		Role:         entity.Role(req.Role),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BirthDate:    birthDate,
		Email:        req.Email,
		Phone:        req.Phone,
		Gender:       entity.Gender(req.Gender),
		Password:     req.Password,
		ContractType: req.ContractType,
		Salary:       req.Salary,
		Bio:          req.Bio,
		Address: usecase.AddressInput{
			City:            req.Address.City,
			PostalCode:      req.Address.PostalCode,
			StreetName:      req.Address.StreetName,
			StreetNumber:    req.Address.StreetNumber,
			ApartmentNumber: req.Address.ApartmentNumber,
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Staff member created")
}

// ListStaff returns staff members, optionally filtered by role. Manager only.
func (h *StaffHandler) ListStaff(c echo.Context) error {
	managerID, err := uuid.Parse(c.QueryParam("manager_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid manager id")
	}

	var role *entity.Role
	if raw := c.QueryParam("role"); raw != "" {
		r := entity.Role(raw)
		role = &r
	}

	results, err := h.uc.ListStaff(c.Request().Context(), managerID, role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, results, "Staff members")
}
