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

// BookingHandler holds dependencies for booking-related handlers.
type BookingHandler struct {
	uc     usecase.BookingUsecase
	logger *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler, injected by Fx.
func NewBookingHandler(uc usecase.BookingUsecase, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{
		uc:     uc,
		logger: logger,
	}
}

type bookRequest struct {
	ClientID     uuid.UUID `json:"client_id" validate:"required"`
	GroupClassID uuid.UUID `json:"group_class_id" validate:"required"`
}

// Book handles a client self-service booking.
func (h *BookingHandler) Book(c echo.Context) error {
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.uc.BookClass(c.Request().Context(), req.ClientID, req.GroupClassID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Class booked")
}

type reserveRequest struct {
	ReceptionistID uuid.UUID  `json:"receptionist_id" validate:"required"`
	ClientID       uuid.UUID  `json:"client_id" validate:"required"`
	MembershipID   *uuid.UUID `json:"membership_id"`
}

// Reserve handles a receptionist-assisted reservation.
func (h *BookingHandler) Reserve(c echo.Context) error {
	groupClassID, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid group class id")
	}

	var req reserveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reservation input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.uc.ReserveForClient(c.Request().Context(), &usecase.ReserveInput{
		ReceptionistID: req.ReceptionistID,
		ClientID:       req.ClientID,
		GroupClassID:   groupClassID,
		MembershipID:   req.MembershipID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Class reserved")
}

type bookingView struct {
	BookingID    uuid.UUID `json:"booking_id"`
	GroupClassID uuid.UUID `json:"group_class_id"`
	ClassName    string    `json:"class_name"`
	Room         string    `json:"room"`
	Date         string    `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	BookedAt     time.Time `json:"booked_at"`
}

// MyBookings returns the client's booking history.
func (h *BookingHandler) MyBookings(c echo.Context) error {
	clientID, ok := pathUUID(c, "client_id")
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid client id")
	}

	bookings, err := h.uc.ListClientBookings(c.Request().Context(), clientID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]bookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, toBookingView(b))
	}

	return response.Success(c, http.StatusOK, views, "Client bookings")
}

func toBookingView(b *entity.BookingWithClass) bookingView {
	return bookingView{
		BookingID:    b.Booking.ID,
		GroupClassID: b.Booking.GroupClassID,
		ClassName:    b.ClassName,
		Room:         b.Room,
		Date:         b.Slot.Date.Format(dateLayout),
		StartTime:    b.Slot.Start.Format(clockLayout),
		EndTime:      b.Slot.End.Format(clockLayout),
		BookedAt:     b.Booking.BookedAt,
	}
}
