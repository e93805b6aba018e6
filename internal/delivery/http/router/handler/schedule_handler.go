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

// ScheduleHandler holds dependencies for scheduling-related handlers.
type ScheduleHandler struct {
	uc     usecase.ScheduleUsecase
	logger *slog.Logger
}

// NewScheduleHandler is the constructor for ScheduleHandler, injected by Fx.
func NewScheduleHandler(uc usecase.ScheduleUsecase, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		uc:     uc,
		logger: logger,
	}
}

type scheduleIndividualRequest struct {
	TrainerID uuid.UUID `json:"trainer_id" validate:"required"`
	ClientID  uuid.UUID `json:"client_id" validate:"required"`
	Room      string    `json:"room" validate:"required"`
	Date      string    `json:"date" validate:"required"`
	StartTime string    `json:"start_time" validate:"required"`
	EndTime   string    `json:"end_time" validate:"required"`
	Note      string    `json:"note"`
}

// ScheduleIndividual handles scheduling of a one-on-one session.
func (h *ScheduleHandler) ScheduleIndividual(c echo.Context) error {
	var req scheduleIndividualRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid class input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	date, startTime, endTime, err := parseWindow(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	classID, err := h.uc.ScheduleIndividual(c.Request().Context(), &usecase.ScheduleIndividualInput{
		TrainerID: req.TrainerID,
		ClientID:  req.ClientID,
		Room:      req.Room,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Note:      req.Note,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"class_id": classID.String()}, "Individual class scheduled")
}

type createGroupClassRequest struct {
	ManagerID    uuid.UUID `json:"manager_id" validate:"required"`
	InstructorID uuid.UUID `json:"instructor_id" validate:"required"`
	Name         string    `json:"name" validate:"required"`
	Description  string    `json:"description"`
	Room         string    `json:"room" validate:"required"`
	Date         string    `json:"date" validate:"required"`
	StartTime    string    `json:"start_time" validate:"required"`
	EndTime      string    `json:"end_time" validate:"required"`
	MaxCapacity  int       `json:"max_capacity"`
}

// CreateGroupClass handles scheduling of a group class. Manager only.
func (h *ScheduleHandler) CreateGroupClass(c echo.Context) error {
	var req createGroupClassRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid group class input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	date, startTime, endTime, err := parseWindow(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	classID, err := h.uc.CreateGroupClass(c.Request().Context(), &usecase.CreateGroupClassInput{
		ManagerID:    req.ManagerID,
		InstructorID: req.InstructorID,
		Name:         req.Name,
		Description:  req.Description,
		Room:         req.Room,
		Date:         date,
		StartTime:    startTime,
		EndTime:      endTime,
		MaxCapacity:  req.MaxCapacity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"class_id": classID.String()}, "Group class created")
}

type groupClassView struct {
	ClassID        uuid.UUID `json:"class_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Room           string    `json:"room"`
	Date           string    `json:"date"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	InstructorID   uuid.UUID `json:"instructor_id"`
	MaxCapacity    int       `json:"max_capacity"`
	BookedSeats    int       `json:"booked_seats"`
	AvailableSeats int       `json:"available_seats"`
}

// ListGroupClasses returns the public group-class schedule with seat counts.
func (h *ScheduleHandler) ListGroupClasses(c echo.Context) error {
	classes, err := h.uc.ListGroupClasses(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]groupClassView, 0, len(classes))
	for _, class := range classes {
		views = append(views, toGroupClassView(class))
	}

	return response.Success(c, http.StatusOK, views, "Group class schedule")
}

func toGroupClassView(class *entity.GroupClassWithCount) groupClassView {
	view := groupClassView{
		ClassID:     class.Class.ID,
		Name:        class.Class.Name,
		Description: class.Class.Description,
		Room:        class.Class.Room,
		Date:        class.Class.Slot.Date.Format(dateLayout),
		StartTime:   class.Class.Slot.Start.Format(clockLayout),
		EndTime:     class.Class.Slot.End.Format(clockLayout),
		BookedSeats: class.BookedSeats,
	}
	if class.Class.Group != nil {
		view.InstructorID = class.Class.Group.InstructorID
		view.MaxCapacity = class.Class.Group.MaxCapacity
	}
	if view.MaxCapacity > 0 {
		view.AvailableSeats = view.MaxCapacity - view.BookedSeats
		if view.AvailableSeats < 0 {
			view.AvailableSeats = 0
		}
	}

	return view
}

// parseWindow parses the date and the two times of day of a class request.
func parseWindow(date, start, end string) (time.Time, time.Time, time.Time, error) {
	d, err := parseDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, time.Time{}, errors.Wrap(err, "invalid date")
	}
	s, err := parseClock(start)
	if err != nil {
		return time.Time{}, time.Time{}, time.Time{}, errors.Wrap(err, "invalid start_time")
	}
	e, err := parseClock(end)
	if err != nil {
		return time.Time{}, time.Time{}, time.Time{}, errors.Wrap(err, "invalid end_time")
	}

	return d, s, e, nil
}
