// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fitclub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler    *handler.AccountHandler
	MembershipHandler *handler.MembershipHandler
	BookingHandler    *handler.BookingHandler
	ScheduleHandler   *handler.ScheduleHandler
	StaffHandler      *handler.StaffHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	account    *handler.AccountHandler
	membership *handler.MembershipHandler
	booking    *handler.BookingHandler
	schedule   *handler.ScheduleHandler
	staff      *handler.StaffHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		account:    params.AccountHandler,
		membership: params.MembershipHandler,
		booking:    params.BookingHandler,
		schedule:   params.ScheduleHandler,
		staff:      params.StaffHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	e.POST("/auth/login", r.account.Login)

	e.GET("/memberships/catalog", r.membership.Catalog)

	clientGroup := e.Group("/clients")
	{
		clientGroup.POST("/:id/memberships/purchase", r.membership.Purchase)
		clientGroup.GET("/:id/memberships", r.membership.ListClientMemberships)
		clientGroup.DELETE("/:id", r.account.DeleteClient)
	}

	receptionGroup := e.Group("/reception")
	{
		receptionGroup.POST("/memberships/sell", r.membership.Sell)
		receptionGroup.POST("/group-classes/:id/reserve", r.booking.Reserve)
	}

	scheduleGroup := e.Group("/schedule")
	{
		scheduleGroup.GET("/classes", r.schedule.ListGroupClasses)
		scheduleGroup.POST("/book", r.booking.Book)
		scheduleGroup.GET("/my-bookings/:client_id", r.booking.MyBookings)
	}

	e.POST("/classes", r.schedule.ScheduleIndividual)
	e.POST("/classes/group", r.schedule.CreateGroupClass)

	managerGroup := e.Group("/manager")
	{
		managerGroup.POST("/staff", r.staff.CreateStaff)
		managerGroup.GET("/staff", r.staff.ListStaff)
	}
}
