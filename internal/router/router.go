package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/hotel-reservation/internal/handler"    // handlers implementing the endpoints
	"github.com/iliyamo/hotel-reservation/internal/middleware" // JWT authentication and role enforcement
)

// RegisterRoutes registers every route of the service. The health
// check and login are public; everything else lives under /v1 behind
// JWT authentication and the operator role.
func RegisterRoutes(e *echo.Echo, a *handler.AuthHandler, h *handler.OperatorHandler, jwtSecret string) {
	// Health endpoint for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Login is the only unauthenticated operation besides health.
	e.POST("/v1/auth/login", a.Login)

	// Every operator endpoint requires a valid access token carrying
	// the OPERATOR role.
	v1 := e.Group("/v1")
	v1.Use(middleware.JWTAuth(jwtSecret))
	v1.Use(middleware.RequireRole(handler.RoleOperator))

	// Rooms: registration, listing and period availability. The
	// availability route is declared before the param-free listing so
	// the two cannot shadow each other.
	v1.POST("/rooms", h.CreateRoom)
	v1.GET("/rooms", h.ListRooms)
	v1.GET("/rooms/available", h.AvailableRooms)

	// Guests: registration, listing and resolution history.
	v1.POST("/guests", h.CreateGuest)
	v1.GET("/guests", h.ListGuests)
	v1.GET("/guests/:national_id/history", h.GuestHistory)

	// Reservations: booking, lifecycle resolution and the active list.
	v1.POST("/reservations", h.CreateReservation)
	v1.GET("/reservations/active", h.ListActiveReservations)
	v1.POST("/reservations/:id/cancel", h.CancelReservation)
	v1.POST("/reservations/:id/complete", h.CompleteReservation)
}
