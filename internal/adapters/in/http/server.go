// Package http serves the read-only dispatch API with echo.
package http

import (
	"errors"
	"net/http"
	"strings"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and the query use cases.
type Server struct {
	getUserHandler            queries.GetUserQueryHandler
	getAllUsersHandler        queries.GetAllUsersQueryHandler
	getAllDriversHandler      queries.GetAllDriversQueryHandler
	getServiceRequestsHandler queries.GetServiceRequestsQueryHandler
	getDispatchSummaryHandler queries.GetDispatchSummaryQueryHandler
}

func NewServer(
	getUserHandler queries.GetUserQueryHandler,
	getAllUsersHandler queries.GetAllUsersQueryHandler,
	getAllDriversHandler queries.GetAllDriversQueryHandler,
	getServiceRequestsHandler queries.GetServiceRequestsQueryHandler,
	getDispatchSummaryHandler queries.GetDispatchSummaryQueryHandler,
) *Server {
	return &Server{
		getUserHandler:            getUserHandler,
		getAllUsersHandler:        getAllUsersHandler,
		getAllDriversHandler:      getAllDriversHandler,
		getServiceRequestsHandler: getServiceRequestsHandler,
		getDispatchSummaryHandler: getDispatchSummaryHandler,
	}
}

// Register mounts the API on e. A nil metrics handler leaves /metrics out.
func (s *Server) Register(e *echo.Echo, metrics http.Handler) {
	e.GET("/health", s.Health)
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}

	api := e.Group("/api/v1")
	api.GET("/users", s.GetUsers)
	api.GET("/users/:id", s.GetUser)
	api.GET("/drivers", s.GetDrivers)
	api.GET("/requests", s.GetServiceRequests)
	api.GET("/summary", s.GetSummary)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetUsers handles GET /api/v1/users in listing order.
func (s *Server) GetUsers(ctx echo.Context) error {
	users, err := s.getAllUsersHandler.Handle(ctx.Request().Context(), queries.NewGetAllUsersQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve users")
	}

	response := make([]User, len(users))
	for i, u := range users {
		response[i] = newUser(u)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetUser handles GET /api/v1/users/:id.
func (s *Server) GetUser(ctx echo.Context) error {
	query, err := queries.NewGetUserQuery(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid user account id",
		})
	}

	u, err := s.getUserHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, queries.ErrUserNotFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}
	if err != nil {
		return internalError(ctx, "Failed to retrieve user")
	}
	return ctx.JSON(http.StatusOK, newUser(u))
}

// GetDrivers handles GET /api/v1/drivers in registration order.
func (s *Server) GetDrivers(ctx echo.Context) error {
	drivers, err := s.getAllDriversHandler.Handle(ctx.Request().Context(), queries.NewGetAllDriversQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve drivers")
	}

	response := make([]Driver, len(drivers))
	for i, d := range drivers {
		response[i] = newDriver(d)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetServiceRequests handles GET /api/v1/requests. With ?sort=distance the
// listing is ordered by ascending distance.
func (s *Server) GetServiceRequests(ctx echo.Context) error {
	sortBy := strings.ToLower(ctx.QueryParam("sort"))
	if sortBy != "" && sortBy != "distance" {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Unknown sort key: " + sortBy,
		})
	}

	query := queries.NewGetServiceRequestsQuery(sortBy == "distance")
	requests, err := s.getServiceRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve service requests")
	}

	response := make([]ServiceRequest, len(requests))
	for i, r := range requests {
		response[i] = newServiceRequest(r)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetSummary handles GET /api/v1/summary.
func (s *Server) GetSummary(ctx echo.Context) error {
	summary, err := s.getDispatchSummaryHandler.Handle(ctx.Request().Context(), queries.NewGetDispatchSummaryQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve summary")
	}
	return ctx.JSON(http.StatusOK, newSummary(summary))
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
