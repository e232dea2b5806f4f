// Package http is the REST transport of the freight marketplace. It binds
// and validates requests, calls the command and query handlers and renders
// their results and errors as JSON.
package http

import (
	"log/slog"
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases the server calls.
type Handlers struct {
	CreateLoad    commands.CreateLoadCommandHandler
	UpdateLoad    commands.UpdateLoadCommandHandler
	DeleteLoad    commands.DeleteLoadCommandHandler
	CreateBooking commands.CreateBookingCommandHandler
	UpdateBooking commands.UpdateBookingCommandHandler
	DeleteBooking commands.DeleteBookingCommandHandler

	GetLoad      queries.GetLoadQueryHandler
	ListLoads    queries.ListLoadsQueryHandler
	GetBooking   queries.GetBookingQueryHandler
	ListBookings queries.ListBookingsQueryHandler
}

// Server implements ServerInterface on top of the application handlers.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// CreateLoad handles POST /load. The load is always created POSTED.
func (s *Server) CreateLoad(ctx echo.Context) error {
	var req LoadRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateLoadCommand(kernel.NewUUID(), req.fields())
	if err != nil {
		return err
	}

	created, err := s.handlers.CreateLoad.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx.Request().Context(), "load created",
		"load_id", created.ID().String(), "shipper_id", created.ShipperID())
	return ctx.JSON(http.StatusCreated, newLoadResponse(queries.NewLoadResponse(created)))
}

func (s *Server) ListLoads(ctx echo.Context, params ListLoadsParams) error {
	query, err := queries.NewListLoadsQuery(
		deref(params.ShipperID),
		deref(params.TruckType),
		deref(params.Status),
		deref(params.LoadingPoint),
		deref(params.UnloadingPoint),
	)
	if err != nil {
		return err
	}

	loads, err := s.handlers.ListLoads.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]LoadResponse, len(loads))
	for i, l := range loads {
		response[i] = newLoadResponse(l)
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) GetLoad(ctx echo.Context, loadID string) error {
	id, err := kernel.UUIDFromString(loadID)
	if err != nil {
		return err
	}
	query, err := queries.NewGetLoadQuery(id)
	if err != nil {
		return err
	}

	l, err := s.handlers.GetLoad.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newLoadResponse(l))
}

// UpdateLoad handles PUT /load/{loadId}. Every field is overwritten; status
// only when the request carries one.
func (s *Server) UpdateLoad(ctx echo.Context, loadID string) error {
	id, err := kernel.UUIDFromString(loadID)
	if err != nil {
		return err
	}

	var req LoadRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateLoadCommand(id, req.fields(), req.Status)
	if err != nil {
		return err
	}

	updated, err := s.handlers.UpdateLoad.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newLoadResponse(queries.NewLoadResponse(updated)))
}

func (s *Server) DeleteLoad(ctx echo.Context, loadID string) error {
	id, err := kernel.UUIDFromString(loadID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteLoadCommand(id)
	if err != nil {
		return err
	}

	if err = s.handlers.DeleteLoad.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateBooking handles POST /booking and marks the load BOOKED.
func (s *Server) CreateBooking(ctx echo.Context) error {
	var req BookingRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	loadID, err := kernel.UUIDFromString(req.LoadID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateBookingCommand(
		kernel.NewUUID(),
		loadID,
		terms(req.TransporterID, req.ProposedRate, req.Comment),
		req.Status,
		req.RequestedAt,
	)
	if err != nil {
		return err
	}

	created, err := s.handlers.CreateBooking.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, newBookingResponse(queries.NewBookingResponse(created)))
}

func (s *Server) ListBookings(ctx echo.Context, params ListBookingsParams) error {
	query, err := queries.NewListBookingsQuery(
		deref(params.TransporterID),
		deref(params.ShipperID),
		deref(params.Status),
	)
	if err != nil {
		return err
	}

	bookings, err := s.handlers.ListBookings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		response[i] = newBookingResponse(b)
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) GetBooking(ctx echo.Context, bookingID string) error {
	id, err := kernel.UUIDFromString(bookingID)
	if err != nil {
		return err
	}
	query, err := queries.NewGetBookingQuery(id)
	if err != nil {
		return err
	}

	b, err := s.handlers.GetBooking.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newBookingResponse(b))
}

func (s *Server) UpdateBooking(ctx echo.Context, bookingID string) error {
	id, err := kernel.UUIDFromString(bookingID)
	if err != nil {
		return err
	}

	var req BookingUpdateRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateBookingCommand(id, terms(req.TransporterID, req.ProposedRate, req.Comment), req.Status)
	if err != nil {
		return err
	}

	updated, err := s.handlers.UpdateBooking.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newBookingResponse(queries.NewBookingResponse(updated)))
}

// DeleteBooking handles DELETE /booking/{bookingId} and marks the load CANCELLED.
func (s *Server) DeleteBooking(ctx echo.Context, bookingID string) error {
	id, err := kernel.UUIDFromString(bookingID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteBookingCommand(id)
	if err != nil {
		return err
	}

	if err = s.handlers.DeleteBooking.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

func bindAndValidate(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return err
	}
	return ctx.Validate(req)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
