package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ListLoadsParams defines parameters for ListLoads.
type ListLoadsParams struct {
	ShipperID      *string
	TruckType      *string
	Status         *string
	LoadingPoint   *string
	UnloadingPoint *string
}

// ListBookingsParams defines parameters for ListBookings.
type ListBookingsParams struct {
	TransporterID *string
	ShipperID     *string
	Status        *string
}

// ServerInterface lists the operations of openapi.yaml.
type ServerInterface interface {
	// (POST /load)
	CreateLoad(ctx echo.Context) error
	// (GET /load)
	ListLoads(ctx echo.Context, params ListLoadsParams) error
	// (GET /load/{loadId})
	GetLoad(ctx echo.Context, loadID string) error
	// (PUT /load/{loadId})
	UpdateLoad(ctx echo.Context, loadID string) error
	// (DELETE /load/{loadId})
	DeleteLoad(ctx echo.Context, loadID string) error

	// (POST /booking)
	CreateBooking(ctx echo.Context) error
	// (GET /booking)
	ListBookings(ctx echo.Context, params ListBookingsParams) error
	// (GET /booking/{bookingId})
	GetBooking(ctx echo.Context, bookingID string) error
	// (PUT /booking/{bookingId})
	UpdateBooking(ctx echo.Context, bookingID string) error
	// (DELETE /booking/{bookingId})
	DeleteBooking(ctx echo.Context, bookingID string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) CreateLoad(ctx echo.Context) error {
	return w.Handler.CreateLoad(ctx)
}

func (w *ServerInterfaceWrapper) ListLoads(ctx echo.Context) error {
	var params ListLoadsParams

	for name, dst := range map[string]**string{
		"shipperId":      &params.ShipperID,
		"truckType":      &params.TruckType,
		"status":         &params.Status,
		"loadingPoint":   &params.LoadingPoint,
		"unloadingPoint": &params.UnloadingPoint,
	} {
		if err := bindOptionalQuery(ctx, name, dst); err != nil {
			return err
		}
	}

	return w.Handler.ListLoads(ctx, params)
}

func (w *ServerInterfaceWrapper) GetLoad(ctx echo.Context) error {
	loadID, err := bindPath(ctx, "loadId")
	if err != nil {
		return err
	}
	return w.Handler.GetLoad(ctx, loadID)
}

func (w *ServerInterfaceWrapper) UpdateLoad(ctx echo.Context) error {
	loadID, err := bindPath(ctx, "loadId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateLoad(ctx, loadID)
}

func (w *ServerInterfaceWrapper) DeleteLoad(ctx echo.Context) error {
	loadID, err := bindPath(ctx, "loadId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteLoad(ctx, loadID)
}

func (w *ServerInterfaceWrapper) CreateBooking(ctx echo.Context) error {
	return w.Handler.CreateBooking(ctx)
}

func (w *ServerInterfaceWrapper) ListBookings(ctx echo.Context) error {
	var params ListBookingsParams

	for name, dst := range map[string]**string{
		"transporterId": &params.TransporterID,
		"shipperId":     &params.ShipperID,
		"status":        &params.Status,
	} {
		if err := bindOptionalQuery(ctx, name, dst); err != nil {
			return err
		}
	}

	return w.Handler.ListBookings(ctx, params)
}

func (w *ServerInterfaceWrapper) GetBooking(ctx echo.Context) error {
	bookingID, err := bindPath(ctx, "bookingId")
	if err != nil {
		return err
	}
	return w.Handler.GetBooking(ctx, bookingID)
}

func (w *ServerInterfaceWrapper) UpdateBooking(ctx echo.Context) error {
	bookingID, err := bindPath(ctx, "bookingId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateBooking(ctx, bookingID)
}

func (w *ServerInterfaceWrapper) DeleteBooking(ctx echo.Context) error {
	bookingID, err := bindPath(ctx, "bookingId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteBooking(ctx, bookingID)
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each operation to router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.POST("/load", w.CreateLoad)
	router.GET("/load", w.ListLoads)
	router.GET("/load/:loadId", w.GetLoad)
	router.PUT("/load/:loadId", w.UpdateLoad)
	router.DELETE("/load/:loadId", w.DeleteLoad)

	router.POST("/booking", w.CreateBooking)
	router.GET("/booking", w.ListBookings)
	router.GET("/booking/:bookingId", w.GetBooking)
	router.PUT("/booking/:bookingId", w.UpdateBooking)
	router.DELETE("/booking/:bookingId", w.DeleteBooking)
}

func bindPath(ctx echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return value, nil
}

func bindOptionalQuery(ctx echo.Context, name string, dst **string) error {
	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}
