package router

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"cinereserve/internal/auth"
	apperrors "cinereserve/internal/errors"
	"cinereserve/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	reservationHandler *handler.ReservationHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Secured routes (require a Bearer session token)
	secured := api.Group("", AuthGate(jwtService))

	secured.POST("/reservations", reservationHandler.Create)
	secured.GET("/reservations", reservationHandler.List)
}

// AuthGate returns middleware that authenticates requests with a Bearer
// session token. A missing or non-Bearer Authorization header yields 401;
// a present token that fails verification yields 400. On success the
// verified *auth.Claims are stored under the "user" context key.
func AuthGate(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.Verify(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if !hasBearerToken(c.Request()) {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "access denied",
					Code:  "ACCESS_DENIED",
				})
			}
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
				Error: apperrors.ErrInvalidToken.Error(),
				Code:  "INVALID_TOKEN",
			})
		},
	})
}

// hasBearerToken reports whether the request carries a non-empty Bearer value.
func hasBearerToken(r *http.Request) bool {
	header := r.Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return false
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")) != ""
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
