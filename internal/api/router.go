package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yourplaces/places-api/internal/api/handler"
	"github.com/yourplaces/places-api/internal/api/middleware"
	"github.com/yourplaces/places-api/internal/core/ports"
)

// Deps carries the collaborators the router wires into handlers.
type Deps struct {
	DB        *mongo.Database
	Places    ports.PlaceService
	Users     ports.UserService
	Files     ports.FileStore
	JWTSecret string
	UploadDir string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Middleware is applied as an ordered list of stages; handlers forward
// failures to the terminal error handler rather than writing responses
// themselves.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware, in order ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderXRequestedWith,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
		},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
	}))
	e.Use(echoprometheus.NewMiddleware("places"))

	// --- Handlers ---
	placeHandler := handler.NewPlaceHandler(deps.Places, deps.Files)
	userHandler := handler.NewUserHandler(deps.Users, deps.Files)
	auth := middleware.Auth(deps.JWTSecret)

	// --- Place routes ---
	places := e.Group("/api/places")
	places.GET("/:placeId", placeHandler.Get)
	places.GET("/user/:userId", placeHandler.ListByUser)
	places.POST("", placeHandler.Create, auth)
	places.PATCH("/:placeId", placeHandler.Update, auth)
	places.DELETE("/:placeId", placeHandler.Delete, auth)

	// --- User routes ---
	users := e.Group("/api/users")
	users.GET("", userHandler.List)
	users.GET("/:userId", userHandler.Get)
	users.POST("/signup", userHandler.Signup)
	users.POST("/login", userHandler.Login)

	// --- Static uploads ---
	e.Static("/uploads/images", deps.UploadDir)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
