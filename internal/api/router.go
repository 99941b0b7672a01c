package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/userdir/user-directory-api/docs"
	"github.com/userdir/user-directory-api/internal/api/handler"
	"github.com/userdir/user-directory-api/internal/api/middleware"
	"github.com/userdir/user-directory-api/internal/core/ports"
	"github.com/userdir/user-directory-api/internal/core/service"
	"github.com/userdir/user-directory-api/internal/pkg/config"
)

// Dependencies carries everything the router needs, passed explicitly by the
// composition root. Mongo and Redis are optional: when nil, the readiness
// probe skips them and the rate limiter is not installed, which is how the
// end-to-end tests run the full surface against an in-memory repository.
type Dependencies struct {
	Users  ports.UserRepository
	Mongo  *mongo.Database
	Redis  *redis.Client
	Logger zerolog.Logger
	Config *config.Config
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	cfg := deps.Config

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("userdir"))

	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	authService := service.NewAuthService(deps.Users, hasher, tokens, deps.Logger)
	userService := service.NewUserService(deps.Users, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	healthHandler := handler.NewHealthHandler(deps.Mongo, deps.Redis)

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "user-directory-api",
			"docs":    "/swagger/index.html",
		})
	})

	auth := e.Group("/auth")
	if deps.Redis != nil {
		auth.Use(middleware.RateLimit(deps.Redis, middleware.RateLimitConfig{
			Window: cfg.RateLimit.Window,
			Max:    cfg.RateLimit.Max,
		}, deps.Logger))
	}
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	users := e.Group("/users", middleware.Auth(tokens, deps.Users))
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.POST("/:id/:newStatus", userHandler.ChangeStatus)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
