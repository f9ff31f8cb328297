package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gin-shoplist/constants"
	"gin-shoplist/controllers"
	"gin-shoplist/infra"
	"gin-shoplist/middlewares"
	"gin-shoplist/repositories"
	"gin-shoplist/security"
	"gin-shoplist/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type application struct {
	store        *repositories.Store
	tokenService services.ITokenService
	userService  services.IUserService
	listService  services.IShopListService
	itemService  services.IShopItemService

	loginController    controllers.ILoginController
	userController     controllers.IUserController
	shopperController  controllers.IShopperController
	shopListController controllers.IShopListController
	shopItemController controllers.IShopItemController
}

func newApplication(db *gorm.DB, cfg *infra.Config) *application {
	store := repositories.NewStore(db)
	hasher := security.NewBcryptHasher(cfg.BcryptCost)

	authService := services.NewAuthenticationService(store.Users, hasher)
	tokenService := services.NewTokenService(authService, services.TokenConfig{
		Secret: cfg.JWTSecret,
		TTL:    cfg.TokenTTL(),
	})
	userService := services.NewUserService(store, hasher)
	listService := services.NewShopListService(store)
	itemService := services.NewShopItemService(store)
	shopperService := services.NewShopperService(store)

	return &application{
		store:        store,
		tokenService: tokenService,
		userService:  userService,
		listService:  listService,
		itemService:  itemService,

		loginController:    controllers.NewLoginController(tokenService),
		userController:     controllers.NewUserController(userService),
		shopperController:  controllers.NewShopperController(shopperService),
		shopListController: controllers.NewShopListController(listService, itemService),
		shopItemController: controllers.NewShopItemController(itemService, listService),
	}
}

func setupRouter(app *application, cfg *infra.Config, logger zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middlewares.RequestLogger(logger))
	r.Use(gin.Recovery())
	if origins := cfg.GetCORSAllowedOrigins(); len(origins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = origins
		corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
		r.Use(cors.New(corsConfig))
	} else {
		r.Use(cors.Default())
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middlewares.AuthMiddleware(app.tokenService)
	optionalAuth := middlewares.OptionalAuthMiddleware(app.tokenService)
	adminOnly := middlewares.RoleBasedAccessControl(constants.RoleAdmin)

	api := r.Group("/api")
	api.POST("/login", app.loginController.Login)

	api.GET("/users", requireAuth, adminOnly, app.userController.FindAll)
	userRouter := api.Group("/user", requireAuth)
	userRouter.POST("", adminOnly, app.userController.Create)
	userRouter.GET("/:id", app.userController.FindById)
	userRouter.PUT("/:id", adminOnly, app.userController.Update)
	userRouter.DELETE("/:id", adminOnly, app.userController.Delete)

	api.GET("/shopper", optionalAuth, app.shopperController.GetShopper)

	shopListRouter := api.Group("/shoplist")
	shopListRouter.GET("/:id", optionalAuth, app.shopListController.FindById)
	shopListRouter.GET("/:id/shopitems", optionalAuth, app.shopListController.FindItems)
	shopListRouter.POST("", requireAuth, app.shopListController.Create)
	shopListRouter.PUT("/:id", requireAuth, app.shopListController.Update)
	shopListRouter.DELETE("/:id", requireAuth, app.shopListController.Delete)

	shopItemRouter := api.Group("/shopitem")
	shopItemRouter.GET("/:id", optionalAuth, app.shopItemController.FindById)
	shopItemRouter.POST("", requireAuth, app.shopItemController.Create)
	shopItemRouter.PUT("/:id", requireAuth, app.shopItemController.Update)
	shopItemRouter.DELETE("/:id", requireAuth, app.shopItemController.Delete)

	return r
}

func prefill(ctx context.Context, app *application, cfg *infra.Config) error {
	return services.Prefill(ctx, app.store, app.userService, app.listService, app.itemService, services.PrefillAdmin{
		Email:    cfg.PrefillAdminEmail,
		Name:     cfg.PrefillAdminName,
		Password: cfg.PrefillAdminPassword,
	})
}

func newServer(cfg *infra.Config, handler http.Handler) *http.Server {
	port := cfg.HTTPPort
	if cfg.UseSSL {
		port = cfg.HTTPSPort
	}
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

func main() {
	cfg, err := infra.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	logger := infra.NewLogger(cfg)
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	db, err := infra.SetupDB(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	if cfg.AutoMigrate {
		if err := infra.Migrate(db); err != nil {
			logger.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	app := newApplication(db, cfg)
	if cfg.DBPrefill {
		if err := prefill(context.Background(), app, cfg); err != nil {
			logger.Fatal().Err(err).Msg("Failed to prefill database")
		}
	}

	srv := newServer(cfg, setupRouter(app, cfg, logger))
	go func() {
		var err error
		if cfg.UseSSL {
			logger.Info().Str("addr", srv.Addr).Msg("Starting HTTPS server")
			err = srv.ListenAndServeTLS(cfg.SSLCertFile, cfg.SSLKeyFile)
		} else {
			logger.Info().Str("addr", srv.Addr).Msg("Starting HTTP server")
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	logger.Info().Msg("Server exited")
}
