package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "quickquote/docs" // swagger spec
	"quickquote/internal/adapter/export/excel"
	"quickquote/internal/adapter/export/pdf"
	"quickquote/internal/adapter/http/handlers"
	"quickquote/internal/adapter/http/middleware"
	"quickquote/internal/adapter/identity"
	"quickquote/internal/adapter/persistence/repository"
	"quickquote/internal/config"
	"quickquote/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Run builds the adapters for cfg and serves until ctx is done.
func Run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	deps, cleanup, err := BuildDependencies(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           NewRouter(cfg, log, deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("[http] listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info().Msg("[http] shutting down")
	return srv.Shutdown(shutdownCtx)
}

// NewRouter wires use cases and handlers on top of deps.
func NewRouter(cfg *config.Config, log zerolog.Logger, deps Dependencies) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	setMiddlewares(router, cfg, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, log, deps)
	return router
}

func getRoutes(router *gin.Engine, log zerolog.Logger, deps Dependencies) {
	rateRepo := repository.NewRateCardDocumentRepository(deps.Documents, log)
	quoteRepo := repository.NewQuoteDocumentRepository(deps.Documents, log)
	acting := identity.ContextProvider{}

	rateUseCase := usecase.NewRateCardUseCase(rateRepo, acting, log)
	quoteUseCase := usecase.NewQuoteUseCase(rateRepo, quoteRepo, deps.Blobs, acting, log)

	rateHandler := handlers.NewRateCardHandler(rateUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, excel.NewGenerator(), pdf.NewGenerator(), log)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.Auth(deps.Verifier, log))
	addRateRoutes(protected, rateHandler)
	addQuoteRoutes(protected, quoteHandler)
}

func setMiddlewares(router *gin.Engine, cfg *config.Config, log zerolog.Logger) {
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))

	corsCfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	switch {
	case len(cfg.HTTP.CORSAllowedOrigins) > 0:
		corsCfg.AllowOrigins = cfg.HTTP.CORSAllowedOrigins
	case cfg.IsDevelopment():
		corsCfg.AllowAllOrigins = true
	default:
		return
	}
	router.Use(cors.New(corsCfg))
}
