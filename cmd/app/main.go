package main

import (
	"context"
	"errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"mapfuture/cmd/fx/config_fx"
	"mapfuture/cmd/fx/controllers_fx"
	"mapfuture/cmd/fx/logger_fx"
	"mapfuture/cmd/fx/travel_plan_fx"
	"mapfuture/internal/api/controllers"
	"mapfuture/internal/config"
	"mapfuture/pkg/middleware"
	"net"
	"net/http"
)

func main() {
	fx.New(Options()).Run()
}

// Options is the full application graph.
func Options() fx.Option {
	return fx.Options(
		config_fx.Module,
		logger_fx.Module,
		travel_plan_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Provide(ProvideServer),
		fx.Invoke(StartServer),
	)
}

func ProvideServer(cfg config.Config, engine *gin.Engine) *http.Server {
	return &http.Server{
		Addr:    cfg.Addr(),
		Handler: engine,
	}
}

func StartServer(lc fx.Lifecycle, srv *http.Server, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				log.Info("Starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg config.Config,
	log *zap.Logger,
	travelPlanController *controllers.TravelPlanController,
	healthController *controllers.HealthController) *gin.Engine {

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log.Named("http")))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, travelPlanController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	travelPlanController *controllers.TravelPlanController,
	healthController *controllers.HealthController) {

	appGroup := r.Group("/app")
	appGroup.POST("/travel-plan", travelPlanController.CreateTravelPlanHandler)

	r.GET("/health", healthController.HealthHandler)
}
