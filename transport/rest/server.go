package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	logger *slog.Logger
	echo   *echo.Echo
}

func New(logger *slog.Logger, players playerUseCase) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 10 * time.Second
	e.Server.IdleTimeout = 30 * time.Second

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(_ echo.Context, values middleware.RequestLoggerValues) error {
			logger.Info("request", "method", values.Method, "uri", values.URI, "status", values.Status, "error", values.Error)
			return nil
		},
	}))

	ping := NewPingHandler()
	player := NewPlayerHandler(logger, players)

	e.GET("/ping", ping.Ping)

	group := e.Group("/players/:id")
	group.GET("/settings", player.GetSettings)
	group.PUT("/settings", player.UpdateSettings)
	group.GET("/score", player.GetScore)
	group.DELETE("/score", player.ResetScore)
	group.GET("/results", player.GetResults)

	return &Server{
		logger: logger,
		echo:   e,
	}
}

func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	that.echo.ServeHTTP(writer, req)
}

// Start serves the API on port until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := that.echo.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown HTTP server", "error", err)
		}
	}()

	if err := that.echo.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
