package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"github.com/tsingjyujing/langsel/config"
	"github.com/tsingjyujing/langsel/controller"
	"github.com/tsingjyujing/langsel/utils"
)

// newEchoServer wires routes and middleware for the detection API.
func newEchoServer(envelope *config.Envelope, c *controller.Controller) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true

	echoServer.Use(echoprometheus.NewMiddleware("langsel"))
	echoServer.GET("/metrics", echoprometheus.NewHandler())
	echoServer.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	echoServer.Use(middleware.CORS()) // Enable CORS for all origins
	echoServer.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	apiGroup := echoServer.Group("/api/v1")
	apiGroup.Use(utils.EchoRequestLogger())

	// Apply Bearer Token authentication if tokens are configured
	if tokens := envelope.Server.Tokens; len(tokens) > 0 {
		logger.Infof("Bearer token authentication enabled with %d token(s)", len(tokens))
		apiGroup.Use(utils.CreateBearerTokenMiddleware(tokens))
	} else {
		logger.Warn("Bearer token authentication disabled - no tokens configured")
	}

	apiGroup.POST("/detect", c.Detect)
	apiGroup.POST("/detect/batch", c.DetectBatch)
	apiGroup.POST("/extract", c.Extract)
	apiGroup.GET("/languages", c.ListLanguages)
	return echoServer
}

func NewServerCommand() *cobra.Command {
	serverCommand := &cobra.Command{
		Use:   "server",
		Short: "Starting HTTP detection server",
		Run: func(cmd *cobra.Command, args []string) {
			envelope, err := readConfig(cmd)
			if err != nil {
				logger.WithError(err).Fatal("Failed to load configuration")
			}
			pipeline, err := envelope.NewPipeline()
			if err != nil {
				logger.WithError(err).Fatal("Failed to create detection pipeline")
			}
			c, err := controller.NewController(pipeline)
			if err != nil {
				logger.WithError(err).Fatal("Failed to create controller")
			}
			echoServer := newEchoServer(envelope, c)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			go func() {
				addr := envelope.Server.Address
				logger.WithField("max_chars", envelope.Detection.MaxChars).
					WithField("normalization", envelope.Detection.Normalization).
					Infof("Starting server on %s", addr)
				if err := echoServer.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.WithError(err).Error("Server start error")
					stop()
				}
			}()

			// Wait for interrupt signal to gracefully shutdown the server with a timeout
			<-ctx.Done()
			stop()
			logger.Info("Shutting down server gracefully, press Ctrl+C again to force")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := echoServer.Shutdown(shutdownCtx); err != nil {
				logger.WithError(err).Error("Server forced to shutdown")
			}
			logger.Info("Server stopped gracefully")
		},
	}
	serverCommand.Flags().String("address", ":8080", "Address to listen on")
	addDetectionFlags(serverCommand)
	return serverCommand
}
