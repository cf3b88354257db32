package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/tsingjyujing/langsel/text"
)

// EchoHandleError maps err to a JSON response, 400 for invalid input and 500 otherwise.
func EchoHandleError(echoCtx echo.Context, err error) error {
	if errors.Is(err, text.ErrInvalidInput) {
		return EchoHandleGenericError(echoCtx, err, http.StatusBadRequest)
	}
	return EchoHandleInternalError(echoCtx, err)
}

func EchoHandleGenericError(echoCtx echo.Context, err error, status int) error {
	Logger.WithError(err).WithField("status", status).Error("Error handling request")
	return echoCtx.JSON(status, map[string]string{"status": err.Error()})
}

func EchoHandleInternalError(echoCtx echo.Context, err error) error {
	return EchoHandleGenericError(echoCtx, err, http.StatusInternalServerError)
}

func EchoJsonResponse(echoCtx echo.Context, data any, status int) error {
	jsonString, err := json.Marshal(data)
	if err != nil {
		return EchoHandleInternalError(echoCtx, err)
	}
	return echoCtx.JSONBlob(status, jsonString)
}

// EchoRequestLogger logs every request through Logger.
func EchoRequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := Logger.WithFields(logrus.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency,
				"request_id": v.RequestID,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Warn("Request failed")
				return nil
			}
			entry.Info("Request handled")
			return nil
		},
	})
}
