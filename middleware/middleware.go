package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"registration-form-app/config/common"
)

const (
	HeaderRequestID = "X-Request-ID"
	LocalRequestID  = "request_id"
)

type Middleware struct {
	*common.Config
	Log *logrus.Logger
}

func NewMiddleware(config *common.Config, logger *logrus.Logger) *Middleware {
	return &Middleware{Config: config, Log: logger}
}

// RequestID keeps the caller's X-Request-ID or assigns a new one.
func (middleware *Middleware) RequestID(c *fiber.Ctx) error {
	rid := c.Get(HeaderRequestID)
	if rid == "" {
		rid = uuid.NewString()
	}
	c.Locals(LocalRequestID, rid)
	c.Set(HeaderRequestID, rid)
	return c.Next()
}

func (middleware *Middleware) AccessLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	if err != nil {
		// let the app error handler set the final status before logging
		if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	rid, _ := c.Locals(LocalRequestID).(string)
	middleware.Log.WithFields(logrus.Fields{
		"request_id": rid,
		"method":     c.Method(),
		"path":       c.Path(),
		"status":     c.Response().StatusCode(),
		"latency":    time.Since(start).String(),
	}).Info("request completed")
	return nil
}
