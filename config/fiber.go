package config

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"

	"registration-form-app/config/common"
	"registration-form-app/dto/res"
)

func NewFiber(cfg *common.Config, log *logrus.Logger) *fiber.App {
	appName := cfg.GetAppConfig()
	return fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		StrictRouting: true,
		AppName:       appName,
		ErrorHandler:  NewErrorHandler(log),
	})
}

// NewErrorHandler renders every unhandled error as res.ErrorResponse.
func NewErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		} else {
			log.WithError(err).Error("Unhandled request error")
		}

		return ctx.Status(code).JSON(res.ErrorResponse{
			Status:     utils.StatusMessage(code),
			StatusCode: code,
			Error:      message,
		})
	}
}
