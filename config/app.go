package config

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"registration-form-app/config/common"
	"registration-form-app/config/logger"
	"registration-form-app/handler"
	"registration-form-app/middleware"
	"registration-form-app/routes"
	"registration-form-app/usecase"
	"registration-form-app/validation"
)

type AppConfig struct {
	*fiber.App
	*validation.Validator
	*logrus.Logger
	AppLogger *logger.AppLogger
	*middleware.Middleware
	Submitter usecase.Submitter
}

func RunServer() {
	newConfig := common.NewViper()
	log := NewLogger()
	app := NewFiber(newConfig, log)
	appLogger := logger.NewLogger(newConfig.GetLogDir())
	newValidator := NewValidator(newConfig)
	newMiddleware := middleware.NewMiddleware(newConfig, log)

	app.Use(cors.New(cors.Config{
		AllowOrigins: newConfig.GetCorsConfig(),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Accept-Language, X-Request-ID",
	}))

	App(&AppConfig{
		App:        app,
		Validator:  newValidator,
		Logger:     log,
		AppLogger:  appLogger,
		Middleware: newMiddleware,
	})

	if err := app.Listen(newConfig.GetServerAddress()); err != nil {
		log.WithError(err).Errorf("Failed to start server: %v", err)
	}
}

func App(aC *AppConfig) {
	newRegistrationUsecase := usecase.NewRegistrationUsecase(aC.Validator, aC.Submitter, aC.AppLogger)

	newRegistrationHandler := handler.NewRegistrationHandler(newRegistrationUsecase, aC.Logger)

	route := routes.ConfigRoute{
		App:                 aC.App,
		Middleware:          aC.Middleware,
		RegistrationHandler: newRegistrationHandler,
	}
	route.GetRoute()
}
