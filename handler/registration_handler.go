package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"registration-form-app/dto/req"
	"registration-form-app/dto/res"
	"registration-form-app/usecase"
	"registration-form-app/validation"
)

var supportedLanguages = []string{"da", "en"}

type RegistrationHandler struct {
	usecase.RegistrationUsecase
	*logrus.Logger
}

func NewRegistrationHandler(registrationUsecase usecase.RegistrationUsecase, logger *logrus.Logger) *RegistrationHandler {
	return &RegistrationHandler{RegistrationUsecase: registrationUsecase, Logger: logger}
}

func (handler *RegistrationHandler) Register(ctx *fiber.Ctx) error {
	payload, err := handler.parse(ctx)
	if err != nil {
		return err
	}

	registrationResponse, err := handler.RegistrationUsecase.Register(ctx.UserContext(), payload)
	if err != nil {
		if fieldErrs, ok := asFieldErrors(err); ok {
			return validationFailed(ctx, fieldErrs)
		}
		handler.Logger.WithError(err).Errorf("Failed to register: %v", err)
		return err
	}

	response := res.CommonResponse[res.RegistrationResponse]{
		Message:    "Successfully registered",
		StatusCode: fiber.StatusCreated,
		Data:       registrationResponse,
	}
	handler.Logger.Infof("Success register with id: %s", registrationResponse.ID)
	return ctx.Status(fiber.StatusCreated).JSON(response)
}

// Validate reports field errors without submitting anything.
func (handler *RegistrationHandler) Validate(ctx *fiber.Ctx) error {
	payload, err := handler.parse(ctx)
	if err != nil {
		return err
	}

	if err := handler.RegistrationUsecase.Check(ctx.UserContext(), payload); err != nil {
		if fieldErrs, ok := asFieldErrors(err); ok {
			return validationFailed(ctx, fieldErrs)
		}
		handler.Logger.WithError(err).Errorf("Failed to validate registration: %v", err)
		return err
	}

	response := res.CommonResponse[res.ValidationResponse]{
		Message:    "Registration is valid",
		StatusCode: fiber.StatusOK,
		Data:       res.ValidationResponse{Valid: true},
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *RegistrationHandler) parse(ctx *fiber.Ctx) (*req.RegistrationRequest, error) {
	payload := new(req.RegistrationRequest)
	if err := ctx.BodyParser(payload); err != nil {
		handler.Logger.WithError(err).Warn("Failed to parse registration payload")
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	// without the header the configured locale applies
	if ctx.Get(fiber.HeaderAcceptLanguage) != "" {
		payload.Locale = ctx.AcceptsLanguages(supportedLanguages...)
	}
	return payload, nil
}

func asFieldErrors(err error) (validation.FieldErrors, bool) {
	var fieldErrs validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs, true
	}
	return nil, false
}

func validationFailed(ctx *fiber.Ctx, fieldErrs validation.FieldErrors) error {
	return ctx.Status(fiber.StatusUnprocessableEntity).JSON(res.ErrorResponse{
		Status:     fiber.ErrUnprocessableEntity.Message,
		StatusCode: fiber.StatusUnprocessableEntity,
		Error:      fieldErrs,
	})
}
