package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"registration-form-app/config/logger"
	"registration-form-app/dto/req"
	"registration-form-app/dto/res"
	"registration-form-app/entity"
	"registration-form-app/util"
	"registration-form-app/validation"
)

type RegistrationUsecaseImpl struct {
	*validation.Validator
	Submitter
	Log *logger.AppLogger
	now func() time.Time
}

func NewRegistrationUsecase(validator *validation.Validator, submitter Submitter, logger *logger.AppLogger) RegistrationUsecase {
	if submitter == nil {
		submitter = NewLogSubmitter(logger)
	}
	return &RegistrationUsecaseImpl{Validator: validator, Submitter: submitter, Log: logger, now: time.Now}
}

func (uc *RegistrationUsecaseImpl) Register(ctx context.Context, request *req.RegistrationRequest) (res.RegistrationResponse, error) {
	uc.Log.Http.Info.Info().Msg("Register started")

	registration, err := uc.validate(request)
	if err != nil {
		return res.RegistrationResponse{}, err
	}

	// mapping to entity
	hashPassword, err := util.HashPassword(registration.Password)
	if err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to hash password")
		return res.RegistrationResponse{}, fmt.Errorf("hash password: %w", err)
	}
	newRegistration := &entity.Registration{
		FirstName:    registration.FirstName,
		LastName:     registration.LastName,
		Email:        registration.Email,
		PasswordHash: hashPassword,
		BirthDate:    registration.BirthDate,
		Age:          registration.Age,
		PhoneNumber:  registration.PhoneNumber,
		PhoneE164:    registration.PhoneE164,
	}
	newRegistration.BeforeCreate(uc.now())

	if err := uc.Submitter.Submit(ctx, newRegistration); err != nil {
		uc.Log.Http.Error.Error().
			Err(err).
			Str("registrationId", newRegistration.ID).
			Msg("Failed to submit registration")
		return res.RegistrationResponse{}, fmt.Errorf("submit registration: %w", err)
	}

	uc.Log.Http.Info.Info().
		Str("registrationId", newRegistration.ID).
		Msg("Register completed")

	// mapping response
	return res.RegistrationResponse{
		ID:          newRegistration.ID,
		FirstName:   newRegistration.FirstName,
		LastName:    newRegistration.LastName,
		Email:       newRegistration.Email,
		BirthDate:   newRegistration.BirthDate.Format(time.DateOnly),
		Age:         newRegistration.Age,
		PhoneNumber: newRegistration.PhoneNumber,
		SubmittedAt: newRegistration.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (uc *RegistrationUsecaseImpl) Check(ctx context.Context, request *req.RegistrationRequest) error {
	uc.Log.Http.Trace.Trace().Msg("Checking registration input")
	_, err := uc.validate(request)
	return err
}

func (uc *RegistrationUsecaseImpl) validate(request *req.RegistrationRequest) (validation.Registration, error) {
	registration, err := uc.Validator.ForLocale(request.Locale).Validate(request.ToInput())
	if err != nil {
		var fieldErrs validation.FieldErrors
		if errors.As(err, &fieldErrs) {
			uc.Log.Http.Warning.Warn().
				Int("fields", len(fieldErrs)).
				Msg("Registration rejected")
		} else {
			uc.Log.Http.Error.Error().Err(err).Msg("Failed to validate registration")
		}
		return validation.Registration{}, err
	}
	return registration, nil
}
