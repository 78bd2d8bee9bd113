package usecase

import (
	"context"

	"registration-form-app/dto/req"
	"registration-form-app/dto/res"
	"registration-form-app/entity"
)

type RegistrationUsecase interface {
	Register(ctx context.Context, request *req.RegistrationRequest) (res.RegistrationResponse, error)
	Check(ctx context.Context, request *req.RegistrationRequest) error
}

// Submitter receives every accepted registration.
type Submitter interface {
	Submit(ctx context.Context, registration *entity.Registration) error
}

type SubmitterFunc func(ctx context.Context, registration *entity.Registration) error

func (f SubmitterFunc) Submit(ctx context.Context, registration *entity.Registration) error {
	return f(ctx, registration)
}
