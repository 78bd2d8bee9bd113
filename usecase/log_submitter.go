package usecase

import (
	"context"
	"time"

	"registration-form-app/config/logger"
	"registration-form-app/entity"
)

// LogSubmitter records accepted registrations in the stream log and sends
// them nowhere else.
type LogSubmitter struct {
	Log *logger.AppLogger
}

func NewLogSubmitter(logger *logger.AppLogger) *LogSubmitter {
	return &LogSubmitter{Log: logger}
}

func (s *LogSubmitter) Submit(_ context.Context, registration *entity.Registration) error {
	s.Log.Http.Stream.Info().
		Str("registrationId", registration.ID).
		Str("fornavn", registration.FirstName).
		Str("efternavn", registration.LastName).
		Str("email", registration.Email).
		Str("foedselsdato", registration.BirthDate.Format(time.DateOnly)).
		Str("telefonnummer", registration.PhoneNumber).
		Str("phoneE164", registration.PhoneE164).
		Msg("Form data")
	return nil
}
