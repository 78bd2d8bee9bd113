package req

import "registration-form-app/validation"

type RegistrationRequest struct {
	FirstName            string `json:"fornavn"`
	LastName             string `json:"efternavn"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"gentagPassword"`
	BirthDate            string `json:"foedselsdato"`
	PhoneNumber          string `json:"telefonnummer,omitempty"`

	// Locale picks the message language, taken from Accept-Language.
	Locale string `json:"-"`
}

func (r *RegistrationRequest) ToInput() validation.Input {
	return validation.Input{
		FirstName:            r.FirstName,
		LastName:             r.LastName,
		Email:                r.Email,
		Password:             r.Password,
		PasswordConfirmation: r.PasswordConfirmation,
		BirthDate:            r.BirthDate,
		PhoneNumber:          r.PhoneNumber,
	}
}
