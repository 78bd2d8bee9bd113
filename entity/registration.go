package entity

import "time"

type Registration struct {
	BaseEntity
	FirstName    string    `json:"fornavn"`
	LastName     string    `json:"efternavn"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	BirthDate    time.Time `json:"foedselsdato"`
	Age          int       `json:"age"`
	PhoneNumber  string    `json:"telefonnummer,omitempty"`
	PhoneE164    string    `json:"phoneE164,omitempty"`
}
