package res

type RegistrationResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"fornavn"`
	LastName    string `json:"efternavn"`
	Email       string `json:"email"`
	BirthDate   string `json:"foedselsdato"`
	Age         int    `json:"age"`
	PhoneNumber string `json:"telefonnummer,omitempty"`
	SubmittedAt string `json:"submittedAt"`
}

type ValidationResponse struct {
	Valid bool `json:"valid"`
}
