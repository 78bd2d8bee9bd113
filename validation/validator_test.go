package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

func newTestValidator(t *testing.T, opts ...Option) *Validator {
	t.Helper()
	opts = append([]Option{WithClock(func() time.Time { return today })}, opts...)
	v, err := New(opts...)
	require.NoError(t, err)
	return v
}

func validInput() Input {
	return Input{
		FirstName:            "Mette",
		LastName:             "Jensen",
		Email:                "mette@example.dk",
		Password:             "abcdefg1",
		PasswordConfirmation: "abcdefg1",
		BirthDate:            "1990-05-17",
	}
}

func fieldErrors(t *testing.T, err error) FieldErrors {
	t.Helper()
	var errs FieldErrors
	require.True(t, errors.As(err, &errs), "expected FieldErrors, got %v", err)
	return errs
}

func TestValidate_AcceptsValidInput(t *testing.T) {
	v := newTestValidator(t)

	reg, err := v.Validate(validInput())
	require.NoError(t, err)
	assert.Equal(t, "Mette", reg.FirstName)
	assert.Equal(t, "Jensen", reg.LastName)
	assert.Equal(t, "mette@example.dk", reg.Email)
	assert.Equal(t, time.Date(1990, time.May, 17, 0, 0, 0, 0, time.UTC), reg.BirthDate)
	assert.Equal(t, 36, reg.Age)
	assert.Empty(t, reg.PhoneNumber)
	assert.Empty(t, reg.PhoneE164)
}

func TestValidate_EmptyFirstNameOnlyRejectsFirstName(t *testing.T) {
	v := newTestValidator(t)
	in := validInput()
	in.FirstName = ""

	_, err := v.Validate(in)
	errs := fieldErrors(t, err)
	assert.Equal(t, FieldErrors{FieldFirstName: "Fornavn er påkrævet"}, errs)
}

func TestValidate_EvaluatesEveryFieldIndependently(t *testing.T) {
	v := newTestValidator(t)

	_, err := v.Validate(Input{})
	errs := fieldErrors(t, err)
	assert.Equal(t, FieldErrors{
		FieldFirstName: "Fornavn er påkrævet",
		FieldLastName:  "Efternavn er påkrævet",
		FieldEmail:     "Din emailadresse er ugyldig",
		FieldPassword:  "Password skal være mindst 8 tegn",
		FieldBirthDate: "Ugyldig dato",
	}, errs)
	for field, msg := range errs {
		assert.NotEmpty(t, msg, field)
	}
}

func TestValidate_Email(t *testing.T) {
	v := newTestValidator(t)

	for _, email := range []string{"plain", "no-at.example.dk", "a@", "@example.dk"} {
		in := validInput()
		in.Email = email
		_, err := v.Validate(in)
		assert.Equal(t, "Din emailadresse er ugyldig", fieldErrors(t, err)[FieldEmail], email)
	}
}

func TestValidate_PasswordRules(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name     string
		password string
		want     string
	}{
		{name: "too short", password: "abc", want: "Password skal være mindst 8 tegn"},
		{name: "short with digit", password: "abc1", want: "Password skal være mindst 8 tegn"},
		{name: "no digit", password: "abcdefgh", want: "Password skal indeholde mindst ét tal"},
		{name: "length counts runes", password: "😀😀😀😀1", want: "Password skal være mindst 8 tegn"},
		{name: "eight runes with digit", password: "æøåæøåæ1"},
		{name: "valid", password: "abcdefg1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			in.Password = tt.password
			in.PasswordConfirmation = tt.password

			_, err := v.Validate(in)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			errs := fieldErrors(t, err)
			assert.Equal(t, tt.want, errs[FieldPassword])
			assert.NotContains(t, errs, FieldPasswordConfirmation)
		})
	}
}

func TestValidate_PasswordMismatchAttachesToConfirmation(t *testing.T) {
	v := newTestValidator(t)
	in := validInput()
	in.Password = "abcdefg1"
	in.PasswordConfirmation = "abcdefg2"

	_, err := v.Validate(in)
	errs := fieldErrors(t, err)
	assert.Equal(t, FieldErrors{FieldPasswordConfirmation: "Passwords matcher ikke"}, errs)
}

func TestValidate_MismatchSkippedWhilePasswordInvalid(t *testing.T) {
	v := newTestValidator(t)
	in := validInput()
	in.Password = "short"
	in.PasswordConfirmation = "different"

	_, err := v.Validate(in)
	errs := fieldErrors(t, err)
	assert.Contains(t, errs, FieldPassword)
	assert.NotContains(t, errs, FieldPasswordConfirmation)
}

func TestValidate_MismatchIndependentOfOtherFields(t *testing.T) {
	v := newTestValidator(t)
	in := validInput()
	in.FirstName = ""
	in.PasswordConfirmation = "abcdefg2"

	_, err := v.Validate(in)
	errs := fieldErrors(t, err)
	assert.Len(t, errs, 2)
	assert.Equal(t, "Passwords matcher ikke", errs[FieldPasswordConfirmation])
}

func TestValidate_BirthDateBoundary(t *testing.T) {
	v := newTestValidator(t)

	in := validInput()
	in.BirthDate = "2008-10-19"
	reg, err := v.Validate(in)
	require.NoError(t, err)
	assert.Equal(t, 18, reg.Age)

	in.BirthDate = "2008-10-20"
	_, err = v.Validate(in)
	assert.Equal(t, FieldErrors{FieldBirthDate: "Du skal være mindst 18 år"}, fieldErrors(t, err))
}

func TestValidate_BirthDateMalformed(t *testing.T) {
	v := newTestValidator(t)

	for _, raw := range []string{"", "not a date", "2008-13-40", "19/19/1990"} {
		in := validInput()
		in.BirthDate = raw
		_, err := v.Validate(in)
		assert.Equal(t, "Ugyldig dato", fieldErrors(t, err)[FieldBirthDate], raw)
	}
}

func TestValidate_BirthDateLayouts(t *testing.T) {
	v := newTestValidator(t)

	for _, raw := range []string{"1990-05-17", "1990-05-17T08:30:00Z", "17-05-1990", "17/05/1990"} {
		in := validInput()
		in.BirthDate = raw
		reg, err := v.Validate(in)
		require.NoError(t, err, raw)
		assert.Equal(t, time.Date(1990, time.May, 17, 0, 0, 0, 0, time.UTC), reg.BirthDate, raw)
	}
}

func TestValidate_UsesCurrentClockOnEveryCall(t *testing.T) {
	now := time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC)
	v, err := New(WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	in := validInput()
	in.BirthDate = "2008-10-19"

	_, err = v.Validate(in)
	assert.Contains(t, fieldErrors(t, err), FieldBirthDate)

	now = now.AddDate(0, 0, 1)
	_, err = v.Validate(in)
	assert.NoError(t, err)
}

func TestValidate_PhoneNumber(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{name: "omitted", phone: ""},
		{name: "too short", phone: "123", wantErr: true},
		{name: "international with space", phone: "+45 12345678"},
		{name: "eight digits", phone: "12345678"},
		{name: "whitespace counts toward length", phone: "1 2 3 4 5"},
		{name: "letters", phone: "1234abcd", wantErr: true},
		{name: "too long", phone: "1234567890123456", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			in.PhoneNumber = tt.phone

			_, err := v.Validate(in)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, FieldErrors{FieldPhoneNumber: "Du skal have mindst 8 cifre i dit telefonnummer"}, fieldErrors(t, err))
		})
	}
}

func TestValidate_NormalizesPhoneToE164(t *testing.T) {
	v := newTestValidator(t)
	in := validInput()
	in.PhoneNumber = "+45 32 12 34 56"

	reg, err := v.Validate(in)
	require.NoError(t, err)
	assert.Equal(t, "+45 32 12 34 56", reg.PhoneNumber)
	assert.Equal(t, "+4532123456", reg.PhoneE164)
}

func TestValidate_Idempotent(t *testing.T) {
	v := newTestValidator(t)
	in := validInput()
	in.Email = "broken"
	in.PasswordConfirmation = "abcdefg9"

	_, first := v.ValidateAt(in, today)
	_, second := v.ValidateAt(in, today)
	assert.Equal(t, first, second)

	in = validInput()
	a, errA := v.ValidateAt(in, today)
	b, errB := v.ValidateAt(in, today)
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a, b)
}

func TestValidate_EnglishLocale(t *testing.T) {
	v := newTestValidator(t, WithLocale("en"))
	assert.Equal(t, "en", v.Locale())

	in := validInput()
	in.LastName = ""
	_, err := v.Validate(in)
	assert.Equal(t, FieldErrors{FieldLastName: "Last name is required"}, fieldErrors(t, err))
}

func TestValidate_UnknownLocaleFallsBackToDanish(t *testing.T) {
	v := newTestValidator(t, WithLocale("fr"))
	assert.Equal(t, "da", v.Locale())

	in := validInput()
	in.LastName = ""
	_, err := v.Validate(in)
	assert.Equal(t, "Efternavn er påkrævet", fieldErrors(t, err)[FieldLastName])
}

func TestForLocale(t *testing.T) {
	v := newTestValidator(t)

	assert.Equal(t, "en", v.ForLocale("fr", "en").Locale())
	assert.Same(t, v, v.ForLocale("fr"))
	assert.Equal(t, "da", v.Locale())
}

func TestFieldErrors_Error(t *testing.T) {
	errs := FieldErrors{
		FieldPassword:  "Password skal være mindst 8 tegn",
		FieldFirstName: "Fornavn er påkrævet",
	}
	assert.Equal(t, "validation failed: fornavn: Fornavn er påkrævet; password: Password skal være mindst 8 tegn", errs.Error())
}
