package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	tagBirthDate   = "birthdate"
	tagPhoneNumber = "phonenumber"

	minimumAge = 18
)

// phonePattern counts whitespace toward the 8-15 length bound.
var phonePattern = regexp.MustCompile(`^[0-9+\s]{8,15}$`)

var birthDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"02-01-2006",
	"02/01/2006",
}

// rule is one check on a single field. Tag rules run through the shared
// go-playground validator; check rules cover what depends on the reference time.
type rule struct {
	tag   string
	check func(value string, now time.Time) bool
	key   string
}

func (r rule) passes(validate *validator.Validate, value string, now time.Time) bool {
	if r.check != nil {
		return r.check(value, now)
	}
	return validate.Var(value, r.tag) == nil
}

type fieldRules struct {
	field    string
	value    func(Input) string
	optional bool
	rules    []rule
}

// crossRule spans several fields and reports on field. It only runs when every
// field listed in after passed its own rules.
type crossRule struct {
	field string
	after []string
	check func(validate *validator.Validate, in Input) bool
	key   string
}

func registrationRules() []fieldRules {
	return []fieldRules{
		{
			field: FieldFirstName,
			value: func(in Input) string { return in.FirstName },
			rules: []rule{{tag: "required", key: MsgFirstNameRequired}},
		},
		{
			field: FieldLastName,
			value: func(in Input) string { return in.LastName },
			rules: []rule{{tag: "required", key: MsgLastNameRequired}},
		},
		{
			field: FieldEmail,
			value: func(in Input) string { return in.Email },
			rules: []rule{{tag: "email", key: MsgEmailInvalid}},
		},
		{
			field: FieldPassword,
			value: func(in Input) string { return in.Password },
			rules: []rule{
				{tag: "min=8", key: MsgPasswordTooShort},
				{tag: "containsany=0123456789", key: MsgPasswordNoDigit},
			},
		},
		{
			field: FieldBirthDate,
			value: func(in Input) string { return in.BirthDate },
			rules: []rule{
				{tag: tagBirthDate, key: MsgBirthDateInvalid},
				{check: isAdult, key: MsgBirthDateUnderage},
			},
		},
		{
			field:    FieldPhoneNumber,
			value:    func(in Input) string { return in.PhoneNumber },
			optional: true,
			rules:    []rule{{tag: tagPhoneNumber, key: MsgPhoneNumberInvalid}},
		},
	}
}

func registrationCrossRules() []crossRule {
	return []crossRule{
		{
			field: FieldPasswordConfirmation,
			after: []string{FieldPassword},
			check: func(validate *validator.Validate, in Input) bool {
				return validate.VarWithValue(in.PasswordConfirmation, in.Password, "eqfield") == nil
			},
			key: MsgPasswordMismatch,
		},
	}
}

func registerTags(validate *validator.Validate) error {
	if err := validate.RegisterValidation(tagBirthDate, func(fl validator.FieldLevel) bool {
		_, ok := ParseBirthDate(fl.Field().String())
		return ok
	}); err != nil {
		return err
	}
	return validate.RegisterValidation(tagPhoneNumber, func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
}

// ParseBirthDate coerces the raw form value to a calendar date.
func ParseBirthDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range birthDateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// Age returns the completed years between birth and today, comparing calendar
// month and day only.
func Age(birth, today time.Time) int {
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}

func isAdult(value string, now time.Time) bool {
	birth, ok := ParseBirthDate(value)
	if !ok {
		return false
	}
	return Age(birth, now) >= minimumAge
}
