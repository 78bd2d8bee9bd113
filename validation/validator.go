// Package validation checks registration form input and turns every failing
// field into a localized, user-facing message.
package validation

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	ut "github.com/go-playground/universal-translator"
	"github.com/nyaruka/phonenumbers"
)

// Form field names as posted by the registration form.
const (
	FieldFirstName            = "fornavn"
	FieldLastName             = "efternavn"
	FieldEmail                = "email"
	FieldPassword             = "password"
	FieldPasswordConfirmation = "gentagPassword"
	FieldBirthDate            = "foedselsdato"
	FieldPhoneNumber          = "telefonnummer"
)

const defaultPhoneRegion = "DK"

// Input is the untrusted registration record exactly as typed by the user.
type Input struct {
	FirstName            string `json:"fornavn"`
	LastName             string `json:"efternavn"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"gentagPassword"`
	BirthDate            string `json:"foedselsdato"`
	PhoneNumber          string `json:"telefonnummer,omitempty"`
}

// Registration is an accepted, normalized record.
type Registration struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	BirthDate   time.Time
	Age         int
	PhoneNumber string
	// PhoneE164 is empty when the number cannot be resolved for the region.
	PhoneE164 string
}

// FieldErrors maps a form field to the message of its first failing rule.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, field := range slices.Sorted(maps.Keys(fe)) {
		parts = append(parts, field+": "+fe[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type Validator struct {
	validate    *validator.Validate
	catalog     *Catalog
	trans       ut.Translator
	now         func() time.Time
	phoneRegion string
	fields      []fieldRules
	cross       []crossRule
}

type Option func(*Validator)

// WithClock overrides the source of "today" used by the age rule.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

func WithLocale(locale string) Option {
	return func(v *Validator) {
		v.trans = v.catalog.Translator(strings.ToLower(strings.TrimSpace(locale)))
	}
}

// WithPhoneRegion sets the region used to resolve national phone numbers.
func WithPhoneRegion(region string) Option {
	return func(v *Validator) {
		if region = strings.ToUpper(strings.TrimSpace(region)); region != "" {
			v.phoneRegion = region
		}
	}
}

func New(opts ...Option) (*Validator, error) {
	validate := validator.New()
	if err := registerTags(validate); err != nil {
		return nil, fmt.Errorf("register validation tags: %w", err)
	}
	catalog, err := NewCatalog()
	if err != nil {
		return nil, err
	}

	v := &Validator{
		validate:    validate,
		catalog:     catalog,
		trans:       catalog.Translator(DefaultLocale),
		now:         time.Now,
		phoneRegion: defaultPhoneRegion,
		fields:      registrationRules(),
		cross:       registrationCrossRules(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Locale reports the locale messages are rendered in.
func (v *Validator) Locale() string {
	return v.trans.Locale()
}

// ForLocale returns a validator sharing the same rules that reports messages
// in the first supported locale, falling back to the current one.
func (v *Validator) ForLocale(locales ...string) *Validator {
	for _, locale := range locales {
		locale = strings.ToLower(strings.TrimSpace(locale))
		if v.catalog.Supports(locale) {
			clone := *v
			clone.trans = v.catalog.Translator(locale)
			return &clone
		}
	}
	return v
}

// Validate checks in against the current time.
func (v *Validator) Validate(in Input) (Registration, error) {
	return v.ValidateAt(in, v.now())
}

// ValidateAt checks in with now as the reference date for the age rule. It
// returns FieldErrors when any rule fails.
func (v *Validator) ValidateAt(in Input, now time.Time) (Registration, error) {
	failed := make(map[string]string)
	for _, fr := range v.fields {
		if key, ok := v.checkField(fr, in, now); !ok {
			failed[fr.field] = key
		}
	}

	for _, cr := range v.cross {
		if _, taken := failed[cr.field]; taken || anyFailed(failed, cr.after) {
			continue
		}
		if !cr.check(v.validate, in) {
			failed[cr.field] = cr.key
		}
	}

	if len(failed) > 0 {
		errs := make(FieldErrors, len(failed))
		for field, key := range failed {
			errs[field] = translate(v.trans, key)
		}
		return Registration{}, errs
	}

	birth, _ := ParseBirthDate(in.BirthDate)
	return Registration{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Password:    in.Password,
		BirthDate:   birth,
		Age:         Age(birth, now),
		PhoneNumber: in.PhoneNumber,
		PhoneE164:   toE164(in.PhoneNumber, v.phoneRegion),
	}, nil
}

func (v *Validator) checkField(fr fieldRules, in Input, now time.Time) (string, bool) {
	value := fr.value(in)
	if fr.optional && value == "" {
		return "", true
	}
	for _, r := range fr.rules {
		if !r.passes(v.validate, value, now) {
			return r.key, false
		}
	}
	return "", true
}

func anyFailed(failed map[string]string, fields []string) bool {
	for _, field := range fields {
		if _, ok := failed[field]; ok {
			return true
		}
	}
	return false
}

func toE164(raw, region string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	number, err := phonenumbers.Parse(raw, region)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return ""
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}
