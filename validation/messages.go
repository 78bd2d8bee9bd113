package validation

import (
	"fmt"

	"github.com/go-playground/locales/da"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
)

// Message keys. Every rule reports one of these and the catalog turns it into
// text for the active locale.
const (
	MsgFirstNameRequired  = "first_name_required"
	MsgLastNameRequired   = "last_name_required"
	MsgEmailInvalid       = "email_invalid"
	MsgPasswordTooShort   = "password_too_short"
	MsgPasswordNoDigit    = "password_no_digit"
	MsgPasswordMismatch   = "password_mismatch"
	MsgBirthDateInvalid   = "birth_date_invalid"
	MsgBirthDateUnderage  = "birth_date_underage"
	MsgPhoneNumberInvalid = "phone_number_invalid"
)

const DefaultLocale = "da"

var danishMessages = map[string]string{
	MsgFirstNameRequired:  "Fornavn er påkrævet",
	MsgLastNameRequired:   "Efternavn er påkrævet",
	MsgEmailInvalid:       "Din emailadresse er ugyldig",
	MsgPasswordTooShort:   "Password skal være mindst 8 tegn",
	MsgPasswordNoDigit:    "Password skal indeholde mindst ét tal",
	MsgPasswordMismatch:   "Passwords matcher ikke",
	MsgBirthDateInvalid:   "Ugyldig dato",
	MsgBirthDateUnderage:  "Du skal være mindst 18 år",
	MsgPhoneNumberInvalid: "Du skal have mindst 8 cifre i dit telefonnummer",
}

var englishMessages = map[string]string{
	MsgFirstNameRequired:  "First name is required",
	MsgLastNameRequired:   "Last name is required",
	MsgEmailInvalid:       "Your email address is invalid",
	MsgPasswordTooShort:   "Password must be at least 8 characters",
	MsgPasswordNoDigit:    "Password must contain at least one digit",
	MsgPasswordMismatch:   "Passwords do not match",
	MsgBirthDateInvalid:   "Invalid date",
	MsgBirthDateUnderage:  "You must be at least 18 years old",
	MsgPhoneNumberInvalid: "Your phone number must have at least 8 digits",
}

// Catalog holds the translated failure messages. Danish is the fallback.
type Catalog struct {
	uni *ut.UniversalTranslator
}

func NewCatalog() (*Catalog, error) {
	danish := da.New()
	uni := ut.New(danish, danish, en.New())

	catalogs := map[string]map[string]string{
		"da": danishMessages,
		"en": englishMessages,
	}
	for locale, messages := range catalogs {
		trans, _ := uni.GetTranslator(locale)
		for key, text := range messages {
			if err := trans.Add(key, text, false); err != nil {
				return nil, fmt.Errorf("add %s translation %q: %w", locale, key, err)
			}
		}
	}
	return &Catalog{uni: uni}, nil
}

// Translator returns the first supported locale from the list, or the Danish
// translator when none match.
func (c *Catalog) Translator(locales ...string) ut.Translator {
	trans, _ := c.uni.FindTranslator(locales...)
	return trans
}

// Supports reports whether the catalog carries messages for locale.
func (c *Catalog) Supports(locale string) bool {
	_, found := c.uni.GetTranslator(locale)
	return found
}

func translate(trans ut.Translator, key string) string {
	if trans != nil {
		if msg, err := trans.T(key); err == nil && msg != "" {
			return msg
		}
	}
	if msg, ok := danishMessages[key]; ok {
		return msg
	}
	return key
}
