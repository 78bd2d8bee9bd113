package config

import (
	"registration-form-app/config/common"
	"registration-form-app/validation"
)

func NewValidator(cfg *common.Config) *validation.Validator {
	locale, phoneRegion := cfg.GetValidationConfig()
	v, err := validation.New(
		validation.WithLocale(locale),
		validation.WithPhoneRegion(phoneRegion),
	)
	if err != nil {
		panic("failed to build registration validator: " + err.Error())
	}
	return v
}
