package validate

import "fmt"

// InputType selects a validator through Input. The set is closed: every tag
// maps 1:1 to one validator, and anything else is a dispatch failure.
type InputType string

const (
	TypeNumeric      InputType = "numeric"
	TypeText         InputType = "text"
	TypeAlpha        InputType = "alpha"
	TypeAlphanumeric InputType = "alphanumeric"
	TypeEmail        InputType = "email"
	TypeURL          InputType = "url"
	TypePhone        InputType = "phone"
	TypeIBAN         InputType = "iban"
	TypeISIN         InputType = "isin"
	TypeGLN          InputType = "gln"
	TypeGTIN         InputType = "gtin"
	TypeSSCC         InputType = "sscc"
	TypeDate         InputType = "date"
	TypeAge          InputType = "age"
	TypeFileName     InputType = "fileName"
)

// Input routes a tag to its validator, forwarding value and cfg unchanged and
// returning the validator's result verbatim. An unregistered tag yields a
// failure, itself subject to the CustomErrorMessage override.
func Input(value any, typ InputType, cfg *Config) Result {
	switch typ {
	case TypeNumeric:
		return Numeric(value, cfg)
	case TypeText:
		return Text(value, cfg)
	case TypeAlpha:
		return Alpha(value, cfg)
	case TypeAlphanumeric:
		return Alphanumeric(value, cfg)
	case TypeEmail:
		return Email(value, cfg)
	case TypeURL:
		return URL(value, cfg)
	case TypePhone:
		return Phone(value, cfg)
	case TypeIBAN:
		return IBAN(value, cfg)
	case TypeISIN:
		return ISIN(value, cfg)
	case TypeGLN:
		return GLN(value, cfg)
	case TypeGTIN:
		return GTIN(value, cfg)
	case TypeSSCC:
		return SSCC(value, cfg)
	case TypeDate:
		return Date(value, cfg)
	case TypeAge:
		return Age(value, cfg)
	case TypeFileName:
		return FileName(value, cfg)
	default:
		return invalid(cfg, fmt.Sprintf("Unknown input type: %s", typ))
	}
}

// Types lists every registered InputType, in dispatch order. Useful for CLI
// help output and exhaustiveness tests.
func Types() []InputType {
	return []InputType{
		TypeNumeric, TypeText, TypeAlpha, TypeAlphanumeric,
		TypeEmail, TypeURL, TypePhone,
		TypeIBAN, TypeISIN,
		TypeGLN, TypeGTIN, TypeSSCC,
		TypeDate, TypeAge, TypeFileName,
	}
}
