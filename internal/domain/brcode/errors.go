package brcode

import "errors"

// Messages are surfaced verbatim to callers.
//
//nolint:revive,stylecheck // capitalised messages are part of the public contract
var (
	ErrReceiverNameRequired = errors.New("Receiver name must be set")
	ErrReceiverNameTooLong  = errors.New("Receiver name must be less than 25 characters")

	ErrReceiverCityRequired = errors.New("Receiver city must be set")
	ErrReceiverCityTooLong  = errors.New("Receiver city must be less than 15 characters")

	ErrCountryCodeRequired = errors.New("Receiver country code must be set")
	ErrCountryCodeLength   = errors.New("Receiver country code must be 2 characters")
	ErrCountryCodeInvalid  = errors.New("Receiver country code must be a valid country code")

	ErrIdentifierRequired = errors.New("Identifier must be set")
	ErrIdentifierTooLong  = errors.New("Identifier must be less than 25 characters")

	ErrDescriptionTooLong = errors.New("Description must be less than 77 characters")

	ErrAmountNegative = errors.New("Amount must be greater than 0")
	ErrAmountTooLong  = errors.New("Amount must be less than 13 characters")

	ErrKeyRequired    = errors.New("Key must be set")
	ErrKeyTooLong     = errors.New("Key must be less than 77 characters")
	ErrKeyTypeInvalid = errors.New("Key type must be one of EMAIL, PHONE, CPF, CNPJ, RANDOM")
	ErrKeyInvalid     = errors.New("Key must be a valid key for this key type")

	ErrMerchantInformationTooLong = errors.New("Merchant account information must be less than 99 characters")
)

// ValidationError names the input field that failed a construction rule.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}
