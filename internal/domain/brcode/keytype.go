package brcode

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"
)

// KeyType selects the format rule a PIX key is checked against. CPF and CNPJ
// are not interchangeable: a CPF key must be an 11-digit individual tax id and
// a CNPJ key a 14-digit company tax id, so a CNPJ under KeyTypeCPF (or the
// reverse) is rejected.
type KeyType string

const (
	KeyTypeEmail  KeyType = "EMAIL"
	KeyTypePhone  KeyType = "PHONE"
	KeyTypeCPF    KeyType = "CPF"
	KeyTypeCNPJ   KeyType = "CNPJ"
	KeyTypeRandom KeyType = "RANDOM"
)

var validate = validator.New()

var keyValidators = map[KeyType]func(string) bool{
	KeyTypeEmail:  isEmail,
	KeyTypePhone:  isMobilePhone,
	KeyTypeCPF:    IsCPF,
	KeyTypeCNPJ:   IsCNPJ,
	KeyTypeRandom: func(string) bool { return true },
}

// KeyTypes lists every supported key type in declaration order.
func KeyTypes() []KeyType {
	return []KeyType{KeyTypeEmail, KeyTypePhone, KeyTypeCPF, KeyTypeCNPJ, KeyTypeRandom}
}

// ParseKeyType accepts a key type name in any case.
func ParseKeyType(s string) (KeyType, error) {
	k := KeyType(strings.ToUpper(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", ErrKeyTypeInvalid
	}
	return k, nil
}

func (k KeyType) IsValid() bool {
	_, ok := keyValidators[k]
	return ok
}

// Accepts reports whether key satisfies the format rule of k. Unknown key
// types accept nothing.
func (k KeyType) Accepts(key string) bool {
	fn, ok := keyValidators[k]
	return ok && fn(key)
}

func (k KeyType) String() string {
	return string(k)
}

// NewRandomKey returns a key in the form the PIX directory issues for the
// RANDOM key type.
func NewRandomKey() string {
	return uuid.NewString()
}

func isEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// isMobilePhone requires the strict international form (a leading plus sign,
// country code and subscriber number, no separators) and a number that the
// numbering plan of its country assigns to mobile lines.
func isMobilePhone(s string) bool {
	if validate.Var(s, "required,e164") != nil {
		return false
	}
	num, err := phonenumbers.Parse(s, "")
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return false
	}
	switch phonenumbers.GetNumberType(num) {
	case phonenumbers.MOBILE, phonenumbers.FIXED_LINE_OR_MOBILE:
		return true
	default:
		return false
	}
}

func isCountryCode(s string) bool {
	return validate.Var(s, "required,iso3166_1_alpha2") == nil
}
