// Package brcode builds static PIX payment payloads ("BR Code") in the EMVCo
// merchant-presented QR format.
package brcode

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/Xausdorf/pix-brcode/internal/domain/emv"
)

const (
	GUI = "br.gov.bcb.pix"

	PayloadFormatIndicator = "01"
	MerchantCategoryCode   = "0000"
	// CurrencyCode is the ISO 4217 numeric code for BRL.
	CurrencyCode = "986"
)

const (
	tagPayloadFormatIndicator     = 0
	tagMerchantAccountInformation = 26
	tagMerchantCategoryCode       = 52
	tagTransactionCurrency        = 53
	tagTransactionAmount          = 54
	tagCountryCode                = 58
	tagMerchantName               = 59
	tagMerchantCity               = 60
	tagAdditionalDataField        = 62

	// merchant account information template
	tagGUI         = 0
	tagKey         = 1
	tagDescription = 2

	// additional data field template
	tagReferenceLabel = 5
)

const (
	maxReceiverNameLength = 25
	maxReceiverCityLength = 15
	countryCodeLength     = 2
	maxIdentifierLength   = 25
	maxDescriptionLength  = 77
	maxKeyLength          = 77
	maxAmountLength       = 13
	amountPlaces          = 2
)

const (
	FieldReceiverName        = "receiverName"
	FieldReceiverCity        = "receiverCity"
	FieldReceiverCountryCode = "receiverCountryCode"
	FieldIdentifier          = "identifier"
	FieldDescription         = "description"
	FieldAmount              = "amount"
	FieldKey                 = "key"
	FieldKeyType             = "keyType"
)

// Static is the flat attribute record a static BR Code is built from.
// Description and Amount are optional: an empty description or a nil amount
// leaves the element out of the payload.
type Static struct {
	ReceiverName        string
	ReceiverCity        string
	ReceiverCountryCode string
	Identifier          string
	Key                 string
	KeyType             KeyType
	Amount              *decimal.Decimal
	Description         string
	IsUniqueTransaction bool
}

// BRCode is a validated static payment payload. It can only be obtained from
// New and never changes afterwards.
type BRCode struct {
	receiverName        string
	receiverCity        string
	receiverCountryCode string
	identifier          string
	description         string
	amount              decimal.Decimal
	hasAmount           bool
	key                 string
	keyType             KeyType
	isUniqueTransaction bool
}

// New trims and validates every attribute of data in a fixed order and
// returns the first violation as a *ValidationError.
func New(data Static) (*BRCode, error) {
	b := &BRCode{
		keyType:             data.KeyType,
		isUniqueTransaction: data.IsUniqueTransaction,
	}

	var err error
	if b.receiverName, err = requiredText(data.ReceiverName, maxReceiverNameLength,
		FieldReceiverName, ErrReceiverNameRequired, ErrReceiverNameTooLong); err != nil {
		return nil, err
	}
	if b.receiverCity, err = requiredText(data.ReceiverCity, maxReceiverCityLength,
		FieldReceiverCity, ErrReceiverCityRequired, ErrReceiverCityTooLong); err != nil {
		return nil, err
	}
	if b.receiverCountryCode, err = countryCode(data.ReceiverCountryCode); err != nil {
		return nil, err
	}
	if b.identifier, err = requiredText(data.Identifier, maxIdentifierLength,
		FieldIdentifier, ErrIdentifierRequired, ErrIdentifierTooLong); err != nil {
		return nil, err
	}
	if b.description, err = description(data.Description); err != nil {
		return nil, err
	}
	if data.Amount != nil {
		if data.Amount.IsNegative() {
			return nil, invalid(FieldAmount, ErrAmountNegative)
		}
		b.amount, b.hasAmount = *data.Amount, true
	}
	if b.key, err = key(data.Key, data.KeyType); err != nil {
		return nil, err
	}

	if b.hasAmount && utf8.RuneCountInString(b.formattedAmount()) > maxAmountLength {
		return nil, invalid(FieldAmount, ErrAmountTooLong)
	}
	if emv.Length(b.merchantAccountInformation()) > emv.MaxLength {
		return nil, invalid(FieldKey, ErrMerchantInformationTooLong)
	}

	return b, nil
}

func requiredText(value string, maxLen int, field string, errRequired, errTooLong error) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", invalid(field, errRequired)
	}
	if utf8.RuneCountInString(value) > maxLen {
		return "", invalid(field, errTooLong)
	}
	return value, nil
}

func countryCode(value string) (string, error) {
	value = strings.ToUpper(strings.TrimSpace(value))
	switch {
	case value == "":
		return "", invalid(FieldReceiverCountryCode, ErrCountryCodeRequired)
	case utf8.RuneCountInString(value) != countryCodeLength:
		return "", invalid(FieldReceiverCountryCode, ErrCountryCodeLength)
	case !isCountryCode(value):
		return "", invalid(FieldReceiverCountryCode, ErrCountryCodeInvalid)
	}
	return value, nil
}

func description(value string) (string, error) {
	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) > maxDescriptionLength {
		return "", invalid(FieldDescription, ErrDescriptionTooLong)
	}
	return value, nil
}

func key(value string, keyType KeyType) (string, error) {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		return "", invalid(FieldKey, ErrKeyRequired)
	case utf8.RuneCountInString(value) > maxKeyLength:
		return "", invalid(FieldKey, ErrKeyTooLong)
	case !keyType.IsValid():
		return "", invalid(FieldKeyType, ErrKeyTypeInvalid)
	case !keyType.Accepts(value):
		return "", invalid(FieldKey, ErrKeyInvalid)
	}
	return value, nil
}

func (b *BRCode) merchantAccountInformation() string {
	return emv.Join(
		emv.Element(tagGUI, GUI),
		emv.Element(tagKey, b.key),
		emv.Element(tagDescription, b.description),
	)
}

func (b *BRCode) additionalDataField() string {
	return emv.Element(tagReferenceLabel, b.identifier)
}

func (b *BRCode) formattedAmount() string {
	if !b.hasAmount {
		return ""
	}
	return b.amount.StringFixed(amountPlaces)
}

// Encode serializes the payload and appends its CRC-16 trailer.
func (b *BRCode) Encode() string {
	return emv.Seal(emv.Join(
		emv.Element(tagPayloadFormatIndicator, PayloadFormatIndicator),
		emv.Element(tagMerchantAccountInformation, b.merchantAccountInformation()),
		emv.Element(tagMerchantCategoryCode, MerchantCategoryCode),
		emv.Element(tagTransactionCurrency, CurrencyCode),
		emv.Element(tagTransactionAmount, b.formattedAmount()),
		emv.Element(tagCountryCode, b.receiverCountryCode),
		emv.Element(tagMerchantName, b.receiverName),
		emv.Element(tagMerchantCity, b.receiverCity),
		emv.Element(tagAdditionalDataField, b.additionalDataField()),
	))
}

func (b *BRCode) String() string {
	return b.Encode()
}

func (b *BRCode) ReceiverName() string {
	return b.receiverName
}

func (b *BRCode) ReceiverCity() string {
	return b.receiverCity
}

func (b *BRCode) ReceiverCountryCode() string {
	return b.receiverCountryCode
}

func (b *BRCode) Identifier() string {
	return b.identifier
}

func (b *BRCode) Description() string {
	return b.description
}

func (b *BRCode) Amount() (decimal.Decimal, bool) {
	return b.amount, b.hasAmount
}

func (b *BRCode) Key() string {
	return b.key
}

func (b *BRCode) KeyType() KeyType {
	return b.keyType
}

// IsUniqueTransaction is carried for callers; it does not change the payload.
func (b *BRCode) IsUniqueTransaction() bool {
	return b.isUniqueTransaction
}
