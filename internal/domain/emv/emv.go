// Package emv implements the tag-length-value layout and the CRC-16 trailer of
// EMVCo merchant-presented QR payloads.
package emv

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// MaxLength is the largest value length that fits the two-digit length field.
	MaxLength = 99

	// CRCHeader is the tag and length of the checksum element; the checksum is
	// computed over the payload including these four characters.
	CRCHeader = "6304"
)

// Element encodes one data object as ID + length + value. An empty value
// yields an empty string so the whole element is omitted from the payload.
// Length is the value's character count. Tags and lengths above 99 do not fit
// the two-digit fields; callers keep their values within MaxLength.
func Element(tag int, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("%02d%02d%s", tag, Length(value), value)
}

// Join concatenates encoded elements into a template value.
func Join(elements ...string) string {
	return strings.Join(elements, "")
}

// Length reports the length an element header would carry for value.
func Length(value string) int {
	return utf8.RuneCountInString(value)
}

// Seal appends the checksum element to a payload built without it.
func Seal(payload string) string {
	data := payload + CRCHeader
	return data + Checksum(data)
}
