package brcode

import "strings"

var (
	cpfWeights1  = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfWeights2  = []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// IsCPF reports whether s is an individual taxpayer number with valid check
// digits. Dots and dashes are accepted as separators.
func IsCPF(s string) bool {
	digits, ok := taxDigits(s, ".-")
	if !ok || len(digits) != len(cpfWeights2)+1 || allEqual(digits) {
		return false
	}
	return checkDigit(digits, cpfWeights1) == digits[9] &&
		checkDigit(digits, cpfWeights2) == digits[10]
}

// IsCNPJ reports whether s is a company registration number with valid check
// digits. Dots, dashes and slashes are accepted as separators.
func IsCNPJ(s string) bool {
	digits, ok := taxDigits(s, ".-/")
	if !ok || len(digits) != len(cnpjWeights2)+1 || allEqual(digits) {
		return false
	}
	return checkDigit(digits, cnpjWeights1) == digits[12] &&
		checkDigit(digits, cnpjWeights2) == digits[13]
}

// checkDigit computes the mod-11 digit over the leading len(weights) digits.
func checkDigit(digits, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += digits[i] * w
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

func taxDigits(s, separators string) ([]int, bool) {
	digits := make([]int, 0, len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case strings.ContainsRune(separators, r):
		default:
			return nil, false
		}
	}
	return digits, true
}

func allEqual(digits []int) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}
