package validate

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRe = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)
	evpRe   = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	oabRe   = regexp.MustCompile(`^\d{1,6}/[A-Z]{2}$`)
)

var brazilStates = map[string]struct{}{
	"AC": {}, "AL": {}, "AP": {}, "AM": {}, "BA": {}, "CE": {}, "DF": {},
	"ES": {}, "GO": {}, "MA": {}, "MT": {}, "MS": {}, "MG": {}, "PA": {},
	"PB": {}, "PR": {}, "PE": {}, "PI": {}, "RJ": {}, "RN": {}, "RS": {},
	"RO": {}, "RR": {}, "SC": {}, "SP": {}, "SE": {}, "TO": {},
}

// IsPixKey reports whether s is a valid PIX key in any of the five
// registered formats: CPF, CNPJ, e-mail, E.164 phone or random (EVP) key.
func IsPixKey(s string) bool {
	if s == "" {
		return false
	}
	return IsCPF(s) || IsCNPJ(s) || emailRe.MatchString(s) ||
		phoneRe.MatchString(s) || evpRe.MatchString(strings.ToLower(s))
}

// IsCPF validates the two mod-11 check digits of a Brazilian CPF.
// Accepts bare digits or the 000.000.000-00 format.
func IsCPF(s string) bool {
	digits := onlyDigits(s)
	if len(digits) != 11 || allSame(digits) {
		return false
	}
	if checkDigitMod11(digits[:9], 10) != digits[9] {
		return false
	}
	return checkDigitMod11(digits[:10], 11) == digits[10]
}

// IsCNPJ validates the two mod-11 check digits of a Brazilian CNPJ.
func IsCNPJ(s string) bool {
	digits := onlyDigits(s)
	if len(digits) != 14 || allSame(digits) {
		return false
	}
	weights1 := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	weights2 := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	if cnpjDigit(digits[:12], weights1) != digits[12] {
		return false
	}
	return cnpjDigit(digits[:13], weights2) == digits[13]
}

// IsOAB validates a bar-registration number in the 123456/UF format.
func IsOAB(s string) bool {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !oabRe.MatchString(s) {
		return false
	}
	uf := s[strings.IndexByte(s, '/')+1:]
	_, ok := brazilStates[uf]
	return ok
}

func onlyDigits(s string) []int {
	digits := make([]int, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}
	return digits
}

func allSame(digits []int) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

func checkDigitMod11(digits []int, startWeight int) int {
	sum := 0
	for i, d := range digits {
		sum += d * (startWeight - i)
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

func cnpjDigit(digits []int, weights []int) int {
	sum := 0
	for i, d := range digits {
		sum += d * weights[i]
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}
