package vehicle

import (
	"fmt"
	"unicode/utf8"

	"vehicle-reconciler/core/validator"
)

// VINLength is the length of a modern vehicle identification number.
const VINLength = 17

// vinValues transliterates VIN characters for the check digit. I, O and Q are absent.
var vinValues = map[byte]int{
	'0': 0, '1': 1, '2': 2, '3': 3, '4': 4, '5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
	'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'F': 6, 'G': 7, 'H': 8,
	'J': 1, 'K': 2, 'L': 3, 'M': 4, 'N': 5, 'P': 7, 'R': 9,
	'S': 2, 'T': 3, 'U': 4, 'V': 5, 'W': 6, 'X': 7, 'Y': 8, 'Z': 9,
}

var vinWeights = [VINLength]int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}

// ValidateVIN checks that vin is 17 characters of digits and uppercase letters other than I, O and Q.
func ValidateVIN(vin string) error {
	if len(vin) != VINLength {
		return &ValidationError{
			Op:     "validate",
			Field:  "vin",
			Value:  vin,
			Reason: fmt.Sprintf("must be %d characters, got %d", VINLength, len(vin)),
			Err:    ErrInvalidVIN,
		}
	}
	for i := 0; i < len(vin); i++ {
		if _, ok := vinValues[vin[i]]; !ok {
			r, _ := utf8.DecodeRuneInString(vin[i:])
			return &ValidationError{
				Op:     "validate",
				Field:  "vin",
				Value:  vin,
				Reason: fmt.Sprintf("invalid character %q at position %d", r, i+1),
				Err:    ErrInvalidVIN,
			}
		}
	}
	return nil
}

// VINRule is the "vin" request validation tag, backed by ValidateVIN.
var VINRule = validator.Rule{
	Tag:     "vin",
	Message: fmt.Sprintf("must be %d characters of digits and uppercase letters other than I, O and Q", VINLength),
	Valid:   func(s string) bool { return ValidateVIN(s) == nil },
}

// CheckDigit computes the position-9 check digit of a syntactically valid VIN.
func CheckDigit(vin string) (byte, bool) {
	if ValidateVIN(vin) != nil {
		return 0, false
	}
	sum := 0
	for i := 0; i < VINLength; i++ {
		sum += vinValues[vin[i]] * vinWeights[i]
	}
	rem := sum % 11
	if rem == 10 {
		return 'X', true
	}
	return byte('0' + rem), true
}

// CheckDigitValid reports whether position 9 of vin holds the computed check digit.
// Only North American VINs are required to carry one.
func CheckDigitValid(vin string) bool {
	d, ok := CheckDigit(vin)
	return ok && vin[8] == d
}
