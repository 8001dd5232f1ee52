// Package dna validates nucleotide sequences and computes reverse complements.
package dna

import (
	"strconv"
	"strings"
	"unicode/utf8"

	apperrors "github.com/louisbranch/utility.tools/internal/platform/errors"
)

// complement maps each accepted base to its Watson-Crick partner, keeping case.
var complement = [256]byte{
	'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G',
	'a': 't', 't': 'a', 'g': 'c', 'c': 'g',
}

// Normalize trims surrounding whitespace from raw input.
func Normalize(input string) string {
	return strings.TrimSpace(input)
}

// Validate reports whether input holds a non-empty sequence of A, T, G and C
// letters in either case once surrounding whitespace is trimmed.
func Validate(input string) error {
	sequence := Normalize(input)
	if sequence == "" {
		return apperrors.New(apperrors.CodeEmptyInput, "sequence is empty")
	}
	for i := 0; i < len(sequence); i++ {
		if complement[sequence[i]] == 0 {
			return apperrors.WithMetadata(
				apperrors.CodeInvalidCharacters,
				"sequence contains characters other than A, T, G and C",
				map[string]string{"Position": strconv.Itoa(utf8.RuneCountInString(sequence[:i]) + 1)},
			)
		}
	}
	return nil
}

// ReverseComplement validates input and returns the complement of every base
// in reverse order. Case is preserved per base.
func ReverseComplement(input string) (string, error) {
	if err := Validate(input); err != nil {
		return "", err
	}
	sequence := Normalize(input)
	out := make([]byte, len(sequence))
	for i := 0; i < len(sequence); i++ {
		out[len(sequence)-1-i] = complement[sequence[i]]
	}
	return string(out), nil
}
