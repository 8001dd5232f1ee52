package dna

import (
	"strings"
	"testing"

	apperrors "github.com/louisbranch/utility.tools/internal/platform/errors"
)

func TestReverseComplement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "uppercase", input: "ATCGATCG", want: "CGATCGAT"},
		{name: "lowercase", input: "atcg", want: "cgat"},
		{name: "mixed case", input: "AtCg", want: "cGaT"},
		{name: "single base", input: "G", want: "C"},
		{name: "palindrome", input: "GAATTC", want: "GAATTC"},
		{name: "surrounding whitespace", input: "  \tATGC\n", want: "GCAT"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ReverseComplement(tc.input)
			if err != nil {
				t.Fatalf("ReverseComplement(%q) error = %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("ReverseComplement(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestReverseComplementErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		code  apperrors.Code
	}{
		{name: "empty", input: "", code: apperrors.CodeEmptyInput},
		{name: "whitespace only", input: " \n\t ", code: apperrors.CodeEmptyInput},
		{name: "unknown base", input: "ATXG", code: apperrors.CodeInvalidCharacters},
		{name: "ambiguity code", input: "ATGN", code: apperrors.CodeInvalidCharacters},
		{name: "rna uracil", input: "AUGC", code: apperrors.CodeInvalidCharacters},
		{name: "inner whitespace", input: "AT GC", code: apperrors.CodeInvalidCharacters},
		{name: "digits", input: "ATG1", code: apperrors.CodeInvalidCharacters},
		{name: "non ascii", input: "ATGÇ", code: apperrors.CodeInvalidCharacters},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ReverseComplement(tc.input)
			if err == nil {
				t.Fatalf("ReverseComplement(%q) = %q, want error", tc.input, got)
			}
			if got != "" {
				t.Fatalf("ReverseComplement(%q) result = %q, want empty", tc.input, got)
			}
			if code := apperrors.GetCode(err); code != tc.code {
				t.Fatalf("code = %v, want %v", code, tc.code)
			}
		})
	}
}

func TestInvalidCharactersReportsPosition(t *testing.T) {
	t.Parallel()

	err := Validate("AçX")
	var domainErr *apperrors.Error
	if !asDomainError(err, &domainErr) {
		t.Fatalf("err = %v, want domain error", err)
	}
	if got := domainErr.Metadata["Position"]; got != "2" {
		t.Fatalf("position = %q, want %q", got, "2")
	}
}

func TestReverseComplementProperties(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"A", "ATCGATCG", "atcg", "AtCg", "GATTACA", "ccccgggg",
		strings.Repeat("ACGTacgt", 64),
	}
	for _, input := range inputs {
		once, err := ReverseComplement(input)
		if err != nil {
			t.Fatalf("ReverseComplement(%q) error = %v", input, err)
		}
		if len(once) != len(input) {
			t.Fatalf("len(ReverseComplement(%q)) = %d, want %d", input, len(once), len(input))
		}
		twice, err := ReverseComplement(once)
		if err != nil {
			t.Fatalf("ReverseComplement(%q) error = %v", once, err)
		}
		if twice != input {
			t.Fatalf("ReverseComplement(ReverseComplement(%q)) = %q", input, twice)
		}
	}
}

func TestValidateAcceptsEveryBase(t *testing.T) {
	t.Parallel()

	for _, base := range "ATGCatgc" {
		if err := Validate(string(base)); err != nil {
			t.Fatalf("Validate(%q) error = %v", base, err)
		}
	}
}

func asDomainError(err error, target **apperrors.Error) bool {
	domainErr, ok := err.(*apperrors.Error)
	if ok {
		*target = domainErr
	}
	return ok
}
