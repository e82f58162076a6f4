package gst

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"valid gstin", "29ABCDE1234F1Z5", true},
		{"valid with letter entity code", "27ABCDE1234FAZ5", true},
		{"lowercase is normalized", "29abcde1234f1z5", true},
		{"surrounding whitespace trimmed", "  29ABCDE1234F1Z5  ", true},
		{"empty", "", false},
		{"too short", "29ABCDE1234F1Z", false},
		{"too long", "29ABCDE1234F1Z55", false},
		{"letters in state code", "AAABCDE1234F1Z5", false},
		{"digits in pan letters", "2912CDE1234F1Z5", false},
		{"entity code zero", "29ABCDE1234F0Z5", false},
		{"missing literal Z", "29ABCDE1234F1X5", false},
		{"special character", "29ABCDE1234F1Z!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(tt.in); got != tt.want {
				t.Errorf("Validate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidateDoesNotMutateInput(t *testing.T) {
	in := "29abcde1234f1z5"
	Validate(in)
	if in != "29abcde1234f1z5" {
		t.Errorf("input was mutated to %q", in)
	}
}

func TestStateCodeAndPAN(t *testing.T) {
	code, ok := StateCode("29ABCDE1234F1Z5")
	if !ok || code != "29" {
		t.Errorf("StateCode = %q, %v; want \"29\", true", code, ok)
	}

	pan, ok := PAN("29ABCDE1234F1Z5")
	if !ok || pan != "ABCDE1234F" {
		t.Errorf("PAN = %q, %v; want \"ABCDE1234F\", true", pan, ok)
	}

	if _, ok := StateCode("garbage"); ok {
		t.Error("StateCode should fail for invalid input")
	}
	if _, ok := PAN("garbage"); ok {
		t.Error("PAN should fail for invalid input")
	}
}

func TestStateName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"29ABCDE1234F1Z5", "Karnataka"},
		{"27ABCDE1234F1Z5", "Maharashtra"},
		{"07ABCDE1234F1Z5", "Delhi"},
		{"99ABCDE1234F1Z5", "Unknown"}, // valid format, unknown code
		{"not-a-gstin", "Unknown"},
	}

	for _, tt := range tests {
		if got := StateName(tt.in); got != tt.want {
			t.Errorf("StateName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestVerify(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		res := Verify("")
		if res.Valid {
			t.Error("empty input should not be valid")
		}
		if res.Error == "" {
			t.Error("expected required-field error")
		}
	})

	t.Run("bad format", func(t *testing.T) {
		res := Verify("29ABCDE1234")
		if res.Valid {
			t.Error("short input should not be valid")
		}
		if !strings.Contains(res.Error, "Invalid GST format") {
			t.Errorf("unexpected error message: %q", res.Error)
		}
	})

	t.Run("valid input", func(t *testing.T) {
		res := Verify(" 29abcde1234f1z5 ")
		if !res.Valid {
			t.Fatalf("expected valid, got error %q", res.Error)
		}
		if res.GSTNumber != "29ABCDE1234F1Z5" {
			t.Errorf("GSTNumber = %q, want normalized form", res.GSTNumber)
		}
		if res.StateCode != "29" || res.PAN != "ABCDE1234F" || res.StateName != "Karnataka" {
			t.Errorf("extracted fields = %q/%q/%q", res.StateCode, res.PAN, res.StateName)
		}
		if res.VerifiedOnline {
			t.Error("online verification is not implemented and must report false")
		}
		if res.Message == "" {
			t.Error("valid result should carry a message about the skipped online check")
		}
	})
}
