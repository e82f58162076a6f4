package gst

import (
	"regexp"
	"strings"
)

// GSTIN layout: 2-digit state code, 10-character PAN (5 letters, 4 digits,
// 1 letter), entity code, literal Z, check character.
// Example: 29ABCDE1234F1Z5
var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

func normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Validate reports whether raw is a well-formed 15-character GST number.
// Input is trimmed and uppercased before matching; the check character is
// not verified numerically.
func Validate(raw string) bool {
	n := normalize(raw)
	if len(n) != 15 {
		return false
	}
	return gstinPattern.MatchString(n)
}

// StateCode returns the 2-digit state code embedded in a valid GST number.
func StateCode(raw string) (string, bool) {
	if !Validate(raw) {
		return "", false
	}
	return normalize(raw)[:2], true
}

// PAN returns the 10-character PAN embedded in a valid GST number.
func PAN(raw string) (string, bool) {
	if !Validate(raw) {
		return "", false
	}
	return normalize(raw)[2:12], true
}

// StateName resolves the state code of a valid GST number against the
// known state-code table. Unknown or invalid inputs map to "Unknown".
func StateName(raw string) string {
	code, ok := StateCode(raw)
	if !ok {
		return unknownState
	}
	name, ok := stateNames[code]
	if !ok {
		return unknownState
	}
	return name
}

// Result is the outcome of a GST verification request.
type Result struct {
	Valid          bool   `json:"valid"`
	GSTNumber      string `json:"gst_number,omitempty"`
	StateCode      string `json:"state_code,omitempty"`
	PAN            string `json:"pan,omitempty"`
	StateName      string `json:"state_name,omitempty"`
	Message        string `json:"message,omitempty"`
	Error          string `json:"error,omitempty"`
	VerifiedOnline bool   `json:"verified_online"`
}

// Verify validates the format of a GST number and extracts its embedded
// fields. Online verification against the GST portal is an unimplemented
// extension point, so VerifiedOnline is always false and valid results
// carry a message saying the online check was not performed.
func Verify(raw string) Result {
	if strings.TrimSpace(raw) == "" {
		return Result{
			Valid: false,
			Error: "GST number is required",
		}
	}

	n := normalize(raw)
	if !gstinPattern.MatchString(n) || len(n) != 15 {
		return Result{
			Valid: false,
			Error: "Invalid GST format. Should be 15 characters (e.g., 29ABCDE1234F1Z5)",
		}
	}

	return Result{
		Valid:     true,
		GSTNumber: n,
		StateCode: n[:2],
		PAN:       n[2:12],
		StateName: StateName(n),
		Message:   "Format validated, online verification not performed",
	}
}
