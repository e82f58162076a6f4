package billing

import (
	"fmt"
	"strconv"
	"strings"
)

// NumberPrefix is the literal prefix of every bill number.
const NumberPrefix = "INV"

// NextNumber derives the next bill number from the last issued one.
// Numbers follow the pattern INV-NNNN, zero-padded to four digits and
// growing naturally past 9999. An empty or unparsable last number resets
// the sequence to INV-0001.
//
// Numbering is advisory: callers read the last number and insert the next
// one as two separate steps, so concurrent bill creation for the same
// user can produce duplicates.
func NextNumber(lastIssued string) string {
	if lastIssued == "" {
		return fmt.Sprintf("%s-%04d", NumberPrefix, 1)
	}

	parts := strings.Split(lastIssued, "-")
	last, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return fmt.Sprintf("%s-%04d", NumberPrefix, 1)
	}

	return fmt.Sprintf("%s-%04d", NumberPrefix, last+1)
}
