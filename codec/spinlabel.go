// Package codec provides bidirectional conversions between wire labels and
// domain values.
package codec

import (
	"strconv"
	"strings"

	spxinput "github.com/sphinxkit/spxinput"
	"github.com/sphinxkit/spxinput/i18n"
)

const spinPrefix = "spin_"

// FormatSpin renders a magnetic moment as its atom label. The numeric part is
// the shortest decimal form that parses back to the exact float64, so equal
// moments share one label and distinct moments never collide.
func FormatSpin(v float64) string {
	return spinPrefix + strconv.FormatFloat(v, 'g', -1, 64)
}

// ParseSpin recovers the magnetic moment from a label produced by FormatSpin.
func ParseSpin(label string) (float64, error) {
	rest, ok := strings.CutPrefix(label, spinPrefix)
	if !ok {
		return 0, spxinput.Issues{{
			Path:    "label",
			Code:    spxinput.CodeInvalidFormat,
			Message: i18n.T(spxinput.CodeInvalidFormat, nil),
			Hint:    "expected " + spinPrefix + "<value>",
		}}
	}
	v, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return 0, spxinput.Issues{{
			Path:    "label",
			Code:    spxinput.CodeInvalidFormat,
			Message: i18n.T(spxinput.CodeInvalidFormat, nil),
			Cause:   err,
		}}
	}
	return v, nil
}
