package arena

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/onflow/cadence"
)

// AmountDecimals is the fixed point precision of UFix64 token amounts
const AmountDecimals = 8

// ErrMalformedAmount is reported when an amount cannot be written as a fixed point string
var ErrMalformedAmount = errors.New("malformed amount")

// FormatAmount writes amount with exactly eight decimals, e.g. 100 -> "100.00000000".
// The sign is not checked here, only that the magnitude fits a UFix64.
func FormatAmount(amount float64) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", errors.Mark(errors.Newf("amount %v is not a finite number", amount), ErrMalformedAmount)
	}

	// -0 is written as 0
	if amount == 0 {
		amount = 0
	}

	formatted := strconv.FormatFloat(amount, 'f', AmountDecimals, 64)
	if _, err := cadence.NewUFix64(strings.TrimPrefix(formatted, "-")); err != nil {
		return "", errors.Mark(errors.Wrapf(err, "formatting amount %s", formatted), ErrMalformedAmount)
	}
	return formatted, nil
}
