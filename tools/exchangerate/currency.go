package exchangerate

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/agentools/tools"
)

// CurrencyCode is a 3-letter ISO 4217 code, normalized to upper case.
type CurrencyCode string

// ParseCurrencyCode trims and upper-cases the input.
// Construction fails unless exactly 3 characters remain after trimming,
// before any network call is made.
func ParseCurrencyCode(s string) (CurrencyCode, error) {
	code := strings.TrimSpace(s)
	if len(code) != 3 {
		return "", errors.WithStack(tools.NewError(tools.KindInvalidInput,
			"Currency code must be exactly 3 characters (e.g. USD, EUR, JPY)"))
	}
	return CurrencyCode(strings.ToUpper(code)), nil
}

func (c CurrencyCode) String() string {
	return string(c)
}
