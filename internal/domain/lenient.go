package domain

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// LenientDecimal decodes a money field that the upstream service emits
// inconsistently as a JSON number, a quoted string, null, or an empty
// string. Anything unparseable decodes as zero; decoding never fails.
type LenientDecimal struct {
	decimal.Decimal
}

func (d *LenientDecimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		d.Decimal = decimal.Zero
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		d.Decimal = ParseLenientDecimal(s)
		return nil
	}

	var v decimal.Decimal
	if err := json.Unmarshal(data, &v); err == nil {
		d.Decimal = v
		return nil
	}

	d.Decimal = decimal.Zero
	return nil
}

func (d LenientDecimal) MarshalJSON() ([]byte, error) {
	return d.Decimal.MarshalJSON()
}

// ParseLenientDecimal parses a free-text money value, treating blank or
// non-numeric input as zero. Blank is a valid state during form entry, not
// an error.
func ParseLenientDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return v
}
