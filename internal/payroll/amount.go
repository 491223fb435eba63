package payroll

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	payrollerrors "go-hrportal/internal/payroll/errors"

	"github.com/shopspring/decimal"
)

// Amount is a money value in the smallest currency unit. It decodes from a
// JSON number or a numeric string ("250000", "250000.00"); fractional units
// are rejected. A nil *Amount means the field was absent or null.
type Amount int64

func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, []byte("null")) {
		return nil
	}

	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return payrollerrors.ErrInvalidAmount
		}
		raw = []byte(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
		if len(raw) == 0 {
			*a = 0
			return nil
		}
	}

	if n, err := strconv.ParseInt(string(raw), 10, 64); err == nil {
		*a = Amount(n)
		return nil
	}

	d, err := decimal.NewFromString(string(raw))
	if err != nil || !d.IsInteger() || !d.BigInt().IsInt64() {
		return payrollerrors.ErrInvalidAmount
	}
	*a = Amount(d.IntPart())
	return nil
}

func (a *Amount) Int64() int64 {
	if a == nil {
		return 0
	}
	return int64(*a)
}

func AmountOf(v int64) *Amount {
	a := Amount(v)
	return &a
}
