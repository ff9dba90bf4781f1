package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ValueKind int

const (
	ValueNull ValueKind = iota
	ValueText
	ValueDecimal
	ValueTime
)

// Value is one snapshot cell. Cells are heterogeneous: free text,
// fixed-point decimals, nullable timestamps. Edited cells usually arrive
// as text and are coerced toward the baseline cell's kind on comparison.
type Value struct {
	kind ValueKind
	text string
	dec  decimal.Decimal
	ts   time.Time
}

func NullValue() Value {
	return Value{kind: ValueNull}
}

func TextValue(s string) Value {
	return Value{kind: ValueText, text: s}
}

func DecimalValue(d decimal.Decimal) Value {
	return Value{kind: ValueDecimal, dec: d}
}

// TimeValue normalizes to UTC so that comparisons are not confounded by
// timezone metadata carried by the stored value.
func TimeValue(t time.Time) Value {
	return Value{kind: ValueTime, ts: t.UTC()}
}

func (v Value) Kind() ValueKind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == ValueNull
}

// IsBlank reports whether the cell is null or whitespace-only text.
func (v Value) IsBlank() bool {
	return v.kind == ValueNull || (v.kind == ValueText && strings.TrimSpace(v.text) == "")
}

func (v Value) Text() string {
	return v.text
}

func (v Value) Decimal() (decimal.Decimal, error) {
	switch v.kind {
	case ValueDecimal:
		return v.dec, nil
	case ValueText:
		return decimal.NewFromString(strings.TrimSpace(v.text))
	}

	return decimal.Decimal{}, fmt.Errorf("value of kind %d is not numeric", v.kind)
}

var timeLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

func (v Value) Time() (time.Time, error) {
	switch v.kind {
	case ValueTime:
		return v.ts, nil
	case ValueText:
		s := strings.TrimSpace(v.text)
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC(), nil
			}
		}

		return time.Time{}, fmt.Errorf("can't parse %q as a timestamp", s)
	}

	return time.Time{}, fmt.Errorf("value of kind %d is not a timestamp", v.kind)
}

// Equal implements type-aware cell comparison:
//   - both null: equal, one null: not equal
//   - either side decimal: compare numerically, a parse failure counts as changed
//   - either side timestamp: compare UTC-normalized at full precision
//   - otherwise: direct text comparison
func (v Value) Equal(o Value) bool {
	if v.kind == ValueNull || o.kind == ValueNull {
		return v.kind == o.kind
	}

	if v.kind == ValueDecimal || o.kind == ValueDecimal {
		a, errA := v.Decimal()
		b, errB := o.Decimal()
		if errA != nil || errB != nil {
			return false
		}

		return a.Equal(b)
	}

	if v.kind == ValueTime || o.kind == ValueTime {
		a, errA := v.Time()
		b, errB := o.Time()
		if errA != nil || errB != nil {
			return false
		}

		return a.Equal(b)
	}

	return v.text == o.text
}

// Interface returns the driver-friendly form used in update payloads.
func (v Value) Interface() interface{} {
	switch v.kind {
	case ValueText:
		return v.text
	case ValueDecimal:
		return v.dec
	case ValueTime:
		return v.ts
	}

	return nil
}

func (v Value) String() string {
	switch v.kind {
	case ValueText:
		return v.text
	case ValueDecimal:
		return v.dec.String()
	case ValueTime:
		return v.ts.Format(time.RFC3339Nano)
	}

	return ""
}
