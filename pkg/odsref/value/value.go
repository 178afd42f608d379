// Package value parses and formats the scalar encodings of spreadsheet
// documents: booleans, integers, floats, currency codes, date-times and
// durations.
//
// Every parser consumes its whole input. Failures are *source.Error values;
// numbers that are well formed but too large are reported with
// source.CodeOverflow so they can be told apart from malformed text.
package value

import (
	"errors"
	"fmt"
	"time"
)

// ErrOutOfRange is wrapped by errors for calendar fields outside their range
// and for durations that do not fit a time.Duration.
var ErrOutOfRange = errors.New("value out of range")

// Kind selects one of the scalar encodings.
type Kind int

const (
	KindBool Kind = iota
	KindInt16
	KindInt32
	KindInt64
	KindUint32
	KindFloat
	KindCurrency
	KindDateTime
	KindDuration
)

var kindNames = [...]string{
	KindBool:     "bool",
	KindInt16:    "int16",
	KindInt32:    "int32",
	KindInt64:    "int64",
	KindUint32:   "uint32",
	KindFloat:    "float",
	KindCurrency: "currency",
	KindDateTime: "datetime",
	KindDuration: "duration",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ODFType returns the office:value-type a value of kind k is stored under.
func (k Kind) ODFType() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindCurrency:
		return "currency"
	case KindDateTime:
		return "date"
	case KindDuration:
		return "time"
	}
	return "float"
}

var kindAliases = map[string]Kind{
	"boolean": KindBool,
	"int":     KindInt64,
	"float64": KindFloat,
	"date":    KindDateTime,
	"time":    KindDuration,
}

// ParseKind maps a kind name, or an office:value-type name, to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	if k, ok := kindAliases[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("unknown value kind %q", name)
}

// Value holds one parsed scalar together with its kind.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	cur  Currency
	t    time.Time
	d    time.Duration
}

func NewBool(b bool) Value              { return Value{kind: KindBool, b: b} }
func NewInt64(i int64) Value            { return Value{kind: KindInt64, i: i} }
func NewFloat(f float64) Value          { return Value{kind: KindFloat, f: f} }
func NewCurrency(c Currency) Value      { return Value{kind: KindCurrency, cur: c} }
func NewDateTime(t time.Time) Value     { return Value{kind: KindDateTime, t: t.UTC()} }
func NewDuration(d time.Duration) Value { return Value{kind: KindDuration, d: d} }

// Parse parses text as kind.
func Parse(kind Kind, text string) (Value, error) {
	v := Value{kind: kind}
	var err error

	switch kind {
	case KindBool:
		v.b, err = ParseBool(text)
	case KindInt16:
		var n int16
		n, err = ParseInt16(text)
		v.i = int64(n)
	case KindInt32:
		var n int32
		n, err = ParseInt32(text)
		v.i = int64(n)
	case KindInt64:
		v.i, err = ParseInt64(text)
	case KindUint32:
		var n uint32
		n, err = ParseUint32(text)
		v.i = int64(n)
	case KindFloat:
		v.f, err = ParseFloat64(text)
	case KindCurrency:
		v.cur, err = ParseCurrency(text)
	case KindDateTime:
		v.t, err = ParseDateTime(text)
	case KindDuration:
		v.d, err = ParseDuration(text)
	default:
		return Value{}, fmt.Errorf("unknown value kind %d", int(kind))
	}

	if err != nil {
		return Value{}, err
	}
	return v, nil
}

func (v Value) Kind() Kind              { return v.kind }
func (v Value) Bool() bool              { return v.b }
func (v Value) Int() int64              { return v.i }
func (v Value) Float() float64          { return v.f }
func (v Value) Currency() Currency      { return v.cur }
func (v Value) Time() time.Time         { return v.t }
func (v Value) Duration() time.Duration { return v.d }

// String returns the canonical text of v, which Parse accepts for the same
// kind.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return FormatBool(v.b)
	case KindInt16, KindInt32, KindInt64, KindUint32:
		return fmt.Sprint(v.i)
	case KindFloat:
		return FormatFloat64(v.f)
	case KindCurrency:
		return v.cur.String()
	case KindDateTime:
		return FormatDateTime(v.t)
	case KindDuration:
		return FormatDuration(v.d)
	}
	return ""
}
