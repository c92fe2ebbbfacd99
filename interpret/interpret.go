// Package interpret converts raw match line tokens into typed scalar values.
package interpret

import (
	"regexp"
	"strconv"
	"strings"
)

var rationalPattern = regexp.MustCompile(`^([0-9]+)/([0-9]+)$`)

type Kind uint8

const (
	KindInt Kind = iota
	KindFloat
	KindStr
)

// Value is a token interpreted as an integer, a float or, failing both,
// the original string.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
	Str   string
}

func IntValue(i int64) Value {
	return Value{Kind: KindInt, Int: i}
}

func FloatValue(f float64) Value {
	return Value{Kind: KindFloat, Float: f}
}

func StrValue(s string) Value {
	return Value{Kind: KindStr, Str: s}
}

func (v Value) IsNumber() bool {
	return v.Kind == KindInt || v.Kind == KindFloat
}

// Num returns the numeric value as a float. Strings count as 0.
func (v Value) Num() float64 {
	switch v.Kind {
	case KindInt:
		return float64(v.Int)
	case KindFloat:
		return v.Float
	default:
		return 0
	}
}

// String renders the value the way a match line spells it: integers bare,
// floats always with a decimal point, strings as-is.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		s := strconv.FormatFloat(v.Float, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	default:
		return v.Str
	}
}

// Field converts a token to int, if not possible, to float, otherwise
// returns the token itself as a string value. It never fails.
func Field(token string) Value {
	t := strings.TrimSpace(token)
	if i, err := strconv.ParseInt(t, 10, 64); err == nil {
		return IntValue(i)
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil {
		return FloatValue(f)
	}
	return StrValue(token)
}

// FieldRational converts a token like Field and additionally accepts a
// strict integer/integer rational literal, returned as a float. With
// allowAdditions set, a token of the form A+B+... where every part is
// itself numeric interprets as the sum of its parts; otherwise the token
// is left untouched.
func FieldRational(token string, allowAdditions bool) Value {
	v := Field(token)
	if v.Kind != KindStr {
		return v
	}
	if m := rationalPattern.FindStringSubmatch(v.Str); m != nil {
		num, _ := strconv.ParseFloat(m[1], 64)
		den, _ := strconv.ParseFloat(m[2], 64)
		return FloatValue(num / den)
	}
	if allowAdditions {
		parts := strings.Split(v.Str, "+")
		if len(parts) > 1 {
			allInts := true
			var sum float64
			for _, p := range parts {
				pv := FieldRational(p, false)
				if !pv.IsNumber() {
					return v
				}
				if pv.Kind != KindInt {
					allInts = false
				}
				sum += pv.Num()
			}
			if allInts {
				return IntValue(int64(sum))
			}
			return FloatValue(sum)
		}
	}
	return v
}
