package interpret

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldCoercesInOrder(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(IntValue(4), Field("4"))
	assert.Equal(IntValue(-12), Field("-12"))
	assert.Equal(FloatValue(4.0), Field("4.0"))
	assert.Equal(FloatValue(-1.0), Field("-1.0"))
	assert.Equal(StrValue("staff1"), Field("staff1"))
	assert.Equal(StrValue(""), Field(""))
	assert.Equal(StrValue("1-1"), Field("1-1"))
}

func TestFieldTrimsBeforeParsingButKeepsOriginalString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(IntValue(3), Field(" 3 "))
	assert.Equal(StrValue(" C Maj "), Field(" C Maj "))
}

func TestFieldRationalLiterals(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(FloatValue(0.25), FieldRational("1/4", false))
	assert.Equal(FloatValue(1.4375), FieldRational("23/16", false))
	// not a strict integer/integer literal
	assert.Equal(StrValue("1/4/2"), FieldRational("1/4/2", false))
	assert.Equal(StrValue("-1/4"), FieldRational("-1/4", false))
	assert.Equal(StrValue("C Maj/A min"), FieldRational("C Maj/A min", false))
}

func TestFieldRationalSums(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(FloatValue(3.5), FieldRational("1+2.5", true))
	assert.Equal(IntValue(3), FieldRational("1+2", true))
	assert.Equal(FloatValue(0.75), FieldRational("1/4+1/2", true))
	// any non-numeric part leaves the token unchanged
	assert.Equal(StrValue("1+x"), FieldRational("1+x", true))
	assert.Equal(StrValue("+x"), FieldRational("+x", true))
	// sums are off by default
	assert.Equal(StrValue("1+2"), FieldRational("1+2", false))
}

func TestStringRendering(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{IntValue(0), "0"},
		{IntValue(-12), "-12"},
		{FloatValue(4.0), "4.0"},
		{FloatValue(-1.0), "-1.0"},
		{FloatValue(0.25), "0.25"},
		{StrValue("staff1"), "staff1"},
		{StrValue(""), ""},
	}
	for _, c := range cases {
		name := fmt.Sprintf("render %v", c.want)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.want, c.v.String())
		})
	}
}
