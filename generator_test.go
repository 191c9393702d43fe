package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringifyLiterals(t *testing.T) {
	cases := []struct {
		v    *Value
		want string
	}{
		{NewNull(), "null"},
		{NewBool(true), "true"},
		{NewBool(false), "false"},
	}
	for _, c := range cases {
		out, err := Stringify(c.v)
		require.NoError(t, err)
		assert.Equal(t, c.want, out)
	}
}

func TestStringifyNumberUsesShortestRoundTripForm(t *testing.T) {
	cases := []struct {
		n    float64
		want string
	}{
		{0, "0"},
		{123, "123"},
		{1.5, "1.5"},
		{-1.5, "-1.5"},
		{100, "100"},
	}
	for _, c := range cases {
		out, err := Stringify(NewNumber(c.n))
		require.NoError(t, err)
		assert.Equal(t, c.want, out)
	}
}

func TestStringifyStringEscaping(t *testing.T) {
	cases := []struct {
		s    string
		want string
	}{
		{"abc", `"abc"`},
		{"\"", `"\""`},
		{"\\", `"\\"`},
		{"\b", `"\b"`},
		{"\f", `"\f"`},
		{"\n", `"\n"`},
		{"\r", `"\r"`},
		{"\t", `"\t"`},
		{"/", `"/"`}, // forward slash is never escaped on output
		{string([]byte{0x01}), `"\u0001"`},
		{string([]byte{0x1f}), `"\u001F"`}, // uppercase hex digits
	}
	for _, c := range cases {
		out, err := Stringify(NewString(c.s))
		require.NoError(t, err, c.s)
		assert.Equal(t, c.want, out, c.s)
	}
}

func TestStringifyArrayAndObject(t *testing.T) {
	v, err := ParseString(`[1,"two",null,true,[3],{"k":4}]`)
	require.NoError(t, err)
	out, err := Stringify(v)
	require.NoError(t, err)
	assert.Equal(t, `[1,"two",null,true,[3],{"k":4}]`, out)
}

func TestStringifyEmptyArrayAndObject(t *testing.T) {
	out, err := Stringify(NewArray(0))
	require.NoError(t, err)
	assert.Equal(t, "[]", out)

	out, err = Stringify(NewObject(0))
	require.NoError(t, err)
	assert.Equal(t, "{}", out)
}

func TestStringifyObjectPreservesInsertionOrderIncludingDuplicateKeys(t *testing.T) {
	v := NewObject(0)
	for _, k := range []string{"b", "a", "b"} {
		slot, _ := v.SetObjectValue(k)
		slot.SetNumber(1)
	}
	out, err := Stringify(v)
	require.NoError(t, err)
	assert.Equal(t, `{"b":1,"a":1,"b":1}`, out)
}

func TestStringifyOutputHasNoExtraneousWhitespace(t *testing.T) {
	v, err := ParseString(`  { "a" :  1 ,  "b" : [ 1 , 2 ] }  `)
	require.NoError(t, err)
	out, err := Stringify(v)
	require.NoError(t, err)
	assert.NotContains(t, out, " ")
	assert.NotContains(t, out, "\n")
	assert.NotContains(t, out, "\t")
}

func TestStringifyParseStringifyIsAFixedPoint(t *testing.T) {
	inputs := []string{
		`null`,
		`true`,
		`false`,
		`0`,
		`-123.456e2`,
		`"hello\nworld"`,
		`[]`,
		`{}`,
		`[1,2,3]`,
		`{"a":1,"b":[2,3],"c":{"d":null}}`,
	}
	for _, in := range inputs {
		v, err := ParseString(in)
		require.NoError(t, err, in)
		out, err := Stringify(v)
		require.NoError(t, err, in)

		v2, err := ParseString(out)
		require.NoError(t, err, out)
		out2, err := Stringify(v2)
		require.NoError(t, err, out)

		assert.Equal(t, out, out2, "stringify output must be a fixed point under parse+stringify")
	}
}

func TestStringifyLongStringTrimsScratchTailExactly(t *testing.T) {
	s := "no escapes needed here, just plain ascii text of moderate length"
	out, err := Stringify(NewString(s))
	require.NoError(t, err)
	assert.Equal(t, `"`+s+`"`, out)
}
