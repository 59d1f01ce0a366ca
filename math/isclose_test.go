package math_test

import (
	"testing"

	"github.com/cockroachdb/apd"
	"github.com/stretchr/testify/assert"

	"github.com/decalc/decmath"
	"github.com/decalc/decmath/math"
)

func TestIsClose(t *testing.T) {
	td := []struct {
		a, b   string
		rel    *apd.Decimal
		abs    *apd.Decimal
		expect bool
	}{
		{"1", "1", nil, nil, true},
		{"1", "1.0000000001", nil, nil, true},
		{"1", "1.000000002", nil, nil, false},
		{"-1", "-1.0000000001", nil, nil, true},
		{"1", "-1", nil, nil, false},
		{"0", "1E-20", nil, nil, false},
		{"0", "1E-20", nil, apd.New(1, -19), true},
		{"0", "1E-20", nil, apd.New(1, -21), false},
		{"100", "101", apd.New(1, -2), nil, true},
		{"100", "102", apd.New(1, -2), nil, false},
		{"100", "101", apd.New(-1, -2), nil, false},
		{"100", "101", apd.New(0, 0), apd.New(1, 0), true},
		{"Infinity", "Infinity", nil, nil, true},
		{"-Infinity", "-Infinity", nil, nil, true},
		{"Infinity", "-Infinity", nil, nil, false},
		{"Infinity", "1E+100", nil, apd.New(1, 200), false},
		{"NaN", "NaN", nil, nil, false},
		{"NaN", "1", nil, apd.New(1, 10), false},
		{"1", "NaN", nil, nil, false},
	}
	for _, d := range td {
		a, b := decmath.MustParse(d.a), decmath.MustParse(d.b)
		assert.Equalf(t, d.expect, math.IsClose(a, b, d.rel, d.abs), "IsClose(%s, %s, %v, %v)", d.a, d.b, d.rel, d.abs)
		assert.Equalf(t, d.expect, math.IsClose(b, a, d.rel, d.abs), "IsClose(%s, %s, %v, %v)", d.b, d.a, d.rel, d.abs)
	}
}
