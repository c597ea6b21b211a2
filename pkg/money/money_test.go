package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Tienda-api/pkg/money"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "$0"},
		{"1234567", "$1.234.567"},
		{"40000.00", "$40.000"},
		{"-20000", "-$20.000"},
		{"19999.6", "$20.000"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, money.Format(decimal.RequireFromString(tc.in)))
		})
	}
}
