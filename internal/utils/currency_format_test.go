package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "Rp0"},
		{500, "Rp500"},
		{1000, "Rp1.000"},
		{15000, "Rp15.000"},
		{250000, "Rp250.000"},
		{1250000, "Rp1.250.000"},
		{-7000, "-Rp7.000"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatRupiah(decimal.NewFromInt(c.amount)))
	}
}
