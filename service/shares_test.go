package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeShares(t *testing.T) {
	henPrice := decimal.NewFromInt(700)
	bonusRate := decimal.RequireFromString("0.05")

	t.Run("500 KSh buys a fraction of a hen plus bonus", func(t *testing.T) {
		shares := ComputeShares(decimal.NewFromInt(500), henPrice, bonusRate)

		assert.True(t, shares.Base.Equal(decimal.RequireFromString("0.71428571")),
			"base %s", shares.Base)
		assert.True(t, shares.Bonus.Equal(decimal.RequireFromString("0.03571429")),
			"bonus %s", shares.Bonus)
		assert.True(t, shares.Total.Equal(decimal.RequireFromString("0.75")),
			"total %s", shares.Total)
	})

	t.Run("whole hen amounts divide exactly", func(t *testing.T) {
		shares := ComputeShares(decimal.NewFromInt(7000), henPrice, bonusRate)

		assert.True(t, shares.Base.Equal(decimal.NewFromInt(10)))
		assert.True(t, shares.Bonus.Equal(decimal.RequireFromString("0.5")))
		assert.True(t, shares.Total.Equal(decimal.RequireFromString("10.5")))
	})

	t.Run("total is base plus bonus", func(t *testing.T) {
		for _, amount := range []string{"10", "123.45", "999.99", "50000"} {
			shares := ComputeShares(decimal.RequireFromString(amount), henPrice, bonusRate)
			assert.True(t, shares.Total.Equal(shares.Base.Add(shares.Bonus)),
				"amount %s: total %s != base %s + bonus %s", amount, shares.Total, shares.Base, shares.Bonus)
		}
	})

	t.Run("zero bonus rate yields no bonus shares", func(t *testing.T) {
		shares := ComputeShares(decimal.NewFromInt(500), henPrice, decimal.Zero)

		assert.True(t, shares.Bonus.IsZero())
		assert.True(t, shares.Total.Equal(shares.Base))
	})
}
