package game

import "github.com/shopspring/decimal"

// Floor returns floor(stake × multiplier) without binary float drift.
func Floor(stake int, multiplier float64) int {
	return int(decimal.NewFromInt(int64(stake)).
		Mul(decimal.NewFromFloat(multiplier)).
		Floor().
		IntPart())
}

// FloorRatio returns floor(stake × num / den) exactly.
func FloorRatio(stake int, num, den decimal.Decimal) int {
	if den.IsZero() {
		return 0
	}
	q, _ := decimal.NewFromInt(int64(stake)).Mul(num).QuoRem(den, 0)
	return int(q.IntPart())
}
