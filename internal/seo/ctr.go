// Package seo implements the competitive-metrics derivation pipeline: pure
// functions that turn raw keyword/position rows into difficulty, potential
// and domain-level competitive aggregates for the dashboard.
package seo

// ctrByPosition maps a top-10 search rank to its expected click-through rate
// in percent. Values are industry averages; the contract is only that they
// decrease strictly from rank 1 to 10.
var ctrByPosition = map[int]float64{
	1:  31.7,
	2:  24.7,
	3:  18.7,
	4:  13.6,
	5:  9.5,
	6:  6.2,
	7:  4.3,
	8:  3.1,
	9:  2.6,
	10: 2.4,
}

// CTRByPosition returns the expected click-through rate in percent for a
// 1-based search rank. Ranks beyond the top 10 fall back to flat defaults;
// rank 0 or negative means "not ranked" and yields 0.
func CTRByPosition(rank int) float64 {
	switch {
	case rank < 1:
		return 0
	case rank <= 10:
		return ctrByPosition[rank]
	case rank <= 20:
		return 2.0
	case rank <= 50:
		return 0.5
	default:
		return 0.1
	}
}
