package seo

import "testing"

func TestCTRByPositionStrictlyDecreasingTop10(t *testing.T) {
	for rank := 1; rank < 10; rank++ {
		if CTRByPosition(rank) <= CTRByPosition(rank + 1) {
			t.Errorf("CTRByPosition(%d) = %v, want > CTRByPosition(%d) = %v",
				rank, CTRByPosition(rank), rank+1, CTRByPosition(rank+1))
		}
	}
}

func TestCTRByPosition(t *testing.T) {
	tests := []struct {
		name string
		rank int
		want float64
	}{
		{"rank 1", 1, 31.7},
		{"rank 10", 10, 2.4},
		{"rank 11 falls to flat default", 11, 2.0},
		{"rank 20", 20, 2.0},
		{"rank 21", 21, 0.5},
		{"rank 50", 50, 0.5},
		{"rank 51", 51, 0.1},
		{"rank 1000", 1000, 0.1},
		{"zero means not ranked", 0, 0},
		{"negative means not ranked", -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CTRByPosition(tt.rank); got != tt.want {
				t.Errorf("CTRByPosition(%d) = %v, want %v", tt.rank, got, tt.want)
			}
		})
	}
}
