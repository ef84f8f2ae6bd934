package models

import (
	"encoding/json"
	"fmt"
)

// Position is a 1-based search-result rank, or Unranked when the domain does
// not appear in the results. Using an explicit option type instead of a
// nullable int keeps "forgot the nil check" bugs out of the derivation code.
type Position struct {
	rank   int
	ranked bool
}

// Ranked returns a Position at the given rank. Ranks below 1 are treated as
// unranked rather than rejected, since upstream APIs occasionally report 0
// for missing entries.
func Ranked(rank int) Position {
	if rank < 1 {
		return Unranked()
	}
	return Position{rank: rank, ranked: true}
}

// Unranked returns the absent position.
func Unranked() Position {
	return Position{}
}

// Rank returns the rank and whether the position is ranked.
func (p Position) Rank() (int, bool) {
	return p.rank, p.ranked
}

// IsRanked reports whether the position holds a rank.
func (p Position) IsRanked() bool {
	return p.ranked
}

// Better reports whether p is a strictly better (lower) rank than other.
// A ranked position always beats an unranked one.
func (p Position) Better(other Position) bool {
	if !p.ranked {
		return false
	}
	if !other.ranked {
		return true
	}
	return p.rank < other.rank
}

func (p Position) String() string {
	if !p.ranked {
		return "unranked"
	}
	return fmt.Sprintf("#%d", p.rank)
}

// MarshalJSON encodes a ranked position as its rank and an unranked one as null,
// matching the wire shape the dashboard frontend expects.
func (p Position) MarshalJSON() ([]byte, error) {
	if !p.ranked {
		return []byte("null"), nil
	}
	return json.Marshal(p.rank)
}

// UnmarshalJSON accepts null or a positive integer.
func (p *Position) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = Unranked()
		return nil
	}
	var rank int
	if err := json.Unmarshal(data, &rank); err != nil {
		return err
	}
	*p = Ranked(rank)
	return nil
}
