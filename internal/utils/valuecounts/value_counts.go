// Package valuecounts stores unordered counts of integer values, serialized
// to JSON as a sorted array of (value, count) pairs for deterministic output.
package valuecounts

import (
	"encoding/json"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ValueCounts maps a value to the number of times it was observed.
type ValueCounts map[int]int

// Pair stores a single value and its associated count.
type Pair struct {
	Value int `json:"value"`
	Count int `json:"count"`
}

func New() ValueCounts {
	return ValueCounts{}
}

// Count tallies the occurrences of each value in the input.
func Count(values []int) ValueCounts {
	vc := New()
	for _, value := range values {
		vc[value]++
	}
	return vc
}

// ToPairs converts this ValueCounts into a list of (value, count) pairs,
// sorted by value so the output is deterministic. An empty ValueCounts
// produces an empty slice.
func (vc ValueCounts) ToPairs() []Pair {
	pairs := make([]Pair, 0, len(vc))
	values := maps.Keys(vc)
	slices.Sort(values)
	for _, value := range values {
		pairs = append(pairs, Pair{Value: value, Count: vc[value]})
	}
	return pairs
}

// FromPairs converts a list of (value, count) pairs back into ValueCounts.
// A value occurring more than once in the list is an error.
func FromPairs(pairs []Pair) (ValueCounts, error) {
	vc := New()
	for _, pair := range pairs {
		if _, seen := vc[pair.Value]; seen {
			return nil, fmt.Errorf("value occurs multiple times: %d", pair.Value)
		}
		vc[pair.Value] = pair.Count
	}
	return vc, nil
}

// MarshalJSON serialises this ValueCounts as a JSON array of pairs.
func (vc ValueCounts) MarshalJSON() ([]byte, error) {
	return json.Marshal(vc.ToPairs())
}

// UnmarshalJSON restores a ValueCounts serialised with MarshalJSON,
// discarding any existing counts. If the serialised data holds multiple
// counts for one value, an error is returned and vc is left unmodified.
func (vc *ValueCounts) UnmarshalJSON(data []byte) error {
	var pairs []Pair
	if err := json.Unmarshal(data, &pairs); err != nil {
		return err
	}
	restored, err := FromPairs(pairs)
	if err != nil {
		return err
	}
	*vc = restored
	return nil
}
