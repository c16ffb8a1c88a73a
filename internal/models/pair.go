package models

import (
	"encoding/json"
	"fmt"
)

// Pair is a majority/minority word pair. It is stored as a two-element JSON array.
type Pair struct {
	Majority string
	Minority string
}

func (p Pair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{p.Majority, p.Minority})
}

func (p *Pair) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("pair must have 2 words, got %d", len(raw))
	}
	p.Majority, p.Minority = raw[0], raw[1]
	return nil
}

// Pick is one pair chosen by the word source together with its category
type Pick struct {
	Pair     Pair
	Category string
}
