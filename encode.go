package fundtrack

import (
	"encoding/json"
	"fmt"
	"io"
)

// EncodeState writes the state as an indented JSON document.
func EncodeState(w io.Writer, s *State) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("cannot encode state: %w", err)
	}
	return nil
}

// DecodeState reads a state document written by EncodeState. Funds with a
// nil ledger or history get empty slices, so downstream code never has to
// care whether the document spelled them out.
func DecodeState(r io.Reader) (*State, error) {
	s := NewState()
	dec := json.NewDecoder(r)
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("cannot decode state: %w", err)
	}
	normalize(s)
	return s, nil
}

func normalize(s *State) {
	if s.Funds == nil {
		s.Funds = []*Fund{}
	}
	for _, f := range s.Funds {
		if f.Transactions == nil {
			f.Transactions = []Transaction{}
		}
		if f.PriceHistory == nil {
			f.PriceHistory = []PricePoint{}
		}
	}
}
