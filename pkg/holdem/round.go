package holdem

import (
	"encoding/json"
	"fmt"
)

// Round is a betting round of a hand
type Round int

// constants for Round
const (
	Preflop Round = iota
	Flop
	Turn
	River
	Finished
)

func (r Round) String() string {
	switch r {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Finished:
		return "finished"
	}

	return ""
}

// MarshalJSON encodes the round as its name
func (r Round) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON decodes a round name
func (r *Round) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}

	for candidate := Preflop; candidate <= Finished; candidate++ {
		if candidate.String() == name {
			*r = candidate
			return nil
		}
	}

	return fmt.Errorf("unknown round: %q", name)
}
