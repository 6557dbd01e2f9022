package potmanager

import (
	"encoding/json"
	"sort"
)

// Pot is a single pot with the participants eligible to win it
type Pot struct {
	Amount   int
	Eligible []Participant
	IsMain   bool
}

type potJSON struct {
	Amount   int     `json:"amount"`
	Eligible []int64 `json:"eligible"`
	IsMain   bool    `json:"isMain"`
}

// MarshalJSON provides custom marshalling
func (p Pot) MarshalJSON() ([]byte, error) {
	ids := make([]int64, len(p.Eligible))
	for i, pt := range p.Eligible {
		ids[i] = pt.ID()
	}

	return json.Marshal(potJSON{
		Amount:   p.Amount,
		Eligible: ids,
		IsMain:   p.IsMain,
	})
}

// Label returns "main" for the main pot and "side" for the rest
func (p *Pot) Label() string {
	if p.IsMain {
		return "main"
	}

	return "side"
}

// Pots is a collection of pots ordered from the main pot up
type Pots []*Pot

// Total returns the combined total of all pots
func (p Pots) Total() int {
	total := 0
	for _, pot := range p {
		total += pot.Amount
	}

	return total
}

// BuildPots splits everything participants put in this hand into a main pot and side pots
//
// Each distinct total bet among participants still in the hand opens a tier. A tier's pot
// holds what every participant, folded or not, put in between the previous tier and this one,
// and only the participants who reached the tier are eligible to win it. Anything a folded
// participant put in above the highest tier is added to the last pot.
//
// participants must be in seat order; the eligible lists keep that order.
func BuildPots(participants []Participant) Pots {
	levels := make([]int, 0, len(participants))
	seen := make(map[int]bool)
	for _, pt := range participants {
		if pt.IsFolded() || pt.TotalBet() <= 0 || seen[pt.TotalBet()] {
			continue
		}

		seen[pt.TotalBet()] = true
		levels = append(levels, pt.TotalBet())
	}

	sort.Ints(levels)

	pots := make(Pots, 0, len(levels))
	prev := 0
	for _, level := range levels {
		pot := &Pot{
			Eligible: make([]Participant, 0, len(participants)),
			IsMain:   len(pots) == 0,
		}

		for _, pt := range participants {
			pot.Amount += clamp(pt.TotalBet(), prev, level) - prev
			if !pt.IsFolded() && pt.TotalBet() >= level {
				pot.Eligible = append(pot.Eligible, pt)
			}
		}

		pots = append(pots, pot)
		prev = level
	}

	excess := 0
	for _, pt := range participants {
		if pt.TotalBet() > prev {
			excess += pt.TotalBet() - prev
		}
	}

	if excess > 0 {
		if len(pots) == 0 {
			pots = append(pots, &Pot{
				Eligible: activeParticipants(participants),
				IsMain:   true,
			})
		}

		pots[len(pots)-1].Amount += excess
	}

	return pots
}

func activeParticipants(participants []Participant) []Participant {
	active := make([]Participant, 0, len(participants))
	for _, pt := range participants {
		if !pt.IsFolded() {
			active = append(active, pt)
		}
	}

	return active
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}

	if v > high {
		return high
	}

	return v
}

// Split divides amount between winners
// Every winner gets an equal share; the chips that do not divide evenly go out one at a time
// to the first winners in the order given.
func Split(amount int, winners []Participant) map[int64]int {
	shares := make(map[int64]int, len(winners))
	if len(winners) == 0 {
		return shares
	}

	each := amount / len(winners)
	remainder := amount % len(winners)
	for i, pt := range winners {
		share := each
		if i < remainder {
			share++
		}

		shares[pt.ID()] += share
	}

	return shares
}
