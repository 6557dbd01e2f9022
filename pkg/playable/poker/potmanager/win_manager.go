package potmanager

import (
	"chatpoker/pkg/playable/poker/handanalyzer"
)

// WinManager keeps track of the strongest hands added to it
type WinManager struct {
	best    *handanalyzer.Ranking
	winners []Participant
}

// NewWinManager returns an empty WinManager
func NewWinManager() *WinManager {
	return &WinManager{
		winners: make([]Participant, 0),
	}
}

// AddParticipant records a participant's hand
// Participants that tie the best hand so far share the win in the order they were added.
func (w *WinManager) AddParticipant(p Participant, ranking *handanalyzer.Ranking) {
	if w.best == nil {
		w.best = ranking
		w.winners = append(w.winners, p)
		return
	}

	switch c := handanalyzer.Compare(ranking, w.best); {
	case c > 0:
		w.best = ranking
		w.winners = []Participant{p}
	case c == 0:
		w.winners = append(w.winners, p)
	}
}

// Winners returns the participants holding the best hand
func (w *WinManager) Winners() []Participant {
	return w.winners
}

// Best returns the best hand, or nil if nobody was added
func (w *WinManager) Best() *handanalyzer.Ranking {
	return w.best
}
