package api

import (
	"slices"
	"sync"

	"github.com/ZJUSCT/CSBoard/internal/board"
	"github.com/ZJUSCT/CSBoard/internal/pubsub"
)

const (
	StandingsTopic = "standings"

	streamStandings  = "standings"
	streamRankChange = "rank_change"
)

// Feed keeps the last published board and the rank changes of the latest
// scroll for spectators. It only sees what the scoreboard publishes, so
// frozen results stay hidden until they are scrolled.
type Feed struct {
	mu        sync.RWMutex
	broker    *pubsub.Broker
	standings board.Standings
	published bool
	reveal    []board.RankChange
}

func NewFeed(broker *pubsub.Broker) *Feed {
	return &Feed{broker: broker}
}

func (f *Feed) OnSubmit(string, board.Submission) {}

func (f *Feed) OnStandings(s board.Standings) {
	s.Rows = slices.Clone(s.Rows)

	f.mu.Lock()
	f.standings = s
	f.published = true
	if s.Reason == board.ReasonScrollBefore {
		f.reveal = nil
	}
	f.mu.Unlock()

	f.broker.Publish(StandingsTopic, pubsub.FormatMessage(streamStandings, s))
}

func (f *Feed) OnRankChange(c board.RankChange) {
	f.mu.Lock()
	f.reveal = append(f.reveal, c)
	f.mu.Unlock()

	f.broker.Publish(StandingsTopic, pubsub.FormatMessage(streamRankChange, c))
}

// Standings returns the last published board, or false if none was published.
func (f *Feed) Standings() (board.Standings, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.standings, f.published
}

func (f *Feed) Team(name string) (board.Row, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, row := range f.standings.Rows {
		if row.Team == name {
			return row, true
		}
	}
	return board.Row{}, false
}

func (f *Feed) Reveal() []board.RankChange {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.reveal)
}
