// Package board implements the contest scoreboard: submission ledger, visible
// score computation, ranking, freeze and the stepwise scroll reveal.
//
// A Board is not safe for concurrent use. Every operation runs to completion
// and either succeeds or returns an error with the state left untouched.
package board

import (
	"fmt"
	"slices"
	"strings"
)

// PenaltyPerWrong is the time charged for each rejection before acceptance.
const PenaltyPerWrong = 20

type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseLive
	PhaseFrozen
	// PhasePostFreeze follows a completed scroll and behaves like PhaseLive.
	PhasePostFreeze
)

var phaseNames = [...]string{
	PhaseNotStarted: "not_started",
	PhaseLive:       "live",
	PhaseFrozen:     "frozen",
	PhasePostFreeze: "post_freeze",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	for i, name := range phaseNames {
		if name == string(text) {
			*p = Phase(i)
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", text)
}

type Board struct {
	phase    Phase
	started  bool
	duration int
	problems int

	teams  map[string]*Team
	roster []*Team

	// snapshot is the order fixed by the last flush or scroll.
	snapshot []*Team
	flushed  bool
}

func New() *Board {
	return &Board{
		teams: make(map[string]*Team),
	}
}

func (b *Board) Phase() Phase {
	return b.phase
}

func (b *Board) Frozen() bool {
	return b.phase == PhaseFrozen
}

func (b *Board) Started() bool {
	return b.started
}

func (b *Board) Duration() int {
	return b.duration
}

func (b *Board) ProblemCount() int {
	return b.problems
}

func (b *Board) TeamCount() int {
	return len(b.roster)
}

// AddTeam registers a team. Registration closes when the contest starts.
func (b *Board) AddTeam(name string) error {
	if b.started {
		return ErrStartedAlready
	}
	if _, ok := b.teams[name]; ok {
		return ErrDuplicateTeam
	}
	t := newTeam(name, b.problems)
	b.teams[name] = t
	b.roster = append(b.roster, t)
	return nil
}

// Start fixes the problem count and locks the registry.
func (b *Board) Start(duration, problems int) error {
	if b.started {
		return ErrStartedAlready
	}
	problems = min(max(problems, 0), MaxProblems)
	b.started = true
	b.duration = duration
	b.problems = problems
	for _, t := range b.roster {
		t.problems = make([]ProblemRecord, problems)
	}
	if b.phase == PhaseNotStarted {
		b.phase = PhaseLive
	}
	return nil
}

// Flush recomputes the visible board and makes its order the ranking snapshot.
func (b *Board) Flush() []Row {
	b.rebuildVisibleMetrics()
	b.snapshot = b.order()
	b.flushed = true
	return b.rows(b.snapshot)
}

// Standings renders the current visible board without touching the snapshot.
func (b *Board) Standings() []Row {
	b.rebuildVisibleMetrics()
	return b.rows(b.order())
}

func (b *Board) byName() []*Team {
	teams := slices.Clone(b.roster)
	slices.SortFunc(teams, func(x, y *Team) int {
		return strings.Compare(x.name, y.name)
	})
	return teams
}
