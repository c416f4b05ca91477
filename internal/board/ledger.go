package board

import "fmt"

// Submit appends a submission to the team's history and routes it into the
// problem record according to the current phase.
func (b *Board) Submit(team string, problem int, v Verdict, at int) error {
	t, ok := b.teams[team]
	if !ok {
		return ErrTeamNotFound
	}
	if problem < 0 || problem >= len(t.problems) {
		return fmt.Errorf("%w: %s", ErrProblemOutOfRange, ProblemName(problem))
	}
	s := Submission{Problem: problem, Verdict: v, Time: at}
	t.history = append(t.history, s)
	b.record(t, s)
	return nil
}

func (b *Board) record(t *Team, s Submission) {
	p := &t.problems[s.Problem]
	if b.phase != PhaseFrozen {
		p.apply(s)
		return
	}
	if !p.SolvedBeforeFreeze {
		p.Captured = append(p.Captured, s)
		return
	}
	// SolvedBeforeFreeze is only ever set on a solved record.
	if !p.Solved() {
		panic(fmt.Sprintf("board: team %s problem %s marked solved before freeze without an acceptance",
			t.name, ProblemName(s.Problem)))
	}
	p.apply(s)
}
