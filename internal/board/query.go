package board

import "slices"

const (
	// AnyProblem matches every problem in a SubmissionFilter.
	AnyProblem = -1
	// NoProblem matches no problem; it stands in for a letter outside A-Z.
	NoProblem = -2
)

type SubmissionFilter struct {
	Problem int
	Verdict Verdict
}

func (f SubmissionFilter) match(s Submission) bool {
	if f.Problem != AnyProblem && f.Problem != s.Problem {
		return false
	}
	return f.Verdict == AnyVerdict || f.Verdict == s.Verdict
}

// Ranking returns the 1-based rank of a team in the last snapshot. Before
// the first flush teams are ranked by name.
func (b *Board) Ranking(team string) (int, error) {
	t, ok := b.teams[team]
	if !ok {
		return 0, ErrTeamNotFound
	}
	order := b.snapshot
	if !b.flushed {
		order = b.byName()
	}
	pos := slices.Index(order, t)
	if pos < 0 {
		// registered after the snapshot was taken
		pos = len(order)
	}
	return pos + 1, nil
}

// LastSubmission returns the most recent submission of the team matching f.
func (b *Board) LastSubmission(team string, f SubmissionFilter) (Submission, bool, error) {
	t, ok := b.teams[team]
	if !ok {
		return Submission{}, false, ErrTeamNotFound
	}
	for i := len(t.history) - 1; i >= 0; i-- {
		if f.match(t.history[i]) {
			return t.history[i], true, nil
		}
	}
	return Submission{}, false, nil
}
