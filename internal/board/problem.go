package board

// MaxProblems is the number of problem letters available, A through Z.
const MaxProblems = 26

// Submission is one judged attempt, kept in arrival order.
type Submission struct {
	Problem int
	Verdict Verdict
	Time    int
}

// ProblemName returns the letter of a zero-based problem index.
func ProblemName(idx int) string {
	return string(rune('A' + idx))
}

// ProblemIndex parses a problem letter.
func ProblemIndex(name string) (int, bool) {
	if len(name) != 1 || name[0] < 'A' || name[0] > 'Z' {
		return 0, false
	}
	return int(name[0] - 'A'), true
}

// ProblemRecord is the state of one problem for one team.
type ProblemRecord struct {
	WrongBeforeAccept int
	// FirstAcceptTime is zero while the problem is unsolved; valid timestamps start at 1.
	FirstAcceptTime int

	SolvedBeforeFreeze bool
	WrongBeforeFreeze  int
	// Captured holds submissions that arrived during a freeze on a problem that
	// was unsolved when the freeze began.
	Captured []Submission
}

func (p *ProblemRecord) Solved() bool {
	return p.FirstAcceptTime > 0
}

// Frozen reports whether the problem is hidden by the current freeze.
func (p *ProblemRecord) Frozen() bool {
	return !p.SolvedBeforeFreeze && len(p.Captured) > 0
}

// apply is the live-mode update. Anything after the first acceptance is inert.
func (p *ProblemRecord) apply(s Submission) {
	if p.Solved() {
		return
	}
	if s.Verdict.IsAccepted() {
		p.FirstAcceptTime = s.Time
		return
	}
	p.WrongBeforeAccept++
}

func (p *ProblemRecord) freeze() {
	p.SolvedBeforeFreeze = p.Solved()
	p.WrongBeforeFreeze = p.WrongBeforeAccept
	p.Captured = nil
}

// thaw replays the captured submissions in arrival order and drops them.
func (p *ProblemRecord) thaw() {
	for _, s := range p.Captured {
		p.apply(s)
	}
	p.Captured = nil
}
