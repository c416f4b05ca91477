package board

// Team is a registered contestant. All fields are owned by the Board.
type Team struct {
	name     string
	problems []ProblemRecord
	history  []Submission

	// Visible metrics, rebuilt from scratch by rebuild.
	solved     int
	penalty    int
	solveTimes []int
}

func newTeam(name string, problems int) *Team {
	return &Team{
		name:     name,
		problems: make([]ProblemRecord, problems),
	}
}

func (t *Team) Name() string {
	return t.name
}

func (t *Team) hasFrozen() bool {
	return t.firstFrozen() >= 0
}

// firstFrozen returns the smallest frozen problem index, or -1.
func (t *Team) firstFrozen() int {
	for i := range t.problems {
		if t.problems[i].Frozen() {
			return i
		}
	}
	return -1
}
