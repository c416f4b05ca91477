package board

// Freeze snapshots every problem record and starts capturing submissions on
// problems that are still unsolved.
func (b *Board) Freeze() error {
	if b.phase == PhaseFrozen {
		return ErrAlreadyFrozen
	}
	for _, t := range b.roster {
		for i := range t.problems {
			t.problems[i].freeze()
		}
	}
	b.phase = PhaseFrozen
	return nil
}
