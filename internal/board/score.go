package board

import (
	"cmp"
	"slices"
)

// rebuildVisibleMetrics recomputes every team's solved count, penalty and
// solve-time list from the problem records. Nothing is patched incrementally.
func (b *Board) rebuildVisibleMetrics() {
	frozen := b.phase == PhaseFrozen
	for _, t := range b.roster {
		t.rebuild(frozen)
	}
}

func (t *Team) rebuild(frozen bool) {
	t.solved = 0
	t.penalty = 0
	t.solveTimes = t.solveTimes[:0]
	for i := range t.problems {
		p := &t.problems[i]
		if frozen && p.Frozen() {
			continue
		}
		if !p.Solved() {
			continue
		}
		t.solved++
		t.penalty += PenaltyPerWrong*p.WrongBeforeAccept + p.FirstAcceptTime
		t.solveTimes = append(t.solveTimes, p.FirstAcceptTime)
	}
	slices.SortFunc(t.solveTimes, func(x, y int) int {
		return cmp.Compare(y, x)
	})
}
