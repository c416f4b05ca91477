package board

import "slices"

// ScrollResult is everything a scroll reveals, in output order.
type ScrollResult struct {
	Before  []Row
	Changes []RankChange
	After   []Row
}

// Scroll unfreezes problems one at a time, always the smallest frozen problem
// of the lowest ranked team that still has one, and records every step that
// moves that team up.
func (b *Board) Scroll() (*ScrollResult, error) {
	if b.phase != PhaseFrozen {
		return nil, ErrNotFrozen
	}
	res := &ScrollResult{Before: b.Flush()}

	current := b.snapshot
	for {
		t := lowestFrozen(current)
		if t == nil {
			break
		}
		t.problems[t.firstFrozen()].thaw()

		b.rebuildVisibleMetrics()
		next := b.order()

		oldPos, newPos := slices.Index(current, t), slices.Index(next, t)
		if newPos < oldPos {
			res.Changes = append(res.Changes, RankChange{
				Team:     t.name,
				Replaced: current[newPos].name,
				Solved:   t.solved,
				Penalty:  t.penalty,
			})
		}
		current = next
	}

	b.phase = PhasePostFreeze
	b.snapshot = current
	b.flushed = true
	res.After = b.rows(current)
	return res, nil
}

func lowestFrozen(order []*Team) *Team {
	for i := len(order) - 1; i >= 0; i-- {
		if order[i].hasFrozen() {
			return order[i]
		}
	}
	return nil
}
