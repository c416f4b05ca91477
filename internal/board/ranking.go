package board

import (
	"cmp"
	"slices"
	"strings"
)

// missingSolve pads the shorter solve-time list; it is below every valid timestamp.
const missingSolve = -1

// compareTeams is a strict total order: negative when x outranks y.
func compareTeams(x, y *Team) int {
	if x.solved != y.solved {
		return cmp.Compare(y.solved, x.solved)
	}
	if x.penalty != y.penalty {
		return cmp.Compare(x.penalty, y.penalty)
	}
	for i := range max(len(x.solveTimes), len(y.solveTimes)) {
		tx, ty := solveTimeAt(x.solveTimes, i), solveTimeAt(y.solveTimes, i)
		if tx != ty {
			return cmp.Compare(tx, ty)
		}
	}
	return strings.Compare(x.name, y.name)
}

func solveTimeAt(times []int, i int) int {
	if i < len(times) {
		return times[i]
	}
	return missingSolve
}

// order sorts all teams by their current visible metrics.
func (b *Board) order() []*Team {
	teams := slices.Clone(b.roster)
	slices.SortFunc(teams, compareTeams)
	return teams
}
