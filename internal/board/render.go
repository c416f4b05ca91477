package board

import (
	"strconv"
	"strings"
)

// Row is one line of a scoreboard dump.
type Row struct {
	Team    string   `json:"team" yaml:"team"`
	Rank    int      `json:"rank" yaml:"rank"`
	Solved  int      `json:"solved" yaml:"solved"`
	Penalty int      `json:"penalty" yaml:"penalty"`
	Cells   []string `json:"cells" yaml:"cells,flow"`
}

// String formats the row as "name rank solved penalty cell...".
func (r Row) String() string {
	var sb strings.Builder
	sb.WriteString(r.Team)
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(r.Rank))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(r.Solved))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(r.Penalty))
	for _, c := range r.Cells {
		sb.WriteByte(' ')
		sb.WriteString(c)
	}
	return sb.String()
}

// RankChange is emitted when a scroll step moves a team up.
type RankChange struct {
	Team     string `json:"team"`
	Replaced string `json:"replaced"`
	Solved   int    `json:"solved"`
	Penalty  int    `json:"penalty"`
}

func (c RankChange) String() string {
	return c.Team + " " + c.Replaced + " " + strconv.Itoa(c.Solved) + " " + strconv.Itoa(c.Penalty)
}

type Reason string

const (
	ReasonFlush        Reason = "flush"
	ReasonScrollBefore Reason = "scroll_before"
	ReasonScrollAfter  Reason = "scroll_after"
	ReasonFinal        Reason = "final"
)

// Standings is a published board: the rows plus why and when they were taken.
type Standings struct {
	Reason Reason `json:"reason"`
	Phase  Phase  `json:"phase"`
	Rows   []Row  `json:"rows"`
}

func (b *Board) rows(order []*Team) []Row {
	frozen := b.phase == PhaseFrozen
	rows := make([]Row, len(order))
	for i, t := range order {
		cells := make([]string, len(t.problems))
		for j := range t.problems {
			cells[j] = cell(&t.problems[j], frozen)
		}
		rows[i] = Row{
			Team:    t.name,
			Rank:    i + 1,
			Solved:  t.solved,
			Penalty: t.penalty,
			Cells:   cells,
		}
	}
	return rows
}

func cell(p *ProblemRecord, frozen bool) string {
	if frozen && p.Frozen() {
		x, y := p.WrongBeforeFreeze, len(p.Captured)
		if x > 0 {
			return "-" + strconv.Itoa(x) + "/" + strconv.Itoa(y)
		}
		if y == 0 {
			return "."
		}
		return "0/" + strconv.Itoa(y)
	}
	if p.Solved() {
		if p.WrongBeforeAccept == 0 {
			return "+"
		}
		return "+" + strconv.Itoa(p.WrongBeforeAccept)
	}
	if p.WrongBeforeAccept == 0 {
		return "."
	}
	return "-" + strconv.Itoa(p.WrongBeforeAccept)
}
