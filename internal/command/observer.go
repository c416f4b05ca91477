package command

import "github.com/ZJUSCT/CSBoard/internal/board"

// Observer receives everything the runner makes public. Calls happen on the
// runner goroutine, in command order.
type Observer interface {
	OnSubmit(team string, s board.Submission)
	OnStandings(s board.Standings)
	OnRankChange(c board.RankChange)
}
