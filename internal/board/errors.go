package board

import "errors"

var (
	ErrStartedAlready    = errors.New("competition has started")
	ErrDuplicateTeam     = errors.New("duplicated team name")
	ErrAlreadyFrozen     = errors.New("scoreboard has been frozen")
	ErrNotFrozen         = errors.New("scoreboard has not been frozen")
	ErrTeamNotFound      = errors.New("cannot find the team")
	ErrProblemOutOfRange = errors.New("problem out of range")
)
