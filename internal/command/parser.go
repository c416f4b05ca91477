// Package command turns the line-oriented operator stream into board
// operations and writes the protocol responses.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ZJUSCT/CSBoard/internal/board"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMalformed      = errors.New("malformed command")
)

const anyFilter = "ALL"

// Command is one parsed operator instruction.
type Command interface {
	name() string
}

type AddTeam struct{ Team string }

type Start struct {
	Duration int
	Problems int
}

type Submit struct {
	Problem int
	Team    string
	Verdict board.Verdict
	Time    int
}

type Flush struct{}

type Freeze struct{}

type Scroll struct{}

type QueryRanking struct{ Team string }

type QuerySubmission struct {
	Team   string
	Filter board.SubmissionFilter
}

type End struct{}

func (AddTeam) name() string         { return "ADDTEAM" }
func (Start) name() string           { return "START" }
func (Submit) name() string          { return "SUBMIT" }
func (Flush) name() string           { return "FLUSH" }
func (Freeze) name() string          { return "FREEZE" }
func (Scroll) name() string          { return "SCROLL" }
func (QueryRanking) name() string    { return "QUERY_RANKING" }
func (QuerySubmission) name() string { return "QUERY_SUBMISSION" }
func (End) name() string             { return "END" }

// Parse reads a single line. Blank lines yield a nil command and no error.
func Parse(line string) (Command, error) {
	f := strings.Fields(line)
	if len(f) == 0 {
		return nil, nil
	}
	switch f[0] {
	case "ADDTEAM":
		if len(f) != 2 {
			return nil, malformed(line)
		}
		return AddTeam{Team: f[1]}, nil
	case "START":
		return parseStart(f, line)
	case "SUBMIT":
		return parseSubmit(f, line)
	case "FLUSH":
		return Flush{}, nil
	case "FREEZE":
		return Freeze{}, nil
	case "SCROLL":
		return Scroll{}, nil
	case "QUERY_RANKING":
		if len(f) != 2 {
			return nil, malformed(line)
		}
		return QueryRanking{Team: f[1]}, nil
	case "QUERY_SUBMISSION":
		return parseQuerySubmission(f, line)
	case "END":
		return End{}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, f[0])
}

// START DURATION d PROBLEM p
func parseStart(f []string, line string) (Command, error) {
	if len(f) != 5 || f[1] != "DURATION" || f[3] != "PROBLEM" {
		return nil, malformed(line)
	}
	duration, err := strconv.Atoi(f[2])
	if err != nil {
		return nil, fmt.Errorf("%w: duration: %v", ErrMalformed, err)
	}
	// out-of-range counts are clamped by the board
	problems, err := strconv.Atoi(f[4])
	if err != nil {
		return nil, fmt.Errorf("%w: problem count: %v", ErrMalformed, err)
	}
	return Start{Duration: duration, Problems: problems}, nil
}

// SUBMIT problem BY team WITH status AT time
func parseSubmit(f []string, line string) (Command, error) {
	if len(f) != 8 || f[2] != "BY" || f[4] != "WITH" || f[6] != "AT" {
		return nil, malformed(line)
	}
	problem, ok := board.ProblemIndex(f[1])
	if !ok {
		return nil, fmt.Errorf("%w: problem %q", ErrMalformed, f[1])
	}
	verdict, err := board.ParseVerdict(f[5])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	at, err := strconv.Atoi(f[7])
	if err != nil {
		return nil, fmt.Errorf("%w: time: %v", ErrMalformed, err)
	}
	return Submit{Problem: problem, Team: f[3], Verdict: verdict, Time: at}, nil
}

// QUERY_SUBMISSION team WHERE PROBLEM=p AND STATUS=s
//
// An unknown problem or status still yields a query, one that matches nothing.
func parseQuerySubmission(f []string, line string) (Command, error) {
	if len(f) != 6 || f[2] != "WHERE" || f[4] != "AND" {
		return nil, malformed(line)
	}
	problem, ok := strings.CutPrefix(f[3], "PROBLEM=")
	if !ok {
		return nil, malformed(line)
	}
	status, ok := strings.CutPrefix(f[5], "STATUS=")
	if !ok {
		return nil, malformed(line)
	}

	filter := board.SubmissionFilter{Problem: board.AnyProblem, Verdict: board.AnyVerdict}
	if problem != anyFilter {
		filter.Problem = board.NoProblem
		if idx, ok := board.ProblemIndex(problem); ok {
			filter.Problem = idx
		}
	}
	if status != anyFilter {
		filter.Verdict = board.NoVerdict
		if v, err := board.ParseVerdict(status); err == nil {
			filter.Verdict = v
		}
	}
	return QuerySubmission{Team: f[1], Filter: filter}, nil
}

func malformed(line string) error {
	return fmt.Errorf("%w: %q", ErrMalformed, line)
}
