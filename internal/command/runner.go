package command

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/ZJUSCT/CSBoard/internal/board"
	"go.uber.org/zap"
)

const (
	msgAddOK           = "[Info]Add successfully."
	msgAddStarted      = "[Error]Add failed: competition has started."
	msgAddDuplicate    = "[Error]Add failed: duplicated team name."
	msgStartOK         = "[Info]Competition starts."
	msgStartStarted    = "[Error]Start failed: competition has started."
	msgFlushOK         = "[Info]Flush scoreboard."
	msgFreezeOK        = "[Info]Freeze scoreboard."
	msgFreezeFrozen    = "[Error]Freeze failed: scoreboard has been frozen."
	msgScrollOK        = "[Info]Scroll scoreboard."
	msgScrollNotFrozen = "[Error]Scroll failed: scoreboard has not been frozen."
	msgRankingOK       = "[Info]Complete query ranking."
	msgRankingFrozen   = "[Warning]Scoreboard is frozen. The ranking may be inaccurate until it were scrolled."
	msgRankingMissing  = "[Error]Query ranking failed: cannot find the team."
	msgSubmissionOK    = "[Info]Complete query submission."
	msgSubmissionNone  = "Cannot find any submission."
	msgSubmissionMiss  = "[Error]Query submission failed: cannot find the team."
	msgEnd             = "[Info]Competition ends."
)

const maxLineSize = 1 << 20

// Runner executes commands against a board and writes the protocol output.
type Runner struct {
	board     *board.Board
	out       *bufio.Writer
	observers []Observer
}

func NewRunner(b *board.Board, out io.Writer, observers ...Observer) *Runner {
	return &Runner{
		board:     b,
		out:       bufio.NewWriter(out),
		observers: observers,
	}
}

// Run processes lines from in until END, end of input or ctx is cancelled.
// Lines that do not parse are skipped. On cancellation Run returns without
// waiting for a pending read on in; the board is not touched after it returns.
func (r *Runner) Run(ctx context.Context, in io.Reader) (err error) {
	defer func() {
		if ferr := r.out.Flush(); err == nil {
			err = ferr
		}
	}()

	quit := make(chan struct{})
	defer close(quit)
	lines, scanErr := readLines(in, quit)

	lineNo := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return <-scanErr
			}
			line = l
		}

		lineNo++
		cmd, err := Parse(line)
		if err != nil {
			if errors.Is(err, ErrUnknownCommand) {
				zap.S().Debugf("line %d ignored: %v", lineNo, err)
			} else {
				zap.S().Warnf("line %d ignored: %v", lineNo, err)
			}
			continue
		}
		if cmd == nil {
			continue
		}
		if r.Exec(cmd) {
			zap.S().Infof("competition ended after %d lines", lineNo)
			return nil
		}
	}
}

// readLines scans in on its own goroutine until end of input or quit is
// closed. The scan error is sent before lines is closed.
func readLines(in io.Reader, quit <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-quit:
				return
			}
		}
		scanErr <- scanner.Err()
	}()
	return lines, scanErr
}

// Exec applies one command and reports whether processing should stop.
func (r *Runner) Exec(cmd Command) bool {
	switch c := cmd.(type) {
	case AddTeam:
		r.addTeam(c)
	case Start:
		if err := r.board.Start(c.Duration, c.Problems); err != nil {
			r.println(msgStartStarted)
			return false
		}
		zap.S().Infof("competition started with %d teams, %d problems, duration %d",
			r.board.TeamCount(), r.board.ProblemCount(), c.Duration)
		r.println(msgStartOK)
	case Submit:
		r.submit(c)
	case Flush:
		rows := r.board.Flush()
		r.println(msgFlushOK)
		r.publish(board.ReasonFlush, r.board.Phase(), rows)
	case Freeze:
		if err := r.board.Freeze(); err != nil {
			r.println(msgFreezeFrozen)
			return false
		}
		zap.S().Info("scoreboard frozen")
		r.println(msgFreezeOK)
	case Scroll:
		r.scroll()
	case QueryRanking:
		r.queryRanking(c)
	case QuerySubmission:
		r.querySubmission(c)
	case End:
		r.println(msgEnd)
		r.publish(board.ReasonFinal, r.board.Phase(), r.board.Standings())
		return true
	default:
		zap.S().Warnf("unhandled command %s", cmd.name())
	}
	return false
}

func (r *Runner) addTeam(c AddTeam) {
	switch err := r.board.AddTeam(c.Team); {
	case err == nil:
		r.println(msgAddOK)
	case errors.Is(err, board.ErrStartedAlready):
		r.println(msgAddStarted)
	case errors.Is(err, board.ErrDuplicateTeam):
		r.println(msgAddDuplicate)
	}
}

func (r *Runner) submit(c Submit) {
	if err := r.board.Submit(c.Team, c.Problem, c.Verdict, c.Time); err != nil {
		zap.S().Warnf("submission of %s by %s dropped: %v", board.ProblemName(c.Problem), c.Team, err)
		return
	}
	s := board.Submission{Problem: c.Problem, Verdict: c.Verdict, Time: c.Time}
	for _, o := range r.observers {
		o.OnSubmit(c.Team, s)
	}
}

func (r *Runner) scroll() {
	res, err := r.board.Scroll()
	if err != nil {
		r.println(msgScrollNotFrozen)
		return
	}
	r.println(msgScrollOK)
	r.printRows(res.Before)
	r.publish(board.ReasonScrollBefore, board.PhaseFrozen, res.Before)
	for _, c := range res.Changes {
		r.println(c.String())
		for _, o := range r.observers {
			o.OnRankChange(c)
		}
	}
	r.printRows(res.After)
	r.publish(board.ReasonScrollAfter, r.board.Phase(), res.After)
	zap.S().Infof("scroll finished with %d rank changes", len(res.Changes))
}

func (r *Runner) queryRanking(c QueryRanking) {
	rank, err := r.board.Ranking(c.Team)
	if err != nil {
		r.println(msgRankingMissing)
		return
	}
	r.println(msgRankingOK)
	if r.board.Frozen() {
		r.println(msgRankingFrozen)
	}
	r.println(c.Team + " NOW AT RANKING " + strconv.Itoa(rank))
}

func (r *Runner) querySubmission(c QuerySubmission) {
	s, found, err := r.board.LastSubmission(c.Team, c.Filter)
	if err != nil {
		r.println(msgSubmissionMiss)
		return
	}
	r.println(msgSubmissionOK)
	if !found {
		r.println(msgSubmissionNone)
		return
	}
	r.println(c.Team + " " + board.ProblemName(s.Problem) + " " + s.Verdict.String() + " " + strconv.Itoa(s.Time))
}

func (r *Runner) publish(reason board.Reason, phase board.Phase, rows []board.Row) {
	if len(r.observers) == 0 {
		return
	}
	s := board.Standings{Reason: reason, Phase: phase, Rows: rows}
	for _, o := range r.observers {
		o.OnStandings(s)
	}
}

func (r *Runner) printRows(rows []board.Row) {
	for _, row := range rows {
		r.println(row.String())
	}
}

func (r *Runner) println(s string) {
	r.out.WriteString(s)
	r.out.WriteByte('\n')
}
