package command

import (
	"errors"
	"testing"

	"github.com/ZJUSCT/CSBoard/internal/board"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"ADDTEAM lambda", AddTeam{Team: "lambda"}},
		{"START DURATION 300 PROBLEM 12", Start{Duration: 300, Problems: 12}},
		{"START DURATION 300 PROBLEM 40", Start{Duration: 300, Problems: 40}},
		{"SUBMIT C BY lambda WITH Runtime_Error AT 77", Submit{Problem: 2, Team: "lambda", Verdict: board.RuntimeError, Time: 77}},
		{"FLUSH", Flush{}},
		{"FREEZE", Freeze{}},
		{"SCROLL", Scroll{}},
		{"QUERY_RANKING lambda", QueryRanking{Team: "lambda"}},
		{
			"QUERY_SUBMISSION lambda WHERE PROBLEM=ALL AND STATUS=ALL",
			QuerySubmission{Team: "lambda", Filter: board.SubmissionFilter{Problem: board.AnyProblem, Verdict: board.AnyVerdict}},
		},
		{
			"QUERY_SUBMISSION lambda WHERE PROBLEM=B AND STATUS=Wrong_Answer",
			QuerySubmission{Team: "lambda", Filter: board.SubmissionFilter{Problem: 1, Verdict: board.WrongAnswer}},
		},
		{
			"QUERY_SUBMISSION lambda WHERE PROBLEM=AB AND STATUS=ALL",
			QuerySubmission{Team: "lambda", Filter: board.SubmissionFilter{Problem: board.NoProblem, Verdict: board.AnyVerdict}},
		},
		{
			"QUERY_SUBMISSION lambda WHERE PROBLEM=A AND STATUS=Compile_Error",
			QuerySubmission{Team: "lambda", Filter: board.SubmissionFilter{Problem: 0, Verdict: board.NoVerdict}},
		},
		{"  END  ", End{}},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := Parse(tt.line)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"RESET", ErrUnknownCommand},
		{"ADDTEAM", ErrMalformed},
		{"START DURATION x PROBLEM 3", ErrMalformed},
		{"START DURATION 10 PROBLEM many", ErrMalformed},
		{"SUBMIT AA BY t WITH Accepted AT 1", ErrMalformed},
		{"SUBMIT A BY t WITH Compile_Error AT 1", ErrMalformed},
		{"SUBMIT A FROM t WITH Accepted AT 1", ErrMalformed},
		{"QUERY_SUBMISSION t WHERE PROBLEM=A OR STATUS=ALL", ErrMalformed},
		{"QUERY_SUBMISSION t WHERE TEAM=A AND STATUS=ALL", ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if _, err := Parse(tt.line); !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.line, err, tt.want)
			}
		})
	}
}
