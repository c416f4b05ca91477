package board

import (
	"errors"
	"testing"
)

func TestRankingBeforeFirstFlushIsByName(t *testing.T) {
	b := startedBoard(t, 1, "zeta", "alpha", "mid")
	mustSubmit(t, b, "zeta", "A", Accepted, 1)

	for name, want := range map[string]int{"alpha": 1, "mid": 2, "zeta": 3} {
		got, err := b.Ranking(name)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("Ranking(%s) = %d, want %d", name, got, want)
		}
	}
}

func TestRankingUsesLastSnapshot(t *testing.T) {
	b := startedBoard(t, 1, "a", "b")
	mustSubmit(t, b, "b", "A", Accepted, 10)
	b.Flush()
	mustSubmit(t, b, "a", "A", Accepted, 5)

	if got, _ := b.Ranking("a"); got != 2 {
		t.Errorf("Ranking(a) before reflush = %d, want 2", got)
	}
	b.Flush()
	if got, _ := b.Ranking("a"); got != 1 {
		t.Errorf("Ranking(a) after reflush = %d, want 1", got)
	}
	if _, err := b.Ranking("c"); !errors.Is(err, ErrTeamNotFound) {
		t.Errorf("Ranking(c): err = %v", err)
	}
}

func TestLastSubmission(t *testing.T) {
	b := startedBoard(t, 3, "T")
	mustSubmit(t, b, "T", "A", WrongAnswer, 1)
	mustSubmit(t, b, "T", "B", Accepted, 2)
	mustSubmit(t, b, "T", "A", Accepted, 3)
	mustSubmit(t, b, "T", "C", WrongAnswer, 4)

	tests := []struct {
		name   string
		filter SubmissionFilter
		want   Submission
		found  bool
	}{
		{"all", SubmissionFilter{Problem: AnyProblem}, Submission{2, WrongAnswer, 4}, true},
		{"problem", SubmissionFilter{Problem: 0}, Submission{0, Accepted, 3}, true},
		{"status", SubmissionFilter{Problem: AnyProblem, Verdict: WrongAnswer}, Submission{2, WrongAnswer, 4}, true},
		{"both", SubmissionFilter{Problem: 0, Verdict: WrongAnswer}, Submission{0, WrongAnswer, 1}, true},
		{"none", SubmissionFilter{Problem: 1, Verdict: RuntimeError}, Submission{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found, err := b.LastSubmission("T", tt.filter)
			if err != nil {
				t.Fatal(err)
			}
			if found != tt.found || got != tt.want {
				t.Errorf("LastSubmission = %+v, %v; want %+v, %v", got, found, tt.want, tt.found)
			}
		})
	}

	if _, _, err := b.LastSubmission("U", SubmissionFilter{Problem: AnyProblem}); !errors.Is(err, ErrTeamNotFound) {
		t.Errorf("unknown team: err = %v", err)
	}
}

func TestRegistryRules(t *testing.T) {
	b := New()
	if err := b.AddTeam("a"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddTeam("a"); !errors.Is(err, ErrDuplicateTeam) {
		t.Errorf("duplicate: err = %v", err)
	}
	if err := b.Start(100, 4); err != nil {
		t.Fatal(err)
	}
	if err := b.Start(100, 4); !errors.Is(err, ErrStartedAlready) {
		t.Errorf("restart: err = %v", err)
	}
	if err := b.AddTeam("b"); !errors.Is(err, ErrStartedAlready) {
		t.Errorf("late add: err = %v", err)
	}
	if b.TeamCount() != 1 || b.ProblemCount() != 4 || b.Duration() != 100 {
		t.Errorf("unexpected board shape: %d teams, %d problems, duration %d",
			b.TeamCount(), b.ProblemCount(), b.Duration())
	}
}
