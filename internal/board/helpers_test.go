package board

import (
	"slices"
	"testing"
)

func startedBoard(t *testing.T, problems int, teams ...string) *Board {
	t.Helper()
	b := New()
	for _, name := range teams {
		if err := b.AddTeam(name); err != nil {
			t.Fatalf("AddTeam(%q): %v", name, err)
		}
	}
	if err := b.Start(300, problems); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return b
}

func mustSubmit(t *testing.T, b *Board, team, problem string, v Verdict, at int) {
	t.Helper()
	idx, ok := ProblemIndex(problem)
	if !ok {
		t.Fatalf("bad problem letter %q", problem)
	}
	if err := b.Submit(team, idx, v, at); err != nil {
		t.Fatalf("Submit(%s, %s, %v, %d): %v", team, problem, v, at, err)
	}
}

func lines(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.String()
	}
	return out
}

func assertLines(t *testing.T, got []Row, want ...string) {
	t.Helper()
	if g := lines(got); !slices.Equal(g, want) {
		t.Errorf("board mismatch\n got: %q\nwant: %q", g, want)
	}
}
