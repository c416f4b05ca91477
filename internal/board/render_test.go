package board

import "testing"

func TestCell(t *testing.T) {
	tests := []struct {
		name   string
		p      ProblemRecord
		frozen bool
		want   string
	}{
		{"untouched", ProblemRecord{}, false, "."},
		{"rejected", ProblemRecord{WrongBeforeAccept: 3}, false, "-3"},
		{"clean solve", ProblemRecord{FirstAcceptTime: 9}, false, "+"},
		{"solve after rejections", ProblemRecord{WrongBeforeAccept: 2, FirstAcceptTime: 9}, false, "+2"},
		{"frozen no prior", ProblemRecord{Captured: make([]Submission, 2)}, true, "0/2"},
		{"frozen with prior", ProblemRecord{WrongBeforeAccept: 1, WrongBeforeFreeze: 1, Captured: make([]Submission, 3)}, true, "-1/3"},
		{"captures outside freeze", ProblemRecord{WrongBeforeAccept: 1, Captured: make([]Submission, 3)}, false, "-1"},
		{"solved before freeze", ProblemRecord{FirstAcceptTime: 4, SolvedBeforeFreeze: true}, true, "+"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cell(&tt.p, tt.frozen); got != tt.want {
				t.Errorf("cell = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRankChangeString(t *testing.T) {
	c := RankChange{Team: "up", Replaced: "down", Solved: 3, Penalty: 141}
	if got := c.String(); got != "up down 3 141" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseVerdict(t *testing.T) {
	for _, s := range []string{"Accepted", "Wrong_Answer", "Runtime_Error", "Time_Limit_Exceed"} {
		v, err := ParseVerdict(s)
		if err != nil {
			t.Fatalf("ParseVerdict(%q): %v", s, err)
		}
		if v.String() != s {
			t.Errorf("ParseVerdict(%q).String() = %q", s, v.String())
		}
	}
	if _, err := ParseVerdict("Compile_Error"); err == nil {
		t.Error("expected an error for an unknown verdict")
	}
}
