package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ZJUSCT/CSBoard/internal/board"
	"gopkg.in/yaml.v3"
)

func TestWriteResults(t *testing.T) {
	b := board.New()
	for _, name := range []string{"red", "blue"} {
		if err := b.AddTeam(name); err != nil {
			t.Fatal(err)
		}
	}
	if err := b.Start(300, 2); err != nil {
		t.Fatal(err)
	}
	if err := b.Submit("blue", 1, board.WrongAnswer, 5); err != nil {
		t.Fatal(err)
	}
	if err := b.Submit("blue", 1, board.Accepted, 10); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, Build("Finals", b)); err != nil {
		t.Fatalf("Write: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"contest: Finals\n", "phase: live\n", "duration: 300\n", "problems: [A, B]\n", "  - team: blue\n    rank: 1\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("results YAML missing %q:\n%s", want, out)
		}
	}

	var decoded Results
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("results do not parse back: %v", err)
	}
	if decoded.Phase != board.PhaseLive || len(decoded.Teams) != 2 {
		t.Fatalf("decoded = %+v", decoded)
	}
	if got := decoded.Teams[0].String(); got != "blue 1 1 30 . +1" {
		t.Errorf("first team = %q", got)
	}
}
