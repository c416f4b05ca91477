// Package export dumps the final scoreboard as a YAML results file.
package export

import (
	"fmt"
	"io"

	"github.com/ZJUSCT/CSBoard/internal/board"
	"gopkg.in/yaml.v3"
)

type Results struct {
	Contest  string      `yaml:"contest"`
	Phase    board.Phase `yaml:"phase"`
	Duration int         `yaml:"duration"`
	Problems []string    `yaml:"problems,flow"`
	Teams    []board.Row `yaml:"teams"`
}

// Build takes the current standings of b. A board that is still frozen is
// exported as spectators see it.
func Build(contest string, b *board.Board) Results {
	problems := make([]string, b.ProblemCount())
	for i := range problems {
		problems[i] = board.ProblemName(i)
	}
	return Results{
		Contest:  contest,
		Phase:    b.Phase(),
		Duration: b.Duration(),
		Problems: problems,
		Teams:    b.Standings(),
	}
}

func Write(w io.Writer, r Results) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&r); err != nil {
		return fmt.Errorf("encoding results to YAML failed: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding results to YAML failed on close: %w", err)
	}
	return nil
}
