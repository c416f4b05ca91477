package board

import "fmt"

// Verdict is the judge outcome attached to a submission. Only the accepted /
// rejected split matters for scoring; the concrete rejection kind is kept for
// queries.
type Verdict int

// NoVerdict matches no submission in a query filter.
const NoVerdict Verdict = -1

const (
	// AnyVerdict is the zero value and matches every verdict in a query filter.
	AnyVerdict Verdict = iota
	Accepted
	WrongAnswer
	RuntimeError
	TimeLimitExceeded
)

var verdictNames = map[Verdict]string{
	Accepted:          "Accepted",
	WrongAnswer:       "Wrong_Answer",
	RuntimeError:      "Runtime_Error",
	TimeLimitExceeded: "Time_Limit_Exceed",
}

func (v Verdict) String() string {
	if name, ok := verdictNames[v]; ok {
		return name
	}
	if v == AnyVerdict {
		return "ALL"
	}
	return fmt.Sprintf("Verdict(%d)", int(v))
}

// IsAccepted reports whether the verdict solves the problem.
func (v Verdict) IsAccepted() bool {
	return v == Accepted
}

// ParseVerdict converts the textual status used on the command stream.
func ParseVerdict(s string) (Verdict, error) {
	for v, name := range verdictNames {
		if name == s {
			return v, nil
		}
	}
	return AnyVerdict, fmt.Errorf("unknown verdict %q", s)
}
