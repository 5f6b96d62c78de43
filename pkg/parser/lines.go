package parser

import "strings"

// lineKind classifies a tokenized line by its first token.
type lineKind int

const (
	lineData lineKind = iota
	lineRun
	lineStep
	lineLoop
)

func (k lineKind) String() string {
	switch k {
	case lineRun:
		return "run"
	case lineStep:
		return "step"
	case lineLoop:
		return "loop"
	default:
		return "data"
	}
}

func classify(tokens []string) lineKind {
	if len(tokens) == 0 {
		return lineData
	}
	switch strings.ToLower(tokens[0]) {
	case "run":
		return lineRun
	case "step":
		return lineStep
	case "loop":
		return lineLoop
	default:
		return lineData
	}
}

func containsToken(tokens []string, want string) bool {
	for _, t := range tokens {
		if t == want {
			return true
		}
	}
	return false
}
