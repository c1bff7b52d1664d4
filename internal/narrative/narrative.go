// Package narrative wraps the generative-text backend behind a small
// capability interface. A generation failure must never corrupt game state;
// callers degrade to a fallback message and keep their mechanical effects.
package narrative

import (
	"context"
	"fmt"
)

// Generator produces prose for game events. The prompt template is a
// text/template body; vars fill its fields, and history carries the
// accumulated adventure context under {{.AdventureHistory}}.
type Generator interface {
	Generate(ctx context.Context, promptTemplate string, vars map[string]string, history []string) (string, error)
}

// GenerationError reports a narrative backend failure with its reason.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("narrative generation: %s: %v", e.Reason, e.Err)
	}
	return "narrative generation: " + e.Reason
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
