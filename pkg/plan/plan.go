// Package plan describes a fixed list of named line-range edits and resolves
// it into splice edits.
package plan

import (
	"errors"
	"fmt"
	"sort"

	"github.com/yaklabco/linesplice/pkg/splice"
)

// Action is what a step does to its line range.
type Action string

const (
	// ActionDelete removes the range.
	ActionDelete Action = "delete"

	// ActionReplace removes the range and inserts replacement content.
	ActionReplace Action = "replace"
)

// IsValid reports whether a is a known action.
func (a Action) IsValid() bool {
	switch a {
	case ActionDelete, ActionReplace:
		return true
	default:
		return false
	}
}

// ErrInvalidStep is wrapped by every step validation failure.
var ErrInvalidStep = errors.New("invalid step")

// Step is one named edit. Start and End are 0-based line indices of the
// original file, half-open: [Start, End).
type Step struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Action      Action `yaml:"action"`
	Start       int    `yaml:"start"`
	End         int    `yaml:"end"`

	// Text is inline replacement content. A replace step without Text takes
	// the replacement content file.
	Text *string `yaml:"text,omitempty"`
}

// Validate checks the step in isolation. Ranges against the target file are
// checked when the edits are applied.
func (s Step) Validate() error {
	switch {
	case s.Name == "":
		return fmt.Errorf("%w: step [%d:%d] has no name", ErrInvalidStep, s.Start, s.End)
	case !s.Action.IsValid():
		return fmt.Errorf("%w: %s: unknown action %q (expected delete or replace)", ErrInvalidStep, s.Name, s.Action)
	case s.Start < 0:
		return fmt.Errorf("%w: %s: start %d is negative", ErrInvalidStep, s.Name, s.Start)
	case s.End < s.Start:
		return fmt.Errorf("%w: %s: end %d is before start %d", ErrInvalidStep, s.Name, s.End, s.Start)
	case s.Action == ActionDelete && s.Text != nil:
		return fmt.Errorf("%w: %s: delete step cannot carry text", ErrInvalidStep, s.Name)
	}
	return nil
}

// usesContentFile reports whether the step is filled from the content file.
func (s Step) usesContentFile() bool {
	return s.Action == ActionReplace && s.Text == nil
}

// NeedsContent reports whether any step takes the replacement content file.
func NeedsContent(steps []Step) bool {
	for _, s := range steps {
		if s.usesContentFile() {
			return true
		}
	}
	return false
}

// Resolved is a plan turned into edits. Steps and Edits are parallel and
// both in application order (highest start line first).
type Resolved struct {
	Steps []Step
	Edits []splice.Edit
}

// Resolve validates steps and builds their edits. content is the replacement
// content block, used by replace steps without inline text.
func Resolve(steps []Step, content string) (*Resolved, error) {
	seen := make(map[string]struct{}, len(steps))
	for _, s := range steps {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[s.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate step name %q", ErrInvalidStep, s.Name)
		}
		seen[s.Name] = struct{}{}
	}

	ordered := make([]Step, len(steps))
	copy(ordered, steps)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start > ordered[j].Start
	})

	var contentLines []string
	resolved := &Resolved{
		Steps: ordered,
		Edits: make([]splice.Edit, 0, len(ordered)),
	}
	for _, s := range ordered {
		switch {
		case s.Action == ActionDelete:
			resolved.Edits = append(resolved.Edits, splice.Delete(s.Start, s.End))
		case s.Text != nil:
			resolved.Edits = append(resolved.Edits, splice.Replace(s.Start, s.End, splice.TextLines(*s.Text)))
		default:
			if contentLines == nil {
				contentLines = splice.ContentLines(content)
			}
			resolved.Edits = append(resolved.Edits, splice.Replace(s.Start, s.End, contentLines))
		}
	}

	return resolved, nil
}
