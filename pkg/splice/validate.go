package splice

import (
	"fmt"
	"sort"
)

// ValidationError describes an edit whose range does not fit the document.
type ValidationError struct {
	Edit    Edit
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.Start, e.Edit.End, e.Message)
}

// ConflictError describes two edits whose ranges overlap or share a start line.
type ConflictError struct {
	Edit1 Edit
	Edit2 Edit
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting edits: [%d:%d] and [%d:%d]",
		e.Edit1.Start, e.Edit1.End,
		e.Edit2.Start, e.Edit2.End)
}

// ValidateEdits checks that every edit has a well-formed range. Ranges that
// run past the end of the document are not errors; PrepareEdits clamps them.
// Returns the first validation error encountered.
func ValidateEdits(edits []Edit) error {
	for _, edit := range edits {
		if edit.Start < 0 {
			return &ValidationError{Edit: edit, Message: "start line is negative"}
		}
		if edit.End < edit.Start {
			return &ValidationError{Edit: edit, Message: "end line is before start line"}
		}
	}
	return nil
}

// ClampEdit limits the range of edit to a document of lineCount lines, the
// way slice bounds past the end collapse onto the end.
func ClampEdit(edit Edit, lineCount int) Edit {
	edit.Start = min(edit.Start, lineCount)
	edit.End = min(edit.End, lineCount)
	return edit
}

// SortDescending orders edits by start line, highest first, then by end line.
// This is the application order: later parts of the document change first.
func SortDescending(edits []Edit) {
	sort.SliceStable(edits, func(i, j int) bool {
		if edits[i].Start != edits[j].Start {
			return edits[i].Start > edits[j].Start
		}
		return edits[i].End > edits[j].End
	})
}

// DetectConflicts reports the first pair of edits that overlap or share a
// start line. Edits must be sorted with SortDescending.
func DetectConflicts(edits []Edit) error {
	for i := 1; i < len(edits); i++ {
		upper := edits[i-1]
		lower := edits[i]
		if lower.Start == upper.Start || lower.End > upper.Start {
			return &ConflictError{Edit1: lower, Edit2: upper}
		}
	}
	return nil
}

// PrepareEdits validates, clamps, copies, sorts into application order and
// checks for conflicts. Deletions that clamp to an empty range are dropped
// since they change nothing. The input slice is not modified.
func PrepareEdits(edits []Edit, lineCount int) ([]Edit, error) {
	if len(edits) == 0 {
		return nil, nil
	}

	if err := ValidateEdits(edits); err != nil {
		return nil, err
	}

	result := make([]Edit, 0, len(edits))
	for _, edit := range edits {
		clamped := ClampEdit(edit, lineCount)
		if clamped.Start == clamped.End && len(clamped.Lines) == 0 {
			continue
		}
		result = append(result, clamped)
	}
	if len(result) == 0 {
		return nil, nil
	}
	SortDescending(result)

	if err := DetectConflicts(result); err != nil {
		return nil, err
	}

	return result, nil
}
