package splice

// Edit replaces the half-open line range [Start, End) of the original
// document with Lines. An empty Lines deletes the range; Start == End inserts.
type Edit struct {
	// Start is the first line index affected (inclusive, 0-based).
	Start int

	// End is the line index where the edit stops (exclusive).
	End int

	// Lines is the replacement content, one element per line.
	Lines []string
}

// Delete returns an edit that removes lines [start, end).
func Delete(start, end int) Edit {
	return Edit{Start: start, End: end}
}

// Replace returns an edit that removes lines [start, end) and inserts lines at start.
func Replace(start, end int, lines []string) Edit {
	return Edit{Start: start, End: end, Lines: lines}
}

// Insert returns an edit that inserts lines before line index at.
func Insert(at int, lines []string) Edit {
	return Edit{Start: at, End: at, Lines: lines}
}

// Removed returns the number of original lines the edit removes.
func (e Edit) Removed() int {
	return e.End - e.Start
}

// Delta returns the change in document length caused by the edit.
func (e Edit) Delta() int {
	return len(e.Lines) - e.Removed()
}

// EditBuilder accumulates edits for a single document.
type EditBuilder struct {
	Edits []Edit
}

// NewEditBuilder creates a new EditBuilder.
func NewEditBuilder() *EditBuilder {
	return &EditBuilder{
		Edits: make([]Edit, 0),
	}
}

// Replace adds an edit that replaces lines [start, end) with lines.
func (b *EditBuilder) Replace(start, end int, lines []string) *EditBuilder {
	b.Edits = append(b.Edits, Replace(start, end, lines))
	return b
}

// Insert adds an edit that inserts lines before the given line index.
func (b *EditBuilder) Insert(at int, lines []string) *EditBuilder {
	b.Edits = append(b.Edits, Insert(at, lines))
	return b
}

// Delete adds an edit that deletes lines [start, end).
func (b *EditBuilder) Delete(start, end int) *EditBuilder {
	b.Edits = append(b.Edits, Delete(start, end))
	return b
}
