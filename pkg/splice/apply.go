package splice

// Apply splices edits into a copy of doc and returns the result.
//
// Edit ranges refer to doc's original numbering. They are applied from the
// highest start line to the lowest, so no edit is shifted by another.
// doc itself is never modified.
func Apply(doc Document, edits []Edit) (Document, error) {
	prepared, err := PrepareEdits(edits, doc.Len())
	if err != nil {
		return nil, err
	}

	out := doc.Clone()
	if out == nil {
		out = Document{}
	}
	for _, e := range prepared {
		out = spliceLines(out, e.Start, e.End, e.Lines)
	}
	return out, nil
}

// Assemble produces the same document as Apply in a single forward pass:
// untouched spans of doc are copied and each edited range is swapped for its
// replacement lines.
func Assemble(doc Document, edits []Edit) (Document, error) {
	prepared, err := PrepareEdits(edits, doc.Len())
	if err != nil {
		return nil, err
	}

	size := doc.Len()
	for _, e := range prepared {
		size += e.Delta()
	}

	out := make(Document, 0, size)
	cursor := 0
	for i := len(prepared) - 1; i >= 0; i-- {
		e := prepared[i]
		out = append(out, doc[cursor:e.Start]...)
		out = append(out, e.Lines...)
		cursor = e.End
	}
	out = append(out, doc[cursor:]...)

	return out, nil
}

// spliceLines removes lines[start:end] and inserts repl at start.
func spliceLines(lines Document, start, end int, repl []string) Document {
	tail := len(lines) - end
	out := make(Document, 0, start+len(repl)+tail)
	out = append(out, lines[:start]...)
	out = append(out, repl...)
	out = append(out, lines[end:]...)
	return out
}
