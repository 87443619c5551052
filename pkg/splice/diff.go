package splice

import (
	"fmt"
	"strings"
)

// Diff is a unified diff of the lines an edit list changes.
type Diff struct {
	// Path is the file path for the diff header.
	Path string

	// Hunks contains the diff hunks, in document order.
	Hunks []DiffHunk

	// Additions is the number of lines added.
	Additions int

	// Deletions is the number of lines deleted.
	Deletions int
}

// DiffHunk represents a single hunk in a unified diff.
type DiffHunk struct {
	// OriginalStart is the 1-based line number where the hunk starts in the original.
	OriginalStart int

	// OriginalCount is the number of lines from the original in this hunk.
	OriginalCount int

	// ModifiedStart is the 1-based line number where the hunk starts in the result.
	ModifiedStart int

	// ModifiedCount is the number of lines from the result in this hunk.
	ModifiedCount int

	// Lines contains the diff lines in this hunk.
	Lines []DiffLine
}

// DiffLine represents a single line in a diff hunk.
type DiffLine struct {
	Kind DiffLineKind

	// Content is the line without its terminator.
	Content string
}

// DiffLineKind indicates the type of diff line.
type DiffLineKind int

const (
	// DiffLineContext is an unchanged context line.
	DiffLineContext DiffLineKind = iota

	// DiffLineAdd is a line inserted by an edit.
	DiffLineAdd

	// DiffLineRemove is a line removed by an edit.
	DiffLineRemove
)

// contextLines is the number of unchanged lines shown around each change.
const contextLines = 3

// GenerateDiff describes what applying edits to doc would change.
// The diff is derived from the edit ranges directly, so it shows exactly the
// lines each edit removes and inserts. Returns nil if there are no edits.
func GenerateDiff(path string, doc Document, edits []Edit) (*Diff, error) {
	prepared, err := PrepareEdits(edits, doc.Len())
	if err != nil {
		return nil, err
	}
	if len(prepared) == 0 {
		return nil, nil
	}

	ops := buildDiffOps(doc, prepared)
	hunks := groupIntoHunks(ops)
	if len(hunks) == 0 {
		return nil, nil
	}

	diff := &Diff{Path: path, Hunks: hunks}
	for _, hunk := range hunks {
		for _, line := range hunk.Lines {
			switch line.Kind {
			case DiffLineAdd:
				diff.Additions++
			case DiffLineRemove:
				diff.Deletions++
			}
		}
	}
	return diff, nil
}

// GitHeader returns the "diff --git" header line.
func (d *Diff) GitHeader() string {
	if d == nil {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")
	return fmt.Sprintf("diff --git a/%s b/%s", path, path)
}

// String returns the diff in unified format (without the git header).
func (d *Diff) String() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var builder strings.Builder
	fmt.Fprintf(&builder, "--- a/%s\n", path)
	fmt.Fprintf(&builder, "+++ b/%s\n", path)

	for _, hunk := range d.Hunks {
		fmt.Fprintf(&builder, "@@ -%d,%d +%d,%d @@\n",
			hunk.OriginalStart, hunk.OriginalCount,
			hunk.ModifiedStart, hunk.ModifiedCount)

		for _, line := range hunk.Lines {
			switch line.Kind {
			case DiffLineContext:
				fmt.Fprintf(&builder, " %s\n", line.Content)
			case DiffLineAdd:
				fmt.Fprintf(&builder, "+%s\n", line.Content)
			case DiffLineRemove:
				fmt.Fprintf(&builder, "-%s\n", line.Content)
			}
		}
	}

	return builder.String()
}

// FullString returns the complete diff including the git header.
func (d *Diff) FullString() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}
	return d.GitHeader() + "\n" + d.String()
}

// HasChanges returns true if the diff contains any changes.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

type diffOp struct {
	kind    DiffLineKind
	content string
}

// buildDiffOps walks doc front to back. prepared is in application
// (descending) order, so it is consumed from the end.
func buildDiffOps(doc Document, prepared []Edit) []diffOp {
	ops := make([]diffOp, 0, doc.Len())
	cursor := 0
	for i := len(prepared) - 1; i >= 0; i-- {
		e := prepared[i]
		for ; cursor < e.Start; cursor++ {
			ops = append(ops, diffOp{kind: DiffLineContext, content: trimEOL(doc[cursor])})
		}
		for ; cursor < e.End; cursor++ {
			ops = append(ops, diffOp{kind: DiffLineRemove, content: trimEOL(doc[cursor])})
		}
		for _, line := range e.Lines {
			ops = append(ops, diffOp{kind: DiffLineAdd, content: trimEOL(line)})
		}
	}
	for ; cursor < doc.Len(); cursor++ {
		ops = append(ops, diffOp{kind: DiffLineContext, content: trimEOL(doc[cursor])})
	}
	return ops
}

// groupIntoHunks groups diff operations into hunks with context lines.
func groupIntoHunks(ops []diffOp) []DiffHunk {
	type changeRange struct {
		start, end int // Indices into ops.
	}

	var ranges []changeRange
	inChange := false
	rangeStart := 0

	for opIdx, op := range ops {
		isChange := op.kind != DiffLineContext
		if isChange && !inChange {
			rangeStart = opIdx
			inChange = true
		} else if !isChange && inChange {
			ranges = append(ranges, changeRange{rangeStart, opIdx})
			inChange = false
		}
	}
	if inChange {
		ranges = append(ranges, changeRange{rangeStart, len(ops)})
	}

	var hunks []DiffHunk
	for rangeIdx := 0; rangeIdx < len(ranges); {
		// Changes closer than two context windows share a hunk.
		mergeEnd := rangeIdx + 1
		for mergeEnd < len(ranges) {
			gap := ranges[mergeEnd].start - ranges[mergeEnd-1].end
			if gap > contextLines*2 {
				break
			}
			mergeEnd++
		}

		hunk := buildHunk(ops, ranges[rangeIdx].start, ranges[mergeEnd-1].end)
		if len(hunk.Lines) > 0 {
			hunks = append(hunks, hunk)
		}

		rangeIdx = mergeEnd
	}

	return hunks
}

// buildHunk builds a single hunk from ops[changeStart:changeEnd] plus context.
func buildHunk(ops []diffOp, changeStart, changeEnd int) DiffHunk {
	start := max(changeStart-contextLines, 0)
	end := min(changeEnd+contextLines, len(ops))

	hunk := DiffHunk{}

	origStart := 1
	modStart := 1
	for opIdx := range start {
		if ops[opIdx].kind != DiffLineAdd {
			origStart++
		}
		if ops[opIdx].kind != DiffLineRemove {
			modStart++
		}
	}
	hunk.OriginalStart = origStart
	hunk.ModifiedStart = modStart

	for i := start; i < end; i++ {
		op := ops[i]
		hunk.Lines = append(hunk.Lines, DiffLine{
			Kind:    op.kind,
			Content: op.content,
		})

		switch op.kind {
		case DiffLineContext:
			hunk.OriginalCount++
			hunk.ModifiedCount++
		case DiffLineRemove:
			hunk.OriginalCount++
		case DiffLineAdd:
			hunk.ModifiedCount++
		}
	}

	// An empty side is numbered by the line before it.
	if hunk.OriginalCount == 0 {
		hunk.OriginalStart--
	}
	if hunk.ModifiedCount == 0 {
		hunk.ModifiedStart--
	}

	return hunk
}
