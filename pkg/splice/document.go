// Package splice applies line-range edits to an in-memory text document.
//
// Every edit is expressed against the line numbering of the original
// document. Edits are applied from the tail of the document toward the head,
// so an edit never observes the index shift caused by another one.
package splice

import (
	"bytes"
	"strings"
)

// Document is an ordered sequence of lines. Each element keeps its own line
// terminator, so Bytes reproduces the source content exactly.
type Document []string

// SplitLines splits content into a Document. Line terminators stay attached
// to their lines; a trailing fragment without a newline becomes the last line.
func SplitLines(content []byte) Document {
	if len(content) == 0 {
		return Document{}
	}

	doc := make(Document, 0, bytes.Count(content, []byte("\n"))+1)
	for len(content) > 0 {
		idx := bytes.IndexByte(content, '\n')
		if idx < 0 {
			doc = append(doc, string(content))
			break
		}
		doc = append(doc, string(content[:idx+1]))
		content = content[idx+1:]
	}
	return doc
}

// ContentLines turns an opaque block of replacement text into lines. The
// block is always followed by a newline, so text that already ends in one
// leaves a blank line behind it. The text itself is not inspected.
func ContentLines(text string) []string {
	return SplitLines([]byte(text + "\n"))
}

// TextLines splits inline replacement text into lines, adding a trailing
// newline only if it is missing.
func TextLines(text string) []string {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return SplitLines([]byte(text))
}

// Len returns the number of lines.
func (d Document) Len() int {
	return len(d)
}

// Bytes joins the lines back into file content.
func (d Document) Bytes() []byte {
	size := 0
	for _, line := range d {
		size += len(line)
	}

	var buf bytes.Buffer
	buf.Grow(size)
	for _, line := range d {
		buf.WriteString(line)
	}
	return buf.Bytes()
}

// Clone returns a copy that shares no backing array with d.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	copy(out, d)
	return out
}

// trimEOL strips a trailing "\n" or "\r\n" for display.
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
