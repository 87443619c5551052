package splice_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yaklabco/linesplice/pkg/splice"
)

// numbered returns a document of n lines "L0".."Ln-1".
func numbered(n int) splice.Document {
	doc := make(splice.Document, n)
	for i := range n {
		doc[i] = fmt.Sprintf("L%d", i)
	}
	return doc
}

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		doc   splice.Document
		edits []splice.Edit
		want  splice.Document
	}{
		{
			name:  "no edits returns copy",
			doc:   numbered(3),
			edits: nil,
			want:  splice.Document{"L0", "L1", "L2"},
		},
		{
			name:  "delete middle range",
			doc:   numbered(5),
			edits: []splice.Edit{splice.Delete(1, 3)},
			want:  splice.Document{"L0", "L3", "L4"},
		},
		{
			name:  "delete empty range is a no-op",
			doc:   numbered(3),
			edits: []splice.Edit{splice.Delete(1, 1)},
			want:  splice.Document{"L0", "L1", "L2"},
		},
		{
			name:  "replace with more lines",
			doc:   numbered(4),
			edits: []splice.Edit{splice.Replace(1, 2, []string{"A", "B", "C"})},
			want:  splice.Document{"L0", "A", "B", "C", "L2", "L3"},
		},
		{
			name:  "insert at start",
			doc:   numbered(2),
			edits: []splice.Edit{splice.Replace(0, 0, []string{"H"})},
			want:  splice.Document{"H", "L0", "L1"},
		},
		{
			name:  "insert at end",
			doc:   numbered(2),
			edits: []splice.Edit{splice.Replace(2, 2, []string{"T"})},
			want:  splice.Document{"L0", "L1", "T"},
		},
		{
			name:  "delete everything",
			doc:   numbered(3),
			edits: []splice.Edit{splice.Delete(0, 3)},
			want:  splice.Document{},
		},
		{
			name: "ten line scenario",
			doc:  numbered(10),
			edits: []splice.Edit{
				splice.Delete(7, 9),
				splice.Replace(2, 4, []string{"X"}),
			},
			want: splice.Document{"L0", "L1", "X", "L4", "L5", "L6", "L9"},
		},
		{
			name: "edit order in input does not matter",
			doc:  numbered(10),
			edits: []splice.Edit{
				splice.Replace(2, 4, []string{"X"}),
				splice.Delete(7, 9),
			},
			want: splice.Document{"L0", "L1", "X", "L4", "L5", "L6", "L9"},
		},
		{
			name: "adjacent edits",
			doc:  numbered(6),
			edits: []splice.Edit{
				splice.Replace(0, 2, []string{"A"}),
				splice.Replace(2, 4, []string{"B"}),
				splice.Delete(4, 6),
			},
			want: splice.Document{"A", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			original := tt.doc.Clone()

			got, err := splice.Apply(tt.doc, tt.edits)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(original, tt.doc); diff != "" {
				t.Errorf("Apply() mutated its input (-before +after):\n%s", diff)
			}
		})
	}
}

func TestApply_LineCounts(t *testing.T) {
	t.Parallel()

	const n = 40

	for a := 0; a <= n; a += 7 {
		for b := a; b <= n; b += 5 {
			doc := numbered(n)

			deleted, err := splice.Apply(doc, []splice.Edit{splice.Delete(a, b)})
			if err != nil {
				t.Fatalf("delete [%d,%d): %v", a, b, err)
			}
			if deleted.Len() != n-(b-a) {
				t.Errorf("delete [%d,%d): len = %d, want %d", a, b, deleted.Len(), n-(b-a))
			}
			if diff := cmp.Diff([]string(doc[:a]), []string(deleted[:a])); diff != "" {
				t.Errorf("delete [%d,%d): prefix changed:\n%s", a, b, diff)
			}
			if diff := cmp.Diff([]string(doc[b:]), []string(deleted[a:])); diff != "" {
				t.Errorf("delete [%d,%d): suffix changed:\n%s", a, b, diff)
			}

			for _, k := range []int{0, 1, 3} {
				repl := make([]string, k)
				for i := range repl {
					repl[i] = fmt.Sprintf("R%d", i)
				}
				replaced, err := splice.Apply(doc, []splice.Edit{splice.Replace(a, b, repl)})
				if err != nil {
					t.Fatalf("replace [%d,%d) with %d: %v", a, b, k, err)
				}
				if want := n - (b - a) + k; replaced.Len() != want {
					t.Errorf("replace [%d,%d) with %d: len = %d, want %d", a, b, k, replaced.Len(), want)
				}
			}
		}
	}
}

func TestApply_MatchesAssemble(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		edits []splice.Edit
	}{
		{
			name:  "single delete",
			edits: []splice.Edit{splice.Delete(3, 9)},
		},
		{
			name: "faq shaped plan",
			edits: []splice.Edit{
				splice.Delete(931, 1022),
				splice.Delete(812, 878),
				splice.Replace(153, 200, []string{"merged\n"}),
			},
		},
		{
			name: "mixed growth and shrink",
			edits: []splice.Edit{
				splice.Replace(0, 1, []string{"a", "b", "c"}),
				splice.Insert(10, []string{"i"}),
				splice.Delete(500, 700),
				splice.Replace(1100, 1200, nil),
			},
		},
	}

	doc := numbered(1200)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			applied, err := splice.Apply(doc, tt.edits)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			assembled, err := splice.Assemble(doc, tt.edits)
			if err != nil {
				t.Fatalf("Assemble() error = %v", err)
			}
			if diff := cmp.Diff(assembled, applied); diff != "" {
				t.Errorf("Apply and Assemble disagree (-assemble +apply):\n%s", diff)
			}
		})
	}
}

func TestApply_RerunIsNotIdempotent(t *testing.T) {
	t.Parallel()

	t.Run("rerun in range silently produces a different document", func(t *testing.T) {
		t.Parallel()

		edits := []splice.Edit{
			splice.Delete(12, 15),
			splice.Replace(3, 5, []string{"X"}),
		}

		first, err := splice.Apply(numbered(20), edits)
		if err != nil {
			t.Fatalf("first Apply() error = %v", err)
		}
		second, err := splice.Apply(first, edits)
		if err != nil {
			t.Fatalf("second Apply() error = %v", err)
		}

		if cmp.Equal(first, second) {
			t.Fatal("rerun produced the same document; expected divergence")
		}

		want := splice.Document{"L0", "L1", "L2", "X", "L6", "L7", "L8", "L9", "L10", "L11", "L15", "L19"}
		if diff := cmp.Diff(want, second); diff != "" {
			t.Errorf("rerun mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("rerun past the shrunk end clamps and still diverges", func(t *testing.T) {
		t.Parallel()

		edits := []splice.Edit{
			splice.Delete(7, 9),
			splice.Replace(2, 4, []string{"X"}),
		}

		first, err := splice.Apply(numbered(10), edits)
		if err != nil {
			t.Fatalf("first Apply() error = %v", err)
		}

		second, err := splice.Apply(first, edits)
		if err != nil {
			t.Fatalf("second Apply() error = %v", err)
		}

		want := splice.Document{"L0", "L1", "X", "L5", "L6", "L9"}
		if diff := cmp.Diff(want, second); diff != "" {
			t.Errorf("rerun mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestApply_ClampsPastEnd(t *testing.T) {
	t.Parallel()

	doc := numbered(5)

	got, err := splice.Apply(doc, []splice.Edit{splice.Delete(4, 6)})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if diff := cmp.Diff(splice.Document{"L0", "L1", "L2", "L3"}, got); diff != "" {
		t.Errorf("partial clamp mismatch (-want +got):\n%s", diff)
	}

	got, err = splice.Apply(doc, []splice.Edit{splice.Replace(8, 12, []string{"tail"})})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if diff := cmp.Diff(splice.Document{"L0", "L1", "L2", "L3", "L4", "tail"}, got); diff != "" {
		t.Errorf("append clamp mismatch (-want +got):\n%s", diff)
	}

	assembled, err := splice.Assemble(doc, []splice.Edit{splice.Replace(8, 12, []string{"tail"})})
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if diff := cmp.Diff(got, assembled); diff != "" {
		t.Errorf("Apply and Assemble disagree (-apply +assemble):\n%s", diff)
	}
}

func TestApply_RejectsInvalidEdits(t *testing.T) {
	t.Parallel()

	doc := numbered(5)

	_, err := splice.Apply(doc, []splice.Edit{splice.Delete(4, 2)})
	var validationErr *splice.ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("inverted range: expected ValidationError, got %v", err)
	}

	_, err = splice.Apply(doc, []splice.Edit{splice.Delete(0, 3), splice.Delete(2, 4)})
	var conflictErr *splice.ConflictError
	if !errors.As(err, &conflictErr) {
		t.Errorf("overlap: expected ConflictError, got %v", err)
	}

	_, err = splice.Assemble(doc, []splice.Edit{splice.Delete(-1, 2)})
	if !errors.As(err, &validationErr) {
		t.Errorf("Assemble negative start: expected ValidationError, got %v", err)
	}
}

func TestEditBuilder(t *testing.T) {
	t.Parallel()

	builder := splice.NewEditBuilder().
		Delete(7, 9).
		Replace(2, 4, []string{"X"}).
		Insert(0, []string{"top"})

	if len(builder.Edits) != 3 {
		t.Fatalf("expected 3 edits, got %d", len(builder.Edits))
	}

	got, err := splice.Apply(numbered(10), builder.Edits)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	want := splice.Document{"top", "L0", "L1", "X", "L4", "L5", "L6", "L9"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEditDelta(t *testing.T) {
	t.Parallel()

	edit := splice.Replace(153, 200, []string{"merged\n"})
	if edit.Removed() != 47 {
		t.Errorf("Removed() = %d, want 47", edit.Removed())
	}
	if edit.Delta() != -46 {
		t.Errorf("Delta() = %d, want -46", edit.Delta())
	}
}
