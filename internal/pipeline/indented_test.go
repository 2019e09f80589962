package pipeline

import (
	"reflect"
	"testing"
)

func TestRemoveIndentedBlocks(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantText    string
		wantRemoved []string
	}{
		{
			name:        "block bounded by blank lines",
			input:       "para\n\n    code\n\nnext\n",
			wantText:    "para\n\n\nnext\n",
			wantRemoved: []string{"    code"},
		},
		{
			name:        "indented line after text is not a block",
			input:       "para\n    code\n",
			wantText:    "para\n    code\n",
			wantRemoved: nil,
		},
		{
			name:        "blank lines inside block stay in fragment",
			input:       "a\n\n    one\n\n    two\n\nb\n",
			wantText:    "a\n\n\nb\n",
			wantRemoved: []string{"    one\n\n    two"},
		},
		{
			name:        "tab indentation",
			input:       "a\n\n\tcode\n",
			wantText:    "a\n\n",
			wantRemoved: []string{"\tcode"},
		},
		{
			name:        "block at start of document",
			input:       "    code\nplain\n",
			wantText:    "plain\n",
			wantRemoved: []string{"    code"},
		},
		{
			name:        "block at end without trailing newline",
			input:       "a\n\n    x",
			wantText:    "a\n",
			wantRemoved: []string{"    x"},
		},
		{
			name:        "three spaces are not enough",
			input:       "a\n\n   x\n",
			wantText:    "a\n\n   x\n",
			wantRemoved: nil,
		},
		{
			name:        "whitespace-only line counts as blank boundary",
			input:       "para\n  \n    code\n",
			wantText:    "para\n  \n",
			wantRemoved: []string{"    code"},
		},
		{
			name:        "two separate blocks",
			input:       "    a\ntext\n\n    b\nend\n",
			wantText:    "text\n\nend\n",
			wantRemoved: []string{"    a", "    b"},
		},
		{
			name:        "empty input",
			input:       "",
			wantText:    "",
			wantRemoved: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotText, gotRemoved := RemoveIndentedBlocks(tt.input)
			if gotText != tt.wantText {
				t.Errorf("cleaned text = %q, want %q", gotText, tt.wantText)
			}
			if !reflect.DeepEqual(gotRemoved, tt.wantRemoved) {
				t.Errorf("removed = %q, want %q", gotRemoved, tt.wantRemoved)
			}
		})
	}
}
