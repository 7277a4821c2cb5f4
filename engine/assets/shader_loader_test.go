package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSplitShaderSource(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		vertex   string
		fragment string
	}{
		{
			name:     "vertex then fragment",
			input:    "#shader vertex\nA\nB\n#shader fragment\nC\n",
			vertex:   "A\nB\n",
			fragment: "C\n",
		},
		{
			name:     "fragment then vertex",
			input:    "#shader fragment\nC\n#shader vertex\nA\nB\n",
			vertex:   "A\nB\n",
			fragment: "C\n",
		},
		{
			name:     "split sections accumulate",
			input:    "#shader vertex\nA\n#shader fragment\nC\n#shader vertex\nB\n",
			vertex:   "A\nB\n",
			fragment: "C\n",
		},
		{
			name:  "empty input",
			input: "",
		},
		{
			name:   "blank lines before first directive",
			input:  "\n  \n#shader vertex\nA\n",
			vertex: "A\n",
		},
		{
			name:     "directive with surrounding whitespace",
			input:    "  #shader vertex\nA\n\t#shader fragment\nB\n",
			vertex:   "A\n",
			fragment: "B\n",
		},
		{
			name:     "blank content lines are kept",
			input:    "#shader vertex\nA\n\nB\n#shader fragment\n\n",
			vertex:   "A\n\nB\n",
			fragment: "\n",
		},
		{
			name:   "missing trailing newline",
			input:  "#shader vertex\nA",
			vertex: "A\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := SplitShaderSource(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if src.Vertex != tt.vertex {
				t.Errorf("vertex = %q, want %q", src.Vertex, tt.vertex)
			}
			if src.Fragment != tt.fragment {
				t.Errorf("fragment = %q, want %q", src.Fragment, tt.fragment)
			}
		})
	}
}

func TestSplitShaderSourceLineCounts(t *testing.T) {
	// N vertex lines and M fragment lines must come back exactly,
	// regardless of which section appears first.
	const n, m = 7, 3
	var fwd, rev strings.Builder

	fwd.WriteString("#shader vertex\n")
	for i := 0; i < n; i++ {
		fwd.WriteString("v\n")
	}
	fwd.WriteString("#shader fragment\n")
	for i := 0; i < m; i++ {
		fwd.WriteString("f\n")
	}

	rev.WriteString("#shader fragment\n")
	for i := 0; i < m; i++ {
		rev.WriteString("f\n")
	}
	rev.WriteString("#shader vertex\n")
	for i := 0; i < n; i++ {
		rev.WriteString("v\n")
	}

	for _, input := range []string{fwd.String(), rev.String()} {
		src, err := SplitShaderSource(strings.NewReader(input))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := strings.Count(src.Vertex, "\n"); got != n {
			t.Errorf("vertex lines = %d, want %d", got, n)
		}
		if got := strings.Count(src.Fragment, "\n"); got != m {
			t.Errorf("fragment lines = %d, want %d", got, m)
		}
	}
}

func TestSplitShaderSourceStripsDirectives(t *testing.T) {
	input := "#shader vertex\nA\n#shader fragment\nB\n"
	src, err := SplitShaderSource(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(src.Vertex, "#shader") || strings.Contains(src.Fragment, "#shader") {
		t.Errorf("directive leaked into output: vertex=%q fragment=%q", src.Vertex, src.Fragment)
	}
}

func TestSplitShaderSourceErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"unknown stage", "#shader geometry\nA\n", 1},
		{"bare directive", "#shader\nA\n", 1},
		{"trailing fields", "#shader vertex extra\nA\n", 1},
		{"content before directive", "A\n#shader vertex\nB\n", 1},
		{"late malformed directive", "#shader vertex\nA\n#shader pixel\n", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SplitShaderSource(strings.NewReader(tt.input))
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error = %v, want *ParseError", err)
			}
			if perr.Line != tt.line {
				t.Errorf("line = %d, want %d", perr.Line, tt.line)
			}
		})
	}
}

func TestParseShaderFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quad.shader")
	content := "#shader vertex\nvoid main() {}\n#shader fragment\nvoid main() {}\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	first, err := ParseShaderFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Vertex != "void main() {}\n" || first.Fragment != "void main() {}\n" {
		t.Errorf("unexpected split: %+v", first)
	}

	// Parsing the same file twice yields identical values.
	second, err := ParseShaderFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("reparse differs: %+v vs %+v", first, second)
	}
}

func TestParseShaderFileMissing(t *testing.T) {
	_, err := ParseShaderFile(filepath.Join(t.TempDir(), "nope.shader"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
