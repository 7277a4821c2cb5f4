package assets

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ShaderSource holds the two stage sources recovered from a single
// interleaved shader file. Values are plain GLSL text; NUL termination
// for gl.Str is the GL backend's concern, not ours.
type ShaderSource struct {
	Vertex   string
	Fragment string
}

// ParseError reports an unusable line in a shader file.
type ParseError struct {
	Line int    // 1-based
	Text string // the offending line, as read
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("shader source line %d: %s: %q", e.Line, e.Msg, e.Text)
}

// directive is the marker that introduces a stage section. Case-sensitive.
const directive = "#shader"

type stage int

const (
	stageNone stage = iota
	stageVertex
	stageFragment
)

// ParseShaderFile reads an interleaved vertex+fragment shader file and
// splits it into its two stage sources.
func ParseShaderFile(path string) (ShaderSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return ShaderSource{}, fmt.Errorf("parse shader %q: %w", path, err)
	}
	defer f.Close()
	src, err := SplitShaderSource(f)
	if err != nil {
		return ShaderSource{}, fmt.Errorf("parse shader %q: %w", path, err)
	}
	return src, nil
}

// SplitShaderSource classifies each input line as either a "#shader <stage>"
// directive or stage content. Directive lines select the accumulation target
// and never appear in the output; content lines are appended, newline
// terminated, to the current stage's text in original order.
//
// Malformed directives and content ahead of the first directive are errors
// rather than being silently dropped. Blank lines ahead of the first
// directive are tolerated since they carry no source text.
func SplitShaderSource(r io.Reader) (ShaderSource, error) {
	var vert, frag strings.Builder
	cur := stageNone

	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		fields := strings.Fields(line)

		if len(fields) > 0 && fields[0] == directive {
			switch {
			case len(fields) != 2:
				return ShaderSource{}, &ParseError{Line: n, Text: line, Msg: "malformed #shader directive"}
			case fields[1] == "vertex":
				cur = stageVertex
			case fields[1] == "fragment":
				cur = stageFragment
			default:
				return ShaderSource{}, &ParseError{Line: n, Text: line, Msg: "unknown shader stage"}
			}
			continue
		}

		switch cur {
		case stageVertex:
			vert.WriteString(line)
			vert.WriteByte('\n')
		case stageFragment:
			frag.WriteString(line)
			frag.WriteByte('\n')
		default:
			if len(fields) == 0 {
				continue
			}
			return ShaderSource{}, &ParseError{Line: n, Text: line, Msg: "content before any #shader directive"}
		}
	}
	if err := sc.Err(); err != nil {
		return ShaderSource{}, fmt.Errorf("read shader source: %w", err)
	}

	return ShaderSource{Vertex: vert.String(), Fragment: frag.String()}, nil
}
