package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"prism/engine/geom"
)

var (
	ErrTooFewTokens    = errors.New("too few tokens")
	ErrBadNumber       = errors.New("bad number")
	ErrIndexOutOfRange = errors.New("face index out of range")
)

// ParseError reports a malformed line in a mesh source.
type ParseError struct {
	Line   int // 1-based
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("mesh: line %d: %s", e.Line, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads and parses the mesh file at path.
func Load(path string) (Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mesh %q: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load mesh %q: %w", path, err)
	}
	return m, nil
}

// Parse reads a mesh in the vertex/face text format:
//
//	v <x> <y> <z>   vertex, appended to a 1-indexed list
//	f <i> <j> <k>   triangle over previously declared vertices
//
// Other lines are ignored. Tokens past the third are ignored.
func Parse(r io.Reader) (Mesh, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read mesh: %w", err)
	}
	return ParseLines(lines)
}

// ParseLines parses a mesh from already-split lines. The result is in face
// declaration order.
func ParseLines(lines []string) (Mesh, error) {
	var verts []geom.Vec3
	var out Mesh

	for i, line := range lines {
		lineNo := i + 1
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			xyz, err := parseFloats(lineNo, fields[1:])
			if err != nil {
				return nil, err
			}
			verts = append(verts, geom.V3(xyz[0], xyz[1], xyz[2]))

		case "f":
			idx, err := parseIndices(lineNo, fields[1:], len(verts))
			if err != nil {
				return nil, err
			}
			out = append(out, Tri(verts[idx[0]-1], verts[idx[1]-1], verts[idx[2]-1]))
		}
	}

	return out, nil
}

func parseFloats(lineNo int, tok []string) ([3]float64, error) {
	var out [3]float64
	if len(tok) < 3 {
		return out, &ParseError{
			Line:   lineNo,
			Reason: fmt.Sprintf("vertex needs 3 coordinates, got %d", len(tok)),
			Err:    ErrTooFewTokens,
		}
	}
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(tok[i], 64)
		if err != nil {
			return out, &ParseError{
				Line:   lineNo,
				Reason: fmt.Sprintf("vertex coordinate %q is not a number", tok[i]),
				Err:    errors.Join(ErrBadNumber, err),
			}
		}
		out[i] = f
	}
	return out, nil
}

func parseIndices(lineNo int, tok []string, nverts int) ([3]int, error) {
	var out [3]int
	if len(tok) < 3 {
		return out, &ParseError{
			Line:   lineNo,
			Reason: fmt.Sprintf("face needs 3 indices, got %d", len(tok)),
			Err:    ErrTooFewTokens,
		}
	}
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(tok[i])
		if err != nil {
			return out, &ParseError{
				Line:   lineNo,
				Reason: fmt.Sprintf("face index %q is not an integer", tok[i]),
				Err:    errors.Join(ErrBadNumber, err),
			}
		}
		if n <= 0 || n > nverts {
			return out, &ParseError{
				Line:   lineNo,
				Reason: fmt.Sprintf("face index %d out of range (%d vertices declared)", n, nverts),
				Err:    ErrIndexOutOfRange,
			}
		}
		out[i] = n
	}
	return out, nil
}
