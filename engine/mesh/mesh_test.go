package mesh

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"prism/engine/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubeShape(t *testing.T) {
	c := Cube()
	require.Len(t, c, 12)

	center := geom.V3(0.5, 0.5, 0.5)
	for i, tri := range c {
		for _, v := range tri.Vertices() {
			assert.True(t, v.X >= 0 && v.X <= 1 && v.Y >= 0 && v.Y <= 1 && v.Z >= 0 && v.Z <= 1, "triangle %d vertex %v", i, v)
		}
		centroid := tri.A.Add(tri.B).Add(tri.C).Mul(1.0 / 3)
		out := centroid.Sub(center)
		assert.Greater(t, tri.Normal().Dot(out), 0.0, "triangle %d normal points inward", i)
	}
}

func TestCubeIsFresh(t *testing.T) {
	a := Cube()
	a[0].A = geom.V3(9, 9, 9)
	assert.Equal(t, geom.V3(0, 0, 0), Cube()[0].A)
}

func TestNormalInvariantUnderScaleAndTranslation(t *testing.T) {
	tri := Tri(geom.V3(0.2, -1, 3), geom.V3(1.5, 0.25, 2), geom.V3(-0.7, 0.9, 4.5))
	n := tri.Normal()

	for _, s := range []float64{0.01, 0.5, 3, 1000} {
		scaled := tri.Map(func(v geom.Vec3) geom.Vec3 { return v.Mul(s) })
		assert.True(t, geom.ApproxEqual(n, scaled.Normal(), 1e-9), "scale %v", s)
	}
	for _, d := range []geom.Vec3{geom.V3(10, 0, 0), geom.V3(-3, 7, 0.5), geom.V3(0, 0, -100)} {
		moved := tri.Map(func(v geom.Vec3) geom.Vec3 { return v.Add(d) })
		assert.True(t, geom.ApproxEqual(n, moved.Normal(), 1e-9), "offset %v", d)
	}
}

func TestDegenerateTriangleNormal(t *testing.T) {
	tri := Tri(geom.V3(1, 1, 1), geom.V3(2, 2, 2), geom.V3(3, 3, 3))
	assert.Equal(t, geom.Vec3{}, tri.Normal())
}

func TestMidZ(t *testing.T) {
	tri := Tri(geom.V3(0, 0, 1), geom.V3(0, 0, 2), geom.V3(0, 0, 6))
	assert.InDelta(t, 3.0, tri.MidZ(), 1e-12)
}

func TestParseSingleTriangle(t *testing.T) {
	m, err := ParseLines([]string{
		"v 0.0 0.0 0.0",
		"v 1.0 0.0 0.0",
		"v 0.0 1.0 0.0",
		"f 1 2 3",
	})
	require.NoError(t, err)
	require.Len(t, m, 1)
	assert.Equal(t, Tri(geom.V3(0, 0, 0), geom.V3(1, 0, 0), geom.V3(0, 1, 0)), m[0])
}

func TestParseIgnoresOtherLines(t *testing.T) {
	src := strings.Join([]string{
		"# a comment",
		"",
		"o teapot",
		"v 1 2 3",
		"vn 0 0 1",
		"v\t4   5 6",
		"s off",
		"v 7 8 9 1.0",
		"f 3 2 1 4",
		"g group",
	}, "\n")
	m, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, m, 1)
	assert.Equal(t, Tri(geom.V3(7, 8, 9), geom.V3(4, 5, 6), geom.V3(1, 2, 3)), m[0])
}

func TestParseKeepsFaceOrder(t *testing.T) {
	m, err := ParseLines([]string{
		"v 0 0 0",
		"v 1 0 0",
		"v 0 1 0",
		"f 1 2 3",
		"v 0 0 1",
		"f 4 2 1",
		"f 3 4 2",
	})
	require.NoError(t, err)
	require.Len(t, m, 3)
	assert.Equal(t, geom.V3(0, 0, 1), m[1].A)
	assert.Equal(t, geom.V3(0, 1, 0), m[2].A)
}

func TestParseEmpty(t *testing.T) {
	m, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		line  int
		kind  error
	}{
		{"short vertex", []string{"v 1 2"}, 1, ErrTooFewTokens},
		{"bare vertex", []string{"v"}, 1, ErrTooFewTokens},
		{"bad float", []string{"v 1 x 3"}, 1, ErrBadNumber},
		{"short face", []string{"v 0 0 0", "v 1 0 0", "v 0 1 0", "f 1 2"}, 4, ErrTooFewTokens},
		{"bad index", []string{"v 0 0 0", "v 1 0 0", "v 0 1 0", "f 1 2 c"}, 4, ErrBadNumber},
		{"slash index", []string{"v 0 0 0", "v 1 0 0", "v 0 1 0", "f 1/1 2/2 3/3"}, 4, ErrBadNumber},
		{"zero index", []string{"v 0 0 0", "v 1 0 0", "v 0 1 0", "f 0 1 2"}, 4, ErrIndexOutOfRange},
		{"negative index", []string{"v 0 0 0", "v 1 0 0", "v 0 1 0", "f -1 1 2"}, 4, ErrIndexOutOfRange},
		{"index past end", []string{"v 0 0 0", "v 1 0 0", "v 0 1 0", "f 1 2 4"}, 4, ErrIndexOutOfRange},
		{"forward reference", []string{"v 0 0 0", "v 1 0 0", "f 1 2 3", "v 0 1 0"}, 3, ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseLines(tt.lines)
			require.Error(t, err)
			assert.Nil(t, m)

			var pe *ParseError
			require.True(t, errors.As(err, &pe), "expected *ParseError, got %T", err)
			assert.Equal(t, tt.line, pe.Line)
			assert.ErrorIs(t, err, tt.kind)
			assert.Contains(t, err.Error(), "line "+strconv.Itoa(tt.line))
		})
	}
}

func TestParseBadNumberWrapsStrconv(t *testing.T) {
	_, err := ParseLines([]string{"v 1 2 nope"})
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestEncodeRoundTripCube(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Cube()))

	text := buf.String()
	assert.Equal(t, 8, strings.Count(text, "v "), "cube corners should be shared")
	assert.Equal(t, 12, strings.Count(text, "f "))

	back, err := Parse(&buf)
	require.NoError(t, err)
	require.Len(t, back, len(Cube()))
	for i, tri := range Cube() {
		got := back[i]
		assert.True(t, geom.ApproxEqual(tri.A, got.A, 1e-12), "triangle %d A", i)
		assert.True(t, geom.ApproxEqual(tri.B, got.B, 1e-12), "triangle %d B", i)
		assert.True(t, geom.ApproxEqual(tri.C, got.C, 1e-12), "triangle %d C", i)
	}
}

func TestEncodeRoundTripFractional(t *testing.T) {
	m := Mesh{
		Tri(geom.V3(0.1, -2.75, 1e-7), geom.V3(3.3333333333333335, 0, -0), geom.V3(-1e10, 5, 0.5)),
		Tri(geom.V3(0.1, -2.75, 1e-7), geom.V3(-1e10, 5, 0.5), geom.V3(7, 7, 7)),
	}
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, m))
	back, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, m, back)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tri.obj")
	require.NoError(t, os.WriteFile(path, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, m, 1)

	_, err = Load(filepath.Join(dir, "missing.obj"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.obj")
	require.NoError(t, os.WriteFile(bad, []byte("v 0 0 0\nf 1 1 2\n"), 0o644))
	_, err = Load(bad)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
}

func TestClone(t *testing.T) {
	m := Cube()
	c := m.Clone()
	c[0] = Tri(geom.V3(5, 5, 5), geom.V3(5, 5, 5), geom.V3(5, 5, 5))
	assert.Equal(t, geom.V3(0, 0, 0), m[0].A)
	assert.Nil(t, Mesh(nil).Clone())
}
