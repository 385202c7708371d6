// SPDX-License-Identifier: MIT

// Package meshio reads and writes the vertex/face subset of Wavefront OBJ.
//
// Accepted records:
//
//	v  x y z [w]     position (w ignored)
//	f  a b c ...     polygon; each corner is i, i/t, i//n or i/t/n
//	#  ...           comment
//
// Indices are 1-based; negative indices count back from the last vertex read so far.
// Every other record (vt, vn, g, o, s, usemtl, mtllib, l, ...) is skipped.
package meshio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/ddg/core"
	"github.com/katalvlaran/ddg/geometry"
)

// ErrSyntax reports a malformed OBJ record; the wrapping error names the line.
var ErrSyntax = errors.New("meshio: syntax error")

func syntaxErr(line int, format string, args ...any) error {
	return fmt.Errorf("meshio: line %d: %s: %w", line, fmt.Sprintf(format, args...), ErrSyntax)
}

// ReadOBJ parses r into connectivity and positions. Mesh construction errors from
// core.NewMesh pass through unchanged.
func ReadOBJ(r io.Reader, opts ...core.MeshOption) (*core.Mesh, []r3.Vec, error) {
	var (
		positions []r3.Vec
		faces     [][]int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			p, err := parseVertex(line, fields[1:])
			if err != nil {
				return nil, nil, err
			}
			positions = append(positions, p)
		case "f":
			f, err := parseFace(line, fields[1:], len(positions))
			if err != nil {
				return nil, nil, err
			}
			faces = append(faces, f)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("meshio: read: %w", err)
	}

	m, err := core.NewMesh(len(positions), faces, opts...)
	if err != nil {
		return nil, nil, err
	}

	return m, positions, nil
}

// LoadOBJ parses r and embeds the result.
func LoadOBJ(r io.Reader, opts ...core.MeshOption) (*geometry.Geometry, error) {
	m, pos, err := ReadOBJ(r, opts...)
	if err != nil {
		return nil, err
	}

	return geometry.New(m, pos)
}

func parseVertex(line int, args []string) (r3.Vec, error) {
	if len(args) < 3 || len(args) > 4 {
		return r3.Vec{}, syntaxErr(line, "vertex needs 3 coordinates, got %d", len(args))
	}
	var xyz [3]float64
	for i := range xyz {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return r3.Vec{}, syntaxErr(line, "bad coordinate %q", args[i])
		}
		xyz[i] = v
	}

	return r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}

func parseFace(line int, args []string, nv int) ([]int, error) {
	if len(args) < 3 {
		return nil, syntaxErr(line, "face needs at least 3 corners, got %d", len(args))
	}
	face := make([]int, len(args))
	for i, a := range args {
		ref := a
		if j := strings.IndexByte(a, '/'); j >= 0 {
			ref = a[:j]
		}
		idx, err := strconv.Atoi(ref)
		if err != nil || idx == 0 {
			return nil, syntaxErr(line, "bad vertex reference %q", a)
		}
		if idx < 0 {
			idx = nv + idx
		} else {
			idx--
		}
		if idx < 0 || idx >= nv {
			return nil, syntaxErr(line, "vertex reference %q outside 1..%d", a, nv)
		}
		face[i] = idx
	}

	return face, nil
}

// WriteOBJ emits one v record per vertex and one f record per face, 1-based.
func WriteOBJ(w io.Writer, g *geometry.Geometry) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d vertices, %d faces\n", g.NumVertices(), g.NumFaces())
	for v := 0; v < g.NumVertices(); v++ {
		p := g.Position(v)
		fmt.Fprintf(bw, "v %s %s %s\n", formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Z))
	}
	for f := 0; f < g.NumFaces(); f++ {
		bw.WriteString("f")
		for _, v := range g.FaceVertices(f) {
			bw.WriteString(" ")
			bw.WriteString(strconv.Itoa(v + 1))
		}
		bw.WriteString("\n")
	}

	return bw.Flush()
}

func formatFloat(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
