package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadOBJ parses a Wavefront OBJ stream into an evaluated Mesh.
//
// Supported statements: "v" (vertex position), "f" (face, any arity,
// "v", "v/vt", "v/vt/vn" and "v//vn" reference forms), "l" (polyline,
// split into edges). Everything else is skipped. Face boundary edges are
// deduplicated into the edge array; polyline edges not shared with a
// face boundary end up loose.
//
// Negative (relative) indices follow the OBJ specification and count
// backwards from the latest vertex.
func ReadOBJ(r io.Reader) (*Mesh, error) {
	m := &Mesh{FaceOffsets: []int32{0}}

	edgeIndex := make(map[[2]int32]int32)
	addEdge := func(a, b int32) {
		if a == b {
			return
		}
		k := canonicalEdge(a, b)
		if _, ok := edgeIndex[k]; ok {
			return
		}
		edgeIndex[k] = int32(len(m.Edges))
		m.Edges = append(m.Edges, [2]int32{a, b})
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "v "):
			var p [3]float32
			if _, err := fmt.Sscanf(line, "v %f %f %f", &p[0], &p[1], &p[2]); err != nil {
				return nil, fmt.Errorf("obj line %d: bad vertex: %w", lineNo, err)
			}
			m.Positions = append(m.Positions, p)
			m.VertCount++

		case strings.HasPrefix(line, "f "):
			fields := strings.Fields(line)[1:]
			if len(fields) < 3 {
				return nil, fmt.Errorf("obj line %d: face with %d corners", lineNo, len(fields))
			}
			for _, fld := range fields {
				v, err := parseOBJIndex(fld, m.VertCount)
				if err != nil {
					return nil, fmt.Errorf("obj line %d: %w", lineNo, err)
				}
				m.CornerVerts = append(m.CornerVerts, v)
			}
			m.FaceOffsets = append(m.FaceOffsets, int32(len(m.CornerVerts)))
			// Register boundary edges so they are not treated as loose.
			n := int32(len(fields))
			start := int32(len(m.CornerVerts)) - n
			for i := int32(0); i < n; i++ {
				addEdge(m.CornerVerts[start+i], m.CornerVerts[start+(i+1)%n])
			}

		case strings.HasPrefix(line, "l "):
			fields := strings.Fields(line)[1:]
			if len(fields) < 2 {
				return nil, fmt.Errorf("obj line %d: polyline with %d vertices", lineNo, len(fields))
			}
			prev := int32(-1)
			for i, fld := range fields {
				v, err := parseOBJIndex(fld, m.VertCount)
				if err != nil {
					return nil, fmt.Errorf("obj line %d: %w", lineNo, err)
				}
				if i > 0 {
					addEdge(prev, v)
				}
				prev = v
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("obj: read failed: %w", err)
	}
	return m, nil
}

// parseOBJIndex resolves a single "v", "v/vt", "v//vn" or "v/vt/vn"
// reference to a zero-based vertex index.
func parseOBJIndex(field string, numVerts int) (int32, error) {
	if i := strings.IndexByte(field, '/'); i >= 0 {
		field = field[:i]
	}
	idx, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("bad index %q: %w", field, err)
	}
	switch {
	case idx > 0:
		idx--
	case idx < 0:
		idx += numVerts
	default:
		return 0, fmt.Errorf("index 0 is not valid in OBJ")
	}
	if idx < 0 || idx >= numVerts {
		return 0, fmt.Errorf("index %q out of range (%d vertices)", field, numVerts)
	}
	return int32(idx), nil
}
