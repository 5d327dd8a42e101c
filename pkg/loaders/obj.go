// Package loaders implements the external-collaborator interfaces
// named by spec.md's EXTERNAL INTERFACES: a Wavefront OBJ mesh parser.
// Image texture decoding lives in pkg/texture/image.go (it's a texture
// concern, not a mesh concern) and PNG output is written by main.go.
package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/trevday/rust-raytracer/pkg/core"
	"github.com/trevday/rust-raytracer/pkg/geometry"
)

// ObjMesh is the raw vertex/uv/triangle data decoded from a Wavefront
// OBJ file, before it's wrapped into a geometry.TriangleMesh with a
// material. Only triangle faces are accepted; vertex normal ("vn")
// lines are skipped unparsed (normals are derived from face geometry, per
// EXTERNAL INTERFACES' Mesh file note); polygons with more than 3
// vertices are rejected rather than fan-triangulated, since no example
// scene or spec case needs them.
type ObjMesh struct {
	Vertices []core.Point3
	UVs      []core.Vector3 // empty if the file has no vt lines
	Indices  [][3]int       // triangle vertex indices, one triple per face
	UVIndices [][3]int      // parallel to Indices; empty if Vertices has no uvs
}

// LoadOBJ parses a Wavefront OBJ file at path, keeping only v/vt/f
// records. Grounded on the teacher's pkg/loaders/ply.go for the
// line-oriented bufio.Scanner + strconv parsing idiom, adapted to OBJ's
// text format (PLY's binary layout has no OBJ analogue).
func LoadOBJ(path string) (*ObjMesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open mesh %q: %w", path, err)
	}
	defer f.Close()

	mesh := &ObjMesh{}
	var rawVerts []core.Point3
	var rawUVs []core.Vector3

	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("loaders: %q line %d: %w", path, lineNum, err)
			}
			rawVerts = append(rawVerts, p)
		case "vt":
			uv, err := parseUV(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("loaders: %q line %d: %w", path, lineNum, err)
			}
			rawUVs = append(rawUVs, uv)
		case "f":
			if len(fields) != 4 {
				return nil, fmt.Errorf("loaders: %q line %d: only triangle faces are supported, got %d vertices", path, lineNum, len(fields)-1)
			}
			vi, ti, err := parseFace(fields[1:], len(rawVerts), len(rawUVs))
			if err != nil {
				return nil, fmt.Errorf("loaders: %q line %d: %w", path, lineNum, err)
			}
			mesh.Indices = append(mesh.Indices, vi)
			if len(rawUVs) > 0 {
				mesh.UVIndices = append(mesh.UVIndices, ti)
			}
		// "vn" (vertex normals) and other record types are ignored: normals
		// are derived from triangle geometry per the Mesh file contract.
		default:
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loaders: read mesh %q: %w", path, err)
	}

	mesh.Vertices = rawVerts
	mesh.UVs = rawUVs
	return mesh, nil
}

func parseVertex(fields []string) (core.Point3, error) {
	if len(fields) < 3 {
		return core.Point3{}, fmt.Errorf("vertex needs 3 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return core.Point3{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return core.Point3{}, err
	}
	z, err := strconv.ParseFloat(fields[2], 32)
	if err != nil {
		return core.Point3{}, err
	}
	return core.NewPoint3(float32(x), float32(y), float32(z)), nil
}

func parseUV(fields []string) (core.Vector3, error) {
	if len(fields) < 2 {
		return core.Vector3{}, fmt.Errorf("texture coordinate needs 2 components, got %d", len(fields))
	}
	u, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return core.Vector3{}, err
	}
	v, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return core.Vector3{}, err
	}
	return core.NewVector3(float32(u), float32(v), 0), nil
}

// parseFace parses a triangle's three "v/vt/vn" (or bare "v") groups
// into 0-based vertex and texture-coordinate index triples, honoring
// OBJ's negative (relative-to-end) index convention.
func parseFace(fields []string, vertexCount, uvCount int) ([3]int, [3]int, error) {
	var vi, ti [3]int
	for i, group := range fields {
		parts := strings.Split(group, "/")
		v, err := strconv.Atoi(parts[0])
		if err != nil {
			return vi, ti, fmt.Errorf("bad face vertex index %q: %w", parts[0], err)
		}
		vi[i] = resolveIndex(v, vertexCount)
		if vi[i] < 0 || vi[i] >= vertexCount {
			return vi, ti, fmt.Errorf("face vertex index %d out of range [0,%d)", vi[i], vertexCount)
		}
		if len(parts) >= 2 && parts[1] != "" {
			t, err := strconv.Atoi(parts[1])
			if err != nil {
				return vi, ti, fmt.Errorf("bad face texture index %q: %w", parts[1], err)
			}
			ti[i] = resolveIndex(t, uvCount)
			if ti[i] < 0 || ti[i] >= uvCount {
				return vi, ti, fmt.Errorf("face texture index %d out of range [0,%d)", ti[i], uvCount)
			}
		}
	}
	return vi, ti, nil
}

// resolveIndex converts a 1-based OBJ index (or a negative,
// relative-to-end index) to a 0-based index.
func resolveIndex(i, count int) int {
	if i < 0 {
		return count + i
	}
	return i - 1
}

// BuildTriangleMesh wraps parsed OBJ data into a geometry.TriangleMesh
// and its constituent Triangle shapes, applying objectToWorld to every
// vertex so the mesh is stored in world space per the data model.
func BuildTriangleMesh(obj *ObjMesh, objectToWorld core.Matrix4, mat core.Material, cullBackface bool) ([]core.Shape, error) {
	worldVerts := make([]core.Point3, len(obj.Vertices))
	for i, v := range obj.Vertices {
		worldVerts[i] = objectToWorld.MulPoint(v)
	}

	var meshUVs []core.Vector3
	if len(obj.UVs) > 0 {
		// TriangleMesh expects one uv per vertex slot; OBJ allows distinct
		// vertex/uv index pairs per face corner, so we materialize a
		// per-corner uv array and a matching per-corner vertex array when
		// the indices diverge, falling back to the compact shared form
		// when every face uses vi == ti).
		if sameIndexing(obj.Indices, obj.UVIndices) {
			meshUVs = obj.UVs
		}
	}

	mesh := geometry.NewTriangleMesh(worldVerts, meshUVs, mat, cullBackface)

	if len(obj.UVs) > 0 && meshUVs == nil {
		return buildPerCornerMesh(obj, worldVerts, mat, cullBackface)
	}

	shapes := make([]core.Shape, 0, len(obj.Indices))
	for _, tri := range obj.Indices {
		shapes = append(shapes, geometry.NewTriangle(mesh, tri[0], tri[1], tri[2]))
	}
	return shapes, nil
}

func sameIndexing(vi, ti [][3]int) bool {
	if len(ti) != len(vi) {
		return false
	}
	for i := range vi {
		if vi[i] != ti[i] {
			return false
		}
	}
	return true
}

// buildPerCornerMesh handles the general OBJ case where vertex and
// texture-coordinate indices diverge per face corner: it expands every
// triangle into three fresh, uniquely-indexed corners so
// geometry.TriangleMesh's one-uv-per-vertex invariant still holds.
func buildPerCornerMesh(obj *ObjMesh, worldVerts []core.Point3, mat core.Material, cullBackface bool) ([]core.Shape, error) {
	expandedVerts := make([]core.Point3, 0, len(obj.Indices)*3)
	expandedUVs := make([]core.Vector3, 0, len(obj.Indices)*3)

	mesh := geometry.NewTriangleMesh(nil, nil, mat, cullBackface)
	shapes := make([]core.Shape, 0, len(obj.Indices))
	for i, tri := range obj.Indices {
		base := len(expandedVerts)
		uvTri := obj.UVIndices[i]
		for c := 0; c < 3; c++ {
			expandedVerts = append(expandedVerts, worldVerts[tri[c]])
			expandedUVs = append(expandedUVs, obj.UVs[uvTri[c]])
		}
		shapes = append(shapes, geometry.NewTriangle(mesh, base, base+1, base+2))
	}
	mesh.Vertices = expandedVerts
	mesh.UVs = expandedUVs
	return shapes, nil
}
