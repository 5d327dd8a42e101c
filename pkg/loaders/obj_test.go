package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trevday/rust-raytracer/pkg/core"
	"github.com/trevday/rust-raytracer/pkg/geometry"
	"github.com/trevday/rust-raytracer/pkg/material"
	"github.com/trevday/rust-raytracer/pkg/texture"
)

func writeTempOBJ(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "mesh.obj")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

const triangleOBJ = `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`

func TestLoadOBJ_ParsesVerticesAndFace(t *testing.T) {
	path := writeTempOBJ(t, triangleOBJ)
	mesh, err := LoadOBJ(path)
	require.NoError(t, err)

	require.Len(t, mesh.Vertices, 3)
	assert.Equal(t, core.NewPoint3(0, 0, 0), mesh.Vertices[0])
	assert.Equal(t, core.NewPoint3(1, 0, 0), mesh.Vertices[1])
	require.Len(t, mesh.Indices, 1)
	assert.Equal(t, [3]int{0, 1, 2}, mesh.Indices[0])
	assert.Empty(t, mesh.UVs)
}

func TestLoadOBJ_RejectsNonTriangleFace(t *testing.T) {
	path := writeTempOBJ(t, "v 0 0 0\nv 1 0 0\nv 0 1 0\nv 1 1 0\nf 1 2 3 4\n")
	_, err := LoadOBJ(path)
	assert.Error(t, err)
}

func TestLoadOBJ_MissingFileErrors(t *testing.T) {
	_, err := LoadOBJ(filepath.Join(t.TempDir(), "nope.obj"))
	assert.Error(t, err)
}

const texturedOBJ = `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
f 1/1 2/2 3/3
`

func TestBuildTriangleMesh_SharedIndexingKeepsOneMesh(t *testing.T) {
	path := writeTempOBJ(t, texturedOBJ)
	obj, err := LoadOBJ(path)
	require.NoError(t, err)

	mat := material.NewLambertian(texture.NewConstant(core.NewVector3(1, 0, 0)))
	shapes, err := BuildTriangleMesh(obj, core.Identity4(), mat, false)
	require.NoError(t, err)
	require.Len(t, shapes, 1)
}

const divergentIndexingOBJ = `
v 0 0 0
v 1 0 0
v 0 1 0
v 1 1 0
vt 0 0
vt 1 0
vt 1 1
f 1/1 2/2 3/3
f 2/2 4/3 3/1
`

func TestBuildTriangleMesh_DivergentIndexingExpandsPerCorner(t *testing.T) {
	path := writeTempOBJ(t, divergentIndexingOBJ)
	obj, err := LoadOBJ(path)
	require.NoError(t, err)

	mat := material.NewLambertian(texture.NewConstant(core.NewVector3(1, 0, 0)))
	shapes, err := BuildTriangleMesh(obj, core.Identity4(), mat, false)
	require.NoError(t, err)
	require.Len(t, shapes, 2)
	tri := shapes[0].(*geometry.Triangle)
	assert.Len(t, tri.Mesh.Vertices, 6)
	assert.Len(t, tri.Mesh.UVs, 6)
}

func TestBuildTriangleMesh_AppliesObjectToWorld(t *testing.T) {
	path := writeTempOBJ(t, triangleOBJ)
	obj, err := LoadOBJ(path)
	require.NoError(t, err)

	mat := material.NewLambertian(texture.NewConstant(core.NewVector3(1, 0, 0)))
	transform := core.Translation(core.NewVector3(10, 0, 0))
	shapes, err := BuildTriangleMesh(obj, transform, mat, false)
	require.NoError(t, err)
	require.Len(t, shapes, 1)

	box := shapes[0].BoundingBox()
	assert.GreaterOrEqual(t, box.Min.X, float32(9.99))
}
