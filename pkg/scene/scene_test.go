package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trevday/rust-raytracer/pkg/core"
)

func writeScene(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

const minimalScene = `
{
  "Logistics": {"resolution_x": 16, "resolution_y": 12, "samples": 4},
  "Camera": {
    "position": [0, 0, 0], "look_at": [0, 0, -1], "up": [0, 1, 0],
    "fov": 90, "aspect_ratio": 1.333, "aperture": 0, "focus_distance": 1
  },
  "Textures": {
    "ground": {"type": "Constant", "color": [0.5, 0.5, 0.5]},
    "checker_odd": {"type": "Constant", "color": [0, 0, 0]},
    "checker_even": {"type": "Constant", "color": [1, 1, 1]},
    "floor_pattern": {"type": "Checker", "repeat": 2, "odd": {"type": "Constant", "color": [0,0,0]}, "even": {"type": "Constant", "color": [1,1,1]}},
    "sun": {"type": "Constant", "color": [4, 4, 4]}
  },
  "Materials": {
    "ground_mat": {"type": "Lambert", "albedo": "floor_pattern"},
    "glow": {"type": "DiffuseLight", "emission": "sun"},
    "glass": {"type": "Dielectric", "refractive_index": 1.5},
    "fog": {"type": "Isotropic", "albedo": "ground"}
  },
  "Shapes": [
    {"type": "Sphere", "material": "ground_mat", "radius": 1000, "transform": {"translate": [0, -1000, -1]}},
    {"type": "Sphere", "material": "glow", "radius": 1, "transform": {"translate": [0, 3, -1]}},
    {"type": "Sphere", "material": "glass", "radius": 0.5, "transform": {"translate": [0, 0, -1]}},
    {"type": "ConstantMedium", "density": 0.2, "phase_func": "fog", "boundary": {"type": "Sphere", "material": "glass", "radius": 5, "transform": {"translate": [0, 0, -1]}}}
  ],
  "Aggregate": "BVH"
}
`

func TestLoad_BuildsSceneWithImportantShapes(t *testing.T) {
	path := writeScene(t, minimalScene)
	sc, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 16, sc.Width)
	assert.Equal(t, 12, sc.Height)
	assert.Equal(t, 4, sc.Samples)
	require.NotNil(t, sc.Aggregate())
	require.NotNil(t, sc.Camera())

	important := sc.ImportantShapes()
	// The glow (DiffuseLight) and glass (Dielectric) spheres are
	// important; the ground Lambertian and fog Isotropic are not.
	assert.Len(t, important, 2)

	ray := core.NewRay(core.NewPoint3(0, 0, 2), core.NewVector3(0, 0, -1))
	_, ok := sc.Aggregate().HitClosest(ray, core.T_MIN, core.T_MAX, core.NewWorkspace(16), core.NewRNGSampler(1))
	assert.True(t, ok)
}

func TestLoad_UnknownShapeTypeErrors(t *testing.T) {
	const bad = `
{
  "Logistics": {"resolution_x": 4, "resolution_y": 4, "samples": 1},
  "Camera": {"position": [0,0,0], "look_at": [0,0,-1], "up": [0,1,0], "fov": 90, "aspect_ratio": 1, "aperture": 0, "focus_distance": 1},
  "Textures": {}, "Materials": {},
  "Shapes": [{"type": "Cone", "material": "none"}],
  "Aggregate": "List"
}`
	path := writeScene(t, bad)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingMaterialReferenceErrors(t *testing.T) {
	const bad = `
{
  "Logistics": {"resolution_x": 4, "resolution_y": 4, "samples": 1},
  "Camera": {"position": [0,0,0], "look_at": [0,0,-1], "up": [0,1,0], "fov": 90, "aspect_ratio": 1, "aperture": 0, "focus_distance": 1},
  "Textures": {}, "Materials": {},
  "Shapes": [{"type": "Sphere", "material": "does_not_exist", "radius": 1}],
  "Aggregate": "List"
}`
	path := writeScene(t, bad)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_DefaultAggregateIsList(t *testing.T) {
	const doc = `
{
  "Logistics": {"resolution_x": 4, "resolution_y": 4, "samples": 1},
  "Camera": {"position": [0,0,0], "look_at": [0,0,-1], "up": [0,1,0], "fov": 90, "aspect_ratio": 1, "aperture": 0, "focus_distance": 1},
  "Textures": {"c": {"type": "Constant", "color": [1,1,1]}},
  "Materials": {"m": {"type": "Lambert", "albedo": "c"}},
  "Shapes": [{"type": "Sphere", "material": "m", "radius": 1}],
  "Aggregate": ""
}`
	path := writeScene(t, doc)
	sc, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, sc.Aggregate())
}
