package scene

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/trevday/rust-raytracer/pkg/core"
	"github.com/trevday/rust-raytracer/pkg/geometry"
	"github.com/trevday/rust-raytracer/pkg/loaders"
	"github.com/trevday/rust-raytracer/pkg/material"
	"github.com/trevday/rust-raytracer/pkg/renderer"
	"github.com/trevday/rust-raytracer/pkg/texture"
)

// builder resolves a parsed sceneDoc into concrete textures, materials
// and shapes, memoizing textures/materials by name so a name referenced
// from several places (e.g. one albedo texture shared by two
// materials) is only built once.
type builder struct {
	dir string // scene file's directory; Mesh/Image paths resolve relative to it

	texturesRaw  map[string]json.RawMessage
	materialsRaw map[string]json.RawMessage

	textures  map[string]core.Texture
	materials map[string]core.Material
}

func newBuilder(dir string, doc *sceneDoc) *builder {
	return &builder{
		dir:          dir,
		texturesRaw:  doc.Textures,
		materialsRaw: doc.Materials,
		textures:     map[string]core.Texture{},
		materials:    map[string]core.Material{},
	}
}

func (b *builder) build(doc *sceneDoc) (*Scene, error) {
	cam := renderer.NewCamera(
		point3FromArr(doc.Camera.Position),
		point3FromArr(doc.Camera.LookAt),
		vector3FromArr(doc.Camera.Up),
		doc.Camera.FOV,
		doc.Camera.AspectRatio,
		doc.Camera.Aperture,
		doc.Camera.FocusDistance,
	)

	var shapes []core.Shape
	for i, raw := range doc.Shapes {
		built, err := b.buildShape(raw)
		if err != nil {
			return nil, fmt.Errorf("scene: shape %d: %w", i, err)
		}
		shapes = append(shapes, built...)
	}

	var aggregate core.Aggregate
	switch doc.Aggregate {
	case "", "List":
		aggregate = geometry.NewList(shapes)
	case "BVH":
		aggregate = geometry.NewBVH(shapes)
	default:
		return nil, fmt.Errorf("scene: unknown Aggregate %q, want \"List\" or \"BVH\"", doc.Aggregate)
	}

	var important []core.Shape
	for _, sh := range shapes {
		if core.IsImportant(sh) {
			important = append(important, sh)
		}
	}

	return &Scene{
		aggregate: aggregate,
		camera:    cam,
		important: important,
		Width:     int(doc.Logistics.ResolutionX),
		Height:    int(doc.Logistics.ResolutionY),
		Samples:   int(doc.Logistics.Samples),
	}, nil
}

// resolveTexture looks up name in the scene's Textures map, building
// and memoizing it on first use. Referencing an undeclared name is a
// configuration error, per section 7.
func (b *builder) resolveTexture(name string) (core.Texture, error) {
	if name == "" {
		return nil, fmt.Errorf("scene: empty texture reference")
	}
	if t, ok := b.textures[name]; ok {
		return t, nil
	}
	raw, ok := b.texturesRaw[name]
	if !ok {
		return nil, fmt.Errorf("scene: no Texture named %q", name)
	}
	t, err := b.buildTextureDescriptor(raw)
	if err != nil {
		return nil, fmt.Errorf("scene: texture %q: %w", name, err)
	}
	b.textures[name] = t
	return t, nil
}

func (b *builder) buildTextureDescriptor(raw json.RawMessage) (core.Texture, error) {
	var tag typeTag
	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil, fmt.Errorf("parse texture descriptor: %w", err)
	}
	var doc textureDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse texture descriptor: %w", err)
	}

	switch tag.Type {
	case "Constant":
		return texture.NewConstant(vector3FromArr(doc.Color)), nil
	case "Test":
		return texture.NewTest(), nil
	case "Checker":
		if doc.Odd == nil || doc.Even == nil {
			return nil, fmt.Errorf("Checker requires odd and even child textures")
		}
		odd, err := b.buildTextureDescriptor(doc.Odd)
		if err != nil {
			return nil, fmt.Errorf("odd child: %w", err)
		}
		even, err := b.buildTextureDescriptor(doc.Even)
		if err != nil {
			return nil, fmt.Errorf("even child: %w", err)
		}
		// Repeat is a multiplicative scale (original_source/texture.rs has
		// no default and tolerates 0, which just yields an all-even
		// texture), so unlike a divisor it needs no zero guard here.
		return texture.NewChecker(doc.Repeat, odd, even), nil
	case "Image":
		path := filepath.Join(b.dir, doc.Image)
		img, err := texture.LoadImage(path)
		if err != nil {
			return nil, err
		}
		return img, nil
	case "Noise":
		return texture.NewNoise(doc.Seed, doc.Scale), nil
	case "Turbulence":
		if doc.Omega < 0 || doc.Omega > 1 {
			return nil, fmt.Errorf("Turbulence omega %g out of range [0,1]", doc.Omega)
		}
		return texture.NewTurbulence(doc.Seed, doc.Scale, doc.Depth, doc.Omega), nil
	default:
		return nil, fmt.Errorf("unknown texture type %q", tag.Type)
	}
}

// resolveMaterial looks up name in the scene's Materials map, building
// and memoizing it on first use.
func (b *builder) resolveMaterial(name string) (core.Material, error) {
	if name == "" {
		return nil, fmt.Errorf("scene: empty material reference")
	}
	if m, ok := b.materials[name]; ok {
		return m, nil
	}
	raw, ok := b.materialsRaw[name]
	if !ok {
		return nil, fmt.Errorf("scene: no Material named %q", name)
	}
	m, err := b.buildMaterialDescriptor(raw)
	if err != nil {
		return nil, fmt.Errorf("scene: material %q: %w", name, err)
	}
	b.materials[name] = m
	return m, nil
}

func (b *builder) buildMaterialDescriptor(raw json.RawMessage) (core.Material, error) {
	var doc materialDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse material descriptor: %w", err)
	}

	switch doc.Type {
	case "Lambert":
		albedo, err := b.resolveTexture(doc.Albedo)
		if err != nil {
			return nil, err
		}
		lam := material.NewLambertian(albedo)
		if doc.Bump != "" {
			bump, err := b.resolveTexture(doc.Bump)
			if err != nil {
				return nil, err
			}
			lam.Bump = bump
		}
		return lam, nil
	case "Metal":
		return material.NewMetal(vector3FromArr(doc.AlbedoColor), doc.Roughness), nil
	case "Dielectric":
		return material.NewDielectric(doc.RefractiveIndex), nil
	case "DiffuseLight":
		emission, err := b.resolveTexture(doc.Emission)
		if err != nil {
			return nil, err
		}
		return material.NewDiffuseLight(emission), nil
	case "Isotropic":
		albedo, err := b.resolveTexture(doc.Albedo)
		if err != nil {
			return nil, err
		}
		return material.NewIsotropic(albedo), nil
	default:
		return nil, fmt.Errorf("unknown material type %q", doc.Type)
	}
}

// buildShape builds one Shapes[] entry; Mesh entries expand to many
// core.Shape triangles, so every case returns a slice.
func (b *builder) buildShape(raw json.RawMessage) ([]core.Shape, error) {
	var doc shapeDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse shape descriptor: %w", err)
	}

	switch doc.Type {
	case "Sphere":
		mat, err := b.resolveMaterial(doc.Material)
		if err != nil {
			return nil, err
		}
		radius := doc.Radius
		if radius == 0 {
			radius = 1
		}
		objectToWorld := transformMatrix(doc.Transform)
		return []core.Shape{geometry.NewTransformedSphere(objectToWorld, radius, mat)}, nil

	case "Mesh":
		mat, err := b.resolveMaterial(doc.Material)
		if err != nil {
			return nil, err
		}
		if doc.FilePath == "" {
			return nil, fmt.Errorf("Mesh requires file_path")
		}
		obj, err := loaders.LoadOBJ(filepath.Join(b.dir, doc.FilePath))
		if err != nil {
			return nil, err
		}
		objectToWorld := transformMatrix(doc.Transform)
		return loaders.BuildTriangleMesh(obj, objectToWorld, mat, doc.EnableBackfaceCulling)

	case "ConstantMedium":
		if doc.Boundary == nil {
			return nil, fmt.Errorf("ConstantMedium requires boundary")
		}
		boundaryShapes, err := b.buildShape(doc.Boundary)
		if err != nil {
			return nil, fmt.Errorf("boundary: %w", err)
		}
		if len(boundaryShapes) != 1 {
			return nil, fmt.Errorf("ConstantMedium boundary must be a single shape, got %d", len(boundaryShapes))
		}
		phase, err := b.resolveMaterial(doc.PhaseFunc)
		if err != nil {
			return nil, err
		}
		if doc.Density <= 0 {
			return nil, fmt.Errorf("ConstantMedium density must be positive, got %g", doc.Density)
		}
		return []core.Shape{geometry.NewConstantMedium(boundaryShapes[0], doc.Density, phase)}, nil

	default:
		return nil, fmt.Errorf("unknown shape type %q", doc.Type)
	}
}

// transformMatrix composes a Transform descriptor into a single
// object-to-world matrix: translate . rotate(XYZ) . scale, with every
// component defaulting to identity when omitted, per spec 6.
func transformMatrix(t *transformDoc) core.Matrix4 {
	m := core.Identity4()
	if t == nil {
		return m
	}
	if t.Scale != nil {
		m = core.Scaling(vector3FromArr(*t.Scale))
	}
	if t.Rotate != nil {
		r := *t.Rotate
		m = core.RotationXYZ(r[0], r[1], r[2]).Mul(m)
	}
	if t.Translate != nil {
		m = core.Translation(vector3FromArr(*t.Translate)).Mul(m)
	}
	return m
}

func point3FromArr(a [3]float32) core.Point3   { return core.NewPoint3(a[0], a[1], a[2]) }
func vector3FromArr(a [3]float32) core.Vector3 { return core.NewVector3(a[0], a[1], a[2]) }
