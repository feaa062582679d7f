package scene

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/ext/lightspunctual"
	"github.com/taigrr/tinyray/pkg/math3d"
)

// maxNodeDepth bounds hierarchy traversal.
const maxNodeDepth = 64

var ErrInvalidDocument = errors.New("invalid gltf document")

// GLTFLoader builds scenes from glTF 2.0 documents.
//
// Every node that references a mesh becomes a sphere. The mesh itself is
// not read: it is assumed to be a sphere of radius UnitRadius, so the
// node's world translation gives the centre and its world scale the radius.
// Point lights come from KHR_lights_punctual, and the first perspective
// camera sets the scene's field of view.
type GLTFLoader struct {
	// UnitRadius is the radius of the sphere mesh in model space.
	UnitRadius float64

	// DefaultIntensity is used for lights that do not set one.
	DefaultIntensity float64

	// MaxExponent caps the specular exponent derived from roughness.
	MaxExponent float64
}

// NewGLTFLoader creates a new glTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		UnitRadius:       1,
		DefaultIntensity: 1,
		MaxExponent:      1000,
	}
}

// LoadGLTF loads a .gltf or .glb file with the default loader and converts
// it to precision T.
func LoadGLTF[T math3d.Float](path string) (*Scene[T], error) {
	s, err := NewGLTFLoader().Load(path)
	if err != nil {
		return nil, err
	}
	return Convert[T](s), nil
}

// DecodeGLTF reads a glTF document from r with the default loader.
func DecodeGLTF[T math3d.Float](r io.Reader) (*Scene[T], error) {
	s, err := NewGLTFLoader().Decode(r)
	if err != nil {
		return nil, err
	}
	return Convert[T](s), nil
}

// Load opens a glTF or GLB file and returns the scene it describes.
func (l *GLTFLoader) Load(path string) (*Scene[float64], error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	s, err := l.FromDocument(doc)
	if err != nil {
		return nil, err
	}
	s.Name = filepath.Base(path)
	return s, nil
}

// Decode reads a glTF or GLB document from r.
func (l *GLTFLoader) Decode(r io.Reader) (*Scene[float64], error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("decode gltf: %w", err)
	}
	return l.FromDocument(doc)
}

// FromDocument converts an already parsed document.
// The resulting scene is validated before it is returned.
func (l *GLTFLoader) FromDocument(doc *gltf.Document) (*Scene[float64], error) {
	s := New[float64]("gltf")

	var lights lightspunctual.Lights
	if ext, ok := doc.Extensions[lightspunctual.ExtensionName]; ok {
		lights, _ = ext.(lightspunctual.Lights)
	}

	roots, name, err := rootNodes(doc)
	if err != nil {
		return nil, err
	}
	if name != "" {
		s.Name = name
	}

	w := &walker{
		loader:  l,
		doc:     doc,
		lights:  lights,
		scene:   s,
		visited: make([]bool, len(doc.Nodes)),
	}
	for _, idx := range roots {
		if err := w.walk(idx, math3d.Identity[float64](), 0); err != nil {
			return nil, err
		}
	}

	for _, cam := range doc.Cameras {
		if cam.Perspective != nil && cam.Perspective.Yfov > 0 {
			s.FOV = cam.Perspective.Yfov
			break
		}
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("gltf scene: %w", err)
	}
	return s, nil
}

// rootNodes returns the nodes of the active scene, or every parentless node
// when the document declares no scenes.
func rootNodes(doc *gltf.Document) ([]int, string, error) {
	if len(doc.Scenes) > 0 {
		idx := 0
		if doc.Scene != nil {
			idx = *doc.Scene
		}
		if idx < 0 || idx >= len(doc.Scenes) || doc.Scenes[idx] == nil {
			return nil, "", fmt.Errorf("scene index %d out of range: %w", idx, ErrInvalidDocument)
		}
		return doc.Scenes[idx].Nodes, doc.Scenes[idx].Name, nil
	}

	isChild := make([]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			if c >= 0 && c < len(isChild) {
				isChild[c] = true
			}
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !isChild[i] {
			roots = append(roots, i)
		}
	}
	return roots, "", nil
}

// walker carries the state of one hierarchy traversal.
type walker struct {
	loader  *GLTFLoader
	doc     *gltf.Document
	lights  lightspunctual.Lights
	scene   *Scene[float64]
	visited []bool
}

// walk visits a node and its children, accumulating world transforms.
// A node reached twice means the hierarchy is not a forest, which glTF
// forbids.
func (w *walker) walk(idx int, parent math3d.Mat4[float64], depth int) error {
	if depth > maxNodeDepth {
		return fmt.Errorf("node %d: hierarchy deeper than %d: %w", idx, maxNodeDepth, ErrInvalidDocument)
	}
	if idx < 0 || idx >= len(w.doc.Nodes) || w.doc.Nodes[idx] == nil {
		return fmt.Errorf("node index %d out of range: %w", idx, ErrInvalidDocument)
	}
	if w.visited[idx] {
		return fmt.Errorf("node %d has more than one parent: %w", idx, ErrInvalidDocument)
	}
	w.visited[idx] = true

	n := w.doc.Nodes[idx]
	world := parent.Mul(localTransform(n))

	if n.Mesh != nil {
		m, err := w.loader.meshMaterial(w.doc, *n.Mesh)
		if err != nil {
			return fmt.Errorf("node %d: %w", idx, err)
		}
		scale := world.ScaleFactors()
		w.scene.AddSphere(NewSphere(
			world.Translation(),
			w.loader.UnitRadius*max(scale.X, scale.Y, scale.Z),
			m,
		))
	}

	if ext, ok := n.Extensions[lightspunctual.ExtensionName]; ok {
		if li, ok := ext.(lightspunctual.LightIndex); ok {
			if int(li) < 0 || int(li) >= len(w.lights) {
				return fmt.Errorf("node %d: light index %d out of range: %w", idx, li, ErrInvalidDocument)
			}
			if light := w.lights[li]; light != nil && light.Type == lightspunctual.TypePoint {
				intensity := w.loader.DefaultIntensity
				if light.Intensity != nil {
					intensity = *light.Intensity
				}
				w.scene.AddLight(NewLight(world.Translation(), intensity))
			}
		}
	}

	for _, c := range n.Children {
		if err := w.walk(c, world, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// localTransform returns the node's matrix, or its TRS properties composed
// as T * R * S when no matrix is set.
func localTransform(n *gltf.Node) math3d.Mat4[float64] {
	m := math3d.Mat4[float64](n.MatrixOrDefault())
	if m != math3d.Identity[float64]() && m != (math3d.Mat4[float64]{}) {
		return m
	}

	t := n.TranslationOrDefault()
	r := n.RotationOrDefault()
	sc := n.ScaleOrDefault()
	return math3d.Translate(math3d.V3(t[0], t[1], t[2])).
		Mul(math3d.Quat(r[0], r[1], r[2], r[3])).
		Mul(math3d.Scale(math3d.V3(sc[0], sc[1], sc[2])))
}

// meshMaterial returns the material of the first primitive of a mesh that
// names one.
func (l *GLTFLoader) meshMaterial(doc *gltf.Document, meshIdx int) (Material[float64], error) {
	if meshIdx < 0 || meshIdx >= len(doc.Meshes) || doc.Meshes[meshIdx] == nil {
		return Material[float64]{}, fmt.Errorf("mesh index %d out of range: %w", meshIdx, ErrInvalidDocument)
	}
	for _, prim := range doc.Meshes[meshIdx].Primitives {
		if prim == nil || prim.Material == nil {
			continue
		}
		mi := *prim.Material
		if mi < 0 || mi >= len(doc.Materials) || doc.Materials[mi] == nil {
			return Material[float64]{}, fmt.Errorf("mesh %d: material index %d out of range: %w", meshIdx, mi, ErrInvalidDocument)
		}
		return l.material(doc.Materials[mi]), nil
	}
	return DefaultMaterial[float64](), nil
}

// material maps a PBR material onto the Phong model.
//
// Base colour becomes the diffuse colour. Roughness r splits the albedo into
// (r, 1-r) and sets the exponent through the usual Blinn-Phong equivalence
// 2/a^2 - 2 with a = r^2. Material extras of the form
// {"albedo": [d, s], "specularExponent": e} take precedence.
func (l *GLTFLoader) material(gm *gltf.Material) Material[float64] {
	base := [4]float64{1, 1, 1, 1}
	rough := 1.0
	if pbr := gm.PBRMetallicRoughness; pbr != nil {
		base = pbr.BaseColorFactorOrDefault()
		rough = pbr.RoughnessFactorOrDefault()
	}

	m := Material[float64]{
		Name:             gm.Name,
		Albedo:           math3d.V2(rough, 1-rough),
		Diffuse:          math3d.V3(base[0], base[1], base[2]),
		SpecularExponent: l.exponent(rough),
	}

	extras, ok := gm.Extras.(map[string]any)
	if !ok {
		return m
	}
	if albedo, ok := extras["albedo"].([]any); ok && len(albedo) == 2 {
		d, okD := albedo[0].(float64)
		sp, okS := albedo[1].(float64)
		if okD && okS {
			m.Albedo = math3d.V2(d, sp)
		}
	}
	if e, ok := extras["specularExponent"].(float64); ok {
		m.SpecularExponent = e
	}
	return m
}

func (l *GLTFLoader) exponent(rough float64) float64 {
	a := rough * rough
	if a == 0 {
		return l.MaxExponent
	}
	return math.Min(l.MaxExponent, math.Max(1, 2/(a*a)-2))
}
