package scene

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/ext/lightspunctual"
	"github.com/taigrr/tinyray/pkg/math3d"
)

var identityRotation = [4]float64{0, 0, 0, 1}

// testDocument builds a small scene: a parent node offsetting two sphere
// children, a light node, and a perspective camera.
func testDocument() *gltf.Document {
	return &gltf.Document{
		Asset:          gltf.Asset{Version: "2.0"},
		ExtensionsUsed: []string{lightspunctual.ExtensionName},
		Extensions: gltf.Extensions{
			lightspunctual.ExtensionName: lightspunctual.Lights{
				{Type: lightspunctual.TypePoint, Name: "key", Intensity: gltf.Float(1.5)},
				{Type: "directional", Name: "sun"},
			},
		},
		Materials: []*gltf.Material{
			{
				Name: "ivory",
				PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
					BaseColorFactor: &[4]float64{0.4, 0.4, 0.3, 1},
					RoughnessFactor: gltf.Float(0.2),
				},
				Extras: map[string]any{
					"albedo":           []any{0.6, 0.3},
					"specularExponent": 50.0,
				},
			},
			{
				Name: "rubber",
				PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
					BaseColorFactor: &[4]float64{0.3, 0.1, 0.1, 1},
					RoughnessFactor: gltf.Float(0.5),
				},
			},
		},
		Meshes: []*gltf.Mesh{
			{Name: "sphere-ivory", Primitives: []*gltf.Primitive{{Material: gltf.Index(0)}}},
			{Name: "sphere-rubber", Primitives: []*gltf.Primitive{{Material: gltf.Index(1)}}},
		},
		Nodes: []*gltf.Node{
			{
				Name:        "group",
				Children:    []int{1, 2},
				Translation: [3]float64{0, 0, -10},
				Rotation:    identityRotation,
				Scale:       [3]float64{1, 1, 1},
			},
			{
				Name:        "left",
				Mesh:        gltf.Index(0),
				Translation: [3]float64{-2, 0, 0},
				Rotation:    identityRotation,
				Scale:       [3]float64{2, 2, 2},
			},
			{
				Name:        "right",
				Mesh:        gltf.Index(1),
				Translation: [3]float64{3, 0, 0},
				Rotation:    identityRotation,
				Scale:       [3]float64{1, 1, 1},
			},
			{
				Name:        "lamp",
				Translation: [3]float64{0, 10, 0},
				Rotation:    identityRotation,
				Scale:       [3]float64{1, 1, 1},
				Extensions: gltf.Extensions{
					lightspunctual.ExtensionName: lightspunctual.LightIndex(0),
				},
			},
			{
				Name:        "sunlight",
				Rotation:    identityRotation,
				Scale:       [3]float64{1, 1, 1},
				Extensions: gltf.Extensions{
					lightspunctual.ExtensionName: lightspunctual.LightIndex(1),
				},
			},
		},
		Scenes: []*gltf.Scene{{Name: "test", Nodes: []int{0, 3, 4}}},
		Scene:  gltf.Index(0),
		Cameras: []*gltf.Camera{
			{Perspective: &gltf.Perspective{Yfov: 1.2}},
		},
	}
}

func TestGLTFLoaderCreation(t *testing.T) {
	loader := NewGLTFLoader()
	if loader == nil {
		t.Fatal("NewGLTFLoader returned nil")
	}
	if loader.UnitRadius != 1 {
		t.Errorf("UnitRadius = %v, want 1", loader.UnitRadius)
	}
	if loader.DefaultIntensity != 1 {
		t.Errorf("DefaultIntensity = %v, want 1", loader.DefaultIntensity)
	}
}

func TestLoadGLTFInvalidPath(t *testing.T) {
	_, err := LoadGLTF[float64]("/nonexistent/path.glb")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestGLTFFromDocument(t *testing.T) {
	s, err := NewGLTFLoader().FromDocument(testDocument())
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}

	if s.Name != "test" {
		t.Errorf("name = %q, want %q", s.Name, "test")
	}
	if len(s.Spheres) != 2 {
		t.Fatalf("got %d spheres, want 2", len(s.Spheres))
	}

	left := s.Spheres[0]
	if left.Center != math3d.V3(-2.0, 0.0, -10.0) || left.Radius != 2 {
		t.Errorf("left sphere = %v r=%v, want (-2, 0, -10) r=2", left.Center, left.Radius)
	}
	if left.Material.Albedo != math3d.V2(0.6, 0.3) || left.Material.SpecularExponent != 50 {
		t.Errorf("extras should override material, got %+v", left.Material)
	}
	if left.Material.Diffuse != math3d.V3(0.4, 0.4, 0.3) {
		t.Errorf("diffuse = %v", left.Material.Diffuse)
	}

	right := s.Spheres[1]
	if right.Center != math3d.V3(3.0, 0.0, -10.0) || right.Radius != 1 {
		t.Errorf("right sphere = %v r=%v, want (3, 0, -10) r=1", right.Center, right.Radius)
	}
	if right.Material.Albedo != math3d.V2(0.5, 0.5) {
		t.Errorf("albedo from roughness = %v, want (0.5, 0.5)", right.Material.Albedo)
	}
	if math.Abs(right.Material.SpecularExponent-30) > 1e-9 {
		t.Errorf("exponent from roughness = %v, want 30", right.Material.SpecularExponent)
	}

	// The directional light is skipped.
	if len(s.Lights) != 1 {
		t.Fatalf("got %d lights, want 1", len(s.Lights))
	}
	if s.Lights[0].Position != math3d.V3(0.0, 10.0, 0.0) || s.Lights[0].Intensity != 1.5 {
		t.Errorf("light = %+v", s.Lights[0])
	}

	if s.FOV != 1.2 {
		t.Errorf("FOV = %v, want 1.2", s.FOV)
	}
}

func TestGLTFRotatedParent(t *testing.T) {
	doc := testDocument()
	s, c := math.Sincos(math.Pi / 4)
	// Quarter turn about Y: the parent's +X child lands on -Z.
	doc.Nodes[0].Translation = [3]float64{0, 0, 0}
	doc.Nodes[0].Rotation = [4]float64{0, s, 0, c}

	scn, err := NewGLTFLoader().FromDocument(doc)
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}
	got := scn.Spheres[1].Center
	if math.Abs(got.X) > 1e-9 || math.Abs(got.Z+3) > 1e-9 {
		t.Errorf("rotated child centre = %v, want (0, 0, -3)", got)
	}
}

func TestGLTFInvalidSphere(t *testing.T) {
	loader := NewGLTFLoader()
	loader.UnitRadius = 0

	_, err := loader.FromDocument(testDocument())
	if !errors.Is(err, ErrInvalidSphere) {
		t.Errorf("err = %v, want ErrInvalidSphere", err)
	}
}

func TestGLTFMalformedIndices(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(doc *gltf.Document)
	}{
		{"child past end", func(doc *gltf.Document) { doc.Nodes[0].Children = []int{42} }},
		{"negative child", func(doc *gltf.Document) { doc.Nodes[0].Children = []int{-1} }},
		{"negative scene", func(doc *gltf.Document) { doc.Scene = gltf.Index(-1) }},
		{"scene past end", func(doc *gltf.Document) { doc.Scene = gltf.Index(3) }},
		{"negative root", func(doc *gltf.Document) { doc.Scenes[0].Nodes = []int{-2} }},
		{"negative mesh", func(doc *gltf.Document) { doc.Nodes[1].Mesh = gltf.Index(-1) }},
		{"mesh past end", func(doc *gltf.Document) { doc.Nodes[1].Mesh = gltf.Index(9) }},
		{"negative material", func(doc *gltf.Document) { doc.Meshes[0].Primitives[0].Material = gltf.Index(-1) }},
		{"material past end", func(doc *gltf.Document) { doc.Meshes[1].Primitives[0].Material = gltf.Index(5) }},
		{"negative light", func(doc *gltf.Document) {
			doc.Nodes[3].Extensions[lightspunctual.ExtensionName] = lightspunctual.LightIndex(-1)
		}},
		{"light past end", func(doc *gltf.Document) {
			doc.Nodes[3].Extensions[lightspunctual.ExtensionName] = lightspunctual.LightIndex(7)
		}},
		{"shared child", func(doc *gltf.Document) { doc.Nodes[0].Children = []int{1, 1} }},
		{"cycle", func(doc *gltf.Document) { doc.Nodes[1].Children = []int{0} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testDocument()
			tt.mutate(doc)

			_, err := NewGLTFLoader().FromDocument(doc)
			if !errors.Is(err, ErrInvalidDocument) {
				t.Errorf("err = %v, want ErrInvalidDocument", err)
			}
		})
	}
}

func TestDecodeGLTFNegativeIndices(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"scene", `{"asset":{"version":"2.0"},"scene":-1,"scenes":[{"nodes":[0]}],"nodes":[{}]}`},
		{"material", `{"asset":{"version":"2.0"},"nodes":[{"mesh":0}],"meshes":[{"primitives":[{"attributes":{},"material":-1}]}]}`},
		{"light", `{"asset":{"version":"2.0"},"extensionsUsed":["KHR_lights_punctual"],` +
			`"extensions":{"KHR_lights_punctual":{"lights":[{"type":"point"}]}},` +
			`"nodes":[{"extensions":{"KHR_lights_punctual":{"light":-1}}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeGLTF[float64](strings.NewReader(tt.doc))
			if err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestGLTFNoScenesUsesParentlessNodes(t *testing.T) {
	doc := testDocument()
	doc.Scenes = nil
	doc.Scene = nil

	s, err := NewGLTFLoader().FromDocument(doc)
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}
	if len(s.Spheres) != 2 || len(s.Lights) != 1 {
		t.Errorf("got %d spheres and %d lights, want 2 and 1", len(s.Spheres), len(s.Lights))
	}
}

func TestDecodeGLTFRoundTrip(t *testing.T) {
	doc := testDocument()
	// Lights are covered by TestGLTFFromDocument; keep the encoded document
	// to core glTF.
	doc.Extensions = nil
	doc.ExtensionsUsed = nil
	for _, n := range doc.Nodes {
		n.Extensions = nil
	}

	var buf bytes.Buffer
	if err := gltf.NewEncoder(&buf).Encode(doc); err != nil {
		t.Fatalf("encode: %v", err)
	}

	s, err := DecodeGLTF[float32](&buf)
	if err != nil {
		t.Fatalf("DecodeGLTF: %v", err)
	}
	if len(s.Spheres) != 2 {
		t.Fatalf("got %d spheres, want 2", len(s.Spheres))
	}
	if s.Spheres[0].Center != math3d.V3[float32](-2, 0, -10) {
		t.Errorf("centre = %v", s.Spheres[0].Center)
	}
	if s.Spheres[0].Material.SpecularExponent != 50 {
		t.Errorf("exponent = %v, want 50 from extras", s.Spheres[0].Material.SpecularExponent)
	}
	if s.FOV != float32(1.2) {
		t.Errorf("FOV = %v", s.FOV)
	}
}
