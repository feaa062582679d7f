package render

import (
	"github.com/taigrr/tinyray/pkg/math3d"
	"github.com/taigrr/tinyray/pkg/scene"
)

// CastRay returns the linear colour seen along ray.
//
// Rays that miss return cfg.Background. Otherwise every light adds a
// Lambertian diffuse and a Phong specular term unless a shadow ray toward it
// is blocked. The result is unbounded; ToneMap brings it into range.
func CastRay[T math3d.Float](ray scene.Ray[T], s *scene.Scene[T], cfg Config[T]) math3d.Vec3[T] {
	hit, ok := s.Intersect(ray, cfg.MaxDistance)
	if !ok {
		return cfg.Background
	}

	var diffuse, specular T
	for _, light := range s.Lights {
		toLight := light.Position.Sub(hit.Point)
		lightDir := toLight.Normalize()
		lightDist := toLight.Len()

		if occluded(s, hit, lightDir, lightDist, cfg) {
			continue
		}

		diffuse += light.Intensity * max(0, lightDir.Dot(hit.Normal))

		reflection := lightDir.Negate().Reflect(hit.Normal)
		specular += math3d.Pow(max(0, reflection.Negate().Dot(ray.Direction)), hit.Material.SpecularExponent) * light.Intensity
	}

	m := hit.Material
	return m.Diffuse.Scale(diffuse * m.Albedo.X).
		Add(math3d.One3[T]().Scale(specular * m.Albedo.Y))
}

// occluded reports whether anything lies between the hit point and a light.
// The shadow ray starts just off the surface, on the side facing the light.
func occluded[T math3d.Float](s *scene.Scene[T], hit scene.Hit[T], lightDir math3d.Vec3[T], lightDist T, cfg Config[T]) bool {
	offset := hit.Normal.Scale(cfg.ShadowBias)
	origin := hit.Point.Add(offset)
	if lightDir.Dot(hit.Normal) < 0 {
		origin = hit.Point.Sub(offset)
	}

	shadow, ok := s.Intersect(scene.Ray[T]{Origin: origin, Direction: lightDir}, cfg.MaxDistance)
	return ok && shadow.Point.Sub(origin).Len() < lightDist
}
