//go:build !cgo && !darwin && !windows

package window

import "github.com/taigrr/tinyray/pkg/math3d"

// Run reports ErrUnavailable; ebiten needs cgo on this platform.
func Run[T math3d.Float](opts Options[T]) error {
	return ErrUnavailable
}
