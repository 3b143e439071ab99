package mathutil

import "math"

// Precomputed camera matrices for the preview renderer.
var (
	// PreviewCam is the default three-quarter preview camera: Rx(-20°) @ Ry(30°).
	PreviewCam = Mat3Mul(RotX(Deg2Rad(-20)), RotY(Deg2Rad(30)))

	// FrontCam looks straight down the Z axis (matches the front silhouette view).
	FrontCam = Mat3Identity()
)

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
