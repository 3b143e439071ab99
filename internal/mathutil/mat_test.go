package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireVec3(t *testing.T, want, got Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		require.InDelta(t, want[i], got[i], 1e-9)
	}
}

func TestRotY90(t *testing.T) {
	// +X rotates to -Z under a 90 degree yaw.
	v := RotY(math.Pi / 2).MulVec3(Vec3{1, 0, 0})
	requireVec3(t, Vec3{0, 0, -1}, v)
}

func TestMat3MulAssociatesWithMulVec3(t *testing.T) {
	a := RotX(0.3)
	b := RotZ(-1.1)
	v := Vec3{0.5, -2, 3}
	requireVec3(t, a.MulVec3(b.MulVec3(v)), Mat3Mul(a, b).MulVec3(v))
}

func TestTRSIdentity(t *testing.T) {
	m := TRS(Vec3{}, Vec3{}, Vec3{1, 1, 1})
	require.True(t, m.IsIdentity())
}

func TestTRSOrder(t *testing.T) {
	// Scale applies first, then rotation, then translation.
	m := TRS(Vec3{10, 0, 0}, Vec3{0, math.Pi / 2, 0}, Vec3{2, 1, 1})
	got := m.MulPoint(Vec3{1, 0, 0})
	requireVec3(t, Vec3{10, 0, -2}, got)
}

func TestMulDirIgnoresTranslation(t *testing.T) {
	m := TRS(Vec3{5, 5, 5}, Vec3{}, Vec3{1, 1, 1})
	requireVec3(t, Vec3{0, 1, 0}, m.MulDir(Vec3{0, 1, 0}))
}

func TestQuatMatchesEulerMatrices(t *testing.T) {
	x, y, z := 0.4, -0.7, 1.2
	want := Mat3Mul(Mat3Mul(RotZ(z), RotY(y)), RotX(x))
	got := QuatToMat3(EulerToQuat(x, y, z))
	for i := 0; i < 9; i++ {
		require.InDelta(t, want[i], got[i], 1e-9)
	}
}
