package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// AngleVectors converts view angles (pitch, yaw, roll in degrees) to forward,
// right and up basis vectors.
func AngleVectors(angles mgl32.Vec3) (forward, right, up mgl32.Vec3) {
	pitch := mgl32.DegToRad(angles[0])
	yaw := mgl32.DegToRad(angles[1])
	roll := mgl32.DegToRad(angles[2])

	sp, cp := math32.Sin(pitch), math32.Cos(pitch)
	sy, cy := math32.Sin(yaw), math32.Cos(yaw)
	sr, cr := math32.Sin(roll), math32.Cos(roll)

	forward = mgl32.Vec3{cp * cy, cp * sy, -sp}
	right = mgl32.Vec3{-sr*sp*cy + cr*sy, -sr*sp*sy - cr*cy, -sr * cp}
	up = mgl32.Vec3{cr*sp*cy + sr*sy, cr*sp*sy - sr*cy, cr * cp}
	return forward, right, up
}

// FlattenNormalize zeroes the Z component of a basis vector and renormalizes it
// for ground movement.
func FlattenNormalize(v mgl32.Vec3) mgl32.Vec3 {
	v[2] = 0
	if v.Len() > StopEpsilon {
		return v.Normalize()
	}
	return v
}

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// Float32ApproxEq determines whether two floating point numbers are close enough
// to each other by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// Vec3HzLen returns the horizontal length of a vector.
func Vec3HzLen(vec3 mgl32.Vec3) float32 {
	return math32.Sqrt(Vec3HzDistSqr(vec3))
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Y()*vec3.Y()
}

// AbsVec32 will return the given vector, but all the values of it are switched
// to their absolute values.
func AbsVec32(vec mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{math32.Abs(vec.X()), math32.Abs(vec.Y()), math32.Abs(vec.Z())}
}
