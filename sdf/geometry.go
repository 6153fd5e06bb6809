package sdf

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Pose is a rigid 2D transform from the sensor's local frame to the global
// map frame, stored as a row-major 3x3 matrix:
//
//	m00 m01 m02
//	m10 m11 m12
//	m20 m21 m22
//
// The translation column (m02, m12) is the robot's global position in
// metres. The bottom row is expected to be (0, 0, 1).
type Pose [9]float64

// IdentityPose returns the identity transform (robot at the map origin,
// heading along +X).
func IdentityPose() Pose {
	return Pose{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// PoseFromXYHeading builds a pose from a global position (metres) and a
// heading angle (radians, counter-clockwise from +X).
func PoseFromXYHeading(x, y, heading float64) Pose {
	c := math.Cos(heading)
	s := math.Sin(heading)
	return Pose{
		c, -s, x,
		s, c, y,
		0, 0, 1,
	}
}

// Apply transforms a sensor-frame point into the global frame.
func (t Pose) Apply(p r2.Vec) r2.Vec {
	return r2.Vec{
		X: t[0]*p.X + t[1]*p.Y + t[2],
		Y: t[3]*p.X + t[4]*p.Y + t[5],
	}
}

// Position returns the robot's global position in metres.
func (t Pose) Position() r2.Vec {
	return r2.Vec{X: t[2], Y: t[5]}
}

// slopeOrSentinel divides num by den, substituting a steep finite slope when
// the denominator is effectively zero. The sentinel keeps downstream
// intersection arithmetic finite for vertical or near-vertical lines; its
// sign follows the sign the quotient would approach.
func slopeOrSentinel(num, den, sentinel float64) float64 {
	if math.Abs(den) < slopeEpsilon {
		if math.Signbit(num) != math.Signbit(den) {
			return -sentinel
		}
		return sentinel
	}
	return num / den
}

// slopeEpsilon is the denominator magnitude below which a slope computation
// is treated as vertical.
const slopeEpsilon = 1e-12
