// SPDX-License-Identifier: MIT

package rotor

import (
	"math"

	"github.com/katalvlaran/lvgeom/mat"
	"github.com/katalvlaran/lvgeom/vec"
)

// antiparallel bounds how close a·b may get to -1 before FromTo
// stops trusting a × b for the rotation plane.
const antiparallel = 1e-5

// Rotor3 is a 3D rotor: S + XY e12 + YZ e23 + ZX e31.
type Rotor3 struct {
	S  float64 `json:"s" yaml:"s"`
	XY float64 `json:"xy" yaml:"xy"`
	YZ float64 `json:"yz" yaml:"yz"`
	ZX float64 `json:"zx" yaml:"zx"`
}

// New returns the rotor with the given components.
func New(s, xy, yz, zx float64) Rotor3 { return Rotor3{S: s, XY: xy, YZ: yz, ZX: zx} }

// Identity returns the rotor that leaves every vector unchanged.
func Identity() Rotor3 { return Rotor3{S: 1} }

// FromAxisAngle returns the rotor that turns by angle radians
// counter-clockwise about axis. axis must be normalized.
func FromAxisAngle(axis vec.Vec3[float64], angle float64) Rotor3 {
	sin, cos := math.Sincos(angle / 2)
	return fromParts(cos, axis.Scale(sin))
}

// FromTo returns the shortest rotor turning a onto b.
// Both must be normalized; neither is checked.
// Blueprint:
//
//	Stage 1 (Measure): d = a·b = cos θ.
//	Stage 2 (Antiparallel): d ≈ -1 leaves a × b too short to give a plane.
//	                        Return a half turn (S = 0) about a.Perpendicular().
//	Stage 3 (Half angle): (1 + d, a × b) has scalar 2cos²(θ/2) and bivector
//	                      length 2sin(θ/2)cos(θ/2), so normalizing it yields
//	                      the rotor for θ in the plane of a and b.
//
// Complexity: O(1), one square root.
func FromTo(a, b vec.Vec3[float64]) Rotor3 {
	// Stage 1: cosine of the angle between a and b
	d := a.Dot(b)

	// Stage 2: no unique plane, pick one containing a
	if d < -1+antiparallel {
		return fromParts(0, a.Perpendicular().Norm())
	}

	// Stage 3: halfway rotor
	return fromParts(1+d, a.Cross(b)).Norm()
}

// fromParts builds a rotor from a scalar and the bivector dual
// to u, in quaternion order (YZ, ZX, XY).
func fromParts(s float64, u vec.Vec3[float64]) Rotor3 {
	return Rotor3{S: s, YZ: u[0], ZX: u[1], XY: u[2]}
}

// dual returns the bivector of r as the vector normal to it.
func (r Rotor3) dual() vec.Vec3[float64] { return vec.Vec3[float64]{r.YZ, r.ZX, r.XY} }

// Mul returns the product r·q. The result applies q first, then r,
// matching matrix composition order. Not commutative: the cross term
// u × v flips sign when the operands swap.
func (r Rotor3) Mul(q Rotor3) Rotor3 {
	u, v := r.dual(), q.dual()
	b := v.Scale(r.S).Add(u.Scale(q.S)).Add(u.Cross(v))
	return fromParts(r.S*q.S-u.Dot(v), b)
}

// Then returns the rotor that applies r and then q.
func (r Rotor3) Then(q Rotor3) Rotor3 { return q.Mul(r) }

// Rotate returns the sandwich product r v r†.
// With u the vector dual to the bivector (YZ, ZX, XY) the product expands to
//
//	(S² - u·u) v + 2 (u·v) u + 2 S (u × v)
//
// which needs no intermediate rotor product. For a unit rotor this is a pure
// rotation; otherwise the result is also scaled by |r|². The rotor is not
// normalized here.
//
// Complexity: O(1).
func (r Rotor3) Rotate(v vec.Vec3[float64]) vec.Vec3[float64] {
	u := r.dual()
	kept := v.Scale(r.S*r.S - u.LenSq()) // shrinks v in place
	axial := u.Scale(2 * u.Dot(v))       // restores the part along u
	turned := u.Cross(v).Scale(2 * r.S)  // swings v about u
	return kept.Add(axial).Add(turned)
}

// LenSq returns the squared magnitude of r.
func (r Rotor3) LenSq() float64 { return r.S*r.S + r.XY*r.XY + r.YZ*r.YZ + r.ZX*r.ZX }

// Len returns the magnitude of r.
func (r Rotor3) Len() float64 { return math.Sqrt(r.LenSq()) }

// Norm returns r scaled to unit magnitude.
// The zero rotor yields NaN components.
func (r Rotor3) Norm() Rotor3 {
	l := r.Len()
	return Rotor3{S: r.S / l, XY: r.XY / l, YZ: r.YZ / l, ZX: r.ZX / l}
}

// Normalize scales r to unit magnitude in place.
func (r *Rotor3) Normalize() { *r = r.Norm() }

// Conjugate returns r with its bivector negated.
func (r Rotor3) Conjugate() Rotor3 { return Rotor3{S: r.S, XY: -r.XY, YZ: -r.YZ, ZX: -r.ZX} }

// Inverse returns the rotor that undoes r.
// It equals Conjugate and is exact only for unit rotors.
func (r Rotor3) Inverse() Rotor3 { return r.Conjugate() }

// Mat3 returns the rotation matrix of r. Its columns are the images of
// the x, y and z axes.
func (r Rotor3) Mat3() mat.Mat3 {
	return mat.FromCols3([3][3]float64{
		r.Rotate(vec.Vec3[float64]{1, 0, 0}),
		r.Rotate(vec.Vec3[float64]{0, 1, 0}),
		r.Rotate(vec.Vec3[float64]{0, 0, 1}),
	})
}

// Mat4 returns the homogeneous rotation matrix of r.
func (r Rotor3) Mat4() (m mat.Mat4) {
	m3 := r.Mat3()
	for i := range m3 {
		copy(m[i][:3], m3[i][:])
	}
	m[3][3] = 1
	return
}

// Equal reports whether r and q have identical components.
func (r Rotor3) Equal(q Rotor3) bool { return r == q }
