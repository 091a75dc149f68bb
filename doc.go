// Package lvgeom is a small set of numeric primitives for graphics and game
// code: fixed-size vectors, square matrices and a 3D rotor.
//
// What is in the box?
//
//	vec/    Vec2, Vec3, Vec4 generic over float32 and float64: add, sub,
//	        scale, dot, cross, length, normalize
//	mat/    Mat2, Mat3, Mat4 of float64, row-major: products, transpose,
//	        closed-form determinant and inverse
//	rotor/  Rotor3: axis-angle and from-to construction, composition,
//	        rotation of vectors, conversion to rotation matrices
//
// Every type is a plain value backed by a Go array, so copies are cheap and
// the zero value is the zero vector, matrix or rotor. The dimension is part
// of the type and checked at compile time.
//
// Arithmetic follows IEEE-754: dividing by zero or normalizing a zero vector
// yields Inf or NaN rather than an error. Operations that can fail for a
// reason other than float arithmetic return an error wrapping a package
// sentinel (mat.ErrSingular, mat.ErrOutOfRange).
//
// All types implement encoding.BinaryMarshaler and yaml.Marshaler, and
// round-trip through encoding/json.
//
// Quick example:
//
//	r := rotor.FromAxisAngle(vec.New3(0.0, 0, 1), math.Pi/2)
//	v := r.Rotate(vec.New3(1.0, 0, 0))   // ≈ (0, 1, 0)
//	m := r.Mat3()                        // same rotation as a matrix
//	inv, err := m.Inverse()
//
//	go get github.com/katalvlaran/lvgeom
package lvgeom
