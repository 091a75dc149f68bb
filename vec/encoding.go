// SPDX-License-Identifier: MIT

package vec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvgeom/internal/codec"
)

// Binary encodings are the little-endian IEEE-754 bits of each component:
// 4 bytes per component for float32-based vectors, 8 otherwise.
// YAML encodings are flow sequences; decoding also accepts {x: .., y: ..}.

func vecErrorf(typ, op string, err error) error {
	return fmt.Errorf("vec: %s.%s: %w", typ, op, err)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Vec2[T]) MarshalBinary() ([]byte, error) { return codec.AppendFloats(nil, v[:]...), nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Vec2[T]) UnmarshalBinary(b []byte) error {
	if err := codec.ReadFloats(b, v[:]); err != nil {
		return vecErrorf("Vec2", "UnmarshalBinary", err)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Vec2[T]) MarshalYAML() (any, error) { return codec.FlowSeq(v[:]...), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Vec2[T]) UnmarshalYAML(node *yaml.Node) error {
	if err := codec.Decode(node, names[:2], v[:]); err != nil {
		return vecErrorf("Vec2", "UnmarshalYAML", err)
	}
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Vec3[T]) MarshalBinary() ([]byte, error) { return codec.AppendFloats(nil, v[:]...), nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Vec3[T]) UnmarshalBinary(b []byte) error {
	if err := codec.ReadFloats(b, v[:]); err != nil {
		return vecErrorf("Vec3", "UnmarshalBinary", err)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Vec3[T]) MarshalYAML() (any, error) { return codec.FlowSeq(v[:]...), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Vec3[T]) UnmarshalYAML(node *yaml.Node) error {
	if err := codec.Decode(node, names[:3], v[:]); err != nil {
		return vecErrorf("Vec3", "UnmarshalYAML", err)
	}
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Vec4[T]) MarshalBinary() ([]byte, error) { return codec.AppendFloats(nil, v[:]...), nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Vec4[T]) UnmarshalBinary(b []byte) error {
	if err := codec.ReadFloats(b, v[:]); err != nil {
		return vecErrorf("Vec4", "UnmarshalBinary", err)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Vec4[T]) MarshalYAML() (any, error) { return codec.FlowSeq(v[:]...), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Vec4[T]) UnmarshalYAML(node *yaml.Node) error {
	if err := codec.Decode(node, names[:4], v[:]); err != nil {
		return vecErrorf("Vec4", "UnmarshalYAML", err)
	}
	return nil
}
