// SPDX-License-Identifier: MIT

package mat

import (
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvgeom/internal/codec"
)

// Binary encodings are the row-major elements as little-endian float64 bits.
// YAML encodings are flow sequences of rows: [[1, 0], [0, 1]].

// MarshalBinary implements encoding.BinaryMarshaler.
func (m Mat2) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, 2*2*8)
	for i := range m {
		b = codec.AppendFloats(b, m[i][:]...)
	}
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (m *Mat2) UnmarshalBinary(b []byte) error {
	var flat [2 * 2]float64
	if err := codec.ReadFloats(b, flat[:]); err != nil {
		return matErrorf("Mat2", opUnmarshalBinary, err)
	}
	for i := range m {
		copy(m[i][:], flat[i*2:])
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m Mat2) MarshalYAML() (any, error) {
	return codec.FlowRows(codec.FlowSeq(m[0][:]...), codec.FlowSeq(m[1][:]...)), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Mat2) UnmarshalYAML(node *yaml.Node) error {
	var t Mat2
	if err := decodeRows(node, t[0][:], t[1][:]); err != nil {
		return matErrorf("Mat2", opUnmarshalYAML, err)
	}
	*m = t
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (m Mat3) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, 3*3*8)
	for i := range m {
		b = codec.AppendFloats(b, m[i][:]...)
	}
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (m *Mat3) UnmarshalBinary(b []byte) error {
	var flat [3 * 3]float64
	if err := codec.ReadFloats(b, flat[:]); err != nil {
		return matErrorf("Mat3", opUnmarshalBinary, err)
	}
	for i := range m {
		copy(m[i][:], flat[i*3:])
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m Mat3) MarshalYAML() (any, error) {
	return codec.FlowRows(
		codec.FlowSeq(m[0][:]...),
		codec.FlowSeq(m[1][:]...),
		codec.FlowSeq(m[2][:]...),
	), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Mat3) UnmarshalYAML(node *yaml.Node) error {
	var t Mat3
	if err := decodeRows(node, t[0][:], t[1][:], t[2][:]); err != nil {
		return matErrorf("Mat3", opUnmarshalYAML, err)
	}
	*m = t
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (m Mat4) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, 4*4*8)
	for i := range m {
		b = codec.AppendFloats(b, m[i][:]...)
	}
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (m *Mat4) UnmarshalBinary(b []byte) error {
	var flat [4 * 4]float64
	if err := codec.ReadFloats(b, flat[:]); err != nil {
		return matErrorf("Mat4", opUnmarshalBinary, err)
	}
	for i := range m {
		copy(m[i][:], flat[i*4:])
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m Mat4) MarshalYAML() (any, error) {
	return codec.FlowRows(
		codec.FlowSeq(m[0][:]...),
		codec.FlowSeq(m[1][:]...),
		codec.FlowSeq(m[2][:]...),
		codec.FlowSeq(m[3][:]...),
	), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Mat4) UnmarshalYAML(node *yaml.Node) error {
	var t Mat4
	if err := decodeRows(node, t[0][:], t[1][:], t[2][:], t[3][:]); err != nil {
		return matErrorf("Mat4", opUnmarshalYAML, err)
	}
	*m = t
	return nil
}

// decodeRows decodes a sequence of len(rows) rows, each of len(rows[i]) scalars.
func decodeRows(node *yaml.Node, rows ...[]float64) error {
	items, err := codec.Items(node, len(rows))
	if err != nil {
		return err
	}
	for i, item := range items {
		if err := codec.Decode(item, nil, rows[i]); err != nil {
			return err
		}
	}
	return nil
}
