// SPDX-License-Identifier: MIT

package rotor

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvgeom/internal/codec"
)

// fields is the component order shared by the binary and YAML forms.
var fields = []string{"s", "xy", "yz", "zx"}

func (r Rotor3) array() [4]float64 { return [4]float64{r.S, r.XY, r.YZ, r.ZX} }

func fromArray(a [4]float64) Rotor3 { return Rotor3{S: a[0], XY: a[1], YZ: a[2], ZX: a[3]} }

func rotorErrorf(op string, err error) error {
	return fmt.Errorf("rotor: Rotor3.%s: %w", op, err)
}

// MarshalBinary implements encoding.BinaryMarshaler: S, XY, YZ, ZX as
// little-endian float64 values.
func (r Rotor3) MarshalBinary() ([]byte, error) {
	a := r.array()
	return codec.AppendFloats(nil, a[:]...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (r *Rotor3) UnmarshalBinary(b []byte) error {
	var a [4]float64
	if err := codec.ReadFloats(b, a[:]); err != nil {
		return rotorErrorf("UnmarshalBinary", err)
	}
	*r = fromArray(a)
	return nil
}

// MarshalYAML implements yaml.Marshaler as a flow mapping {s: .., xy: .., yz: .., zx: ..}.
func (r Rotor3) MarshalYAML() (any, error) {
	a := r.array()
	return codec.FlowMap(fields, a[:]...), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. It accepts the mapping form
// with every field present, or a sequence [s, xy, yz, zx].
func (r *Rotor3) UnmarshalYAML(node *yaml.Node) error {
	var a [4]float64
	if err := codec.Decode(node, fields, a[:]); err != nil {
		return rotorErrorf("UnmarshalYAML", err)
	}
	*r = fromArray(a)
	return nil
}
