// SPDX-License-Identifier: MIT

package rotor_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvgeom/internal/codec"
	"github.com/katalvlaran/lvgeom/rotor"
)

type pose struct {
	Name   string       `json:"name" yaml:"name"`
	Orient rotor.Rotor3 `json:"orient" yaml:"orient"`
}

func TestRotor_Binary(t *testing.T) {
	r := rotor.New(1, -0.5, 0.25, 2)
	b, err := r.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, 32)
	// S leads: float64(1) little-endian.
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0xf0, 0x3f}, b[:8])

	var got rotor.Rotor3
	require.NoError(t, got.UnmarshalBinary(b))
	require.Equal(t, r, got)

	var bad rotor.Rotor3
	require.ErrorIs(t, bad.UnmarshalBinary(b[:24]), codec.ErrShortBuffer)
	require.ErrorIs(t, bad.UnmarshalBinary(append(b, 0)), codec.ErrLength)
	require.Equal(t, rotor.Rotor3{}, bad)
	require.EqualError(t, bad.UnmarshalBinary(b[:24]), "rotor: Rotor3.UnmarshalBinary: need 32 bytes, have 24: codec: short buffer")
}

func TestRotor_YAML(t *testing.T) {
	out, err := yaml.Marshal(rotor.New(1, 0, 0.5, -0.5))
	require.NoError(t, err)
	require.Equal(t, "{s: 1, xy: 0, yz: 0.5, zx: -0.5}\n", string(out))

	p := pose{Name: "camera", Orient: rotor.New(0.5, 0.5, -0.5, 0.5)}
	out, err = yaml.Marshal(p)
	require.NoError(t, err)

	var back pose
	require.NoError(t, yaml.Unmarshal(out, &back))
	require.Equal(t, p, back)
}

func TestRotor_YAMLForms(t *testing.T) {
	var p pose
	src := "orient:\n  zx: 4\n  yz: 3\n  xy: 2\n  s: 1\n"
	require.NoError(t, yaml.Unmarshal([]byte(src), &p))
	require.Equal(t, rotor.New(1, 2, 3, 4), p.Orient)

	require.NoError(t, yaml.Unmarshal([]byte("orient: [1, 0, 0, 0]\n"), &p))
	require.Equal(t, rotor.Identity(), p.Orient)
}

func TestRotor_YAMLErrors(t *testing.T) {
	var p pose
	err := yaml.Unmarshal([]byte("orient: {s: 1, xy: 0, yz: 0}\n"), &p)
	require.ErrorIs(t, err, codec.ErrLength)

	err = yaml.Unmarshal([]byte("orient: {s: 1, xy: 0, yz: 0, zx: 0, w: 1}\n"), &p)
	require.ErrorIs(t, err, codec.ErrComponent)

	err = yaml.Unmarshal([]byte("orient: {s: 1, s: 1, yz: 0, zx: 0}\n"), &p)
	require.Error(t, err)

	err = yaml.Unmarshal([]byte("orient: 1\n"), &p)
	require.ErrorIs(t, err, codec.ErrKind)
}

func TestRotor_JSON(t *testing.T) {
	p := pose{Name: "camera", Orient: rotor.New(1, 0, 0.5, -0.5)}
	out, err := json.Marshal(p)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"camera","orient":{"s":1,"xy":0,"yz":0.5,"zx":-0.5}}`, string(out))

	var back pose
	require.NoError(t, json.Unmarshal(out, &back))
	require.Equal(t, p, back)
}
