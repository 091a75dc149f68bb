// SPDX-License-Identifier: MIT

package vec_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvgeom/internal/codec"
	"github.com/katalvlaran/lvgeom/vec"
)

type probe struct {
	Pos vec.Vec3[float64] `json:"pos" yaml:"pos"`
	Dir vec.Vec2[float32] `json:"dir" yaml:"dir"`
	Col vec.Vec4[float64] `json:"col" yaml:"col"`
}

func TestVec_Binary(t *testing.T) {
	v := vec.New3[float32](1, -2, 0.5)
	b, err := v.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, 12)

	var got vec.Vec3[float32]
	require.NoError(t, got.UnmarshalBinary(b))
	require.Equal(t, v, got)

	w := vec.New4(1.0, 2, 3, 4)
	b, err = w.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, 32)

	var got4 vec.Vec4[float64]
	require.NoError(t, got4.UnmarshalBinary(b))
	require.Equal(t, w, got4)

	var got2 vec.Vec2[float64]
	err = got2.UnmarshalBinary(b[:8])
	require.ErrorIs(t, err, codec.ErrShortBuffer)
	err = got2.UnmarshalBinary(b)
	require.ErrorIs(t, err, codec.ErrLength)
	require.Equal(t, vec.Vec2[float64]{}, got2)
}

func TestVec_YAML(t *testing.T) {
	out, err := yaml.Marshal(vec.New3(1.0, 2.5, -3))
	require.NoError(t, err)
	require.Equal(t, "[1, 2.5, -3]\n", string(out))

	p := probe{Pos: vec.New3(1.0, 2, 3), Dir: vec.New2[float32](0.5, 1), Col: vec.One4[float64]()}
	out, err = yaml.Marshal(p)
	require.NoError(t, err)
	require.Equal(t, "pos: [1, 2, 3]\ndir: [0.5, 1]\ncol: [1, 1, 1, 1]\n", string(out))

	var back probe
	require.NoError(t, yaml.Unmarshal(out, &back))
	require.Equal(t, p, back)
}

func TestVec_YAMLMapping(t *testing.T) {
	src := "pos: {x: 1, y: 2, z: 3}\ndir:\n  y: 1\n  x: 0.5\ncol: {x: 0, y: 0, z: 0, w: 1}\n"
	var p probe
	require.NoError(t, yaml.Unmarshal([]byte(src), &p))
	require.Equal(t, vec.New3(1.0, 2, 3), p.Pos)
	require.Equal(t, vec.New2[float32](0.5, 1), p.Dir)
	require.Equal(t, vec.New4(0.0, 0, 0, 1), p.Col)
}

func TestVec_YAMLErrors(t *testing.T) {
	var p probe
	err := yaml.Unmarshal([]byte("pos: [1, 2]\n"), &p)
	require.ErrorIs(t, err, codec.ErrLength)

	err = yaml.Unmarshal([]byte("dir: {x: 1, z: 2}\n"), &p)
	require.ErrorIs(t, err, codec.ErrComponent)

	err = yaml.Unmarshal([]byte("col: 4\n"), &p)
	require.ErrorIs(t, err, codec.ErrKind)

	var v vec.Vec2[float32]
	err = yaml.Unmarshal([]byte("[1e300, 2]"), &v)
	require.ErrorIs(t, err, codec.ErrRange)
	require.Equal(t, vec.Vec2[float32]{}, v)
}

func TestVec_ErrorPrefix(t *testing.T) {
	var v vec.Vec2[float64]
	err := v.UnmarshalBinary(make([]byte, 8))
	require.EqualError(t, err, "vec: Vec2.UnmarshalBinary: need 16 bytes, have 8: codec: short buffer")
}

func TestVec_JSON(t *testing.T) {
	p := probe{Pos: vec.New3(1.0, 2, 3), Dir: vec.New2[float32](0.5, 1)}
	out, err := json.Marshal(p)
	require.NoError(t, err)
	require.JSONEq(t, `{"pos":[1,2,3],"dir":[0.5,1],"col":[0,0,0,0]}`, string(out))

	var back probe
	require.NoError(t, json.Unmarshal(out, &back))
	require.Equal(t, p, back)
}
