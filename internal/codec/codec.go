// SPDX-License-Identifier: MIT

// Package codec encodes runs of floating-point components, the storage shared
// by every vector, matrix and rotor type.
//
// Binary form: little-endian IEEE-754 bits, 4 bytes per component for float32
// element types and 8 bytes otherwise, no header.
//
// YAML form: a flow sequence ("[1, 2, 3]"). Decoding also accepts a mapping
// whose keys name the components ("{x: 1, y: 2}") when the caller supplies names.
// Numbers too large for a float32 destination fail with ErrRange rather than
// becoming infinite; .inf and .nan are accepted as written.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvgeom/internal/scalar"
)

var (
	// ErrShortBuffer is returned when binary input ends before every component is read.
	ErrShortBuffer = errors.New("codec: short buffer")

	// ErrLength is returned when input carries more or fewer components than the
	// destination type holds.
	ErrLength = errors.New("codec: wrong number of components")

	// ErrComponent is returned for a YAML mapping key that names no component.
	ErrComponent = errors.New("codec: unknown component")

	// ErrRange is returned when a finite YAML number does not fit the element
	// type, such as 1e300 decoded into a float32 component.
	ErrRange = errors.New("codec: value out of range")

	// ErrKind is returned for a YAML node that is neither a sequence nor, where
	// allowed, a mapping.
	ErrKind = errors.New("codec: unexpected yaml node kind")
)

// AppendFloats appends the binary encoding of xs to dst.
func AppendFloats[T scalar.Float](dst []byte, xs ...T) []byte {
	wide := scalar.Size[T]() == 8
	for _, x := range xs {
		if wide {
			dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(float64(x)))
		} else {
			dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(x)))
		}
	}
	return dst
}

// ReadFloats fills dst from src, which must hold exactly len(dst) components.
// dst is left untouched on error.
func ReadFloats[T scalar.Float](src []byte, dst []T) error {
	size := scalar.Size[T]()
	need := size * len(dst)
	if len(src) < need {
		return fmt.Errorf("need %d bytes, have %d: %w", need, len(src), ErrShortBuffer)
	}
	if len(src) > need {
		return fmt.Errorf("need %d bytes, have %d: %w", need, len(src), ErrLength)
	}
	for i := range dst {
		b := src[i*size:]
		if size == 8 {
			dst[i] = T(math.Float64frombits(binary.LittleEndian.Uint64(b)))
		} else {
			dst[i] = T(math.Float32frombits(binary.LittleEndian.Uint32(b)))
		}
	}
	return nil
}

// FlowSeq returns xs as a flow-style YAML sequence node.
func FlowSeq[T scalar.Float](xs ...T) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, x := range xs {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: formatFloat(x)})
	}
	return n
}

// FlowMap returns a flow-style YAML mapping of names[i] to xs[i].
func FlowMap[T scalar.Float](names []string, xs ...T) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
	for i, x := range xs {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: names[i]},
			&yaml.Node{Kind: yaml.ScalarNode, Value: formatFloat(x)},
		)
	}
	return n
}

// FlowRows returns a flow-style sequence of the given row nodes.
func FlowRows(rows ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle, Content: rows}
}

// formatFloat renders x with the shortest representation that round-trips at
// the precision of T, using YAML spellings for the IEEE specials.
func formatFloat[T scalar.Float](x T) string {
	f := float64(x)
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	return strconv.FormatFloat(f, 'g', -1, 8*scalar.Size[T]())
}

// Items returns the entries of a sequence node, which must have exactly n.
func Items(node *yaml.Node, n int) ([]*yaml.Node, error) {
	node = resolve(node)
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: want sequence: %w", node.Line, ErrKind)
	}
	if len(node.Content) != n {
		return nil, fmt.Errorf("line %d: want %d items, have %d: %w", node.Line, n, len(node.Content), ErrLength)
	}
	return node.Content, nil
}

// Decode fills dst from a YAML sequence of exactly len(dst) scalars. When names
// is non-nil a mapping is accepted too, and must set every names[i] exactly once.
// Blueprint:
//
//	Stage 1 (Resolve): follow aliases to the target node.
//	Stage 2 (Shape): sequence → exactly len(dst) items, else ErrLength;
//	                 mapping (names != nil) → each key in names, no repeats,
//	                 none missing, else ErrComponent / ErrLength;
//	                 anything else → ErrKind.
//	Stage 3 (Scalars): decode each item as float64 and narrow to T; a finite
//	                   value that overflows T fails with ErrRange.
//	Stage 4 (Commit): copy into dst only after every item decoded, so dst
//	                  is left untouched on error.
//
// Complexity: O(n·k) for a mapping with k names, O(n) otherwise.
func Decode[T scalar.Float](node *yaml.Node, names []string, dst []T) error {
	// Stage 1: aliases
	node = resolve(node)

	// Stages 2-3: shape check and scalar decode into scratch
	vals := make([]T, len(dst))
	switch {
	case node.Kind == yaml.SequenceNode:
		items, err := Items(node, len(dst))
		if err != nil {
			return err
		}
		for i, item := range items {
			if vals[i], err = decodeScalar[T](item); err != nil {
				return err
			}
		}
	case node.Kind == yaml.MappingNode && names != nil:
		if err := decodeMapping(node, names, vals); err != nil {
			return err
		}
	default:
		return fmt.Errorf("line %d: want sequence or mapping: %w", node.Line, ErrKind)
	}
	// Stage 4: commit
	copy(dst, vals)
	return nil
}

func decodeMapping[T scalar.Float](node *yaml.Node, names []string, vals []T) error {
	seen := make([]bool, len(names))
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		idx := indexOf(names, key.Value)
		if idx < 0 || seen[idx] {
			return fmt.Errorf("line %d: %q: %w", key.Line, key.Value, ErrComponent)
		}
		v, err := decodeScalar[T](val)
		if err != nil {
			return err
		}
		vals[idx], seen[idx] = v, true
	}
	for i, ok := range seen {
		if !ok {
			return fmt.Errorf("line %d: missing %q: %w", node.Line, names[i], ErrLength)
		}
	}
	return nil
}

// decodeScalar reads one number. Explicit .inf and .nan pass through; a finite
// value that overflows T to infinity fails with ErrRange. Precision loss when
// narrowing to float32 is not an error.
func decodeScalar[T scalar.Float](node *yaml.Node) (T, error) {
	node = resolve(node)
	var f float64
	if err := node.Decode(&f); err != nil {
		return 0, err
	}
	x := T(f)
	if !math.IsInf(f, 0) && math.IsInf(float64(x), 0) {
		return 0, fmt.Errorf("line %d: %s overflows %d-bit float: %w", node.Line, node.Value, 8*scalar.Size[T](), ErrRange)
	}
	return x, nil
}

func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func indexOf(names []string, s string) int {
	for i, n := range names {
		if n == s {
			return i
		}
	}
	return -1
}
