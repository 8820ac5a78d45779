// Package fixture loads probe matrices from YAML documents.
package fixture

import (
	"errors"
	"fmt"
	"math"

	yaml "github.com/goccy/go-yaml/ast"
	"github.com/inoxlang/arrcompat/internal/value"
)

const (
	ARRAY_TAG    = "!array"
	VEC_TAG      = "!vec"
	DICT_TAG     = "!dict"
	KEYSET_TAG   = "!keyset"
	OBJECT_TAG   = "!object"
	RESOURCE_TAG = "!resource"
)

var (
	ErrUnsupportedYamlNodeType = errors.New("unsupported YAML node type")
	ErrUnknownTag              = errors.New("unknown tag")
	ErrInvalidTaggedValue      = errors.New("invalid tagged value")
	ErrUnknownAlias            = errors.New("unknown alias")
)

// converter converts YAML nodes to values. Anchored values are shared: an alias yields the same
// object or resource handle as its anchor.
type converter struct {
	anchors map[string]value.Value
}

func newConverter() *converter {
	return &converter{anchors: map[string]value.Value{}}
}

// convert converts a YAML node to a value, untagged sequences are vecs and untagged mappings are dicts.
func (c *converter) convert(n yaml.Node) (value.Value, error) {
	switch n.Type() {
	case yaml.DocumentType:
		body := n.(*yaml.DocumentNode).Body
		if body == nil {
			return value.Null, nil
		}
		return c.convert(body)
	case yaml.NullType:
		return value.Null, nil
	case yaml.BoolType:
		return value.Bool(n.(*yaml.BoolNode).Value), nil
	case yaml.IntegerType:
		switch integer := n.(*yaml.IntegerNode).Value.(type) {
		case uint64:
			if integer > math.MaxInt64 {
				return nil, fmt.Errorf("integer at YAML path %s is a large uint64, it is not supported", n.GetPath())
			}
			return value.Int(integer), nil
		case int64:
			return value.Int(integer), nil
		}
	case yaml.FloatType:
		return value.Float(n.(*yaml.FloatNode).Value), nil
	case yaml.InfinityType:
		return value.Float(n.(*yaml.InfinityNode).Value), nil
	case yaml.NanType:
		return value.Float(math.NaN()), nil
	case yaml.StringType:
		return value.Str(n.(*yaml.StringNode).Value), nil
	case yaml.LiteralType:
		return value.Str(n.(*yaml.LiteralNode).Value.Value), nil
	case yaml.MappingType:
		pairs, err := c.mappingPairs(n.(*yaml.MappingNode).Values)
		if err != nil {
			return nil, err
		}
		container, err := value.NewMap(pairs...)
		if err != nil {
			return nil, withPath(err, n)
		}
		return container, nil
	case yaml.MappingValueType:
		//single entry mapping
		pairs, err := c.mappingPairs([]*yaml.MappingValueNode{n.(*yaml.MappingValueNode)})
		if err != nil {
			return nil, err
		}
		container, err := value.NewMap(pairs...)
		if err != nil {
			return nil, withPath(err, n)
		}
		return container, nil
	case yaml.SequenceType:
		elements, err := c.sequenceElements(n.(*yaml.SequenceNode))
		if err != nil {
			return nil, err
		}
		return value.NewList(elements...), nil
	case yaml.TagType:
		return c.convertTagged(n.(*yaml.TagNode))
	case yaml.AnchorType:
		anchor := n.(*yaml.AnchorNode)
		val, err := c.convert(anchor.Value)
		if err != nil {
			return nil, err
		}
		c.anchors[anchor.Name.GetToken().Value] = val
		return val, nil
	case yaml.AliasType:
		name := n.(*yaml.AliasNode).Value.GetToken().Value
		val, ok := c.anchors[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s at YAML path %s", ErrUnknownAlias, name, n.GetPath())
		}
		return val, nil
	}
	return nil, fmt.Errorf("%w: %s at YAML path %s", ErrUnsupportedYamlNodeType, n.Type(), n.GetPath())
}

func withPath(err error, n yaml.Node) error {
	return fmt.Errorf("%w at YAML path %s", err, n.GetPath())
}

func (c *converter) mappingPairs(items []*yaml.MappingValueNode) ([]value.Pair, error) {
	pairs := make([]value.Pair, 0, len(items))
	for _, item := range items {
		key, err := c.convert(item.Key)
		if err != nil {
			return nil, err
		}
		val, err := c.convert(item.Value)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, value.KV(key, val))
	}
	return pairs, nil
}

func (c *converter) sequenceElements(seq *yaml.SequenceNode) ([]value.Value, error) {
	elements := make([]value.Value, 0, len(seq.Values))
	for _, item := range seq.Values {
		elem, err := c.convert(item)
		if err != nil {
			return nil, err
		}
		elements = append(elements, elem)
	}
	return elements, nil
}

// convertTagged converts the value of a tag node, the tag selects the representation of a container
// or creates an opaque handle.
func (c *converter) convertTagged(n *yaml.TagNode) (value.Value, error) {
	tag := n.Start.Value

	switch tag {
	case OBJECT_TAG, RESOURCE_TAG:
		name := ""
		if n.Value != nil {
			v, err := c.convert(n.Value)
			if err != nil {
				return nil, err
			}
			s, ok := v.(value.Str)
			if !ok && v != value.Null {
				return nil, fmt.Errorf("%w: %s expects a string at YAML path %s", ErrInvalidTaggedValue, tag, n.GetPath())
			}
			name = string(s)
		}
		if tag == OBJECT_TAG {
			if name == "" {
				name = value.DEFAULT_OBJECT_CLASS
			}
			return value.NewObject(name), nil
		}
		return value.NewResource(name), nil
	case ARRAY_TAG, VEC_TAG, DICT_TAG, KEYSET_TAG:
	default:
		return nil, fmt.Errorf("%w: %s at YAML path %s", ErrUnknownTag, tag, n.GetPath())
	}

	var pairs []value.Pair

	switch inner := n.Value.(type) {
	case nil:
	case *yaml.SequenceNode:
		elements, err := c.sequenceElements(inner)
		if err != nil {
			return nil, err
		}
		for _, elem := range elements {
			pairs = append(pairs, value.Elem(elem))
		}
	case *yaml.MappingNode:
		mappingPairs, err := c.mappingPairs(inner.Values)
		if err != nil {
			return nil, err
		}
		pairs = mappingPairs
	case *yaml.MappingValueNode:
		mappingPairs, err := c.mappingPairs([]*yaml.MappingValueNode{inner})
		if err != nil {
			return nil, err
		}
		pairs = mappingPairs
	default:
		return nil, fmt.Errorf("%w: %s expects a sequence or a mapping at YAML path %s", ErrInvalidTaggedValue, tag, n.GetPath())
	}

	switch tag {
	case ARRAY_TAG:
		container, err := value.NewLegacyArray(pairs...)
		if err != nil {
			return nil, withPath(err, n)
		}
		return container, nil
	case DICT_TAG:
		container, err := value.NewMap(pairs...)
		if err != nil {
			return nil, withPath(err, n)
		}
		return container, nil
	case VEC_TAG:
		elements := make([]value.Value, len(pairs))
		for i, pair := range pairs {
			elements[i] = pair.Value
		}
		return value.NewList(elements...), nil
	default:
		//keyset: the elements of a sequence, the keys of a mapping
		elements := make([]value.Value, len(pairs))
		for i, pair := range pairs {
			if pair.Key != nil {
				elements[i] = pair.Key
			} else {
				elements[i] = pair.Value
			}
		}
		container, err := value.NewSet(elements...)
		if err != nil {
			return nil, withPath(err, n)
		}
		return container, nil
	}
}
