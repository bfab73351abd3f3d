package min

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

const objectTag = "!object"

// MarshalYAML encodes integers, floats, and symbols as plain YAML scalars and
// objects as a hex handle tagged !object.
func (a Atom) MarshalYAML() (interface{}, error) {
	switch a.typ {
	case IntArgument:
		return a.i, nil
	case FloatArgument:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: yamlFloat(a.f)}, nil
	case SymbolArgument:
		return a.sym.String(), nil
	case ObjectArgument:
		return &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   objectTag,
			Value: fmt.Sprintf("0x%x", uintptr(a.obj)),
		}, nil
	default:
		return nil, errors.New("cannot marshal an empty atom")
	}
}

// UnmarshalYAML decodes a scalar into an atom using the scalar's resolved
// tag. Booleans and collections are rejected. yaml.v3 never passes nulls to
// an unmarshaler; Atoms.UnmarshalYAML rejects them in sequences.
func (a *Atom) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: an atom must be a scalar", node.Line)
	}

	switch tag := node.ShortTag(); tag {
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return err
		}
		*a = NewInt(i)
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		*a = NewFloat(f)
	case "!!str":
		*a = NewSymbol(node.Value)
	case objectTag:
		u, err := strconv.ParseUint(node.Value, 0, 64)
		if err != nil {
			return fmt.Errorf("line %d: invalid object handle %q", node.Line, node.Value)
		}
		*a = NewObject(Object(u))
	default:
		return fmt.Errorf("line %d: cannot decode %s %q as an atom", node.Line, tag, node.Value)
	}
	return nil
}

// UnmarshalYAML decodes a sequence of scalars. Every element must decode to
// an atom, so indices in the document match indices in as.
func (as *Atoms) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: atoms must be a sequence", node.Line)
	}

	out := make(Atoms, len(node.Content))
	for i, n := range node.Content {
		if n.Kind == yaml.AliasNode {
			n = n.Alias
		}
		if n.ShortTag() == "!!null" {
			return fmt.Errorf("line %d: cannot decode null as an atom", n.Line)
		}
		if err := out[i].UnmarshalYAML(n); err != nil {
			return err
		}
	}
	*as = out
	return nil
}

// yamlFloat formats f so that it resolves as a float, never as an int.
func yamlFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	return formatFloat(f)
}
