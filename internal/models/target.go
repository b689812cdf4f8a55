package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// TargetKind tells which variant a TargetSpec holds
type TargetKind int

const (
	// TargetNone is the zero value, it resolves to nobody
	TargetNone TargetKind = iota

	// TargetMention is a single mention token like "$user[0]"
	TargetMention

	// TargetConditional picks one of two branches depending on a condition
	TargetConditional

	// TargetList is the union of its items
	TargetList
)

// maxTargetDepth bounds nesting of authored target specs
const maxTargetDepth = 16

// ErrTargetTooDeep is returned when an authored target nests deeper than allowed
var ErrTargetTooDeep = errors.New("target specification nested too deep")

// TargetSpec describes which participants an effect refers to.
// Authored as a string, a {condition,true,false} object or a list of those.
type TargetSpec struct {
	Kind TargetKind

	// Mention is set for TargetMention
	Mention string

	// Condition, IfTrue and IfFalse are set for TargetConditional
	Condition string
	IfTrue    *TargetSpec
	IfFalse   *TargetSpec

	// Items is set for TargetList
	Items []TargetSpec
}

// MentionTarget builds a mention target
func MentionTarget(token string) TargetSpec {
	return TargetSpec{Kind: TargetMention, Mention: token}
}

// ConditionalTarget builds a conditional target
func ConditionalTarget(condition string, ifTrue, ifFalse TargetSpec) TargetSpec {
	return TargetSpec{Kind: TargetConditional, Condition: condition, IfTrue: &ifTrue, IfFalse: &ifFalse}
}

// ListTarget builds a list target
func ListTarget(items ...TargetSpec) TargetSpec {
	return TargetSpec{Kind: TargetList, Items: items}
}

// IsZero reports whether the target resolves to nobody by construction
func (t TargetSpec) IsZero() bool {
	return t.Kind == TargetNone
}

type conditionalJSON struct {
	Condition string          `json:"condition"`
	True      json.RawMessage `json:"true"`
	False     json.RawMessage `json:"false"`
}

// MarshalJSON writes the authored shape back out
func (t TargetSpec) MarshalJSON() ([]byte, error) {
	switch t.Kind {
	case TargetMention:
		return json.Marshal(t.Mention)
	case TargetList:
		items := t.Items
		if items == nil {
			items = []TargetSpec{}
		}
		return json.Marshal(items)
	case TargetConditional:
		out := map[string]interface{}{"condition": t.Condition}
		if t.IfTrue != nil {
			out["true"] = *t.IfTrue
		} else {
			out["true"] = nil
		}
		if t.IfFalse != nil {
			out["false"] = *t.IfFalse
		} else {
			out["false"] = nil
		}
		return json.Marshal(out)
	}
	return []byte("null"), nil
}

// UnmarshalJSON decodes any of the authored shapes
func (t *TargetSpec) UnmarshalJSON(data []byte) error {
	return t.decodeJSON(data, 0)
}

func (t *TargetSpec) decodeJSON(data []byte, depth int) error {
	if depth > maxTargetDepth {
		return ErrTargetTooDeep
	}

	data = bytes.TrimSpace(data)
	*t = TargetSpec{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		var mention string
		if err := json.Unmarshal(data, &mention); err != nil {
			return err
		}
		*t = MentionTarget(mention)
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		items := make([]TargetSpec, len(raw))
		for i, r := range raw {
			if err := items[i].decodeJSON(r, depth+1); err != nil {
				return err
			}
		}
		*t = ListTarget(items...)
	case '{':
		var c conditionalJSON
		if err := json.Unmarshal(data, &c); err != nil {
			return err
		}
		var ifTrue, ifFalse TargetSpec
		if err := ifTrue.decodeJSON(c.True, depth+1); err != nil {
			return err
		}
		if err := ifFalse.decodeJSON(c.False, depth+1); err != nil {
			return err
		}
		*t = ConditionalTarget(c.Condition, ifTrue, ifFalse)
	default:
		return fmt.Errorf("unsupported target %s", string(data))
	}
	return nil
}

// UnmarshalYAML decodes any of the authored shapes
func (t *TargetSpec) UnmarshalYAML(node *yaml.Node) error {
	return t.decodeYAML(node, 0)
}

func (t *TargetSpec) decodeYAML(node *yaml.Node, depth int) error {
	if depth > maxTargetDepth {
		return ErrTargetTooDeep
	}

	*t = TargetSpec{}
	if node == nil {
		return nil
	}

	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil
		}
		*t = MentionTarget(node.Value)
	case yaml.SequenceNode:
		items := make([]TargetSpec, len(node.Content))
		for i, child := range node.Content {
			if err := items[i].decodeYAML(child, depth+1); err != nil {
				return err
			}
		}
		*t = ListTarget(items...)
	case yaml.MappingNode:
		var condition string
		var ifTrue, ifFalse TargetSpec
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			var err error
			switch key.Value {
			case "condition":
				condition = value.Value
			case "true":
				err = ifTrue.decodeYAML(value, depth+1)
			case "false":
				err = ifFalse.decodeYAML(value, depth+1)
			}
			if err != nil {
				return err
			}
		}
		*t = ConditionalTarget(condition, ifTrue, ifFalse)
	case yaml.AliasNode:
		return t.decodeYAML(node.Alias, depth+1)
	default:
		return fmt.Errorf("unsupported target at line %d", node.Line)
	}
	return nil
}
