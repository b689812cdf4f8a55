package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParticipantPlaceholder is the token in a card text that gets replaced by a drawn participant
const ParticipantPlaceholder = "$user"

// Category represents the kind of card being played
type Category string

const (
	// CategoryGame marks a card that starts a small game between participants
	CategoryGame Category = "game"

	// CategoryVirus marks a card with a lasting rule
	CategoryVirus Category = "virus"

	// CategoryNone marks a plain card
	CategoryNone Category = "none"
)

// IsValid reports whether the category is one of the known categories
func (c Category) IsValid() bool {
	switch c {
	case CategoryGame, CategoryVirus, CategoryNone:
		return true
	}
	return false
}

// EffectType represents what an effect hands out
type EffectType string

const (
	// EffectTypeSip hands out sips
	EffectTypeSip EffectType = "sip"

	// EffectTypeShot hands out shots
	EffectTypeShot EffectType = "shot"

	// EffectTypeEx makes the target empty their glass
	EffectTypeEx EffectType = "ex"
)

// EffectTypes lists every known effect type in a stable order
var EffectTypes = []EffectType{EffectTypeSip, EffectTypeShot, EffectTypeEx}

// effectStats maps effect types onto the player counter they increment.
// Types missing from this table are display only.
var effectStats = map[EffectType]StatField{
	EffectTypeSip:  StatSips,
	EffectTypeShot: StatShots,
	EffectTypeEx:   StatEx,
}

// Stat returns the counter an effect of this type increments
func (t EffectType) Stat() (StatField, bool) {
	s, ok := effectStats[t]
	return s, ok
}

// Token returns the generic template token for the effect type, e.g. "$sip"
func (t EffectType) Token() string {
	return "$" + string(t)
}

// InputType represents how an answer is parsed
type InputType string

const (
	// InputTypeBoolean expects a yes/no answer
	InputTypeBoolean InputType = "boolean"

	// InputTypeParticipant expects a reference to another participant
	InputTypeParticipant InputType = "participant"
)

// ValueRange is an inclusive range a value is drawn from once per play.
// A fixed value is stored with Min == Max.
type ValueRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// IsFixed reports whether the range always yields the same value
func (v ValueRange) IsFixed() bool {
	return v.Min == v.Max
}

// UnmarshalJSON accepts a number, a "min-max" string or a {min,max} object
func (v *ValueRange) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return v.fromRaw(raw)
}

// UnmarshalYAML accepts the same shapes as UnmarshalJSON
func (v *ValueRange) UnmarshalYAML(node *yaml.Node) error {
	var raw interface{}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	return v.fromRaw(raw)
}

func (v *ValueRange) fromRaw(raw interface{}) error {
	switch val := raw.(type) {
	case float64:
		v.Min, v.Max = int(val), int(val)
	case int:
		v.Min, v.Max = val, val
	case string:
		return v.parseRange(val)
	case map[string]interface{}:
		min, err := toInt(val["min"])
		if err != nil {
			return fmt.Errorf("invalid value min: %w", err)
		}
		max, err := toInt(val["max"])
		if err != nil {
			return fmt.Errorf("invalid value max: %w", err)
		}
		v.Min, v.Max = min, max
	default:
		return fmt.Errorf("unsupported value %v", raw)
	}

	if v.Min > v.Max {
		v.Min, v.Max = v.Max, v.Min
	}
	return nil
}

func (v *ValueRange) parseRange(s string) error {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", s, err)
	}
	max := min
	if len(parts) == 2 {
		max, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", s, err)
		}
	}
	if min > max {
		min, max = max, min
	}
	v.Min, v.Max = min, max
	return nil
}

func toInt(raw interface{}) (int, error) {
	switch val := raw.(type) {
	case float64:
		return int(val), nil
	case int:
		return val, nil
	case string:
		return strconv.Atoi(strings.TrimSpace(val))
	}
	return 0, fmt.Errorf("not a number: %v", raw)
}

// Selection lists the predicates an answer has to satisfy (OR-combined).
// Authored as a single string or a list of strings.
type Selection []string

// UnmarshalJSON accepts a string or an array of strings
func (s *Selection) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = Selection{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("selection must be a string or a list of strings: %w", err)
	}
	*s = many
	return nil
}

// UnmarshalYAML accepts a scalar or a sequence of scalars
func (s *Selection) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*s = Selection{node.Value}
		return nil
	}
	var many []string
	if err := node.Decode(&many); err != nil {
		return fmt.Errorf("selection must be a string or a list of strings: %w", err)
	}
	*s = many
	return nil
}

// Effect is a conditional consequence of completing a card
type Effect struct {
	// Type is what the effect hands out
	Type EffectType `json:"type" yaml:"type"`

	// If is an optional condition on the recorded answers
	If string `json:"if,omitempty" yaml:"if,omitempty"`

	// Value is the optional amount, drawn once per play
	Value *ValueRange `json:"value,omitempty" yaml:"value,omitempty"`

	// Target describes who receives the effect
	Target TargetSpec `json:"target,omitempty" yaml:"target,omitempty"`
}

// Input is one interactive question of a card
type Input struct {
	// Type decides how the answer is parsed
	Type InputType `json:"type" yaml:"type"`

	// By restricts who may answer, as a mention token or a selection predicate
	By string `json:"by,omitempty" yaml:"by,omitempty"`

	// Question is the prompt shown to the participants
	Question string `json:"question,omitempty" yaml:"question,omitempty"`

	// If is an optional condition on earlier answers
	If string `json:"if,omitempty" yaml:"if,omitempty"`

	// Selection constrains which participant may be the answer
	Selection Selection `json:"selection,omitempty" yaml:"selection,omitempty"`

	// Index is the fixed position assigned when the card was authored
	Index int `json:"index" yaml:"index"`
}

// Card is the immutable definition of one round
type Card struct {
	ID       int      `json:"id" yaml:"id"`
	Text     string   `json:"text" yaml:"text"`
	Category Category `json:"category" yaml:"category"`
	NSFW     bool     `json:"nsfw" yaml:"nsfw"`

	// RequiredParticipants is derived from Text, see Normalize
	RequiredParticipants int `json:"requiredParticipants" yaml:"-"`

	Effects []*Effect `json:"effects" yaml:"effects"`
	Inputs  []*Input  `json:"inputs" yaml:"inputs"`
}

// CountParticipantPlaceholders counts the participant placeholders in a text
func CountParticipantPlaceholders(text string) int {
	return strings.Count(text, ParticipantPlaceholder)
}

// SetText replaces the card text and recomputes the required participants
func (c *Card) SetText(text string) {
	c.Text = text
	c.RequiredParticipants = CountParticipantPlaceholders(text)
}

// Normalize recomputes derived fields and orders the inputs by index.
// It must run before a card is persisted.
func (c *Card) Normalize() {
	c.SetText(c.Text)
	if c.Category == "" {
		c.Category = CategoryNone
	}
	effects := []*Effect{}
	for _, effect := range c.Effects {
		if effect != nil {
			effects = append(effects, effect)
		}
	}
	c.Effects = effects

	inputs := []*Input{}
	for _, input := range c.Inputs {
		if input != nil {
			inputs = append(inputs, input)
		}
	}
	c.Inputs = inputs

	for _, input := range c.Inputs {
		// older card files call participant inputs "user"
		if input.Type == "user" {
			input.Type = InputTypeParticipant
		}
	}
	sort.SliceStable(c.Inputs, func(i, j int) bool {
		return c.Inputs[i].Index < c.Inputs[j].Index
	})
}

// AssignInputIndexes gives every input its authored position as index
func (c *Card) AssignInputIndexes() {
	for i, input := range c.Inputs {
		input.Index = i
	}
}
