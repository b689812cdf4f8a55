package play

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/sipdeck/internal/models"
)

// FallbackValue replaces a generic effect token when no value was drawn for its type
const FallbackValue = 42

var (
	pluralPattern   = regexp.MustCompile(`(?i)(\d+) ([a-z]+)s\*`)
	leftoverPattern = regexp.MustCompile(`\$[a-zA-Z]+(?:\[\d+\])?`)
)

// Markup renders references to participants for a transport
type Markup interface {
	Mention(participantID string) string
}

// MentionMarkup renders participants with the chat mention syntax
type MentionMarkup struct{}

func (MentionMarkup) Mention(participantID string) string {
	return "<@" + participantID + ">"
}

// EffectValue pairs a drawn value with the type of the effect it belongs to
type EffectValue struct {
	Type models.EffectType

	// Drawn is false for effects without a value
	Drawn bool
	Value int
}

// RenderInput carries everything drawn for one play
type RenderInput struct {
	Participants []string
	Values       []EffectValue

	// Markup defaults to MentionMarkup
	Markup Markup
}

// RenderOutput is the final display text
type RenderOutput struct {
	Text string

	// Unresolved lists tokens left verbatim in Text
	Unresolved []string
}

// Template is the parsed display text of a card
type Template struct {
	text   string
	tokens []models.EffectType
}

// ParseTemplate parses a card text, remembering the effect types it may refer to
func ParseTemplate(text string, types []models.EffectType) *Template {
	seen := map[models.EffectType]bool{}
	tokens := []models.EffectType{}
	for _, t := range types {
		if !seen[t] {
			seen[t] = true
			tokens = append(tokens, t)
		}
	}
	return &Template{text: text, tokens: tokens}
}

// Text returns the raw template text
func (t *Template) Text() string {
	return t.text
}

// Render substitutes the drawn values and participants into the text.
// The passes run in a fixed order, each one relying on the previous having removed its tokens.
func (t *Template) Render(input *RenderInput) *RenderOutput {
	markup := input.Markup
	if markup == nil {
		markup = MentionMarkup{}
	}

	text := t.text

	// drawn values, in effect order, each taking the first remaining token of its type
	last := map[models.EffectType]int{}
	for _, v := range input.Values {
		if !v.Drawn {
			continue
		}
		text = strings.Replace(text, v.Type.Token(), strconv.Itoa(v.Value), 1)
		last[v.Type] = v.Value
	}

	// generic tokens take the last drawn value of their type
	for _, typ := range t.tokens {
		value, ok := last[typ]
		if !ok {
			value = FallbackValue
		}
		text = strings.ReplaceAll(text, typ.Token(), strconv.Itoa(value))
	}

	for _, participant := range input.Participants {
		text = strings.Replace(text, models.ParticipantPlaceholder, markup.Mention(participant), 1)
	}

	text = Pluralize(text)

	return &RenderOutput{
		Text:       text,
		Unresolved: leftoverPattern.FindAllString(text, -1),
	}
}

// Pluralize rewrites every "<count> <noun>s*" into a bold count with a singular or plural noun
func Pluralize(text string) string {
	return pluralPattern.ReplaceAllStringFunc(text, func(m string) string {
		parts := pluralPattern.FindStringSubmatch(m)
		count, noun := parts[1], parts[2]
		if count == "1" {
			return "**" + count + "** " + noun
		}
		return "**" + count + "** " + noun + "s"
	})
}

// CountNoun formats a count with a singular or plural noun, e.g. "1 sip" or "3 sips"
func CountNoun(count int, noun string) string {
	if count == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(count) + " " + noun + "s"
}

// RenderCard renders the text of a card for a play instance
func RenderCard(card *models.Card, instance *models.PlayInstance, markup Markup) *RenderOutput {
	types := make([]models.EffectType, len(card.Effects))
	values := make([]EffectValue, len(card.Effects))
	for i, effect := range card.Effects {
		types[i] = effect.Type
		values[i] = EffectValue{Type: effect.Type}
		if effect.Value != nil && i < len(instance.Values) {
			values[i].Drawn = true
			values[i].Value = instance.Values[i]
		}
	}

	return ParseTemplate(card.Text, types).Render(&RenderInput{
		Participants: instance.Participants,
		Values:       values,
		Markup:       markup,
	})
}
