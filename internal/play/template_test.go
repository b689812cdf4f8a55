package play

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/sipdeck/internal/models"
)

func TestRenderCard(t *testing.T) {
	testCases := []struct {
		name         string
		card         *models.Card
		play         *models.PlayInstance
		expectedText string
		unresolved   []string
	}{
		{
			name: "participants are mentioned in order",
			card: &models.Card{
				Text:    "$user gives $user a sip",
				Effects: []*models.Effect{{Type: models.EffectTypeSip}},
			},
			play:         &models.PlayInstance{Participants: []string{"a", "b"}, Values: []int{0}},
			expectedText: "<@a> gives <@b> a sip",
		},
		{
			name: "values follow the effect order and pluralize",
			card: &models.Card{
				Text: "$user drinks $sip sips* and hands out $shot shots*",
				Effects: []*models.Effect{
					{Type: models.EffectTypeSip, Value: &models.ValueRange{Min: 1, Max: 3}},
					{Type: models.EffectTypeShot, Value: &models.ValueRange{Min: 1, Max: 1}},
				},
			},
			play:         &models.PlayInstance{Participants: []string{"a"}, Values: []int{3, 1}},
			expectedText: "<@a> drinks **3** sips and hands out **1** shot",
		},
		{
			name: "generic token takes the last drawn value of its type",
			card: &models.Card{
				Text: "drink $sip sips*, then $sip sips*, then $sip sips* again",
				Effects: []*models.Effect{
					{Type: models.EffectTypeSip, Value: &models.ValueRange{Min: 2, Max: 2}},
					{Type: models.EffectTypeSip, Value: &models.ValueRange{Min: 5, Max: 5}},
				},
			},
			play:         &models.PlayInstance{Values: []int{2, 5}},
			expectedText: "drink **2** sips, then **5** sips, then **5** sips again",
		},
		{
			name: "type without drawn value falls back",
			card: &models.Card{
				Text:    "everybody takes $sip sips*",
				Effects: []*models.Effect{{Type: models.EffectTypeSip}},
			},
			play:         &models.PlayInstance{Values: []int{0}},
			expectedText: "everybody takes **42** sips",
		},
		{
			name: "unknown tokens are left verbatim",
			card: &models.Card{
				Text:    "$user drinks $beer",
				Effects: []*models.Effect{},
			},
			play:         &models.PlayInstance{Participants: []string{"a"}},
			expectedText: "<@a> drinks $beer",
			unresolved:   []string{"$beer"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := RenderCard(tc.card, tc.play, nil)
			assert.Equal(t, tc.expectedText, out.Text)
			if tc.unresolved == nil {
				assert.Empty(t, out.Unresolved)
			} else {
				assert.Equal(t, tc.unresolved, out.Unresolved)
			}
		})
	}
}

type nameMarkup map[string]string

func (m nameMarkup) Mention(id string) string {
	return "@" + m[id]
}

func TestRenderUsesMarkup(t *testing.T) {
	tmpl := ParseTemplate("$user and $user", nil)
	out := tmpl.Render(&RenderInput{
		Participants: []string{"1", "2"},
		Markup:       nameMarkup{"1": "ann", "2": "bob"},
	})
	assert.Equal(t, "@ann and @bob", out.Text)
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "take **1** sip", Pluralize("take 1 sips*"))
	assert.Equal(t, "take **0** sips", Pluralize("take 0 sips*"))
	assert.Equal(t, "take **12** Shots", Pluralize("take 12 Shots*"))
	assert.Equal(t, "take 3 sips", Pluralize("take 3 sips"), "unmarked nouns stay untouched")
}

func TestCountNoun(t *testing.T) {
	assert.Equal(t, "1 sip", CountNoun(1, "sip"))
	assert.Equal(t, "0 shots", CountNoun(0, "shot"))
	assert.Equal(t, "4 sips", CountNoun(4, "sip"))
}
