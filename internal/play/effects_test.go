package play

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	diceMocks "github.com/KirkDiggler/sipdeck/internal/dice/mocks"
	"github.com/KirkDiggler/sipdeck/internal/models"
)

func TestResolveEffects(t *testing.T) {
	card := &models.Card{
		ID:   3,
		Text: "$user gives $user a sip",
		Effects: []*models.Effect{
			{Type: models.EffectTypeSip, Value: &models.ValueRange{Min: 1, Max: 1}, Target: models.MentionTarget("$user[1]")},
			{Type: models.EffectTypeShot, If: "$input", Value: &models.ValueRange{Min: 2, Max: 4}, Target: models.MentionTarget("$user")},
			{Type: models.EffectTypeEx, If: "$input[0]", Target: models.ConditionalTarget("$input", models.MentionTarget("$user[0]"), models.TargetSpec{})},
		},
		Inputs: []*models.Input{{Type: models.InputTypeBoolean}},
	}

	t.Run("conditions gate effects", func(t *testing.T) {
		instance := &models.PlayInstance{Participants: []string{"a", "b"}, Values: []int{1, 3, 0}, Answers: []string{"false"}}
		results, problems := ResolveEffects(card, instance)
		assert.Empty(t, problems)
		require.Len(t, results, 1)
		assert.Equal(t, "1 sip", results[0].Label)
		assert.Equal(t, 1, results[0].Amount)
		assert.Equal(t, []string{"b"}, results[0].Targets)
	})

	t.Run("all effects apply when confirmed", func(t *testing.T) {
		instance := &models.PlayInstance{Participants: []string{"a", "b"}, Values: []int{1, 3, 0}, Answers: []string{"true"}}
		results, problems := ResolveEffects(card, instance)
		assert.Empty(t, problems)
		require.Len(t, results, 3)
		assert.Equal(t, "3 shots", results[1].Label)
		assert.Equal(t, []string{"a", "b"}, results[1].Targets)
		assert.Equal(t, "ex", results[2].Label)
		assert.Equal(t, []string{"a"}, results[2].Targets)
	})

	t.Run("missing values skip only that effect", func(t *testing.T) {
		instance := &models.PlayInstance{Participants: []string{"a", "b"}, Values: []int{1}, Answers: []string{"true"}}
		results, problems := ResolveEffects(card, instance)
		require.Len(t, problems, 1)
		assert.ErrorIs(t, problems[0], ErrMissingValue)
		require.Len(t, results, 2)
		assert.Equal(t, models.EffectTypeSip, results[0].Type)
		assert.Equal(t, models.EffectTypeEx, results[1].Type)
	})
}

func TestDraw(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := diceMocks.NewMockRoller(ctrl)

	card := &models.Card{
		ID:   5,
		Text: "$user and $user",
		Effects: []*models.Effect{
			{Type: models.EffectTypeEx},
			{Type: models.EffectTypeSip, Value: &models.ValueRange{Min: 2, Max: 5}},
		},
	}
	card.Normalize()

	// reverse the roster
	roller.EXPECT().Shuffle(3, gomock.Any()).Do(func(n int, swap func(i, j int)) {
		swap(0, 2)
	})
	roller.EXPECT().Between(2, 5).Return(4)

	instance, err := Draw(&DrawInput{Card: card, Roster: []string{"a", "b", "c"}, Roller: roller})
	require.NoError(t, err)
	assert.Equal(t, 5, instance.CardID)
	assert.Equal(t, []string{"c", "b"}, instance.Participants)
	assert.Equal(t, []int{0, 4}, instance.Values)
	assert.Empty(t, instance.Answers)
}

func TestDrawNeedsEnoughParticipants(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := diceMocks.NewMockRoller(ctrl)

	card := &models.Card{ID: 9, Text: "$user versus $user"}
	card.Normalize()

	_, err := Draw(&DrawInput{Card: card, Roster: []string{"solo"}, Roller: roller})
	assert.ErrorIs(t, err, ErrNotEnoughParticipants)
}
