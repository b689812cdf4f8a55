package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/sipdeck/internal/models"
)

func TestParseUserMention(t *testing.T) {
	tests := []struct {
		token string
		id    string
		ok    bool
	}{
		{"<@123>", "123", true},
		{"<@!123>", "123", true},
		{"123", "123", true},
		{"<#123>", "", false},
		{"@bob", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			id, ok := parseUserMention(tt.token)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.id, id)
		})
	}
}

func TestParseChannelMention(t *testing.T) {
	id, ok := parseChannelMention("<#555>")
	assert.True(t, ok)
	assert.Equal(t, "555", id)

	_, ok = parseChannelMention("<@555>")
	assert.False(t, ok)
}

func TestRenderEmbed(t *testing.T) {
	embed := renderEmbed(&models.Payload{
		Title: "Stats",
		Body:  "so far",
		Color: 0xff0000,
		Fields: []models.Field{
			{Name: "Sips", Value: "3", Inline: true},
		},
	}, &discordgo.User{ID: "1", Username: "carol"})

	assert.Equal(t, "Stats", embed.Title)
	assert.Equal(t, "so far", embed.Description)
	assert.Equal(t, 0xff0000, embed.Color)
	if assert.NotNil(t, embed.Author) {
		assert.Equal(t, "carol", embed.Author.Name)
	}
	if assert.Len(t, embed.Fields, 1) {
		assert.Equal(t, "Sips", embed.Fields[0].Name)
		assert.True(t, embed.Fields[0].Inline)
	}

	assert.Nil(t, renderEmbed(&models.Payload{Title: "x"}, nil).Author)
}
