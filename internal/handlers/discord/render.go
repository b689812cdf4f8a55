package discord

import (
	"regexp"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/sipdeck/internal/models"
)

var (
	userMentionPattern    = regexp.MustCompile(`^<@!?(\d+)>$`)
	channelMentionPattern = regexp.MustCompile(`^<#(\d+)>$`)
	snowflakePattern      = regexp.MustCompile(`^\d+$`)
)

// parseUserMention extracts the user ID from a mention or a raw ID
func parseUserMention(token string) (string, bool) {
	if match := userMentionPattern.FindStringSubmatch(token); match != nil {
		return match[1], true
	}
	if snowflakePattern.MatchString(token) {
		return token, true
	}
	return "", false
}

// parseChannelMention extracts the channel ID from a mention or a raw ID
func parseChannelMention(token string) (string, bool) {
	if match := channelMentionPattern.FindStringSubmatch(token); match != nil {
		return match[1], true
	}
	if snowflakePattern.MatchString(token) {
		return token, true
	}
	return "", false
}

// displayName prefers the global display name over the account name
func displayName(user *discordgo.User) string {
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

// renderEmbed turns a payload into an embed, with the user as author when given
func renderEmbed(payload *models.Payload, author *discordgo.User) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       payload.Title,
		Description: payload.Body,
		Color:       payload.Color,
	}

	if author != nil {
		embed.Author = &discordgo.MessageEmbedAuthor{
			Name:    displayName(author),
			IconURL: author.AvatarURL(""),
		}
	}

	for _, field := range payload.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   field.Name,
			Value:  field.Value,
			Inline: field.Inline,
		})
	}

	return embed
}
