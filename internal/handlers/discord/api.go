package discord

//go:generate mockgen -package=mocks -destination=mocks/mock_api.go github.com/KirkDiggler/sipdeck/internal/handlers/discord API

import (
	"github.com/bwmarrin/discordgo"
)

// API is the part of the Discord REST API the bot uses. *discordgo.Session implements it.
type API interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	User(userID string, options ...discordgo.RequestOption) (*discordgo.User, error)
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	Guild(guildID string, options ...discordgo.RequestOption) (*discordgo.Guild, error)
	GuildMemberRoleAdd(guildID, userID, roleID string, options ...discordgo.RequestOption) error
	GuildMemberRoleRemove(guildID, userID, roleID string, options ...discordgo.RequestOption) error
}

var _ API = (*discordgo.Session)(nil)
