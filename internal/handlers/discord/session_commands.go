package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/sipdeck/internal/models"
	"github.com/KirkDiggler/sipdeck/internal/services/game"
	"github.com/KirkDiggler/sipdeck/internal/services/messaging"
)

// usageError is a malformed command, shown to its author
type usageError string

func (e usageError) Error() string {
	return string(e)
}

const (
	errMissingMention usageError = "mention a player"
	errMissingChannel usageError = "mention the channel to move the game to"
	errNSFWUsage      usageError = "use nsfw on or nsfw off"
)

func (b *Bot) registerCommands() {
	add := func(name string, aliases []string, usage, description string, handle func(ctx context.Context, msg *Message, args []string) error) {
		b.RegisterCommand(&funcCommand{
			BaseCommand: BaseCommand{
				Name:        name,
				Aliases:     aliases,
				Usage:       usage,
				Description: description,
			},
			handle: handle,
		})
	}

	add("create", []string{"new"}, "", "Create a new game in this channel", b.handleCreate)
	add("join", nil, "", "Join the game", b.handleJoin)
	add("force", nil, "<user>", "Add another player to the game (server owner)", b.handleForce)
	add("leave", nil, "", "Leave the game", b.handleLeave)
	add("start", nil, "", "Start dealing cards", b.handleStart)
	add("next", nil, "", "Deal the next card once the current one is done", b.handleNext)
	add("skip", nil, "", "Skip the current card (game creator)", b.handleSkip)
	add("stop", []string{"disband"}, "", "End the game (game creator)", b.handleStop)
	add("transfer", []string{"move"}, "<channel>", "Move the game to another channel (game creator)", b.handleTransfer)
	add("status", []string{"table"}, "", "Show the players and the card on the table", b.handleStatus)
	add("stats", nil, "[user]", "Show drinking stats", b.handleStats)
	add("like", nil, "", "Like the current card", b.handleLike)
	add("nsfw", nil, "on|off", "Allow or forbid nsfw cards (game creator)", b.handleNSFW)
	add("help", []string{"commands"}, "", "Show this list", b.handleHelp)
}

func (b *Bot) send(ctx context.Context, channelID string, payload *models.Payload) error {
	return b.transport.SendPayload(ctx, channelID, payload)
}

func (b *Bot) handleCreate(ctx context.Context, msg *Message, args []string) error {
	_, err := b.gameService.CreateSession(ctx, &game.CreateSessionInput{
		ChannelID: msg.ChannelID,
		GuildID:   msg.GuildID,
		CreatorID: msg.AuthorID,
	})
	return err
}

func (b *Bot) handleJoin(ctx context.Context, msg *Message, args []string) error {
	_, err := b.gameService.JoinSession(ctx, &game.JoinSessionInput{
		ChannelID: msg.ChannelID,
		PlayerID:  msg.AuthorID,
	})
	return err
}

func (b *Bot) handleForce(ctx context.Context, msg *Message, args []string) error {
	if !b.isGuildOwner(msg) {
		return game.ErrNotPermitted
	}
	if len(args) == 0 {
		return errMissingMention
	}

	ref, err := b.transport.ResolveParticipant(ctx, args[0])
	if err != nil {
		return err
	}
	if ref == nil {
		return errMissingMention
	}

	_, err = b.gameService.JoinSession(ctx, &game.JoinSessionInput{
		ChannelID: msg.ChannelID,
		PlayerID:  ref.ID,
	})
	return err
}

func (b *Bot) handleLeave(ctx context.Context, msg *Message, args []string) error {
	_, err := b.gameService.LeaveSession(ctx, &game.LeaveSessionInput{
		ChannelID: msg.ChannelID,
		PlayerID:  msg.AuthorID,
	})
	return err
}

func (b *Bot) handleStart(ctx context.Context, msg *Message, args []string) error {
	_, err := b.gameService.StartSession(ctx, &game.StartSessionInput{
		ChannelID: msg.ChannelID,
		PlayerID:  msg.AuthorID,
	})
	return err
}

func (b *Bot) handleNext(ctx context.Context, msg *Message, args []string) error {
	_, err := b.gameService.NextCard(ctx, &game.NextCardInput{
		ChannelID: msg.ChannelID,
		PlayerID:  msg.AuthorID,
	})
	return err
}

func (b *Bot) handleSkip(ctx context.Context, msg *Message, args []string) error {
	_, err := b.gameService.SkipCard(ctx, &game.SkipCardInput{
		ChannelID:  msg.ChannelID,
		PlayerID:   msg.AuthorID,
		Privileged: b.isGuildOwner(msg),
	})
	return err
}

func (b *Bot) handleStop(ctx context.Context, msg *Message, args []string) error {
	_, err := b.gameService.DisbandSession(ctx, &game.DisbandSessionInput{
		ChannelID:  msg.ChannelID,
		PlayerID:   msg.AuthorID,
		Privileged: b.isGuildOwner(msg),
	})
	return err
}

func (b *Bot) handleTransfer(ctx context.Context, msg *Message, args []string) error {
	if len(args) == 0 {
		return errMissingChannel
	}
	target, ok := parseChannelMention(args[0])
	if !ok {
		return errMissingChannel
	}

	_, err := b.gameService.TransferSession(ctx, &game.TransferSessionInput{
		FromChannelID: msg.ChannelID,
		ToChannelID:   target,
		PlayerID:      msg.AuthorID,
		Privileged:    b.isGuildOwner(msg),
	})
	return err
}

func (b *Bot) handleStatus(ctx context.Context, msg *Message, args []string) error {
	current, err := b.gameService.GetSession(ctx, &game.GetSessionInput{
		ChannelID: msg.ChannelID,
	})
	if err != nil {
		return err
	}

	out, err := b.messaging.GetSessionPayload(ctx, &messaging.GetSessionPayloadInput{
		Session: current.Session,
		Card:    current.Card,
		Play:    current.Play,
		Drinks:  current.Drinks,
	})
	if err != nil {
		return err
	}
	return b.send(ctx, msg.ChannelID, out.Payload)
}

func (b *Bot) handleStats(ctx context.Context, msg *Message, args []string) error {
	playerID := msg.AuthorID
	if len(args) > 0 {
		ref, err := b.transport.ResolveParticipant(ctx, args[0])
		if err != nil {
			return err
		}
		if ref == nil {
			return errMissingMention
		}
		playerID = ref.ID
	}

	stats, err := b.gameService.GetPlayerStats(ctx, &game.GetPlayerStatsInput{
		PlayerID: playerID,
	})
	if err != nil {
		return err
	}

	out, err := b.messaging.GetStatsPayload(ctx, &messaging.GetStatsPayloadInput{
		Player: stats.Player,
		Recent: stats.Recent,
	})
	if err != nil {
		return err
	}
	return b.send(ctx, msg.ChannelID, out.Payload)
}

func (b *Bot) handleLike(ctx context.Context, msg *Message, args []string) error {
	liked, err := b.gameService.LikeCurrentCard(ctx, &game.LikeCurrentCardInput{
		ChannelID: msg.ChannelID,
		PlayerID:  msg.AuthorID,
	})
	if err != nil {
		return err
	}

	title := "You already liked this card"
	if liked.Added {
		title = fmt.Sprintf("Card liked, %d ❤", liked.Likes)
	}
	return b.send(ctx, msg.ChannelID, &models.Payload{
		Title:         title,
		ParticipantID: msg.AuthorID,
		Level:         models.LevelSuccess,
		Color:         messaging.LevelColor(models.LevelSuccess),
	})
}

func (b *Bot) handleNSFW(ctx context.Context, msg *Message, args []string) error {
	if len(args) == 0 {
		return errNSFWUsage
	}

	var allow bool
	switch strings.ToLower(args[0]) {
	case "on", "true", "yes":
		allow = true
	case "off", "false", "no":
		allow = false
	default:
		return errNSFWUsage
	}

	out, err := b.gameService.SetNSFW(ctx, &game.SetNSFWInput{
		ChannelID:  msg.ChannelID,
		PlayerID:   msg.AuthorID,
		Allow:      allow,
		Privileged: b.isGuildOwner(msg),
	})
	if err != nil {
		return err
	}

	title := "NSFW cards are off"
	if out.Session.AllowNSFW {
		title = "NSFW cards are on"
	}
	return b.send(ctx, msg.ChannelID, &models.Payload{
		Title: title,
		Level: models.LevelInfo,
		Color: messaging.LevelColor(models.LevelInfo),
	})
}

func (b *Bot) handleHelp(ctx context.Context, msg *Message, args []string) error {
	commands := make([]messaging.Command, 0, len(b.ordered))
	for _, cmd := range b.ordered {
		commands = append(commands, messaging.Command{
			Name:        cmd.GetName(),
			Usage:       cmd.GetUsage(),
			Description: cmd.GetDescription(),
		})
	}

	out, err := b.messaging.GetHelpPayload(ctx, &messaging.GetHelpPayloadInput{
		Prefix:   b.config.Prefix,
		Commands: commands,
	})
	if err != nil {
		return err
	}
	return b.send(ctx, msg.ChannelID, out.Payload)
}
