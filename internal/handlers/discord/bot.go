package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/sipdeck/internal/models"
	"github.com/KirkDiggler/sipdeck/internal/services/game"
	"github.com/KirkDiggler/sipdeck/internal/services/messaging"
	"github.com/KirkDiggler/sipdeck/internal/transport"
)

// DefaultPrefix starts every command
const DefaultPrefix = "p."

var _ transport.Transport = (*Transport)(nil)

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	api         API
	commands    map[string]CommandHandler
	ordered     []CommandHandler
	gameService game.Service
	messaging   messaging.Service
	transport   transport.Transport
	config      *Config
	logger      *zap.Logger
	removeHook  func()
}

// Config holds the configuration for the bot
type Config struct {
	// Discord session, opened by Start
	Session *discordgo.Session

	// API defaults to Session
	API API

	// Prefix starts every command
	Prefix string

	// SendInputErrors reports rejected answers back to the channel
	SendInputErrors bool

	// Services
	GameService game.Service
	Messaging   messaging.Service
	Transport   transport.Transport

	Logger *zap.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}
	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}
	if cfg.Transport == nil {
		return nil, errors.New("transport cannot be nil")
	}

	api := cfg.API
	if api == nil {
		if cfg.Session == nil {
			return nil, errors.New("session or API is required")
		}
		api = cfg.Session
	}
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bot := &Bot{
		session:     cfg.Session,
		api:         api,
		commands:    make(map[string]CommandHandler),
		gameService: cfg.GameService,
		messaging:   cfg.Messaging,
		transport:   cfg.Transport,
		config:      cfg,
		logger:      logger.Named("discord"),
	}
	bot.registerCommands()

	return bot, nil
}

// Start opens the gateway connection and listens for messages
func (b *Bot) Start() error {
	if b.session == nil {
		return errors.New("bot has no session")
	}

	b.session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent
	b.removeHook = b.session.AddHandler(b.onMessageCreate)

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	b.logger.Info("bot is running", zap.String("prefix", b.config.Prefix))
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	if b.removeHook != nil {
		b.removeHook()
	}
	if b.session == nil {
		return nil
	}
	return b.session.Close()
}

// RegisterCommand adds a command under its name and aliases
func (b *Bot) RegisterCommand(cmd CommandHandler) {
	b.commands[strings.ToLower(cmd.GetName())] = cmd
	for _, alias := range cmd.GetAliases() {
		b.commands[strings.ToLower(alias)] = cmd
	}
	b.ordered = append(b.ordered, cmd)
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Message == nil || m.Author == nil || m.Author.Bot {
		return
	}

	msg := &Message{
		ChannelID: m.ChannelID,
		GuildID:   m.GuildID,
		AuthorID:  m.Author.ID,
		Content:   m.Content,
	}
	if err := b.HandleMessage(context.Background(), msg); err != nil {
		b.logger.Error("failed to handle message",
			zap.String("channel_id", msg.ChannelID),
			zap.String("author_id", msg.AuthorID),
			zap.Error(err))
	}
}

// HandleMessage routes a message to its command, or treats it as an answer to the pending question
func (b *Bot) HandleMessage(ctx context.Context, msg *Message) error {
	content := strings.TrimSpace(msg.Content)
	if content == "" {
		return nil
	}

	prefix := b.config.Prefix
	if len(content) < len(prefix) || !strings.EqualFold(content[:len(prefix)], prefix) {
		return b.handleAnswer(ctx, msg, content)
	}

	fields := strings.Fields(content[len(prefix):])
	if len(fields) == 0 {
		return nil
	}

	cmd, ok := b.commands[strings.ToLower(fields[0])]
	if !ok {
		b.logger.Debug("unknown command", zap.String("command", fields[0]))
		return nil
	}

	if err := cmd.Handle(ctx, msg, fields[1:]); err != nil {
		return b.reportError(ctx, msg, err)
	}
	return nil
}

func (b *Bot) handleAnswer(ctx context.Context, msg *Message, content string) error {
	_, err := b.gameService.SubmitAnswer(ctx, &game.SubmitAnswerInput{
		ChannelID: msg.ChannelID,
		PlayerID:  msg.AuthorID,
		Raw:       content,
	})
	if err == nil {
		return nil
	}

	switch {
	case game.IsInputError(err):
		if b.config.SendInputErrors {
			return b.sendError(ctx, msg.ChannelID, err, models.LevelWarning)
		}
		b.logger.Debug("rejected answer", zap.String("author_id", msg.AuthorID), zap.Error(err))
		return nil
	case isChatterError(err):
		// ordinary chat in a channel without a question waiting
		return nil
	case game.IsUserError(err):
		var gameErr game.GameError
		errors.As(err, &gameErr)
		return b.sendError(ctx, msg.ChannelID, gameErr, models.LevelError)
	}
	return err
}

// isChatterError reports whether a failed answer was just a message that was never meant as one
func isChatterError(err error) bool {
	return errors.Is(err, game.ErrSessionNotFound) ||
		errors.Is(err, game.ErrNotRunning) ||
		errors.Is(err, game.ErrNotJoined) ||
		errors.Is(err, game.ErrNoCardInProgress)
}

// reportError shows user errors in the channel and hides everything else behind a generic line
func (b *Bot) reportError(ctx context.Context, msg *Message, err error) error {
	var usage usageError
	if game.IsUserError(err) || game.IsInputError(err) || errors.As(err, &usage) {
		return b.sendError(ctx, msg.ChannelID, err, models.LevelError)
	}

	b.logger.Error("command failed",
		zap.String("channel_id", msg.ChannelID),
		zap.String("content", msg.Content),
		zap.Error(err))
	return b.sendError(ctx, msg.ChannelID, errors.New("something went wrong"), models.LevelError)
}

func (b *Bot) sendError(ctx context.Context, channelID string, err error, level models.Level) error {
	out, buildErr := b.messaging.GetErrorPayload(ctx, &messaging.GetErrorPayloadInput{
		Err:   err,
		Level: level,
	})
	if buildErr != nil {
		return buildErr
	}
	return b.transport.SendPayload(ctx, channelID, out.Payload)
}

// isGuildOwner reports whether the author owns the guild the message was sent in
func (b *Bot) isGuildOwner(msg *Message) bool {
	if msg.GuildID == "" {
		return false
	}
	guild, err := b.api.Guild(msg.GuildID)
	if err != nil {
		b.logger.Warn("failed to look up guild", zap.String("guild_id", msg.GuildID), zap.Error(err))
		return false
	}
	return guild.OwnerID == msg.AuthorID
}
