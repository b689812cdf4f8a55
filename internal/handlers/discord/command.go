package discord

import (
	"context"
)

// Message is an incoming chat message
type Message struct {
	ChannelID string
	GuildID   string
	AuthorID  string
	Content   string
}

// CommandHandler defines the interface for prefix command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetAliases returns alternative names of the command
	GetAliases() []string

	// GetUsage returns the argument synopsis
	GetUsage() string

	// GetDescription returns the help text
	GetDescription() string

	// Handle processes a command with its arguments
	Handle(ctx context.Context, msg *Message, args []string) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Aliases     []string
	Usage       string
	Description string
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetAliases returns alternative names of the command
func (c *BaseCommand) GetAliases() []string {
	return c.Aliases
}

// GetUsage returns the argument synopsis
func (c *BaseCommand) GetUsage() string {
	return c.Usage
}

// GetDescription returns the help text
func (c *BaseCommand) GetDescription() string {
	return c.Description
}

// funcCommand adapts a function into a CommandHandler
type funcCommand struct {
	BaseCommand
	handle func(ctx context.Context, msg *Message, args []string) error
}

// Handle calls the wrapped function
func (c *funcCommand) Handle(ctx context.Context, msg *Message, args []string) error {
	return c.handle(ctx, msg, args)
}
