package command

import (
	"ffinfo/internal/pipeline"
	"ffinfo/internal/storage"

	"github.com/bwmarrin/discordgo"
)

type Command interface {
	Name() string
	Description() string
	Category() string
	RequireAdmin() bool
	SlashDefinition() *discordgo.ApplicationCommand
	Run(ctx *SlashContext) error
}

// SlashContext is what the runtime hands a command when executing.
type SlashContext struct {
	Session  *discordgo.Session
	Event    *discordgo.InteractionCreate
	Storage  *storage.Storage
	Pipeline *pipeline.Pipeline
}
