package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type SetCooldownCommand struct{}

func (c *SetCooldownCommand) Name() string        { return "set-cooldown" }
func (c *SetCooldownCommand) Description() string { return "Set the /info cooldown for this server" }
func (c *SetCooldownCommand) Category() string    { return "⚙️ Maintenance" }
func (c *SetCooldownCommand) RequireAdmin() bool  { return true }

func (c *SetCooldownCommand) SlashDefinition() *discordgo.ApplicationCommand {
	minSeconds := float64(0)
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "seconds",
				Description: "Cooldown in seconds (0 clears the override)",
				Required:    true,
				MinValue:    &minSeconds,
			},
		},
	}
}

func (c *SetCooldownCommand) Run(ctx *SlashContext) error {
	s, i := ctx.Session, ctx.Event

	seconds := -1
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "seconds" {
			seconds = int(opt.IntValue())
		}
	}
	if seconds < 0 {
		return respondEphemeral(s, i, "Missing required parameters.")
	}

	ctx.Storage.SetCooldown(i.GuildID, seconds)
	if seconds == 0 {
		return respond(s, i, fmt.Sprintf("⏱️ Cooldown override cleared, using default (%d seconds)",
			ctx.Storage.GlobalSettings().DefaultCooldown))
	}
	return respond(s, i, fmt.Sprintf("⏱️ Cooldown set to %d seconds for this server", seconds))
}

func init() {
	Register(ApplyMiddlewares(&SetCooldownCommand{}, WithGuildOnly(), WithAdminOnly()))
}
