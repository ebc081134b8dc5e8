package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

type ListChannelsCommand struct{}

func (c *ListChannelsCommand) Name() string        { return "info-channels" }
func (c *ListChannelsCommand) Description() string { return "List allowed channels" }
func (c *ListChannelsCommand) Category() string    { return "⚙️ Maintenance" }
func (c *ListChannelsCommand) RequireAdmin() bool  { return false }

func (c *ListChannelsCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *ListChannelsCommand) Run(ctx *SlashContext) error {
	s, i := ctx.Session, ctx.Event

	embed := &discordgo.MessageEmbed{
		Title: "Allowed channels for /info",
		Color: embedColor,
	}

	channels := ctx.Storage.ListInfoChannels(i.GuildID)
	if len(channels) == 0 {
		embed.Description = "All channels are allowed (no restriction configured)"
	} else {
		lines := make([]string, 0, len(channels))
		for _, id := range channels {
			lines = append(lines, "• <#"+id+">")
		}
		embed.Description = strings.Join(lines, "\n")
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Current cooldown: %d seconds", ctx.Storage.EffectiveCooldown(i.GuildID)),
		}
	}

	return respondEmbed(s, i, embed)
}

func init() {
	Register(ApplyMiddlewares(&ListChannelsCommand{}, WithGuildOnly()))
}
