package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type RemoveChannelCommand struct{}

func (c *RemoveChannelCommand) Name() string        { return "remove-info-channel" }
func (c *RemoveChannelCommand) Description() string { return "Remove a channel from /info commands" }
func (c *RemoveChannelCommand) Category() string    { return "⚙️ Maintenance" }
func (c *RemoveChannelCommand) RequireAdmin() bool  { return true }

func (c *RemoveChannelCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionChannel,
				Name:        "channel",
				Description: "Pick a channel from this server",
				Required:    true,
			},
		},
	}
}

func (c *RemoveChannelCommand) Run(ctx *SlashContext) error {
	s, i := ctx.Session, ctx.Event

	var channelID string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "channel" {
			channelID = opt.ChannelValue(s).ID
		}
	}
	if channelID == "" {
		return respondEphemeral(s, i, "Missing required parameters.")
	}

	if !ctx.Storage.HasGuildConfig(i.GuildID) {
		return respond(s, i, "ℹ️ This server has no saved configuration")
	}
	if ctx.Storage.RemoveInfoChannel(i.GuildID, channelID) {
		return respond(s, i, fmt.Sprintf("✅ <#%s> has been removed from allowed channels", channelID))
	}
	return respond(s, i, fmt.Sprintf("❌ <#%s> is not in the list of allowed channels", channelID))
}

func init() {
	Register(ApplyMiddlewares(&RemoveChannelCommand{}, WithGuildOnly(), WithAdminOnly()))
}
