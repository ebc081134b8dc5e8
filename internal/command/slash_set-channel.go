package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type SetChannelCommand struct{}

func (c *SetChannelCommand) Name() string        { return "set-info-channel" }
func (c *SetChannelCommand) Description() string { return "Allow a channel for /info commands" }
func (c *SetChannelCommand) Category() string    { return "⚙️ Maintenance" }
func (c *SetChannelCommand) RequireAdmin() bool  { return true }

func (c *SetChannelCommand) SlashDefinition() *discordgo.ApplicationCommand {
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

func (c *SetChannelCommand) Run(ctx *SlashContext) error {
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

	if ctx.Storage.AddInfoChannel(i.GuildID, channelID) {
		return respond(s, i, fmt.Sprintf("✅ <#%s> is now allowed for `/info` commands", channelID))
	}
	return respond(s, i, fmt.Sprintf("ℹ️ <#%s> is already allowed for `/info` commands", channelID))
}

func init() {
	Register(ApplyMiddlewares(&SetChannelCommand{}, WithGuildOnly(), WithAdminOnly()))
}
