package command

import (
	"bytes"
	"context"
	"log"

	"ffinfo/internal/pipeline"

	"github.com/bwmarrin/discordgo"
)

type InfoCommand struct{}

func (c *InfoCommand) Name() string        { return "info" }
func (c *InfoCommand) Description() string { return "Displays information about a Free Fire player" }
func (c *InfoCommand) Category() string    { return "🎮 Player Intel" }
func (c *InfoCommand) RequireAdmin() bool  { return false }

func (c *InfoCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "uid",
				Description: "Player UID (numbers only, at least 6 digits)",
				Required:    true,
			},
		},
	}
}

func (c *InfoCommand) Run(ctx *SlashContext) error {
	s, i := ctx.Session, ctx.Event

	var uid string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "uid" {
			uid = opt.StringValue()
		}
	}

	// The fetches can outlast the interaction deadline, so the response is
	// deferred as soon as the invocation is admitted.
	deferred := false
	res := ctx.Pipeline.Run(context.Background(), pipeline.Request{
		GuildID:   i.GuildID,
		ChannelID: i.ChannelID,
		UserID:    i.Member.User.ID,
		UID:       uid,
		OnAdmitted: func() {
			if err := respondDeferred(s, i); err != nil {
				log.Println("[WARN] Failed to defer info response:", err)
				return
			}
			deferred = true
		},
	})

	if res.Reply != "" {
		if deferred {
			return editResponse(s, i, res.Reply)
		}
		if res.Ephemeral {
			return respondEphemeral(s, i, res.Reply)
		}
		return respond(s, i, res.Reply)
	}

	embed := buildInfoEmbed(res.Response)

	var files []*discordgo.File
	if att := res.Response.InlineAttachment(); att != nil {
		embed.Image = &discordgo.MessageEmbedImage{URL: "attachment://" + att.Name}
		files = append(files, &discordgo.File{Name: att.Name, Reader: bytes.NewReader(att.Data)})
	}

	if deferred {
		_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
			Embeds: &[]*discordgo.MessageEmbed{embed},
			Files:  files,
		})
		if err != nil {
			return err
		}
	} else {
		if err := respondEmbed(s, i, embed); err != nil {
			return err
		}
	}

	// The outfit render goes out as a separate follow-up, after the text
	// response, never instead of it.
	for _, att := range res.Response.Attachments {
		if att.Inline {
			continue
		}
		if err := followupFile(s, i, att.Name, att.Data); err != nil {
			log.Println("[WARN] Failed to send outfit follow-up:", err)
		}
	}

	return nil
}

func init() {
	Register(ApplyMiddlewares(&InfoCommand{}, WithGuildOnly()))
}
