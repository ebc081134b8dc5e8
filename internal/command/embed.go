package command

import (
	"strings"
	"time"

	"ffinfo/internal/render"

	"github.com/bwmarrin/discordgo"
)

// buildInfoEmbed turns the rendered blocks into one embed, each block as a
// field drawn with box glyphs the way the player cards are traditionally
// formatted.
func buildInfoEmbed(resp *render.Response) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:     "Player Information",
		Color:     embedColor,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	for _, block := range resp.Blocks {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "\u200b",
			Value: formatBlock(block),
		})
	}
	return embed
}

func formatBlock(b render.Block) string {
	lastTop := -1
	lastNested := -1
	for idx, line := range b.Lines {
		if line.Nested {
			lastNested = idx
		} else {
			lastTop = idx
		}
	}

	var sb strings.Builder
	sb.WriteString("**┌  " + b.Title + "**")
	for idx, line := range b.Lines {
		glyph := "├─"
		if line.Nested {
			if idx == lastNested {
				glyph = "└─"
			}
			sb.WriteString("\n    **" + glyph + " " + line.Label + "**")
		} else {
			if idx == lastTop {
				glyph = "└─"
			}
			sb.WriteString("\n**" + glyph + " " + line.Label + "**")
		}
		if line.Value != "" {
			sb.WriteString(": " + line.Value)
		} else {
			sb.WriteString(":")
		}
	}
	return sb.String()
}
