// Package render turns a player record plus fetched images into an
// ordered, platform-neutral set of display blocks. Missing data renders
// as an explicit placeholder, never as an error.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"ffinfo/internal/ffapi"
)

// NotFound is the literal placeholder for every absent field.
const NotFound = "Not found"

// Line is one label/value row inside a block. Nested lines belong to a
// sub-block (the guild leader details).
type Line struct {
	Label  string
	Value  string
	Nested bool
}

type Block struct {
	Title string
	Lines []Line
}

// Attachment is a binary image to send along with the blocks. Inline
// attachments are referenced as the embedded image of the response.
type Attachment struct {
	Name   string
	Data   []byte
	Inline bool
}

type Response struct {
	Blocks      []Block
	Attachments []Attachment
}

// Build emits the blocks in fixed order. The guild block is omitted
// entirely when no clan data is present; every other block always appears
// with placeholders for whatever is missing.
func Build(uid string, rec *ffapi.PlayerRecord, cardBytes, outfitBytes []byte) *Response {
	basic := rec.BasicInfo
	captain := rec.CaptainInfo
	clan := rec.ClanInfo
	credit := rec.CreditScoreInfo
	pet := rec.PetInfo
	profile := rec.ProfileInfo
	social := rec.SocialInfo

	resp := &Response{}

	basicBlock := Block{Title: "ACCOUNT BASIC INFO"}
	if basic != nil {
		basicBlock.Lines = []Line{
			{Label: "Name", Value: str(basic.Nickname)},
			{Label: "UID", Value: uid},
			{Label: "Level", Value: levelExp(basic.Level, basic.Exp)},
			{Label: "Region", Value: str(basic.Region)},
			{Label: "Likes", Value: num(basic.Liked)},
			{Label: "Honor Score", Value: creditScore(credit)},
			{Label: "Signature", Value: signature(social)},
		}
	} else {
		basicBlock.Lines = []Line{
			{Label: "Name", Value: NotFound},
			{Label: "UID", Value: uid},
			{Label: "Level", Value: NotFound},
			{Label: "Region", Value: NotFound},
			{Label: "Likes", Value: NotFound},
			{Label: "Honor Score", Value: creditScore(credit)},
			{Label: "Signature", Value: signature(social)},
		}
	}
	resp.Blocks = append(resp.Blocks, basicBlock)

	activity := Block{Title: "ACCOUNT ACTIVITY"}
	if basic != nil {
		activity.Lines = []Line{
			{Label: "Most Recent OB", Value: str(basic.ReleaseVersion)},
			{Label: "Current BP Badges", Value: num(basic.BadgeCnt)},
			{Label: "BR Rank", Value: num(basic.RankingPoints)},
			{Label: "CS Rank", Value: num(basic.CSRankingPoints)},
			{Label: "Created At", Value: unixTime(basic.CreateAt)},
			{Label: "Last Login", Value: unixTime(basic.LastLoginAt)},
		}
	} else {
		activity.Lines = placeholderLines("Most Recent OB", "Current BP Badges", "BR Rank", "CS Rank", "Created At", "Last Login")
	}
	resp.Blocks = append(resp.Blocks, activity)

	overview := Block{Title: "ACCOUNT OVERVIEW"}
	overview.Lines = []Line{
		{Label: "Avatar ID", Value: avatarID(profile)},
		{Label: "Banner ID", Value: bannerID(basic)},
		{Label: "Pin ID", Value: pinID(captain)},
		{Label: "Equipped Skills", Value: equippedSkills(profile)},
	}
	resp.Blocks = append(resp.Blocks, overview)

	petBlock := Block{Title: "PET DETAILS"}
	if pet != nil {
		petBlock.Lines = []Line{
			{Label: "Equipped?", Value: yesNo(pet.IsSelected)},
			{Label: "Pet Name", Value: str(pet.Name)},
			{Label: "Pet Exp", Value: num(pet.Exp)},
			{Label: "Pet Level", Value: num(pet.Level)},
		}
	} else {
		petBlock.Lines = placeholderLines("Equipped?", "Pet Name", "Pet Exp", "Pet Level")
	}
	resp.Blocks = append(resp.Blocks, petBlock)

	if clan != nil {
		guild := Block{Title: "GUILD INFO"}
		guild.Lines = []Line{
			{Label: "Guild Name", Value: str(clan.ClanName)},
			{Label: "Guild ID", Value: str(clan.ClanID)},
			{Label: "Guild Level", Value: num(clan.ClanLevel)},
			{Label: "Live Members", Value: num(clan.MemberNum) + "/" + num(clan.Capacity)},
			{Label: "Leader Info", Value: ""},
		}
		if captain != nil {
			guild.Lines = append(guild.Lines,
				Line{Label: "Leader Name", Value: str(captain.Nickname), Nested: true},
				Line{Label: "Leader UID", Value: str(captain.AccountID), Nested: true},
				Line{Label: "Leader Level", Value: levelExp(captain.Level, captain.Exp), Nested: true},
				Line{Label: "Last Login", Value: unixTime(captain.LastLoginAt), Nested: true},
				Line{Label: "Title", Value: num(captain.Title), Nested: true},
				Line{Label: "BP Badges", Value: num(captain.BadgeCnt), Nested: true},
				Line{Label: "BR Rank", Value: num(captain.RankingPoints), Nested: true},
				Line{Label: "CS Rank", Value: num(captain.CSRankingPoints), Nested: true},
			)
		}
		resp.Blocks = append(resp.Blocks, guild)
	}

	if len(cardBytes) > 0 {
		resp.Attachments = append(resp.Attachments, Attachment{
			Name:   fmt.Sprintf("profile_card_%s.png", shortID()),
			Data:   cardBytes,
			Inline: true,
		})
	}
	if len(outfitBytes) > 0 {
		resp.Attachments = append(resp.Attachments, Attachment{
			Name: fmt.Sprintf("outfit_%s.png", shortID()),
			Data: outfitBytes,
		})
	}

	return resp
}

// InlineAttachment returns the attachment referenced as the embedded image,
// or nil when there is none.
func (r *Response) InlineAttachment() *Attachment {
	for i := range r.Attachments {
		if r.Attachments[i].Inline {
			return &r.Attachments[i]
		}
	}
	return nil
}

func placeholderLines(labels ...string) []Line {
	lines := make([]Line, 0, len(labels))
	for _, l := range labels {
		lines = append(lines, Line{Label: l, Value: NotFound})
	}
	return lines
}

func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func str(p *string) string {
	if p == nil || *p == "" {
		return NotFound
	}
	return *p
}

func num[T int | int64](p *T) string {
	if p == nil {
		return NotFound
	}
	return fmt.Sprintf("%d", *p)
}

func yesNo(p *bool) string {
	switch {
	case p == nil:
		return NotFound
	case *p:
		return "Yes"
	default:
		return "No"
	}
}

func levelExp(level *int, exp *int64) string {
	if level == nil {
		return NotFound
	}
	return fmt.Sprintf("%d (Exp: %s)", *level, num(exp))
}

// unixTime converts integer epoch seconds to a YYYY-MM-DD HH:MM:SS string
// in UTC, or the placeholder when absent.
func unixTime(p *int64) string {
	if p == nil {
		return NotFound
	}
	return time.Unix(*p, 0).UTC().Format("2006-01-02 15:04:05")
}

func creditScore(c *ffapi.CreditScoreInfo) string {
	if c == nil {
		return NotFound
	}
	return num(c.CreditScore)
}

func signature(s *ffapi.SocialInfo) string {
	if s == nil {
		return NotFound
	}
	return str(s.Signature)
}

func avatarID(p *ffapi.ProfileInfo) string {
	if p == nil {
		return NotFound
	}
	return num(p.AvatarID)
}

func bannerID(b *ffapi.BasicInfo) string {
	if b == nil {
		return NotFound
	}
	return num(b.BannerID)
}

func pinID(c *ffapi.CaptainInfo) string {
	if c == nil {
		return NotFound
	}
	return num(c.PinID)
}

func equippedSkills(p *ffapi.ProfileInfo) string {
	if p == nil || len(p.EquippedSkills) == 0 {
		return NotFound
	}
	parts := make([]string, len(p.EquippedSkills))
	for i, id := range p.EquippedSkills {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ", ")
}
