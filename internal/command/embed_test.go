package command

import (
	"strings"
	"testing"

	"ffinfo/internal/render"
)

func TestFormatBlock_SimpleBlock(t *testing.T) {
	b := render.Block{
		Title: "PET DETAILS",
		Lines: []render.Line{
			{Label: "Pet Name", Value: "Mechanical Pup"},
			{Label: "Pet Level", Value: "5"},
		},
	}

	got := formatBlock(b)
	want := "**┌  PET DETAILS**\n" +
		"**├─ Pet Name**: Mechanical Pup\n" +
		"**└─ Pet Level**: 5"
	if got != want {
		t.Errorf("unexpected block layout:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatBlock_NestedLeaderLines(t *testing.T) {
	b := render.Block{
		Title: "GUILD INFO",
		Lines: []render.Line{
			{Label: "Guild Name", Value: "Night Raid"},
			{Label: "Leader Info", Value: ""},
			{Label: "Leader Name", Value: "Bob", Nested: true},
			{Label: "Leader UID", Value: "654321", Nested: true},
		},
	}

	got := formatBlock(b)
	lines := strings.Split(got, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), got)
	}

	if lines[1] != "**├─ Guild Name**: Night Raid" {
		t.Errorf("unexpected first line %q", lines[1])
	}
	// The bare label ends the top-level run and carries no value.
	if lines[2] != "**└─ Leader Info**:" {
		t.Errorf("unexpected leader label line %q", lines[2])
	}
	// Nested lines are indented, the last one closes the branch.
	if lines[3] != "    **├─ Leader Name**: Bob" {
		t.Errorf("unexpected nested line %q", lines[3])
	}
	if lines[4] != "    **└─ Leader UID**: 654321" {
		t.Errorf("unexpected closing nested line %q", lines[4])
	}
}

func TestBuildInfoEmbed_OneFieldPerBlock(t *testing.T) {
	resp := &render.Response{
		Blocks: []render.Block{
			{Title: "ACCOUNT BASIC INFO", Lines: []render.Line{{Label: "Name", Value: "Alice"}}},
			{Title: "PET DETAILS", Lines: []render.Line{{Label: "Pet Name", Value: "Not found"}}},
		},
	}

	embed := buildInfoEmbed(resp)
	if embed.Title != "Player Information" {
		t.Errorf("unexpected title %q", embed.Title)
	}
	if len(embed.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(embed.Fields))
	}
	if !strings.Contains(embed.Fields[0].Value, "ACCOUNT BASIC INFO") {
		t.Errorf("first field should carry the basic info block, got %q", embed.Fields[0].Value)
	}
	if !strings.HasPrefix(embed.Fields[1].Value, "**┌  PET DETAILS**") {
		t.Errorf("field should open with the block header, got %q", embed.Fields[1].Value)
	}
}
