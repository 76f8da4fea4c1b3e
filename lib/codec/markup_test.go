package codec

import (
	"strings"
	"testing"

	"github.com/ether/richnote-go/lib/models/document"
)

func TestEncodeMarkupFixedNestingOrder(t *testing.T) {
	doc := &document.Document{Blocks: []*document.Block{
		{Level: document.LevelBody, Runs: []document.Run{{
			Text: "x",
			InlineAttributes: document.InlineAttributes{
				Bold: true, Italic: true, Underline: true, Strikethrough: true,
				Highlighted: true, Colored: true, Link: &document.Link{Href: "https://e.co"},
			},
		}}},
	}}

	body, _ := EncodeMarkup(doc)
	want := `<p><b><i><u><s><mark><c><a href="https://e.co">x</a></c></mark></s></u></i></b></p>` + "\n"
	if body != want {
		t.Errorf("got %q, want %q", body, want)
	}
}

func TestEncodeMarkupEscapesText(t *testing.T) {
	doc := &document.Document{Blocks: []*document.Block{
		{Level: document.LevelBody, Runs: []document.Run{{Text: `a < b & "c" > d`}}},
	}}

	body, _ := EncodeMarkup(doc)
	if strings.Contains(body, "< b") || strings.Contains(body, "& ") {
		t.Errorf("markup leaks unescaped characters: %q", body)
	}

	parsed := ParseMarkup(body)
	if got := parsed[0].Block.Text(); got != `a < b & "c" > d` {
		t.Errorf("escape round trip lost text: got %q", got)
	}
}

func TestParseMarkupSplitsRunsOnAttributeChange(t *testing.T) {
	parsed := ParseMarkup("<p>plain<b>bold<i>both</i></b>tail</p>\n")

	if len(parsed) != 1 {
		t.Fatalf("got %d blocks, want 1", len(parsed))
	}
	runs := parsed[0].Block.Runs
	if len(runs) != 4 {
		t.Fatalf("got %d runs, want 4", len(runs))
	}
	if !runs[0].InlineAttributes.Equal(document.InlineAttributes{}) {
		t.Errorf("run 0 should be plain: %+v", runs[0].InlineAttributes)
	}
	if !runs[1].Bold || runs[1].Italic {
		t.Errorf("run 1 should be bold only: %+v", runs[1].InlineAttributes)
	}
	if !runs[2].Bold || !runs[2].Italic {
		t.Errorf("run 2 should be bold italic: %+v", runs[2].InlineAttributes)
	}
	if !runs[3].InlineAttributes.Equal(document.InlineAttributes{}) {
		t.Errorf("run 3 should be plain again: %+v", runs[3].InlineAttributes)
	}
}

func TestParseMarkupIgnoresUnknownTags(t *testing.T) {
	parsed := ParseMarkup("<p>hi<blink>there</blink></p>\n")

	if len(parsed) != 1 {
		t.Fatalf("got %d blocks, want 1", len(parsed))
	}
	if got := parsed[0].Block.Text(); got != "hithere" {
		t.Errorf("got %q, want %q", got, "hithere")
	}
}

func TestParseMarkupBlockAttributes(t *testing.T) {
	parsed := ParseMarkup(`<p align="right" list="decimal" group="g-1">one</p>` + "\n")

	block := parsed[0].Block
	if block.Alignment != document.AlignRight {
		t.Errorf("got alignment %v, want right", block.Alignment)
	}
	if block.List == nil || block.List.Style != document.ListDecimal || block.List.GroupID != "g-1" {
		t.Errorf("list membership not restored: %+v", block.List)
	}
}

func TestParseMarkupDropsStrayTextOutsideBlocks(t *testing.T) {
	parsed := ParseMarkup("garbage before<p>real</p>garbage after\n")

	if len(parsed) != 1 {
		t.Fatalf("got %d blocks, want 1", len(parsed))
	}
	if got := parsed[0].Block.Text(); got != "real" {
		t.Errorf("got %q, want %q", got, "real")
	}
}
