package document

import (
	"testing"

	"github.com/ether/richnote-go/lib/models/document"
	"github.com/ether/richnote-go/lib/typography"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func testSettings() document.Settings {
	return document.Settings{ScaleBase: 10, ScaleRatio: 2, AccentColor: "#00ff00"}
}

func modelWithText(t *testing.T, lines ...string) *Model {
	t.Helper()
	m := NewModel(testSettings())
	for i, line := range lines {
		if i > 0 {
			m.InsertParagraphBreak()
		}
		m.InsertText(line)
	}
	return m
}

func selectRange(m *Model, startBlock, startOffset, endBlock, endOffset int) {
	m.SetSelection(Selection{
		Start: Position{Block: startBlock, Offset: startOffset},
		End:   Position{Block: endBlock, Offset: endOffset},
	})
}

func TestToggleInlineOverSelection(t *testing.T) {
	m := modelWithText(t, "hello world")
	selectRange(m, 0, 6, 0, 11)

	m.ToggleInline(AttrBold, true)

	runs := m.Document().Blocks[0].Runs
	want := []document.Run{
		{Text: "hello "},
		{Text: "world", InlineAttributes: document.InlineAttributes{Bold: true}},
	}
	if diff := cmp.Diff(want, runs, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}
}

func TestToggleInlineLeavesOutsideUntouched(t *testing.T) {
	m := modelWithText(t, "abcdef")
	selectRange(m, 0, 0, 0, 6)
	m.ToggleInline(AttrItalic, true)

	selectRange(m, 0, 2, 0, 4)
	m.ToggleInline(AttrItalic, false)

	runs := m.Document().Blocks[0].Runs
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3: %+v", len(runs), runs)
	}
	if !runs[0].Italic || runs[1].Italic || !runs[2].Italic {
		t.Errorf("italic pattern wrong: %+v", runs)
	}
	if runs[1].Text != "cd" {
		t.Errorf("middle run is %q, want %q", runs[1].Text, "cd")
	}
}

func TestToggleInlineCollapsedSetsPending(t *testing.T) {
	m := modelWithText(t, "plain")
	selectRange(m, 0, 5, 0, 5)

	m.ToggleInline(AttrBold, true)
	m.InsertText(" typed")

	runs := m.Document().Blocks[0].Runs
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2: %+v", len(runs), runs)
	}
	if runs[0].Bold {
		t.Errorf("existing text must stay plain")
	}
	if !runs[1].Bold || runs[1].Text != " typed" {
		t.Errorf("typed text should carry the pending attribute: %+v", runs[1])
	}
}

func TestSetBlockLevelResizesAndIndents(t *testing.T) {
	m := modelWithText(t, "Title", "body text")
	selectRange(m, 0, 2, 0, 3)

	m.SetBlockLevel(document.LevelH2)

	title := m.Document().Blocks[0]
	if title.Level != document.LevelH2 {
		t.Errorf("partial selection must level the whole block, got %v", title.Level)
	}
	if want := typography.SizeFor(document.LevelH2, 10, 2); title.FontSize != want {
		t.Errorf("got font size %d, want %d", title.FontSize, want)
	}

	body := m.Document().Blocks[1]
	if body.LeftMargin != 10 || body.RightMargin != 10 {
		t.Errorf("body under h2 should take h2 indent, got (%d,%d)", body.LeftMargin, body.RightMargin)
	}
}

func TestSetBlockLevelSpansWholeBlocks(t *testing.T) {
	m := modelWithText(t, "one", "two", "three")
	selectRange(m, 0, 2, 2, 1)

	m.SetBlockLevel(document.LevelH3)

	for i, b := range m.Document().Blocks {
		if b.Level != document.LevelH3 {
			t.Errorf("block %d: got level %v, want H3", i, b.Level)
		}
	}
}

func TestHeadingContinuation(t *testing.T) {
	m := modelWithText(t, "A heading")
	selectRange(m, 0, 0, 0, 9)
	m.SetBlockLevel(document.LevelH2)
	selectRange(m, 0, 9, 0, 9)

	m.InsertParagraphBreak()
	m.InsertText("continued")

	next := m.Document().Blocks[1]
	if next.Level != document.LevelBody {
		t.Errorf("a line after a heading must fall back to Body, got %v", next.Level)
	}
	if want := typography.SizeFor(document.LevelBody, 10, 2); next.FontSize != want {
		t.Errorf("got font size %d, want body size %d", next.FontSize, want)
	}
	if headingSize := typography.SizeFor(document.LevelH2, 10, 2); next.FontSize == headingSize {
		t.Errorf("new block inherited the heading size %d", headingSize)
	}
}

func TestParagraphBreakSplitsText(t *testing.T) {
	m := modelWithText(t, "splithere")
	selectRange(m, 0, 5, 0, 5)

	m.InsertParagraphBreak()

	blocks := m.Document().Blocks
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[0].Text() != "split" || blocks[1].Text() != "here" {
		t.Errorf("got %q and %q", blocks[0].Text(), blocks[1].Text())
	}
	if sel := m.Selection(); sel.Start.Block != 1 || sel.Start.Offset != 0 {
		t.Errorf("caret should sit at the new block start, got %+v", sel)
	}
}

func TestToggleListGroupsAndClears(t *testing.T) {
	m := modelWithText(t, "one", "two", "three")
	selectRange(m, 0, 0, 1, 3)

	m.ToggleList(document.ListBullet, true)

	blocks := m.Document().Blocks
	if blocks[0].List == nil || blocks[1].List == nil {
		t.Fatal("touched blocks should join the list")
	}
	if blocks[0].List.GroupID != blocks[1].List.GroupID {
		t.Errorf("touched blocks should share one group")
	}
	if blocks[2].List != nil {
		t.Errorf("untouched block joined the list")
	}

	// The other style replaces, never stacks.
	m.ToggleList(document.ListDecimal, true)
	if blocks[0].List.Style != document.ListDecimal {
		t.Errorf("decimal should replace bullet, got %v", blocks[0].List.Style)
	}

	m.ToggleList(document.ListDecimal, false)
	if blocks[0].List != nil || blocks[1].List != nil {
		t.Errorf("toggle off should clear membership")
	}
}

func TestSetAlignment(t *testing.T) {
	m := modelWithText(t, "a", "b")
	selectRange(m, 1, 0, 1, 1)

	m.SetAlignment(document.AlignCenter)

	if m.Document().Blocks[0].Alignment != document.AlignLeft {
		t.Errorf("untouched block re-aligned")
	}
	if m.Document().Blocks[1].Alignment != document.AlignCenter {
		t.Errorf("touched block not centered")
	}
}

func TestInsertTextReplacesSelection(t *testing.T) {
	m := modelWithText(t, "hello world")
	selectRange(m, 0, 6, 0, 11)

	m.InsertText("there")

	if got := m.Document().Blocks[0].Text(); got != "hello there" {
		t.Errorf("got %q, want %q", got, "hello there")
	}
}

func TestDeleteSelectionAcrossBlocks(t *testing.T) {
	m := modelWithText(t, "first line", "middle", "last line")
	selectRange(m, 0, 5, 2, 4)

	m.DeleteSelection()

	blocks := m.Document().Blocks
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if got := blocks[0].Text(); got != "first line" {
		t.Errorf("got %q, want %q", got, "first line")
	}
}

func TestApplySettingsRescalesEveryBlock(t *testing.T) {
	m := modelWithText(t, "Title", "body")
	selectRange(m, 0, 0, 0, 5)
	m.SetBlockLevel(document.LevelH1)

	m.ApplySettings(document.Settings{ScaleBase: 20, ScaleRatio: 1.5, AccentColor: "#000000"})

	if want := typography.SizeFor(document.LevelH1, 20, 1.5); m.Document().Blocks[0].FontSize != want {
		t.Errorf("h1 not rescaled: got %d, want %d", m.Document().Blocks[0].FontSize, want)
	}
	if want := typography.SizeFor(document.LevelBody, 20, 1.5); m.Document().Blocks[1].FontSize != want {
		t.Errorf("body not rescaled: got %d, want %d", m.Document().Blocks[1].FontSize, want)
	}
}

func TestFormatStateReflectsSelectionStart(t *testing.T) {
	m := modelWithText(t, "plain bold")
	selectRange(m, 0, 6, 0, 10)
	m.ToggleInline(AttrBold, true)

	selectRange(m, 0, 6, 0, 10)
	if state := m.FormatState(); !state.Bold {
		t.Errorf("selection over bold text should read bold")
	}

	selectRange(m, 0, 0, 0, 4)
	if state := m.FormatState(); state.Bold {
		t.Errorf("selection over plain text should not read bold")
	}
}

func TestOperationsNotifyChange(t *testing.T) {
	m := modelWithText(t, "text")
	changes := 0
	m.SetOnChange(func() { changes++ })

	selectRange(m, 0, 0, 0, 4)
	m.ToggleInline(AttrBold, true)
	m.SetBlockLevel(document.LevelH1)
	m.SetAlignment(document.AlignRight)

	if changes != 3 {
		t.Errorf("got %d change notifications, want 3", changes)
	}

	// A collapsed toggle only arms pending attributes; nothing changed yet.
	selectRange(m, 0, 4, 0, 4)
	m.ToggleInline(AttrItalic, true)
	if changes != 3 {
		t.Errorf("pending-only toggle should not notify, got %d", changes)
	}
}
