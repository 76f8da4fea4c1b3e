package document

import (
	"unicode/utf8"

	"github.com/ether/richnote-go/lib/models/document"
	"github.com/ether/richnote-go/lib/typography"
	"github.com/google/uuid"
)

// Position addresses a rune offset inside a block.
type Position struct {
	Block  int `json:"block"`
	Offset int `json:"offset"`
}

func (p Position) before(q Position) bool {
	if p.Block != q.Block {
		return p.Block < q.Block
	}
	return p.Offset < q.Offset
}

// Selection is a normalized range; Start == End is a caret.
type Selection struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

func (s Selection) Collapsed() bool {
	return s.Start == s.End
}

type InlineAttr int

const (
	AttrBold InlineAttr = iota
	AttrItalic
	AttrUnderline
	AttrStrikethrough
	AttrHighlight
	AttrColored
)

// FormatState is the read-back surface the UI mirrors into its buttons.
type FormatState struct {
	Bold          bool               `json:"bold"`
	Italic        bool               `json:"italic"`
	Underline     bool               `json:"underline"`
	Strikethrough bool               `json:"strikethrough"`
	Highlighted   bool               `json:"highlighted"`
	Colored       bool               `json:"colored"`
	LinkHref      string             `json:"linkHref"`
	Level         document.Level     `json:"level"`
	Alignment     document.Alignment `json:"alignment"`
	BulletList    bool               `json:"bulletList"`
	DecimalList   bool               `json:"decimalList"`
	FontSize      int                `json:"fontSize"`
}

// Model owns one in-memory document exclusively. It is single-threaded by
// contract: every operation runs to completion, including the typography
// passes it triggers, before the next command is accepted.
type Model struct {
	doc      *document.Document
	settings document.Settings
	sel      Selection
	pending  document.InlineAttributes
	link     linkMachine
	onChange func()
}

func NewModel(settings document.Settings) *Model {
	return NewModelFromDocument(document.New(), settings)
}

func NewModelFromDocument(doc *document.Document, settings document.Settings) *Model {
	m := &Model{doc: doc, settings: settings}
	typography.Rescale(m.doc, m.settings)
	typography.Rescan(m.doc)
	return m
}

// SetOnChange registers the content-mutation callback; the manager wires it
// to the documentChanged hook that schedules a save.
func (m *Model) SetOnChange(fn func()) {
	m.onChange = fn
}

func (m *Model) Document() *document.Document {
	return m.doc
}

func (m *Model) Settings() document.Settings {
	return m.settings
}

func (m *Model) Selection() Selection {
	return m.sel
}

func (m *Model) changed() {
	if m.onChange != nil {
		m.onChange()
	}
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// SetSelection clamps and normalizes, refreshes the pending attribute set
// from the caret context and lets the link machine react (a range without an
// anchor collapses the displayed URL).
func (m *Model) SetSelection(sel Selection) {
	if sel.End.before(sel.Start) {
		sel.Start, sel.End = sel.End, sel.Start
	}
	sel.Start = m.clamp(sel.Start)
	sel.End = m.clamp(sel.End)
	m.sel = sel
	m.pending = m.attrsAtSelection()
	m.link.selectionChanged(m)
}

func (m *Model) clamp(p Position) Position {
	if p.Block < 0 {
		p.Block = 0
	}
	if p.Block >= len(m.doc.Blocks) {
		p.Block = len(m.doc.Blocks) - 1
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	if l := m.doc.Blocks[p.Block].Length(); p.Offset > l {
		p.Offset = l
	}
	return p
}

// attrsAtSelection mirrors the source widget's caret format: the attributes
// of the first selected character, or of the character left of the caret.
func (m *Model) attrsAtSelection() document.InlineAttributes {
	b := m.doc.Blocks[m.sel.Start.Block]
	if len(b.Runs) == 0 {
		return document.InlineAttributes{}
	}

	offset := m.sel.Start.Offset
	if m.sel.Collapsed() && offset > 0 {
		offset--
	}
	pos := 0
	for _, r := range b.Runs {
		l := runeLen(r.Text)
		if offset < pos+l {
			return r.InlineAttributes
		}
		pos += l
	}
	return b.Runs[len(b.Runs)-1].InlineAttributes
}

// FormatState reads the style at the selection. It always reflects a fully
// applied operation; intermediate states are never observable.
func (m *Model) FormatState() FormatState {
	attrs := m.pending
	if !m.sel.Collapsed() {
		attrs = m.attrsAtSelection()
	}
	b := m.doc.Blocks[m.sel.Start.Block]

	state := FormatState{
		Bold:          attrs.Bold,
		Italic:        attrs.Italic,
		Underline:     attrs.Underline,
		Strikethrough: attrs.Strikethrough,
		Highlighted:   attrs.Highlighted,
		Colored:       attrs.Colored,
		Level:         b.Level,
		Alignment:     b.Alignment,
		FontSize:      b.FontSize,
	}
	if attrs.Link != nil {
		state.LinkHref = attrs.Link.Href
	}
	if b.List != nil {
		state.BulletList = b.List.Style == document.ListBullet
		state.DecimalList = b.List.Style == document.ListDecimal
	}
	return state
}

// ToggleInline sets one boolean attribute over the selection, or over the
// pending set used by subsequently typed text when the selection is a caret.
func (m *Model) ToggleInline(attr InlineAttr, on bool) {
	m.applyInline(func(a *document.InlineAttributes) {
		switch attr {
		case AttrBold:
			a.Bold = on
		case AttrItalic:
			a.Italic = on
		case AttrUnderline:
			a.Underline = on
		case AttrStrikethrough:
			a.Strikethrough = on
		case AttrHighlight:
			a.Highlighted = on
		case AttrColored:
			a.Colored = on
		}
	})
}

// applyInline runs the mutation over every run in range. Collapsed
// selections mutate the pending set only and do not count as a content
// change.
func (m *Model) applyInline(set func(a *document.InlineAttributes)) {
	if m.sel.Collapsed() {
		set(&m.pending)
		return
	}

	for bi := m.sel.Start.Block; bi <= m.sel.End.Block; bi++ {
		b := m.doc.Blocks[bi]
		from, to := 0, b.Length()
		if bi == m.sel.Start.Block {
			from = m.sel.Start.Offset
		}
		if bi == m.sel.End.Block {
			to = m.sel.End.Offset
		}
		if from >= to {
			continue
		}
		applyToBlockRange(b, from, to, set)
	}
	m.pending = m.attrsAtSelection()
	m.changed()
}

func applyToBlockRange(b *document.Block, from int, to int, set func(a *document.InlineAttributes)) {
	splitRunAt(b, from)
	splitRunAt(b, to)

	pos := 0
	for i := range b.Runs {
		l := runeLen(b.Runs[i].Text)
		if pos >= from && pos+l <= to {
			// Detach the link value before mutating so runs never alias.
			if b.Runs[i].Link != nil {
				link := *b.Runs[i].Link
				b.Runs[i].Link = &link
			}
			set(&b.Runs[i].InlineAttributes)
		}
		pos += l
	}
	mergeRuns(b)
}

// splitRunAt guarantees a run boundary at the given offset.
func splitRunAt(b *document.Block, offset int) {
	pos := 0
	for i := range b.Runs {
		l := runeLen(b.Runs[i].Text)
		if offset == pos || offset == pos+l {
			if offset == pos {
				return
			}
			pos += l
			continue
		}
		if offset < pos+l {
			local := offset - pos
			runes := []rune(b.Runs[i].Text)
			left := document.CloneRun(b.Runs[i])
			right := document.CloneRun(b.Runs[i])
			left.Text = string(runes[:local])
			right.Text = string(runes[local:])
			b.Runs = append(b.Runs[:i], append([]document.Run{left, right}, b.Runs[i+1:]...)...)
			return
		}
		pos += l
	}
}

// mergeRuns drops empty runs and joins neighbours with equal attribute sets.
// Toggling is required to leave every character in range with the new value;
// merging afterwards keeps runs maximal.
func mergeRuns(b *document.Block) {
	merged := make([]document.Run, 0, len(b.Runs))
	for _, r := range b.Runs {
		if r.Text == "" {
			continue
		}
		if n := len(merged); n > 0 && merged[n-1].InlineAttributes.Equal(r.InlineAttributes) {
			merged[n-1].Text += r.Text
			continue
		}
		merged = append(merged, r)
	}
	b.Runs = merged
}

// SetBlockLevel sets the level on every whole block the selection touches,
// rederives the block font size and the document margins before returning.
func (m *Model) SetBlockLevel(level document.Level) {
	for bi := m.sel.Start.Block; bi <= m.sel.End.Block; bi++ {
		b := m.doc.Blocks[bi]
		b.Level = level
		b.FontSize = typography.SizeFor(level, m.settings.ScaleBase, m.settings.ScaleRatio)
	}
	typography.Rescan(m.doc)
	m.changed()
}

func (m *Model) SetAlignment(alignment document.Alignment) {
	for bi := m.sel.Start.Block; bi <= m.sel.End.Block; bi++ {
		m.doc.Blocks[bi].Alignment = alignment
	}
	m.changed()
}

// ToggleList groups the touched blocks into a fresh list group when turning
// on (replacing any group of the other style), and clears membership when
// turning off.
func (m *Model) ToggleList(style document.ListStyle, on bool) {
	if on {
		group := uuid.NewString()
		for bi := m.sel.Start.Block; bi <= m.sel.End.Block; bi++ {
			m.doc.Blocks[bi].List = &document.ListMembership{Style: style, GroupID: group}
		}
	} else {
		for bi := m.sel.Start.Block; bi <= m.sel.End.Block; bi++ {
			m.doc.Blocks[bi].List = nil
		}
	}
	m.changed()
}

// InsertText types at the caret with the pending attribute set, replacing
// the selection first when one exists.
func (m *Model) InsertText(text string) {
	if text == "" {
		return
	}
	if !m.sel.Collapsed() {
		m.deleteSelection()
	}
	pos := m.sel.Start
	b := m.doc.Blocks[pos.Block]

	splitRunAt(b, pos.Offset)
	run := document.Run{Text: text, InlineAttributes: m.pending}
	if run.Link != nil {
		link := *run.Link
		run.Link = &link
	}
	insertRunAt(b, pos.Offset, run)
	mergeRuns(b)

	caret := Position{Block: pos.Block, Offset: pos.Offset + runeLen(text)}
	m.sel = Selection{Start: caret, End: caret}
	m.changed()
}

func insertRunAt(b *document.Block, offset int, run document.Run) {
	pos := 0
	for i := range b.Runs {
		if pos == offset {
			b.Runs = append(b.Runs[:i], append([]document.Run{run}, b.Runs[i:]...)...)
			return
		}
		pos += runeLen(b.Runs[i].Text)
	}
	b.Runs = append(b.Runs, run)
}

// DeleteSelection removes the selected range; a caret selection is a no-op.
func (m *Model) DeleteSelection() {
	if m.sel.Collapsed() {
		return
	}
	m.deleteSelection()
	m.changed()
}

func (m *Model) deleteSelection() {
	start, end := m.sel.Start, m.sel.End
	if start.Block == end.Block {
		b := m.doc.Blocks[start.Block]
		splitRunAt(b, start.Offset)
		splitRunAt(b, end.Offset)
		b.Runs = cutRuns(b, start.Offset, end.Offset)
		mergeRuns(b)
	} else {
		first := m.doc.Blocks[start.Block]
		last := m.doc.Blocks[end.Block]
		splitRunAt(first, start.Offset)
		splitRunAt(last, end.Offset)
		first.Runs = cutRuns(first, start.Offset, first.Length())
		last.Runs = cutRuns(last, 0, end.Offset)
		first.Runs = append(first.Runs, last.Runs...)
		mergeRuns(first)
		m.doc.Blocks = append(m.doc.Blocks[:start.Block+1], m.doc.Blocks[end.Block+1:]...)
		typography.Rescan(m.doc)
	}
	m.sel = Selection{Start: start, End: start}
}

func cutRuns(b *document.Block, from int, to int) []document.Run {
	kept := make([]document.Run, 0, len(b.Runs))
	pos := 0
	for _, r := range b.Runs {
		l := runeLen(r.Text)
		if !(pos >= from && pos+l <= to) {
			kept = append(kept, r)
		}
		pos += l
	}
	return kept
}

// InsertParagraphBreak splits the caret block. The new block keeps the
// alignment and list membership but never the heading level: a line after a
// heading always falls back to Body at the Body scale.
func (m *Model) InsertParagraphBreak() {
	if !m.sel.Collapsed() {
		m.deleteSelection()
	}
	pos := m.sel.Start
	b := m.doc.Blocks[pos.Block]

	splitRunAt(b, pos.Offset)
	left := make([]document.Run, 0)
	right := make([]document.Run, 0)
	runPos := 0
	for _, r := range b.Runs {
		if runPos < pos.Offset {
			left = append(left, r)
		} else {
			right = append(right, r)
		}
		runPos += runeLen(r.Text)
	}
	b.Runs = left

	newBlock := &document.Block{
		Level:     document.LevelBody,
		Alignment: b.Alignment,
		Runs:      right,
	}
	if b.List != nil {
		list := *b.List
		newBlock.List = &list
	}
	newBlock.FontSize = typography.SizeFor(document.LevelBody, m.settings.ScaleBase, m.settings.ScaleRatio)

	insertAt := pos.Block + 1
	m.doc.Blocks = append(m.doc.Blocks[:insertAt],
		append([]*document.Block{newBlock}, m.doc.Blocks[insertAt:]...)...)
	typography.Rescan(m.doc)

	caret := Position{Block: insertAt, Offset: 0}
	m.sel = Selection{Start: caret, End: caret}
	m.changed()
}

// ApplySettings replaces the document-scoped settings and rescales every
// block, not only the ones at the selection.
func (m *Model) ApplySettings(settings document.Settings) {
	m.settings = settings
	typography.Rescale(m.doc, m.settings)
	typography.Rescan(m.doc)
	m.changed()
}
