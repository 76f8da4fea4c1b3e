package document

import (
	"errors"
	"strings"
)

// Level is the block heading level. The zero value is invalid on purpose so
// that a forgotten assignment is caught by Validate instead of silently
// becoming a heading.
type Level int

const (
	LevelH1 Level = iota + 1
	LevelH2
	LevelH3
	LevelBody
)

// Rank maps H1->1 .. Body->4, the exponent input of the typography scale.
func (l Level) Rank() int {
	return int(l)
}

func (l Level) IsHeading() bool {
	return l == LevelH1 || l == LevelH2 || l == LevelH3
}

// Tag is the persisted form of a level ("1".."4"). The enum never leaves the
// process as anything else.
func (l Level) Tag() string {
	switch l {
	case LevelH1:
		return "1"
	case LevelH2:
		return "2"
	case LevelH3:
		return "3"
	default:
		return "4"
	}
}

func ParseLevel(tag string) (Level, error) {
	switch tag {
	case "1":
		return LevelH1, nil
	case "2":
		return LevelH2, nil
	case "3":
		return LevelH3, nil
	case "4":
		return LevelBody, nil
	}
	return LevelBody, errors.New("unknown level tag: " + tag)
}

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) Tag() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

func ParseAlignment(tag string) (Alignment, error) {
	switch tag {
	case "", "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, errors.New("unknown alignment tag: " + tag)
}

type ListStyle int

const (
	ListBullet ListStyle = iota + 1
	ListDecimal
)

func (s ListStyle) Tag() string {
	if s == ListDecimal {
		return "decimal"
	}
	return "bullet"
}

func ParseListStyle(tag string) (ListStyle, error) {
	switch tag {
	case "bullet":
		return ListBullet, nil
	case "decimal":
		return ListDecimal, nil
	}
	return 0, errors.New("unknown list style tag: " + tag)
}

// ListMembership groups consecutive blocks into one rendered list. The two
// styles are mutually exclusive per block.
type ListMembership struct {
	Style   ListStyle `json:"style"`
	GroupID string    `json:"groupId"`
}

type Link struct {
	Href string `json:"href"`
}

// InlineAttributes is the full character-level attribute set of a run.
type InlineAttributes struct {
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Highlighted   bool
	Colored       bool
	Link          *Link
}

func (a InlineAttributes) Equal(b InlineAttributes) bool {
	if a.Bold != b.Bold || a.Italic != b.Italic || a.Underline != b.Underline ||
		a.Strikethrough != b.Strikethrough || a.Highlighted != b.Highlighted ||
		a.Colored != b.Colored {
		return false
	}
	if (a.Link == nil) != (b.Link == nil) {
		return false
	}
	if a.Link != nil && a.Link.Href != b.Link.Href {
		return false
	}
	return true
}

// Run is a maximal span of text sharing one attribute set.
type Run struct {
	Text string
	InlineAttributes
}

// Block is a paragraph-level unit. FontSize, LeftMargin and RightMargin are
// derived fields: the typography passes own them and the codec never trusts
// them from disk.
type Block struct {
	Level       Level
	Alignment   Alignment
	List        *ListMembership
	FontSize    int
	LeftMargin  int
	RightMargin int
	UserState   int
	Runs        []Run
}

func (b *Block) Text() string {
	var sb strings.Builder
	for _, r := range b.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Length is the block text length in runes.
func (b *Block) Length() int {
	n := 0
	for _, r := range b.Runs {
		n += len([]rune(r.Text))
	}
	return n
}

// Document is the ordered block sequence of one open editing session.
// Sequence order is reading order.
type Document struct {
	Blocks []*Block
}

// New returns a document with a single empty Body block, the state of a
// freshly opened editor.
func New() *Document {
	return &Document{Blocks: []*Block{{Level: LevelBody}}}
}

func (d *Document) Text() string {
	lines := make([]string, 0, len(d.Blocks))
	for _, b := range d.Blocks {
		lines = append(lines, b.Text())
	}
	return strings.Join(lines, "\n")
}

func (d *Document) Validate() error {
	for _, b := range d.Blocks {
		if b.Level < LevelH1 || b.Level > LevelBody {
			return errors.New("block has no valid level")
		}
	}
	return nil
}

// Settings are document-scoped, persisted with every save.
type Settings struct {
	ScaleBase   float64 `json:"scaleBase" validate:"gt=0"`
	ScaleRatio  float64 `json:"scaleRatio" validate:"gt=1"`
	AccentColor string  `json:"accentColor"`
}

func DefaultSettings() Settings {
	return Settings{
		ScaleBase:   14,
		ScaleRatio:  1.25,
		AccentColor: "#2e8b57",
	}
}
