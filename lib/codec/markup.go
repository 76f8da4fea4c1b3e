package codec

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ether/richnote-go/lib/models/document"
)

// The markup vocabulary is a closed set. Inline wrappers always nest in this
// order so that the writer is deterministic and the parser never needs a
// stack deeper than the attribute count:
//
//	<p align=".." list=".." group=".."> <b><i><u><s><mark><c><a href=".."> text
//
// Block level is deliberately absent from the markup; the JSON header owns it.
const (
	tagBlock         = "p"
	tagBold          = "b"
	tagItalic        = "i"
	tagUnderline     = "u"
	tagStrikethrough = "s"
	tagHighlight     = "mark"
	tagColored       = "c"
	tagAnchor        = "a"
)

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
var textUnescaper = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&quot;", "\"", "&amp;", "&")
var attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\"", "&quot;")

var attrRegex = regexp.MustCompile(`([a-z]+)="([^"]*)"`)

// ParsedBlock pairs a decoded block with the rune offset of its opening '<'
// in the body, the join key for the header's blockStates.
type ParsedBlock struct {
	Pos   int
	Block *document.Block
}

// EncodeMarkup serializes the block/run tree losslessly. The returned
// positions hold each block's start offset in runes, in block order.
func EncodeMarkup(doc *document.Document) (string, []int) {
	var sb strings.Builder
	pos := 0
	write := func(s string) {
		sb.WriteString(s)
		pos += utf8.RuneCountInString(s)
	}

	positions := make([]int, 0, len(doc.Blocks))
	for _, b := range doc.Blocks {
		positions = append(positions, pos)
		write(openBlockTag(b))
		for _, r := range b.Runs {
			open, closing := inlineTags(r.InlineAttributes)
			write(open)
			write(textEscaper.Replace(r.Text))
			write(closing)
		}
		write("</" + tagBlock + ">\n")
	}
	return sb.String(), positions
}

func openBlockTag(b *document.Block) string {
	var sb strings.Builder
	sb.WriteString("<" + tagBlock)
	if b.Alignment != document.AlignLeft {
		sb.WriteString(` align="` + b.Alignment.Tag() + `"`)
	}
	if b.List != nil {
		sb.WriteString(` list="` + b.List.Style.Tag() + `"`)
		sb.WriteString(` group="` + attrEscaper.Replace(b.List.GroupID) + `"`)
	}
	sb.WriteString(">")
	return sb.String()
}

func inlineTags(a document.InlineAttributes) (open string, closing string) {
	type wrapper struct {
		on  bool
		tag string
	}
	wrappers := []wrapper{
		{a.Bold, "<" + tagBold + ">"},
		{a.Italic, "<" + tagItalic + ">"},
		{a.Underline, "<" + tagUnderline + ">"},
		{a.Strikethrough, "<" + tagStrikethrough + ">"},
		{a.Highlighted, "<" + tagHighlight + ">"},
		{a.Colored, "<" + tagColored + ">"},
	}
	closers := []string{
		"</" + tagBold + ">", "</" + tagItalic + ">", "</" + tagUnderline + ">",
		"</" + tagStrikethrough + ">", "</" + tagHighlight + ">", "</" + tagColored + ">",
	}

	var openSb, closeSb strings.Builder
	closeStack := make([]string, 0, len(wrappers)+1)
	for i, w := range wrappers {
		if w.on {
			openSb.WriteString(w.tag)
			closeStack = append(closeStack, closers[i])
		}
	}
	if a.Link != nil {
		openSb.WriteString(`<` + tagAnchor + ` href="` + attrEscaper.Replace(a.Link.Href) + `">`)
		closeStack = append(closeStack, "</"+tagAnchor+">")
	}
	for i := len(closeStack) - 1; i >= 0; i-- {
		closeSb.WriteString(closeStack[i])
	}
	return openSb.String(), closeSb.String()
}

type markupScanner struct {
	runes []rune
	idx   int
}

func newMarkupScanner(body string) *markupScanner {
	return &markupScanner{runes: []rune(body)}
}

func (s *markupScanner) done() bool {
	return s.idx >= len(s.runes)
}

func (s *markupScanner) peek() rune {
	return s.runes[s.idx]
}

func (s *markupScanner) next() rune {
	r := s.runes[s.idx]
	s.idx++
	return r
}

// takeTag consumes from the current '<' through the matching '>' and returns
// the tag content without the angle brackets, e.g. `p align="center"` or `/b`.
func (s *markupScanner) takeTag() string {
	s.next() // '<'
	start := s.idx
	for !s.done() && s.peek() != '>' {
		s.next()
	}
	content := string(s.runes[start:s.idx])
	if !s.done() {
		s.next() // '>'
	}
	return content
}

func tagName(content string) string {
	content = strings.TrimPrefix(content, "/")
	if i := strings.IndexByte(content, ' '); i >= 0 {
		return content[:i]
	}
	return content
}

func tagAttrs(content string) map[string]string {
	attrs := make(map[string]string)
	for _, m := range attrRegex.FindAllStringSubmatch(content, -1) {
		attrs[m[1]] = textUnescaper.Replace(m[2])
	}
	return attrs
}

// ParseMarkup reconstructs blocks and runs from a markup body. Content
// outside <p> elements is dropped, which is what makes the headerless
// recovery path work: junk before the first block never becomes text. When
// the body holds no block element at all, the whole text is one Body block.
func ParseMarkup(body string) []ParsedBlock {
	s := newMarkupScanner(body)
	parsed := make([]ParsedBlock, 0)

	for !s.done() {
		if s.peek() != '<' {
			s.next()
			continue
		}
		tagStart := s.idx
		content := s.takeTag()
		if tagName(content) != tagBlock || strings.HasPrefix(content, "/") {
			continue
		}
		block := blockFromTag(tagAttrs(content))
		block.Runs = parseRuns(s)
		parsed = append(parsed, ParsedBlock{Pos: tagStart, Block: block})
	}

	if len(parsed) == 0 && strings.TrimSpace(body) != "" {
		block := &document.Block{
			Level: document.LevelBody,
			Runs:  []document.Run{{Text: textUnescaper.Replace(strings.TrimSpace(body))}},
		}
		parsed = append(parsed, ParsedBlock{Pos: 0, Block: block})
	}
	return parsed
}

func blockFromTag(attrs map[string]string) *document.Block {
	block := &document.Block{Level: document.LevelBody}
	if align, err := document.ParseAlignment(attrs["align"]); err == nil {
		block.Alignment = align
	}
	if style, err := document.ParseListStyle(attrs["list"]); err == nil {
		block.List = &document.ListMembership{Style: style, GroupID: attrs["group"]}
	}
	return block
}

// parseRuns consumes inline content until the closing block tag, splitting
// runs wherever the attribute set changes.
func parseRuns(s *markupScanner) []document.Run {
	var attrs document.InlineAttributes
	var text strings.Builder
	runs := make([]document.Run, 0)

	flush := func() {
		if text.Len() == 0 {
			return
		}
		runs = append(runs, document.Run{Text: textUnescaper.Replace(text.String()), InlineAttributes: attrs})
		text.Reset()
	}

	for !s.done() {
		if s.peek() != '<' {
			text.WriteRune(s.next())
			continue
		}
		content := s.takeTag()
		closing := strings.HasPrefix(content, "/")
		name := tagName(content)
		if name == tagBlock {
			break
		}

		flush()
		on := !closing
		switch name {
		case tagBold:
			attrs.Bold = on
		case tagItalic:
			attrs.Italic = on
		case tagUnderline:
			attrs.Underline = on
		case tagStrikethrough:
			attrs.Strikethrough = on
		case tagHighlight:
			attrs.Highlighted = on
		case tagColored:
			attrs.Colored = on
		case tagAnchor:
			if on {
				attrs.Link = &document.Link{Href: tagAttrs(content)["href"]}
			} else {
				attrs.Link = nil
			}
		}
		if attrs.Link != nil {
			// Copy so later toggles never mutate an emitted run's link.
			link := *attrs.Link
			attrs.Link = &link
		}
	}
	flush()
	return runs
}
