package typography

import (
	"github.com/ether/richnote-go/lib/models/document"
)

type Margins struct {
	Left  int
	Right int
}

var indentTable = map[document.Level]Margins{
	document.LevelH1:   {Left: 0, Right: 0},
	document.LevelH2:   {Left: 10, Right: 10},
	document.LevelH3:   {Left: 20, Right: 20},
	document.LevelBody: {Left: 30, Right: 30},
}

// MarginsFor is total over the four levels; anything else maps to zero.
func MarginsFor(level document.Level) Margins {
	if m, ok := indentTable[level]; ok {
		return m
	}
	return Margins{}
}

// Rescan rederives every block's margins in a single left-to-right pass.
// A Body block indents under the nearest preceding heading: its margins are
// that heading's, not Body's nominal entry. With no heading before it a Body
// block sits at (0,0). This is an invariant-restoring pass and must run after
// every structural edit and after every load.
func Rescan(doc *document.Document) {
	lastHeading := document.Level(0)
	for _, b := range doc.Blocks {
		switch {
		case b.Level.IsHeading():
			m := MarginsFor(b.Level)
			b.LeftMargin, b.RightMargin = m.Left, m.Right
			lastHeading = b.Level
		case b.Level == document.LevelBody:
			if lastHeading.IsHeading() {
				m := MarginsFor(lastHeading)
				b.LeftMargin, b.RightMargin = m.Left, m.Right
			} else {
				b.LeftMargin, b.RightMargin = 0, 0
			}
		default:
			// Unrecognized level resets the context.
			b.LeftMargin, b.RightMargin = 0, 0
			lastHeading = 0
		}
	}
}
