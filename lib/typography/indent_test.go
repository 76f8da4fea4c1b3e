package typography

import (
	"testing"

	"github.com/ether/richnote-go/lib/models/document"
)

func blocksWithLevels(levels ...document.Level) *document.Document {
	doc := &document.Document{}
	for _, l := range levels {
		doc.Blocks = append(doc.Blocks, &document.Block{Level: l})
	}
	return doc
}

func TestMarginsForIsTotal(t *testing.T) {
	testCases := []struct {
		level document.Level
		want  Margins
	}{
		{document.LevelH1, Margins{0, 0}},
		{document.LevelH2, Margins{10, 10}},
		{document.LevelH3, Margins{20, 20}},
		{document.LevelBody, Margins{30, 30}},
		{document.Level(0), Margins{0, 0}},
		{document.Level(99), Margins{0, 0}},
	}

	for _, tc := range testCases {
		if got := MarginsFor(tc.level); got != tc.want {
			t.Errorf("MarginsFor(%v) = %v; want %v", tc.level, got, tc.want)
		}
	}
}

func TestRescanBodyFollowsNearestHeading(t *testing.T) {
	doc := blocksWithLevels(
		document.LevelH1,
		document.LevelBody,
		document.LevelBody,
		document.LevelH2,
		document.LevelBody,
	)

	Rescan(doc)

	wantLeft := []int{0, 0, 0, 10, 10}
	for i, b := range doc.Blocks {
		if b.LeftMargin != wantLeft[i] || b.RightMargin != wantLeft[i] {
			t.Errorf("block %d: got margins (%d,%d), want (%d,%d)",
				i, b.LeftMargin, b.RightMargin, wantLeft[i], wantLeft[i])
		}
	}
}

func TestRescanBodyWithoutHeadingIsFlush(t *testing.T) {
	doc := blocksWithLevels(document.LevelBody, document.LevelBody, document.LevelH3, document.LevelBody)

	Rescan(doc)

	if doc.Blocks[0].LeftMargin != 0 || doc.Blocks[1].LeftMargin != 0 {
		t.Errorf("leading body blocks should be flush, got %d and %d",
			doc.Blocks[0].LeftMargin, doc.Blocks[1].LeftMargin)
	}
	if doc.Blocks[3].LeftMargin != 20 {
		t.Errorf("body after h3 should take h3 indent, got %d", doc.Blocks[3].LeftMargin)
	}
}

func TestRescanUnknownLevelResetsContext(t *testing.T) {
	doc := blocksWithLevels(document.LevelH2, document.Level(42), document.LevelBody)

	Rescan(doc)

	if doc.Blocks[2].LeftMargin != 0 {
		t.Errorf("body after unknown level should be flush, got %d", doc.Blocks[2].LeftMargin)
	}
}

func TestRescanRunsAfterStructuralEdit(t *testing.T) {
	doc := blocksWithLevels(document.LevelH1, document.LevelBody)
	Rescan(doc)

	// Promote the trailing block and rescan; its margins must follow.
	doc.Blocks[1].Level = document.LevelH3
	Rescan(doc)

	if doc.Blocks[1].LeftMargin != 20 {
		t.Errorf("promoted block should carry its own indent, got %d", doc.Blocks[1].LeftMargin)
	}
}
