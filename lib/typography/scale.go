package typography

import (
	"math"

	"github.com/ether/richnote-go/lib/models/document"
)

// SizeFor computes the rendered font size for a heading level from the
// document's modular scale: round(base * ratio^(4-rank)). A larger ratio
// means a steeper visual hierarchy; Body always resolves to round(base).
func SizeFor(level document.Level, base float64, ratio float64) int {
	return int(math.Round(base * math.Pow(ratio, float64(4-level.Rank()))))
}

// Rescale reapplies the scale to every block. Must run after any settings
// change, not only on the edited block.
func Rescale(doc *document.Document, settings document.Settings) {
	for _, b := range doc.Blocks {
		b.FontSize = SizeFor(b.Level, settings.ScaleBase, settings.ScaleRatio)
	}
}
