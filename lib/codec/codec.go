package codec

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ether/richnote-go/lib/models/document"
	"github.com/ether/richnote-go/lib/typography"
	"github.com/go-playground/validator/v10"
)

// Separator splits the JSON header from the markup body. JSON never contains
// the three characters unescaped, so the first occurrence is the boundary.
const Separator = ":::"

type blockState struct {
	Pos       int    `json:"pos"`
	UserState int    `json:"userState"`
	Level     string `json:"level"`
}

type header struct {
	ScaleBase   float64      `json:"scaleBase" validate:"gt=0"`
	ScaleRatio  float64      `json:"scaleRatio" validate:"gt=1"`
	AccentColor string       `json:"accentColor" validate:"omitempty,hexcolor"`
	BlockStates []blockState `json:"blockStates"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Encode serializes a document and its settings into the on-disk form:
// JSON header, separator, markup body. The header carries what the markup
// does not (settings, per-block userState and level, keyed by the block's
// start offset in the body).
func Encode(doc *document.Document, settings document.Settings) (string, error) {
	body, positions := EncodeMarkup(doc)

	h := header{
		ScaleBase:   settings.ScaleBase,
		ScaleRatio:  settings.ScaleRatio,
		AccentColor: settings.AccentColor,
		BlockStates: make([]blockState, 0, len(doc.Blocks)),
	}
	for i, b := range doc.Blocks {
		h.BlockStates = append(h.BlockStates, blockState{
			Pos:       positions[i],
			UserState: b.UserState,
			Level:     b.Level.Tag(),
		})
	}

	headerJSON, err := json.Marshal(h)
	if err != nil {
		return "", fmt.Errorf("error marshaling document header: %w", err)
	}
	return string(headerJSON) + Separator + body, nil
}

// Decode reverses Encode. It never fails: a malformed or missing header
// falls back to default settings with the entire input treated as markup
// body, and blocks without a blockStates entry default to Body level and
// zero userState. Font sizes and margins are rederived, never read.
func Decode(raw string) (*document.Document, document.Settings) {
	settings := document.DefaultSettings()
	var states []blockState
	body := raw

	if idx := strings.Index(raw, Separator); idx >= 0 {
		var h header
		if err := json.Unmarshal([]byte(raw[:idx]), &h); err == nil {
			if validate.Struct(&h) == nil {
				settings.ScaleBase = h.ScaleBase
				settings.ScaleRatio = h.ScaleRatio
				if h.AccentColor != "" {
					settings.AccentColor = h.AccentColor
				}
			}
			states = h.BlockStates
			body = raw[idx+len(Separator):]
		}
	}

	statesByPos := make(map[int]blockState, len(states))
	for _, st := range states {
		statesByPos[st.Pos] = st
	}

	doc := &document.Document{}
	for _, pb := range ParseMarkup(body) {
		block := pb.Block
		if st, ok := statesByPos[pb.Pos]; ok {
			block.UserState = st.UserState
			if level, err := document.ParseLevel(st.Level); err == nil {
				block.Level = level
			}
		}
		doc.Blocks = append(doc.Blocks, block)
	}
	if len(doc.Blocks) == 0 {
		doc = document.New()
	}

	typography.Rescale(doc, settings)
	typography.Rescan(doc)
	return doc, settings
}
