package document

import (
	"fmt"

	"github.com/ether/richnote-go/lib/models/document"
)

// CommandArgs is the argument envelope for Invoke. Commands read the fields
// they care about and reject what is missing.
type CommandArgs struct {
	On        *bool  `json:"on,omitempty"`
	Level     string `json:"level,omitempty"`
	Alignment string `json:"alignment,omitempty"`
	Style     string `json:"style,omitempty"`
	Text      string `json:"text,omitempty"`
	URL       string `json:"url,omitempty"`
}

// Command is one explicit, registered editor command. This replaces the
// source's reflection scan over the controller: the table is built once at
// startup and its order is the toolbar order.
type Command struct {
	ID         string
	Invoke     func(m *Model, args CommandArgs) error
	QueryState func(s FormatState) bool
}

type Registry struct {
	order []string
	byID  map[string]*Command
}

func (r *Registry) register(cmd *Command) {
	r.order = append(r.order, cmd.ID)
	r.byID[cmd.ID] = cmd
}

func (r *Registry) Get(id string) (*Command, bool) {
	cmd, ok := r.byID[id]
	return cmd, ok
}

// Commands returns the registered commands in registration order.
func (r *Registry) Commands() []*Command {
	cmds := make([]*Command, 0, len(r.order))
	for _, id := range r.order {
		cmds = append(cmds, r.byID[id])
	}
	return cmds
}

// resolveOn turns an optional On argument into the concrete toggle value,
// inverting the current state when the caller sent none (plain button press
// without a checked state).
func resolveOn(m *Model, args CommandArgs, query func(s FormatState) bool) bool {
	if args.On != nil {
		return *args.On
	}
	return !query(m.FormatState())
}

func inlineToggle(id string, attr InlineAttr, query func(s FormatState) bool) *Command {
	return &Command{
		ID: id,
		Invoke: func(m *Model, args CommandArgs) error {
			m.ToggleInline(attr, resolveOn(m, args, query))
			return nil
		},
		QueryState: query,
	}
}

func NewRegistry() *Registry {
	r := &Registry{byID: make(map[string]*Command)}

	r.register(inlineToggle("bold", AttrBold, func(s FormatState) bool { return s.Bold }))
	r.register(inlineToggle("italic", AttrItalic, func(s FormatState) bool { return s.Italic }))
	r.register(inlineToggle("underline", AttrUnderline, func(s FormatState) bool { return s.Underline }))
	r.register(inlineToggle("strikethrough", AttrStrikethrough, func(s FormatState) bool { return s.Strikethrough }))
	r.register(inlineToggle("highlight", AttrHighlight, func(s FormatState) bool { return s.Highlighted }))
	r.register(inlineToggle("color", AttrColored, func(s FormatState) bool { return s.Colored }))

	r.register(&Command{
		ID: "setLevel",
		Invoke: func(m *Model, args CommandArgs) error {
			level, err := document.ParseLevel(args.Level)
			if err != nil {
				return fmt.Errorf("setLevel: %w", err)
			}
			m.SetBlockLevel(level)
			return nil
		},
	})

	r.register(&Command{
		ID: "setAlignment",
		Invoke: func(m *Model, args CommandArgs) error {
			alignment, err := document.ParseAlignment(args.Alignment)
			if err != nil {
				return fmt.Errorf("setAlignment: %w", err)
			}
			m.SetAlignment(alignment)
			return nil
		},
	})

	r.register(&Command{
		ID: "bulletList",
		Invoke: func(m *Model, args CommandArgs) error {
			m.ToggleList(document.ListBullet, resolveOn(m, args, func(s FormatState) bool { return s.BulletList }))
			return nil
		},
		QueryState: func(s FormatState) bool { return s.BulletList },
	})

	r.register(&Command{
		ID: "decimalList",
		Invoke: func(m *Model, args CommandArgs) error {
			m.ToggleList(document.ListDecimal, resolveOn(m, args, func(s FormatState) bool { return s.DecimalList }))
			return nil
		},
		QueryState: func(s FormatState) bool { return s.DecimalList },
	})

	r.register(&Command{
		ID: "link",
		Invoke: func(m *Model, args CommandArgs) error {
			if args.URL != "" {
				m.SubmitURL(args.URL)
			}
			on := resolveOn(m, args, func(s FormatState) bool { return s.LinkHref != "" })
			m.ToggleLink(on)
			return nil
		},
		QueryState: func(s FormatState) bool { return s.LinkHref != "" },
	})

	r.register(&Command{
		ID: "submitUrl",
		Invoke: func(m *Model, args CommandArgs) error {
			m.SubmitURL(args.URL)
			return nil
		},
	})

	r.register(&Command{
		ID: "insertText",
		Invoke: func(m *Model, args CommandArgs) error {
			m.InsertText(args.Text)
			return nil
		},
	})

	r.register(&Command{
		ID: "insertParagraphBreak",
		Invoke: func(m *Model, args CommandArgs) error {
			m.InsertParagraphBreak()
			return nil
		},
	})

	r.register(&Command{
		ID: "deleteSelection",
		Invoke: func(m *Model, args CommandArgs) error {
			m.DeleteSelection()
			return nil
		},
	})

	return r
}
