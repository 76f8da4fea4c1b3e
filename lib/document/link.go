package document

import (
	"strings"

	"github.com/ether/richnote-go/lib/models/document"
)

type LinkState int

const (
	LinkInactive LinkState = iota
	LinkAwaitingURL
	LinkActive
)

// linkMachine is the session-scoped link toggle state. Nothing here is
// persisted: the snapshot only exists so that removing a link restores the
// exact underline/foreground the text had when the link was applied.
type linkMachine struct {
	state          LinkState
	pendingURL     string
	appliedURL     string
	fieldText      string
	priorUnderline bool
	priorColored   bool
}

func (m *Model) LinkState() LinkState {
	return m.link.state
}

// DisplayedURL is what the UI's URL field should show.
func (m *Model) DisplayedURL() string {
	return m.link.fieldText
}

// ToggleLink is the link button. Turning on with no pending URL moves to
// AwaitingURL and reports that the UI must collect one; turning on with a
// pending URL applies it. Turning off removes or edits in place, driven by
// the URL field content.
func (m *Model) ToggleLink(on bool) (needsURL bool) {
	if on {
		if m.link.pendingURL == "" {
			m.link.state = LinkAwaitingURL
			return true
		}
		m.activateLink(m.link.pendingURL)
		return false
	}
	m.removeOrEditLink()
	return false
}

// SubmitURL is the URL field commit. An empty submission while awaiting is a
// defined no-op, never an error.
func (m *Model) SubmitURL(url string) {
	url = strings.TrimSpace(url)
	if url == "" {
		return
	}
	m.link.pendingURL = url
	m.link.fieldText = url
	if m.link.state == LinkAwaitingURL {
		m.activateLink(url)
	}
}

// activateLink snapshots the prior underline/foreground at the target, then
// forces link styling over the selection (or the pending typing attributes).
func (m *Model) activateLink(url string) {
	prior := m.pending
	if !m.sel.Collapsed() {
		prior = m.attrsAtSelection()
	}
	m.link.priorUnderline = prior.Underline
	m.link.priorColored = prior.Colored

	m.applyInline(func(a *document.InlineAttributes) {
		a.Link = &document.Link{Href: url}
		a.Underline = true
		a.Colored = true
	})

	m.link.state = LinkActive
	m.link.appliedURL = url
	m.link.fieldText = url
}

// removeOrEditLink implements the Active -> Inactive transition. Unchanged
// or empty URL field: restore the snapshot and drop the anchor. Edited,
// non-empty field: keep the link and update the href in place.
func (m *Model) removeOrEditLink() {
	field := strings.TrimSpace(m.link.fieldText)

	if field != "" && field != m.link.appliedURL {
		m.applyInline(func(a *document.InlineAttributes) {
			a.Link = &document.Link{Href: field}
		})
		m.link.appliedURL = field
		m.link.pendingURL = field
		m.link.fieldText = field
		m.link.state = LinkActive
		return
	}

	priorUnderline, priorColored := m.link.priorUnderline, m.link.priorColored
	m.applyInline(func(a *document.InlineAttributes) {
		a.Link = nil
		a.Underline = priorUnderline
		a.Colored = priorColored
	})
	m.link.state = LinkInactive
	m.link.appliedURL = ""
	m.link.fieldText = ""
}

// selectionChanged keeps the machine in step with the caret: a range with no
// anchor collapses the displayed URL and deactivates; landing on an anchor
// shows its href and arms removal.
func (lm *linkMachine) selectionChanged(m *Model) {
	if lm.state == LinkAwaitingURL {
		return
	}
	attrs := m.attrsAtSelection()
	if attrs.Link == nil {
		lm.state = LinkInactive
		lm.fieldText = ""
		return
	}
	lm.state = LinkActive
	lm.appliedURL = attrs.Link.Href
	lm.fieldText = attrs.Link.Href
	lm.priorUnderline = false
	lm.priorColored = false
}

// NormalizeHref prefixes a scheme for anchor follow requests; hrefs typed
// without one open as https.
func NormalizeHref(href string) string {
	if href == "" {
		return href
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return "https://" + href
}
