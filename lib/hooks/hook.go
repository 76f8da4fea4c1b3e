package hooks

import (
	uuid2 "github.com/google/uuid"
)

// Hook is a uuid-keyed listener registry. The editor core fires events
// through it and never knows who listens; the manager registers autosave on
// documentChanged at startup.
type Hook struct {
	hooks map[string]map[string]func(ctx any)
}

func NewHook() Hook {
	return Hook{
		hooks: make(map[string]map[string]func(ctx any)),
	}
}

// DocumentChangedContext travels with every documentChanged event.
type DocumentChangedContext struct {
	DocumentName string
}

func (h *Hook) EnqueueDocumentChangedHook(cb func(ctx *DocumentChangedContext)) string {
	return h.EnqueueHook("documentChanged", func(ctx any) {
		if changedCtx, ok := ctx.(*DocumentChangedContext); ok {
			cb(changedCtx)
		}
	})
}

func (h *Hook) ExecuteDocumentChangedHooks(ctx *DocumentChangedContext) {
	h.ExecuteHooks("documentChanged", ctx)
}

func (h *Hook) EnqueueHook(key string, ctx func(ctx any)) string {
	var uuid = uuid2.New()
	var _, ok = h.hooks[key]

	if !ok {
		h.hooks[key] = make(map[string]func(ctx any))
	}

	h.hooks[key][uuid.String()] = ctx

	return uuid.String()
}

func (h *Hook) DequeueHook(key, id string) {
	delete(h.hooks[key], id)
}

func (h *Hook) ExecuteHooks(key string, ctx any) {
	var _, ok = h.hooks[key]

	if !ok {
		return
	}

	for _, v := range h.hooks[key] {
		v(ctx)
	}
}
