// Package nwscript declares the surface of an NWN2 script function
// registry: a table mapping engine function IDs and names to callable
// handlers. It is out of scope for this module — dispatch glue with no
// interesting invariants — and exists only so a full engine build has a
// registration point. Call returns ErrNotImplemented unconditionally.
package nwscript

import "errors"

// ErrNotImplemented is returned by Registry.Call. Script dispatch is out
// of scope.
var ErrNotImplemented = errors.New("nwscript: function dispatch not implemented")

// FunctionContext carries a script call's arguments and return slot.
// Its shape is intentionally minimal; a real engine would extend it with
// the object/variable-table plumbing the call needs.
type FunctionContext struct {
	Args   []any
	Result any
}

// Handler implements one registered engine function.
type Handler func(ctx *FunctionContext) error

// Registry maps engine function IDs to handlers.
type Registry struct {
	byID   map[uint32]Handler
	byName map[string]uint32
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[uint32]Handler), byName: make(map[string]uint32)}
}

// Register associates a function ID and name with a handler.
func (r *Registry) Register(id uint32, name string, fn Handler) {
	r.byID[id] = fn
	r.byName[name] = id
}

// Call invokes the handler registered for id. Not implemented: no
// handlers are wired up in this module.
func (r *Registry) Call(id uint32, ctx *FunctionContext) error {
	return ErrNotImplemented
}
