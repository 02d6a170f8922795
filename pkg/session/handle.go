package session

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/leaguedesk/airbase-client/pkg/model"
	"github.com/rs/zerolog/log"
)

// Handle identifies one requester of an asynchronous fetch. It starts
// attached; Detach marks the requester gone and cancels the handle's
// context so in-flight I/O on its behalf can stop early.
//
// Liveness is evaluated at delivery time, never at request time: a handle
// may detach at any point while a fetch is suspended, including mid-decode.
type Handle struct {
	id       uuid.UUID
	ctx      context.Context
	cancel   context.CancelFunc
	attached atomic.Bool
}

// NewHandle creates an attached handle. The handle's context is derived
// from ctx and is cancelled when the handle detaches.
func NewHandle(ctx context.Context) *Handle {
	hctx, cancel := context.WithCancel(ctx)
	h := &Handle{
		id:     uuid.New(),
		ctx:    hctx,
		cancel: cancel,
	}
	h.attached.Store(true)
	return h
}

// ID returns the handle's unique identifier.
func (h *Handle) ID() string {
	return h.id.String()
}

// Context returns the handle-scoped context. Pass it to fetches issued on
// this requester's behalf.
func (h *Handle) Context() context.Context {
	return h.ctx
}

// Alive reports whether the requester is still attached.
func (h *Handle) Alive() bool {
	return h.attached.Load()
}

// Detach marks the requester gone and cancels its context. Safe to call
// more than once and from any goroutine.
func (h *Handle) Detach() {
	if h.attached.CompareAndSwap(true, false) {
		h.cancel()
	}
}

// FetchResult pairs a materialized collection with the error of the fetch
// that produced it. Exactly one of the two fields is meaningful.
type FetchResult struct {
	Collection model.Collection
	Err        error
}

// DeliverIfLive applies the outcome only if the requester is still
// attached at this moment. A stale outcome is discarded: apply is not
// invoked, nothing is surfaced, and the discard is counted but never
// logged as a failure. Reports whether the outcome was applied.
func DeliverIfLive[T any](h *Handle, outcome T, apply func(T)) bool {
	if h == nil || !h.Alive() {
		StaleDiscards.Inc()
		if h != nil {
			log.Debug().Str("handle_id", h.ID()).Msg("Discarding outcome for detached requester")
		}
		return false
	}
	apply(outcome)
	return true
}
