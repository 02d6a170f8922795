// Package session guards delivery of asynchronous fetch results and caches
// collections per session identity.
//
// A fetch may outlive its requester: the view that asked for a collection
// can be gone by the time the last page arrives. Each requester registers a
// Handle; DeliverIfLive applies an outcome only while the handle is still
// attached, and detaching a handle cancels its context so in-flight page
// requests stop instead of completing into the void.
//
// The Cache keys materialized collections by (kind, session identity).
// Concurrent fetches for the same key are coalesced, entries survive
// navigation, and InvalidateSession drops everything for a session on
// logout.
//
// # Basic Usage
//
//	cache := session.NewCache(session.NewMemoryStore(), fetcher.FetchAll)
//	handle := session.NewHandle(ctx)
//
//	go func() {
//		collection, err := cache.FetchCached(handle.Context(), model.KindScorer, identity)
//		session.DeliverIfLive(handle, session.FetchResult{Collection: collection, Err: err}, render)
//	}()
//
//	// Somewhere else, when the requester goes away:
//	handle.Detach()
//
// A discarded delivery is intentional behavior, not a failure: it is not
// logged as an error and apply is simply never invoked.
package session
