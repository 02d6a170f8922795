// Package fetch materializes full collections from the paginated Airbase API.
//
// The backend returns at most one page of rows per request, plus an opaque
// continuation cursor when more rows remain. Page N+1 can only be requested
// once page N's cursor is known, so the fetch is strictly sequential:
//
//	fetcher := fetch.New(airbaseClient, fetch.DefaultConfig())
//	collection, err := fetcher.FetchAll(ctx, model.KindScorer)
//
// The fetcher:
//   - Resolves the model kind to its backend table and codec
//   - Requests pages with a stable ascending sort until no cursor remains
//   - Decodes each row via the kind's codec, skipping rows with no fields
//   - Bounds the page count (MaxPages) against a cursor sequence that
//     never terminates
//
// Absent row containers decode to an empty terminal page; an empty
// collection is a valid result, not an error.
package fetch
