// Package model defines the record shapes served by the Airbase backend
// and the per-kind codecs that map between raw row fields and typed records.
package model

import (
	"fmt"
	"sort"
)

// Kind identifies one record shape and its backend table.
type Kind string

const (
	// KindScorer is the overall scorer ranking.
	KindScorer Kind = "scorer"

	// KindTeamWeekScorer is the per-team, per-week scorer breakdown.
	KindTeamWeekScorer Kind = "team-week-scorer"
)

// Descriptor binds a Kind to its default backend table and codec.
type Descriptor struct {
	// Table is the default backend table identifier.
	Table string

	// Codec maps between raw row fields and typed records of this kind.
	Codec Codec
}

// registry is the dispatch table for all known kinds. Adding a kind means
// adding exactly one entry here plus its record type and codec.
var registry = map[Kind]Descriptor{
	KindScorer:         {Table: "Scorers", Codec: scorerCodec{}},
	KindTeamWeekScorer: {Table: "TeamWeekScorers", Codec: teamWeekScorerCodec{}},
}

// UnknownKindError indicates a Kind with no registry entry. This is a
// programming error: callers obtain kinds from the constants above or
// ParseKind, both of which guarantee a registered kind.
type UnknownKindError struct {
	Kind Kind
}

// Error implements the error interface.
func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown model kind %q", string(e.Kind))
}

// Descriptor resolves the kind to its table and codec.
func (k Kind) Descriptor() (Descriptor, error) {
	desc, ok := registry[k]
	if !ok {
		return Descriptor{}, &UnknownKindError{Kind: k}
	}
	return desc, nil
}

// String returns the kind tag.
func (k Kind) String() string {
	return string(k)
}

// ParseKind converts a tag string to a registered Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := registry[k]; !ok {
		return "", &UnknownKindError{Kind: k}
	}
	return k, nil
}

// Kinds returns all registered kinds in stable order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
