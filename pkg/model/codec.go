package model

import (
	"fmt"
	"math"
)

// Codec maps between a raw field mapping (as decoded from the backend's
// JSON) and a typed record of one kind.
//
// Decode never fails on absent fields: a missing key becomes a nil record
// field. It fails with *MalformedRecordError only when a present value has
// a type incompatible with the declared field type.
//
// Encode is the inverse: unset (nil) record fields are omitted from the
// output, never encoded as explicit nulls.
type Codec interface {
	Decode(fields map[string]any) (Record, error)
	Encode(rec Record) (map[string]any, error)
}

// MalformedRecordError indicates a raw field whose value type is
// incompatible with the field's declared scalar type.
type MalformedRecordError struct {
	Kind  Kind
	Field string
	Want  string
	Value any
}

// Error implements the error interface.
func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed %s record: field %q: want %s, got %T (%v)",
		e.Kind, e.Field, e.Want, e.Value, e.Value)
}

type scorerCodec struct{}

func (scorerCodec) Decode(fields map[string]any) (Record, error) {
	var rec Scorer
	var err error
	if rec.Name, err = stringField(KindScorer, fields, "Name"); err != nil {
		return nil, err
	}
	if rec.Team, err = stringField(KindScorer, fields, "Team"); err != nil {
		return nil, err
	}
	if rec.Goals, err = intField(KindScorer, fields, "Goals"); err != nil {
		return nil, err
	}
	return rec, nil
}

func (scorerCodec) Encode(rec Record) (map[string]any, error) {
	s, ok := rec.(Scorer)
	if !ok {
		return nil, fmt.Errorf("encode: record is %T, want %T", rec, Scorer{})
	}
	fields := make(map[string]any)
	putString(fields, "Name", s.Name)
	putString(fields, "Team", s.Team)
	putInt(fields, "Goals", s.Goals)
	return fields, nil
}

type teamWeekScorerCodec struct{}

func (teamWeekScorerCodec) Decode(fields map[string]any) (Record, error) {
	var rec TeamWeekScorer
	var err error
	if rec.Name, err = stringField(KindTeamWeekScorer, fields, "Name"); err != nil {
		return nil, err
	}
	if rec.Team, err = stringField(KindTeamWeekScorer, fields, "Team"); err != nil {
		return nil, err
	}
	if rec.Week, err = intField(KindTeamWeekScorer, fields, "Week"); err != nil {
		return nil, err
	}
	if rec.Goals, err = intField(KindTeamWeekScorer, fields, "Goals"); err != nil {
		return nil, err
	}
	return rec, nil
}

func (teamWeekScorerCodec) Encode(rec Record) (map[string]any, error) {
	s, ok := rec.(TeamWeekScorer)
	if !ok {
		return nil, fmt.Errorf("encode: record is %T, want %T", rec, TeamWeekScorer{})
	}
	fields := make(map[string]any)
	putString(fields, "Name", s.Name)
	putString(fields, "Team", s.Team)
	putInt(fields, "Week", s.Week)
	putInt(fields, "Goals", s.Goals)
	return fields, nil
}

// stringField reads an optional string field from the raw mapping.
func stringField(kind Kind, fields map[string]any, name string) (*string, error) {
	raw, ok := fields[name]
	if !ok || raw == nil {
		return nil, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, &MalformedRecordError{Kind: kind, Field: name, Want: "string", Value: raw}
	}
	return &s, nil
}

// intField reads an optional integer field from the raw mapping.
// encoding/json decodes all JSON numbers to float64, so integral floats
// are accepted; anything else is malformed.
func intField(kind Kind, fields map[string]any, name string) (*int, error) {
	raw, ok := fields[name]
	if !ok || raw == nil {
		return nil, nil
	}
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return nil, &MalformedRecordError{Kind: kind, Field: name, Want: "integer", Value: raw}
		}
		n := int(v)
		return &n, nil
	case int:
		n := v
		return &n, nil
	default:
		return nil, &MalformedRecordError{Kind: kind, Field: name, Want: "integer", Value: raw}
	}
}

func putString(fields map[string]any, name string, v *string) {
	if v != nil {
		fields[name] = *v
	}
}

func putInt(fields map[string]any, name string, v *int) {
	if v != nil {
		fields[name] = *v
	}
}
