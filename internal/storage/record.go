// Package storage defines the persisted document: field size, screen
// scale and the path points. Cursor mode, selection and the background
// image are deliberately not part of it.
package storage

import "encoding/json"

// Documented defaults, applied to fresh sessions and to older records
// missing fields.
const (
	DefaultSize  = 140.5 // field edge, inches
	DefaultScale = 720   // field edge, pixels
)

// PointRecord is one persisted path point. Identity is not persisted; a
// fresh one is assigned on load.
type PointRecord struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	CP1X float64 `json:"cp1x"`
	CP1Y float64 `json:"cp1y"`
	CP2X float64 `json:"cp2x"`
	CP2Y float64 `json:"cp2y"`
}

// Record is the whole persisted document.
type Record struct {
	Size   float64       `json:"size"`
	Scale  int           `json:"scale"`
	Points []PointRecord `json:"points"`
}

// Default returns a record holding the documented defaults and no points.
func Default() Record {
	return Record{Size: DefaultSize, Scale: DefaultScale}
}

// Encode renders the record as indented JSON.
func Encode(rec Record) ([]byte, error) {
	return json.MarshalIndent(rec, "", "  ")
}

// EncodePoints renders just the point list, for the preference store.
func EncodePoints(points []PointRecord) ([]byte, error) {
	return json.Marshal(points)
}

// DecodePoints parses a point list written by EncodePoints.
func DecodePoints(data []byte) ([]PointRecord, error) {
	var points []PointRecord
	if err := json.Unmarshal(data, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// Decode parses a record, substituting the documented defaults for
// anything an older record left out. Only malformed JSON fails.
func Decode(data []byte) (Record, error) {
	rec := Default()
	if err := json.Unmarshal(data, &rec); err != nil {
		return Default(), err
	}
	if rec.Size <= 0 {
		rec.Size = DefaultSize
	}
	if rec.Scale <= 0 {
		rec.Scale = DefaultScale
	}
	return rec, nil
}
