package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() Record {
	return Record{
		Size:  100,
		Scale: 500,
		Points: []PointRecord{
			{X: 0, Y: 0, CP1X: -10, CP1Y: 0, CP2X: 10, CP2Y: 0},
			{X: 50, Y: 50, CP1X: 30, CP1Y: 25, CP2X: 70, CP2Y: 75},
		},
	}
}

func TestRecordRoundTrip(t *testing.T) {
	data, err := Encode(sampleRecord())
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, sampleRecord(), got)
}

func TestDecodeFillsMissingFields(t *testing.T) {
	got, err := Decode([]byte(`{"size": 50}`))
	require.NoError(t, err)
	assert.Equal(t, 50.0, got.Size)
	assert.Equal(t, DefaultScale, got.Scale)
	assert.Empty(t, got.Points)

	got, err = Decode([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestDecodeIgnoresNonPositiveValues(t *testing.T) {
	got, err := Decode([]byte(`{"size": -3, "scale": 0}`))
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, got.Size)
	assert.Equal(t, DefaultScale, got.Scale)
}

func TestDecodeMalformed(t *testing.T) {
	got, err := Decode([]byte(`{"size": `))
	assert.Error(t, err)
	assert.Equal(t, Default(), got)
}

func TestPointsRoundTrip(t *testing.T) {
	points := sampleRecord().Points
	data, err := EncodePoints(points)
	require.NoError(t, err)

	got, err := DecodePoints(data)
	require.NoError(t, err)
	assert.Equal(t, points, got)
}
