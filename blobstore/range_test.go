package blobstore

import (
	"math"
	"testing"

	"github.com/hupe1980/blobseek/internal/conv"
	"github.com/stretchr/testify/assert"
)

func TestResolveRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		size       int64
		off, n     int64
	}{
		{"inside", 3, 7, 10, 3, 4},
		{"whole", 0, 10, 10, 0, 10},
		{"clipped end", 8, 13, 10, 8, 2},
		{"at end", 10, 12, 10, 10, 0},
		{"past end", 15, 18, 10, 10, 0},
		{"inverted", 6, 2, 10, 6, 0},
		{"empty blob", 0, 4, 0, 0, 0},
		{"max safe end", 0, float64(conv.MaxSafeInteger), 10, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			off, n, err := ResolveRange(tt.start, tt.end, tt.size)
			assert.NoError(t, err)
			assert.Equal(t, tt.off, off)
			assert.Equal(t, tt.n, n)
		})
	}
}

func TestResolveRange_Invalid(t *testing.T) {
	for name, r := range map[string][2]float64{
		"negative start": {-1, 4},
		"fractional end": {0, 4.5},
		"nan start":      {math.NaN(), 4},
		"inf end":        {0, math.Inf(1)},
		"beyond safe":    {0, float64(conv.MaxSafeInteger) + 1},
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := ResolveRange(r[0], r[1], 10)
			assert.ErrorIs(t, err, conv.ErrPrecisionLoss)
		})
	}

	_, _, err := ResolveRange(0, 1, -1)
	assert.Error(t, err)
}
