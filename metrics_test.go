package blobseek

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	var mc BasicMetricsCollector

	mc.RecordRead(10, 2*time.Millisecond, nil)
	mc.RecordRead(0, 4*time.Millisecond, io.EOF)
	mc.RecordRead(0, 0, errors.New("boom"))
	mc.RecordSeek(time.Millisecond, nil)
	mc.RecordSeek(time.Millisecond, ErrInvalidSeek)

	stats := mc.GetStats()
	assert.Equal(t, int64(3), stats.ReadCount)
	assert.Equal(t, int64(10), stats.ReadBytes)
	assert.Equal(t, int64(1), stats.ReadEOFs)
	assert.Equal(t, int64(1), stats.ReadErrors)
	assert.Equal(t, int64(2*time.Millisecond), stats.ReadAvgNanos)
	assert.Equal(t, int64(2), stats.SeekCount)
	assert.Equal(t, int64(1), stats.SeekErrors)
}

func TestBasicMetricsCollector_Empty(t *testing.T) {
	var mc BasicMetricsCollector
	assert.Equal(t, BasicMetricsStats{}, mc.GetStats())
}

func TestWithMetricsCollector_Nil(t *testing.T) {
	o := applyOptions([]Option{WithMetricsCollector(nil), nil})
	assert.Equal(t, NoopMetricsCollector{}, o.metricsCollector)
	assert.NotNil(t, o.logger)
}
