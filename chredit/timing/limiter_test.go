package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameDuration(t *testing.T) {
	assert.Equal(t, 16666666*time.Nanosecond, FrameDuration())
}

func TestNoOpLimiterDoesNotBlock(t *testing.T) {
	l := NewNoOpLimiter()
	start := time.Now()
	for i := 0; i < 1000; i++ {
		l.WaitForNextFrame()
	}
	l.Reset()
	assert.Less(t, time.Since(start), time.Second)
}

func TestTickerLimiter(t *testing.T) {
	l := NewTickerLimiter()
	defer l.Stop()

	start := time.Now()
	l.WaitForNextFrame()
	l.WaitForNextFrame()

	assert.GreaterOrEqual(t, time.Since(start), FrameDuration())
}

var _ Limiter = (*TickerLimiter)(nil)
