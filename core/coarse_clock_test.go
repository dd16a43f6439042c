package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoarseClock(t *testing.T) {
	StartCoarseClock()

	// Give the ticker a couple of cycles.
	time.Sleep(5 * time.Millisecond)

	got := CoarseNow()
	assert.WithinDuration(t, time.Now(), got, 100*time.Millisecond)

	// Calling StartCoarseClock again must be a no-op.
	StartCoarseClock()
	assert.WithinDuration(t, time.Now(), CoarseNow(), 100*time.Millisecond)
}
