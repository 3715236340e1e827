package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShouldUpdateCacheHonorsInterval(t *testing.T) {
	cacheUpdateMutex.Lock()
	lastCacheUpdate = time.Now()
	cacheUpdateMutex.Unlock()

	assert.False(t, ShouldUpdateCache())

	cacheUpdateMutex.Lock()
	lastCacheUpdate = time.Now().Add(-cacheUpdateInterval - time.Second)
	cacheUpdateMutex.Unlock()

	assert.True(t, ShouldUpdateCache())
}

func TestResetCacheUpdateTimerForcesRefresh(t *testing.T) {
	cacheUpdateMutex.Lock()
	lastCacheUpdate = time.Now()
	cacheUpdateMutex.Unlock()

	ResetCacheUpdateTimer()

	assert.True(t, ShouldUpdateCache())
}
