package idgen

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextIDMonotonicAndUnique(t *testing.T) {
	gen := NewSnowflakeIDGenerator(1)

	seen := make(map[int64]struct{})
	last := int64(0)
	for i := 0; i < 500; i++ {
		id := gen.NextID()
		assert.Greater(t, id, last)
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %d", id)
		seen[id] = struct{}{}
		last = id
	}
}

func TestNextIDConcurrentUnique(t *testing.T) {
	gen := NewSnowflakeIDGenerator(2)

	var mu sync.Mutex
	seen := make(map[int64]struct{})
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				id := gen.NextID()
				mu.Lock()
				_, dup := seen[id]
				assert.False(t, dup)
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 400)
}

func TestInvalidMachineIDFallsBackToZero(t *testing.T) {
	gen := NewSnowflakeIDGenerator(500)
	id := gen.NextID()
	// Machine ID digits are the hundreds-to-thousands slot.
	assert.Equal(t, int64(0), id/1000%100)
}

func TestRequestIDFormat(t *testing.T) {
	gen := NewSnowflakeIDGenerator(1)
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "PR-20240115-001", gen.RequestID(now))
	assert.Equal(t, "PR-20240115-002", gen.RequestID(now))
}

func TestRequestIDUniqueAcrossSeconds(t *testing.T) {
	gen := NewSnowflakeIDGenerator(1)
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	first := gen.RequestID(now)
	second := gen.RequestID(now.Add(1100 * time.Millisecond))
	assert.NotEqual(t, first, second)
}

func TestRequestIDUniqueWithinDay(t *testing.T) {
	gen := NewSnowflakeIDGenerator(1)
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	seen := make(map[string]struct{})
	for i := 0; i < 1200; i++ {
		id := gen.RequestID(now.Add(time.Duration(i) * time.Second))
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
	// Past 999 the suffix widens rather than wrapping.
	_, ok := seen["PR-20240115-1200"]
	assert.True(t, ok)
}

func TestRequestIDCounterResetsAtMidnight(t *testing.T) {
	gen := NewSnowflakeIDGenerator(1)

	day1 := time.Date(2024, 1, 15, 23, 59, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 16, 0, 1, 0, 0, time.UTC)

	gen.RequestID(day1)
	assert.Equal(t, "PR-20240115-002", gen.RequestID(day1))
	assert.Equal(t, "PR-20240116-001", gen.RequestID(day2))
}

func TestTrackingNumberFormat(t *testing.T) {
	gen := NewSnowflakeIDGenerator(1)
	tn := gen.TrackingNumber()
	assert.Len(t, tn, 16)
	assert.NotEqual(t, tn, gen.TrackingNumber())
}

func TestOrderIDFormat(t *testing.T) {
	gen := NewSnowflakeIDGenerator(1)
	assert.True(t, strings.HasPrefix(gen.OrderID(), "ORDER-"))
}

func TestOrderIDUnique(t *testing.T) {
	gen := NewSnowflakeIDGenerator(1)

	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		id := gen.OrderID()
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
