package idgen

import (
	"fmt"
	"sync"
	"time"
)

// SnowflakeIDGenerator is a simplified snowflake generator.
// ID layout: timestamp (10 digits) + machine ID (2 digits) + sequence (3 digits),
// which leaves room for sharding later.
type SnowflakeIDGenerator struct {
	mu        sync.Mutex
	epoch     int64
	machineID int64
	sequence  int64
	lastTime  int64

	// Per-day counter backing RequestID. Resets when the date changes.
	requestDay string
	requestSeq int64
}

const (
	maxMachineID = 99
	maxSequence  = 999
)

// NewSnowflakeIDGenerator creates a generator for the given machine ID (0-99).
func NewSnowflakeIDGenerator(machineID int64) *SnowflakeIDGenerator {
	if machineID < 0 || machineID > maxMachineID {
		machineID = 0
	}

	// Epoch pinned to 2024-01-01 00:00:00 UTC, the start of the dataset's
	// fiscal year.
	epoch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Unix()

	return &SnowflakeIDGenerator{
		epoch:     epoch,
		machineID: machineID,
	}
}

// NextID returns the next unique numeric ID.
func (g *SnowflakeIDGenerator) NextID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now().Unix()

	if now == g.lastTime {
		g.sequence = (g.sequence + 1) % (maxSequence + 1)
		if g.sequence == 0 {
			// Sequence exhausted inside one second, spin to the next.
			for now <= g.lastTime {
				now = time.Now().Unix()
			}
		}
	} else {
		g.sequence = 0
	}

	g.lastTime = now

	timestamp := now - g.epoch

	return timestamp*100000 + g.machineID*1000 + g.sequence
}

// RequestID formats a purchase-request ID like PR-20240115-007.
// The suffix is a per-day counter, so every ID issued by one generator
// is unique regardless of wall-clock gaps between calls. Past 999 the
// suffix widens instead of wrapping.
func (g *SnowflakeIDGenerator) RequestID(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	day := now.Format("20060102")
	if day != g.requestDay {
		g.requestDay = day
		g.requestSeq = 0
	}
	g.requestSeq++

	return fmt.Sprintf("PR-%s-%03d", day, g.requestSeq)
}

// TrackingNumber returns a 16-digit tracking number.
func (g *SnowflakeIDGenerator) TrackingNumber() string {
	return fmt.Sprintf("%016d", g.NextID())
}

// OrderID formats an order ID like ORDER-6790448101001. The full
// snowflake ID keeps the timestamp digits, so IDs never repeat across
// seconds.
func (g *SnowflakeIDGenerator) OrderID() string {
	return fmt.Sprintf("ORDER-%d", g.NextID())
}

var defaultGenerator = NewSnowflakeIDGenerator(1)

// GenerateID returns an ID from the default generator (machine ID 1).
func GenerateID() int64 {
	return defaultGenerator.NextID()
}
