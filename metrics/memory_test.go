package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_InMemory_aggregates(t *testing.T) {
	m := NewInMemory()

	m.ObserveRequest("balances", 200, 10*time.Millisecond)
	m.ObserveRequest("balances", 429, 5*time.Millisecond)
	m.ObserveRetry("balances", 1)
	m.ObserveError("balances", "rate-limited")
	m.ObserveRequest("chains", 200, time.Millisecond)

	snap := m.Snapshot()
	assert.Equal(t, uint64(2), snap["balances"].Requests)
	assert.Equal(t, uint64(1), snap["balances"].Retries)
	assert.Equal(t, uint64(1), snap["balances"].Errors)
	assert.Equal(t, 429, snap["balances"].LastStatus)
	assert.Equal(t, 15*time.Millisecond, snap["balances"].TotalDuration)
	assert.Equal(t, uint64(1), snap["chains"].Requests)
}

func Test_InMemory_snapshot_is_copy(t *testing.T) {
	m := NewInMemory()
	m.ObserveRequest("balances", 200, time.Millisecond)

	snap := m.Snapshot()
	m.ObserveRequest("balances", 200, time.Millisecond)

	assert.Equal(t, uint64(1), snap["balances"].Requests)
	assert.Equal(t, uint64(2), m.Snapshot()["balances"].Requests)
}

func Test_InMemory_concurrent(t *testing.T) {
	m := NewInMemory()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.ObserveRequest("tx", 200, time.Microsecond)
				m.ObserveRetry("tx", 1)
			}
		}()
	}
	wg.Wait()

	snap := m.Snapshot()
	assert.Equal(t, uint64(1000), snap["tx"].Requests)
	assert.Equal(t, uint64(1000), snap["tx"].Retries)
}
