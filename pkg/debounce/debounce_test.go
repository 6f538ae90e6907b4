// Copyright (c) 2026 Hearthdeck. All rights reserved.
// Author: ops@fellhollow.io

package debounce_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fellhollow/hearthdeck/pkg/debounce"
)

/*
TestDebouncer_CoalescesBurst verifies that a rapid burst of triggers
produces exactly one execution, and that the newest function wins.
*/
func TestDebouncer_CoalescesBurst(t *testing.T) {
	d := debounce.New(30*time.Millisecond, time.Second)
	defer d.Stop()

	var calls int32
	var last atomic.Value

	for _, label := range []string{"first", "second", "third"} {
		label := label
		d.Trigger("campaign-1", func() {
			atomic.AddInt32(&calls, 1)
			last.Store(label)
		})
		time.Sleep(5 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) == 1
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, "third", last.Load())
	assert.False(t, d.Pending("campaign-1"))
}

/*
TestDebouncer_IndependentKeys verifies that keys do not interfere.
*/
func TestDebouncer_IndependentKeys(t *testing.T) {
	d := debounce.New(20*time.Millisecond, time.Second)
	defer d.Stop()

	var mu sync.Mutex
	fired := map[string]int{}
	record := func(key string) func() {
		return func() {
			mu.Lock()
			fired[key]++
			mu.Unlock()
		}
	}

	d.Trigger("a", record("a"))
	d.Trigger("b", record("b"))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return fired["a"] == 1 && fired["b"] == 1
	}, time.Second, 5*time.Millisecond)
}

/*
TestDebouncer_MaxWaitFlush verifies that a continuous trigger stream cannot
defer the work past the max-wait deadline.
*/
func TestDebouncer_MaxWaitFlush(t *testing.T) {
	d := debounce.New(50*time.Millisecond, 150*time.Millisecond)
	defer d.Stop()

	var calls int32
	stop := make(chan struct{})

	// Keep re-triggering faster than the quiet period.
	go func() {
		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				d.Trigger("busy", func() { atomic.AddInt32(&calls, 1) })
			}
		}
	}()

	// Despite the stream, the deadline forces a flush.
	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) >= 1
	}, time.Second, 10*time.Millisecond)
	close(stop)
}

/*
TestDebouncer_Flush verifies that Flush runs pending work immediately.
*/
func TestDebouncer_Flush(t *testing.T) {
	d := debounce.New(time.Hour, 2*time.Hour)
	defer d.Stop()

	var calls int32
	d.Trigger("slow", func() { atomic.AddInt32(&calls, 1) })
	require.True(t, d.Pending("slow"))

	d.Flush("slow")

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.False(t, d.Pending("slow"))

	// Flushing an empty key is a no-op.
	d.Flush("slow")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

/*
TestDebouncer_Stop verifies that Stop drops pending work and rejects
new triggers.
*/
func TestDebouncer_Stop(t *testing.T) {
	d := debounce.New(10*time.Millisecond, time.Second)

	var calls int32
	d.Trigger("doomed", func() { atomic.AddInt32(&calls, 1) })
	d.Stop()

	d.Trigger("doomed", func() { atomic.AddInt32(&calls, 1) })

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}
