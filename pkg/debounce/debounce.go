// Copyright (c) 2026 Hearthdeck. All rights reserved.
// Author: ops@fellhollow.io

/*
Package debounce provides a keyed debouncer for coalescing bursts of work.

# Overview

Campaign narrative fields autosave on every quiet pause in typing. Each
save PATCH lands as its own row update, but logging every keystroke-burst
as a separate campaign_log event would drown the log. The [Debouncer]
coalesces: work scheduled for a key runs only after the key has been quiet
for the configured period, and a newer schedule supersedes an older one.

# Supersede Semantics

Every call to Trigger advances a per-key generation counter. When a timer
fires it compares its captured generation against the current one; a stale
timer discards its work instead of running it. The newest scheduled
function always wins — exactly the "discard the stale in-flight save"
rule, expressed with a generation token.

# Bounded Deferral

A continuous stream of triggers would otherwise defer the work forever,
so the first trigger of a burst fixes a max-wait deadline. Timers never
schedule past it; once it is reached the pending work runs even if the
key is still busy.
*/
package debounce

import (
	"sync"
	"time"
)

// Debouncer coalesces keyed work bursts. Safe for concurrent use.
type Debouncer struct {
	quiet   time.Duration
	maxWait time.Duration

	mu      sync.Mutex
	pending map[string]*pendingWork
	stopped bool
}

// pendingWork tracks the deferred function for one key.
type pendingWork struct {
	generation uint64
	deadline   time.Time
	timer      *time.Timer
	run        func()
}

// New constructs a [Debouncer].
//
// quiet is how long a key must be idle before its work runs; maxWait bounds
// the total deferral for a continuous burst.
func New(quiet, maxWait time.Duration) *Debouncer {
	return &Debouncer{
		quiet:   quiet,
		maxWait: maxWait,
		pending: make(map[string]*pendingWork),
	}
}

// Trigger schedules run for the key, superseding any previously scheduled
// function for the same key (newest wins).
func (d *Debouncer) Trigger(key string, run func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	work, exists := d.pending[key]
	if !exists {
		// First trigger of a burst fixes the flush deadline.
		work = &pendingWork{deadline: time.Now().Add(d.maxWait)}
		d.pending[key] = work
	} else {
		work.timer.Stop()
	}

	work.generation++
	work.run = run

	delay := d.quiet
	if remaining := time.Until(work.deadline); remaining < delay {
		if remaining < 0 {
			remaining = 0
		}
		delay = remaining
	}

	generation := work.generation
	work.timer = time.AfterFunc(delay, func() {
		d.fire(key, generation)
	})
}

// Flush runs any pending work for the key immediately.
func (d *Debouncer) Flush(key string) {
	d.mu.Lock()
	work, exists := d.pending[key]
	if !exists {
		d.mu.Unlock()
		return
	}
	work.timer.Stop()
	delete(d.pending, key)
	run := work.run
	d.mu.Unlock()

	run()
}

// Stop cancels all pending work and rejects future triggers.
//
// Pending work is dropped, not flushed: callers that need a clean shutdown
// flush the keys they care about first.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	for key, work := range d.pending {
		work.timer.Stop()
		delete(d.pending, key)
	}
}

// Pending reports whether the key currently has deferred work.
func (d *Debouncer) Pending(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, exists := d.pending[key]
	return exists
}

// fire runs the pending work for key if generation is still current.
func (d *Debouncer) fire(key string, generation uint64) {
	d.mu.Lock()
	work, exists := d.pending[key]
	if !exists || work.generation != generation {
		// Superseded by a newer trigger; that timer owns the work now.
		d.mu.Unlock()
		return
	}
	delete(d.pending, key)
	run := work.run
	d.mu.Unlock()

	run()
}
