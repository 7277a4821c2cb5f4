// Package frametime records per-frame durations for the main loop.
package frametime

import (
	"fmt"
	"time"
)

// Recorder keeps the most recent frame durations in a fixed-capacity ring.
type Recorder struct {
	samples []time.Duration
	next    int
	total   uint64
}

// NewRecorder returns a Recorder holding up to capacity samples.
func NewRecorder(capacity int) *Recorder {
	if capacity <= 0 {
		capacity = 240
	}
	return &Recorder{samples: make([]time.Duration, 0, capacity)}
}

// Record adds one frame duration, evicting the oldest once full.
func (r *Recorder) Record(d time.Duration) {
	r.total++
	if len(r.samples) < cap(r.samples) {
		r.samples = append(r.samples, d)
		return
	}
	r.samples[r.next] = d
	r.next = (r.next + 1) % len(r.samples)
}

// Frames returns the total number of recorded frames.
func (r *Recorder) Frames() uint64 { return r.total }

// Stats returns the average and worst duration over the retained window.
func (r *Recorder) Stats() (avg, worst time.Duration) {
	if len(r.samples) == 0 {
		return 0, 0
	}
	var sum time.Duration
	for _, d := range r.samples {
		sum += d
		if d > worst {
			worst = d
		}
	}
	return sum / time.Duration(len(r.samples)), worst
}

// Summary formats the recorder state for the exit log line.
func (r *Recorder) Summary() string {
	avg, worst := r.Stats()
	return fmt.Sprintf("%d frames (avg %.2fms, worst %.2fms)",
		r.total, avg.Seconds()*1000, worst.Seconds()*1000)
}
