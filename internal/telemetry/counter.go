// Package telemetry counts draws and simulation updates per reporting
// interval and summarises how long they took.
package telemetry

import (
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
)

// Sample is one reporting interval. CSV tags define the column layout.
type Sample struct {
	RunID      string  `csv:"run_id"`
	ElapsedSec float64 `csv:"elapsed_sec"`
	Draws      int     `csv:"draws"`
	Updates    int     `csv:"updates"`
	Dropped    int     `csv:"dropped"`
	Live       int     `csv:"live"`
	TickAvgUs  float64 `csv:"tick_avg_us"`
	TickStdUs  float64 `csv:"tick_std_us"`
	FrameAvgUs float64 `csv:"frame_avg_us"`
	FrameMaxUs float64 `csv:"frame_max_us"`
}

// Counter accumulates per-frame and per-tick events until the interval
// elapses, then yields a Sample and starts over.
type Counter struct {
	runID    string
	interval time.Duration

	start     time.Duration
	lastPrint time.Duration

	draws   int
	updates int
	dropped int

	tickUs  []float64
	frameUs []float64
}

// NewCounter starts counting at now. A non-positive interval means one second.
func NewCounter(now, interval time.Duration) *Counter {
	if interval <= 0 {
		interval = time.Second
	}
	return &Counter{
		runID:     uuid.NewString(),
		interval:  interval,
		start:     now,
		lastPrint: now,
	}
}

// RunID identifies this process run in logs and CSV rows.
func (c *Counter) RunID() string { return c.runID }

// Tick records one simulation update and how long it took.
func (c *Counter) Tick(d time.Duration) {
	c.updates++
	c.tickUs = append(c.tickUs, float64(d)/float64(time.Microsecond))
}

// Drop records ticks the pacer discarded.
func (c *Counter) Drop(n int) { c.dropped += n }

// Frame records one rendered frame and how long it took end to end.
func (c *Counter) Frame(d time.Duration) {
	c.draws++
	c.frameUs = append(c.frameUs, float64(d)/float64(time.Microsecond))
}

// Flush returns a Sample once the interval has passed since the last one.
// The next interval is anchored to the previous boundary, not to now, so
// a late call does not stretch the following window.
func (c *Counter) Flush(now time.Duration, live int) (Sample, bool) {
	if now-c.lastPrint < c.interval {
		return Sample{}, false
	}
	c.lastPrint += c.interval
	if now-c.lastPrint >= c.interval {
		// More than one interval behind; resync.
		c.lastPrint = now
	}

	s := Sample{
		RunID:      c.runID,
		ElapsedSec: (now - c.start).Seconds(),
		Draws:      c.draws,
		Updates:    c.updates,
		Dropped:    c.dropped,
		Live:       live,
	}
	switch {
	case len(c.tickUs) > 1:
		s.TickAvgUs, s.TickStdUs = stat.MeanStdDev(c.tickUs, nil)
	case len(c.tickUs) == 1:
		s.TickAvgUs = c.tickUs[0]
	}
	if len(c.frameUs) > 0 {
		s.FrameAvgUs = stat.Mean(c.frameUs, nil)
		s.FrameMaxUs = maxOf(c.frameUs)
	}

	c.draws, c.updates, c.dropped = 0, 0, 0
	c.tickUs = c.tickUs[:0]
	c.frameUs = c.frameUs[:0]
	return s, true
}

func maxOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
