package tinec

import "time"

// Pacing controls how Loop spaces frames.
type Pacing struct {
	// FPS sleeps away the rest of each 1/FPS frame period. Zero disables
	// sleeping and runs frames back to back (or at whatever rate the
	// display's Present blocks for).
	FPS int
}

// Loop runs the main loop until a quit is requested or Stop is called:
// poll for quit, call step, present, then sleep per p. frame counts from 0.
// The first error from step or Update ends the loop and is returned.
func (c *Canvas) Loop(p Pacing, step func(frame uint64) error) error {
	var period time.Duration
	if p.FPS > 0 {
		period = time.Second / time.Duration(p.FPS)
	}

	var frame uint64
	for c.Running() {
		start := time.Now()
		if step != nil {
			if err := step(frame); err != nil {
				return err
			}
		}
		if err := c.Update(); err != nil {
			return err
		}
		frame++

		if period <= 0 {
			continue
		}
		if d := period - time.Since(start); d > 0 {
			time.Sleep(d)
		} else {
			Logger().Debug("frame over budget", "frame", frame, "elapsed", time.Since(start))
		}
	}
	return nil
}
