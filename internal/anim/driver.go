package anim

import "time"

// MinSpeed is the slowest accepted rate in generations per second.
const MinSpeed = 1

// Driver advances a simulation at a target rate using host frames. Each
// delivered frame is evaluated once: if more than one step interval has passed
// since the last step, exactly one step runs. The effective rate is therefore
// capped by the host frame rate.
type Driver struct {
	sched Scheduler
	now   func() time.Duration
	step  func()

	running bool
	speed   int
	last    time.Duration
	frame   FrameID
	steps   uint64
}

// NewDriver returns a stopped driver. step performs one generation and the
// matching redraw; now reports the host clock on the same timeline as the
// timestamps delivered by sched.
func NewDriver(sched Scheduler, now func() time.Duration, speed int, step func()) *Driver {
	d := &Driver{sched: sched, now: now, step: step}
	d.SetSpeed(speed)
	return d
}

// Start begins stepping. The step clock restarts from now, so the first step
// happens one interval later. Calling Start while running does nothing.
func (d *Driver) Start() {
	if d.running {
		return
	}
	d.running = true
	d.last = d.now()
	d.schedule()
}

// Stop halts stepping and cancels the pending frame callback.
func (d *Driver) Stop() {
	d.running = false
	if d.frame != 0 {
		d.sched.Cancel(d.frame)
		d.frame = 0
	}
}

// Running reports whether the driver is stepping.
func (d *Driver) Running() bool { return d.running }

// SetSpeed changes the target rate. It applies from the next frame; values
// below MinSpeed are raised to it.
func (d *Driver) SetSpeed(fps int) {
	if fps < MinSpeed {
		fps = MinSpeed
	}
	d.speed = fps
}

// Speed returns the target rate in generations per second.
func (d *Driver) Speed() int { return d.speed }

// Interval is the minimum time between two steps.
func (d *Driver) Interval() time.Duration {
	return time.Second / time.Duration(d.speed)
}

// Steps counts the generations this driver has run.
func (d *Driver) Steps() uint64 { return d.steps }

// OnFrame evaluates one frame delivered at ts and reports whether a step ran.
// It keeps the loop alive by requesting the next frame while running.
func (d *Driver) OnFrame(ts time.Duration) bool {
	if !d.running {
		return false
	}
	stepped := false
	if ts-d.last > d.Interval() {
		d.last = ts
		d.steps++
		if d.step != nil {
			d.step()
		}
		stepped = true
	}
	if d.running {
		d.schedule()
	}
	return stepped
}

func (d *Driver) schedule() {
	if d.frame != 0 {
		return
	}
	d.frame = d.sched.Request(d.tick)
}

func (d *Driver) tick(ts time.Duration) {
	d.frame = 0
	d.OnFrame(ts)
}
