package core

import "strconv"

// Control describes a bounded integer setting exposed on the control panel,
// such as the generation rate or the cell size.
type Control struct {
	Key   string
	Label string
	Unit  string

	Step int
	Min  int
	Max  int
}

// Clamp limits v to [Min, Max]. A Max below Min is ignored.
func (c Control) Clamp(v int) int {
	if v < c.Min {
		return c.Min
	}
	if c.Max >= c.Min && v > c.Max {
		return c.Max
	}
	return v
}

// Adjust moves v by one step in direction (negative or positive) and clamps.
func (c Control) Adjust(v, direction int) int {
	step := c.Step
	if step <= 0 {
		step = 1
	}
	switch {
	case direction < 0:
		v -= step
	case direction > 0:
		v += step
	}
	return c.Clamp(v)
}

// CanAdjust reports whether Adjust would change v.
func (c Control) CanAdjust(v, direction int) bool {
	return c.Adjust(v, direction) != v
}

// Format renders v with the control's unit suffix.
func (c Control) Format(v int) string {
	s := strconv.Itoa(v)
	switch c.Unit {
	case "":
		return s
	case "px":
		return s + c.Unit
	default:
		return s + " " + c.Unit
	}
}
