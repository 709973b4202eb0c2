package game

import "fmt"

const (
	// AbsoluteMaxSand caps hourglass capacity regardless of buffs.
	AbsoluteMaxSand = 8

	// DefaultMaxSand is the standard hourglass capacity.
	DefaultMaxSand = 6

	// PlayerTurnSand and EnemyTurnSand are the turn-start allotments each
	// side's hourglass resets to. Sand does not carry over between turns.
	PlayerTurnSand = 3
	EnemyTurnSand  = 2
)

// HourGlass tracks a combatant's spendable sand. Spend, Gain, SetSand and
// RefillForNewTurn are the only mutation paths; all of them clamp to
// [0, max], so 0 <= current <= max holds at all times.
type HourGlass struct {
	current int
	max     int
	refill  int
}

// NewHourGlass creates an hourglass with the given capacity and turn-start
// allotment. The allotment is clamped into [0, max].
func NewHourGlass(max, refill int) *HourGlass {
	if max < 1 {
		max = 1
	}
	if max > AbsoluteMaxSand {
		max = AbsoluteMaxSand
	}
	if refill < 0 {
		refill = 0
	}
	if refill > max {
		refill = max
	}
	return &HourGlass{max: max, refill: refill}
}

// Grains returns the current sand amount.
func (h *HourGlass) Grains() int {
	return h.current
}

// MaxGrains returns the hourglass capacity.
func (h *HourGlass) MaxGrains() int {
	return h.max
}

// TurnAllotment returns the amount RefillForNewTurn resets to.
func (h *HourGlass) TurnAllotment() int {
	return h.refill
}

// CanAfford reports whether the hourglass holds at least cost grains.
func (h *HourGlass) CanAfford(cost int) bool {
	return cost >= 0 && h.current >= cost
}

// Spend removes cost grains. It fails without mutation when the cost is
// negative, exceeds capacity, or exceeds the current amount.
func (h *HourGlass) Spend(cost int) bool {
	if cost < 0 || cost > h.max {
		return false
	}
	if !h.CanAfford(cost) {
		return false
	}
	h.current -= cost
	return true
}

// Gain adds n grains, clamped at capacity. Used by the effect resolver for
// GAIN_SAND; negative amounts are ignored.
func (h *HourGlass) Gain(n int) {
	if n <= 0 {
		return
	}
	h.current += n
	if h.current > h.max {
		h.current = h.max
	}
}

// SetSand sets the sand to an exact amount, clamped to [0, max].
func (h *HourGlass) SetSand(n int) {
	if n < 0 {
		n = 0
	}
	if n > h.max {
		n = h.max
	}
	h.current = n
}

// RefillForNewTurn resets the sand to the turn-start allotment. This is a
// reset, not an increment: unspent sand from the previous turn is lost.
func (h *HourGlass) RefillForNewTurn() {
	h.current = h.refill
}

// IncreaseMax raises the capacity by n, up to AbsoluteMaxSand. Returns
// false without mutation when the increase would exceed the cap.
func (h *HourGlass) IncreaseMax(n int) bool {
	if n < 0 {
		return false
	}
	if h.max+n > AbsoluteMaxSand {
		return false
	}
	h.max += n
	return true
}

func (h *HourGlass) String() string {
	return fmt.Sprintf("%d/%d sand", h.current, h.max)
}
