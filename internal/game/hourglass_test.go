package game

import "testing"

func TestHourGlassSpendAndAfford(t *testing.T) {
	h := NewHourGlass(DefaultMaxSand, PlayerTurnSand)
	h.SetSand(3)

	if !h.CanAfford(3) {
		t.Error("should afford exactly the current amount")
	}
	if h.CanAfford(4) {
		t.Error("should not afford more than current")
	}
	if !h.Spend(2) {
		t.Fatal("Spend(2) should succeed with 3 sand")
	}
	if h.Grains() != 1 {
		t.Errorf("expected 1 grain after spend, got %d", h.Grains())
	}
	if h.Spend(2) {
		t.Error("Spend(2) should fail with 1 sand")
	}
	if h.Grains() != 1 {
		t.Errorf("failed spend mutated state: %d grains", h.Grains())
	}
}

func TestHourGlassRejectsBadCosts(t *testing.T) {
	h := NewHourGlass(DefaultMaxSand, PlayerTurnSand)
	h.SetSand(6)

	if h.Spend(-1) {
		t.Error("negative cost should be rejected")
	}
	if h.Spend(DefaultMaxSand + 1) {
		t.Error("cost above capacity should be rejected")
	}
	if h.CanAfford(-1) {
		t.Error("negative cost is never affordable")
	}
	if h.Grains() != 6 {
		t.Errorf("rejected spends mutated state: %d grains", h.Grains())
	}
}

func TestHourGlassGainClampsAtMax(t *testing.T) {
	h := NewHourGlass(DefaultMaxSand, PlayerTurnSand)
	h.SetSand(5)
	h.Gain(10)
	if h.Grains() != DefaultMaxSand {
		t.Errorf("expected clamp at %d, got %d", DefaultMaxSand, h.Grains())
	}
	h.Gain(-3)
	if h.Grains() != DefaultMaxSand {
		t.Error("negative gain should be a no-op")
	}
}

func TestHourGlassRefillResetsNotIncrements(t *testing.T) {
	h := NewHourGlass(DefaultMaxSand, PlayerTurnSand)
	h.SetSand(6) // banked more than the allotment
	h.RefillForNewTurn()
	if h.Grains() != PlayerTurnSand {
		t.Errorf("refill should reset to %d, got %d", PlayerTurnSand, h.Grains())
	}

	h.SetSand(0)
	h.RefillForNewTurn()
	if h.Grains() != PlayerTurnSand {
		t.Errorf("refill from empty should reset to %d, got %d", PlayerTurnSand, h.Grains())
	}
}

func TestHourGlassIncreaseMaxCapped(t *testing.T) {
	h := NewHourGlass(DefaultMaxSand, PlayerTurnSand)
	if !h.IncreaseMax(2) {
		t.Fatal("increase to 8 should succeed")
	}
	if h.MaxGrains() != AbsoluteMaxSand {
		t.Errorf("expected max %d, got %d", AbsoluteMaxSand, h.MaxGrains())
	}
	if h.IncreaseMax(1) {
		t.Error("increase past the absolute cap should fail")
	}
	if h.MaxGrains() != AbsoluteMaxSand {
		t.Error("failed increase mutated capacity")
	}
}

func TestNewHourGlassClampsArguments(t *testing.T) {
	h := NewHourGlass(20, 50)
	if h.MaxGrains() != AbsoluteMaxSand {
		t.Errorf("capacity should clamp to %d, got %d", AbsoluteMaxSand, h.MaxGrains())
	}
	if h.TurnAllotment() != AbsoluteMaxSand {
		t.Errorf("allotment should clamp to capacity, got %d", h.TurnAllotment())
	}
}
