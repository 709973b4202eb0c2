package proto

import (
	"testing"

	"github.com/sandglass-games/duat/internal/game"
	"github.com/sandglass-games/duat/internal/log"
)

func TestNewStateView(t *testing.T) {
	m, err := game.SetupCombat(50, 50, "Desert Guardian", 40, 40, []*game.Card{
		game.TombStrike(),
		game.AnkhBlessing(),
	})
	if err != nil {
		t.Fatalf("SetupCombat: %v", err)
	}

	view := NewStateView(m.State(), m.HandCards())
	if view.Phase != "Player Turn" || view.Turn != 1 {
		t.Errorf("unexpected phase/turn: %s / %d", view.Phase, view.Turn)
	}
	if view.Over {
		t.Error("fresh combat should not be over")
	}
	if view.Enemy.Name != "Desert Guardian" || view.Enemy.Health != 40 {
		t.Errorf("unexpected enemy view: %+v", view.Enemy)
	}
	if len(view.Hand) != 2 {
		t.Fatalf("expected 2 hand cards, got %d", len(view.Hand))
	}
	if view.Hand[0].Index != 0 || view.Hand[0].Name != "Tomb Strike" || view.Hand[0].Cost != 1 {
		t.Errorf("unexpected first hand card: %+v", view.Hand[0])
	}
}

func TestNewEventViews(t *testing.T) {
	events := []log.CombatEvent{
		log.NewTurnEvent(1),
		log.NewCardPlayedEvent(1, "Player Turn", "Tomb Strike", 1),
	}
	events[0].Seq = 1
	events[1].Seq = 2

	views := NewEventViews(events)
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}
	if views[1].Card != "Tomb Strike" || views[1].Seq != 2 {
		t.Errorf("unexpected view: %+v", views[1])
	}
	if views[0].Type != log.EventNewTurn.String() {
		t.Errorf("unexpected type: %s", views[0].Type)
	}
}
