package game

import (
	"testing"

	"github.com/sandglass-games/duat/internal/log"
)

// --- Test card helpers ---

func attackCard(name string, cost, damage int) *Card {
	return &Card{
		Name: name,
		Cost: cost,
		Type: CardTypeAttack,
		Effects: []CardEffect{
			{Type: EffectDamage, Value: damage, Target: TargetEnemy},
		},
	}
}

func healCard(name string, cost, amount int) *Card {
	return &Card{
		Name: name,
		Cost: cost,
		Type: CardTypeSkill,
		Effects: []CardEffect{
			{Type: EffectHeal, Value: amount, Target: TargetSelf},
		},
	}
}

func blockCard(name string, cost, amount int) *Card {
	return &Card{
		Name: name,
		Cost: cost,
		Type: CardTypeSkill,
		Effects: []CardEffect{
			{Type: EffectBlock, Value: amount, Target: TargetSelf},
		},
	}
}

func effectCard(name string, cost int, effects ...CardEffect) *Card {
	return &Card{
		Name:    name,
		Cost:    cost,
		Type:    CardTypeSkill,
		Effects: effects,
	}
}

// passPolicy never acts, keeping the enemy inert for scripted tests.
type passPolicy struct{}

func (passPolicy) Choose(enemy, player *Combatant, affordable []EnemyAction) (EnemyAction, bool) {
	return EnemyAction{}, false
}

// newTestCombat builds a deterministic encounter: no shuffle, no think
// delay, in-memory log, and a passive enemy unless moves are given.
func newTestCombat(t *testing.T, enemyHealth int, moves []EnemyAction, cards ...*Card) (*CombatManager, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	cfg := CombatConfig{
		PlayerHealth:    50,
		PlayerMaxHealth: 50,
		EnemyName:       "Desert Guardian",
		EnemyHealth:     enemyHealth,
		EnemyMaxHealth:  enemyHealth,
		PlayerCards:     cards,
		Logger:          logger,
		NoShuffle:       true,
	}
	if moves != nil {
		cfg.EnemyMoves = moves
	} else {
		cfg.Policy = passPolicy{}
	}
	m, err := NewCombat(cfg)
	if err != nil {
		t.Fatalf("NewCombat: %v", err)
	}
	return m, logger
}

// runEnemyTurn ends the player turn and ticks Update until control
// returns to the player or combat ends.
func runEnemyTurn(t *testing.T, m *CombatManager) {
	t.Helper()
	if !m.EndPlayerTurn() {
		t.Fatalf("EndPlayerTurn failed in phase %s", m.Phase())
	}
	for i := 0; i < 10 && m.Phase() == PhaseEnemyTurn; i++ {
		m.Update(1.0)
	}
	if m.Phase() == PhaseEnemyTurn {
		t.Fatal("enemy turn never completed")
	}
}

// mustPlay plays a card by hand index and fails the test if it is rejected.
func mustPlay(t *testing.T, m *CombatManager, idx int) {
	t.Helper()
	card := m.HandCard(idx)
	if card == nil {
		t.Fatalf("no card at hand index %d", idx)
	}
	if !m.PlayCard(card) {
		t.Fatalf("PlayCard(%s) rejected in phase %s", card.Name, m.Phase())
	}
}
