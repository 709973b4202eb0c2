package game

import (
	"errors"
	"testing"

	"github.com/sandglass-games/duat/internal/log"
)

// TestStrikeVictoryAcrossTurns: a 20-health enemy dies to four 6-damage
// strikes played over two turns; the fourth strike on turn one is
// rejected for lack of sand.
func TestStrikeVictoryAcrossTurns(t *testing.T) {
	cards := []*Card{
		attackCard("Strike", 1, 6),
		attackCard("Strike", 1, 6),
		attackCard("Strike", 1, 6),
		attackCard("Strike", 1, 6),
	}
	m, logger := newTestCombat(t, 20, nil, cards...)

	// Turn 1: three strikes empty the hourglass.
	mustPlay(t, m, 0)
	mustPlay(t, m, 0)
	mustPlay(t, m, 0)

	st := m.State()
	if st.Enemy.Health != 2 {
		t.Fatalf("expected enemy at 2 health, got %d", st.Enemy.Health)
	}
	if st.Player.Sand != 0 {
		t.Fatalf("expected 0 sand, got %d", st.Player.Sand)
	}

	// Fourth strike is unaffordable and must not mutate anything.
	if m.PlayCard(m.HandCard(0)) {
		t.Fatal("unaffordable card should be rejected")
	}
	if got := m.State(); got.Enemy.Health != 2 || got.HandSize != 1 {
		t.Fatalf("rejected play mutated state: %+v", got)
	}

	runEnemyTurn(t, m)

	if m.Turn() != 2 {
		t.Fatalf("expected turn 2, got %d", m.Turn())
	}
	if got := m.State().Player.Sand; got != PlayerTurnSand {
		t.Fatalf("expected sand refilled to %d, got %d", PlayerTurnSand, got)
	}

	// Turn 2: the hand refill reshuffles the three discarded strikes.
	if len(logger.EventsOfType(log.EventReshuffle)) == 0 {
		t.Error("expected a reshuffle event during the hand refill")
	}

	mustPlay(t, m, 0)

	if m.Phase() != PhaseVictory {
		t.Fatalf("expected VICTORY, got %s", m.Phase())
	}
	if len(logger.EventsOfType(log.EventVictory)) != 1 {
		t.Error("expected exactly one victory event")
	}
}

func TestPlayCardOutsidePlayerTurn(t *testing.T) {
	m, _ := newTestCombat(t, 50, nil, attackCard("Strike", 1, 6), attackCard("Strike", 1, 6))

	card := m.HandCard(0)
	if !m.EndPlayerTurn() {
		t.Fatal("EndPlayerTurn should succeed during PLAYER_TURN")
	}
	if m.PlayCard(card) {
		t.Error("PlayCard should be rejected during ENEMY_TURN")
	}
}

func TestPlayCardNotInHand(t *testing.T) {
	m, _ := newTestCombat(t, 50, nil, attackCard("Strike", 1, 6))

	stray := attackCard("Strike", 1, 6) // same name, never dealt
	if m.PlayCard(stray) {
		t.Error("a card object not in the hand must be rejected")
	}
	if m.PlayCard(nil) {
		t.Error("nil card must be rejected")
	}
}

func TestEndTurnWithEmptyHand(t *testing.T) {
	m, logger := newTestCombat(t, 50, nil)

	if got := len(logger.EventsOfType(log.EventWarning)); got != 1 {
		t.Errorf("expected a warning for the empty card list, got %d", got)
	}
	if !m.EndPlayerTurn() {
		t.Fatal("ending the turn with an empty hand should be legal")
	}
	m.Update(1.0)
	if m.Phase() != PhasePlayerTurn || m.Turn() != 2 {
		t.Errorf("expected PLAYER_TURN turn 2, got %s turn %d", m.Phase(), m.Turn())
	}
}

func TestEnemyActsExactlyOncePerTurn(t *testing.T) {
	m, logger := newTestCombat(t, 50, DefaultEnemyMoves(), attackCard("Strike", 1, 6))

	runEnemyTurn(t, m)

	actions := logger.EventsOfType(log.EventEnemyAction)
	if len(actions) != 1 {
		t.Fatalf("expected exactly one enemy action, got %d", len(actions))
	}
	// Healthy enemy with 2 sand picks its biggest affordable attack.
	if actions[0].Card != "Claw Strike" {
		t.Errorf("expected Claw Strike, got %s", actions[0].Card)
	}
	if got := m.State().Player.Health; got != 42 {
		t.Errorf("expected player at 42 after an 8-damage claw, got %d", got)
	}

	// Extra Update calls during PLAYER_TURN must not re-run the policy.
	m.Update(5.0)
	m.Update(5.0)
	if got := len(logger.EventsOfType(log.EventEnemyAction)); got != 1 {
		t.Errorf("policy ran again outside ENEMY_TURN: %d actions", got)
	}
}

func TestThinkDelayGatesEnemyAction(t *testing.T) {
	logger := log.NewMemoryLogger()
	m, err := NewCombat(CombatConfig{
		PlayerHealth:    50,
		PlayerMaxHealth: 50,
		EnemyName:       "Desert Guardian",
		EnemyHealth:     50,
		EnemyMaxHealth:  50,
		PlayerCards:     []*Card{attackCard("Strike", 1, 6)},
		Logger:          logger,
		NoShuffle:       true,
		ThinkDelay:      1.0,
	})
	if err != nil {
		t.Fatalf("NewCombat: %v", err)
	}

	m.EndPlayerTurn()
	m.Update(0.4)
	if m.Phase() != PhaseEnemyTurn {
		t.Fatal("enemy should still be thinking at 0.4s")
	}
	if len(logger.EventsOfType(log.EventEnemyAction)) != 0 {
		t.Fatal("enemy acted before the think delay elapsed")
	}
	m.Update(0.4)
	if m.Phase() != PhaseEnemyTurn {
		t.Fatal("enemy should still be thinking at 0.8s")
	}
	m.Update(0.4)
	if m.Phase() != PhasePlayerTurn {
		t.Fatalf("expected control back at 1.2s, still %s", m.Phase())
	}
	if len(logger.EventsOfType(log.EventEnemyAction)) != 1 {
		t.Error("expected exactly one enemy action after the delay")
	}
}

func TestMutualKillIsPlayerVictory(t *testing.T) {
	backlash := effectCard("Backlash", 1,
		CardEffect{Type: EffectDamage, Value: 10, Target: TargetEnemy},
		CardEffect{Type: EffectDamage, Value: 10, Target: TargetSelf},
	)
	m, logger := newTestCombat(t, 5, nil, backlash)
	m.player.Health = 5

	mustPlay(t, m, 0)

	if m.Phase() != PhaseVictory {
		t.Fatalf("mutual kill should favor the player, got %s", m.Phase())
	}
	if len(logger.EventsOfType(log.EventDefeat)) != 0 {
		t.Error("no defeat event should follow a mutual kill")
	}
}

func TestDefeatWhenEnemyKillsPlayer(t *testing.T) {
	moves := []EnemyAction{{
		Name:   "Obliterate",
		Cost:   1,
		Weight: 1,
		Effects: []CardEffect{
			{Type: EffectDamage, Value: 100, Target: TargetEnemy},
		},
	}}
	m, logger := newTestCombat(t, 50, moves, attackCard("Strike", 1, 6))

	m.EndPlayerTurn()
	m.Update(1.0)

	if m.Phase() != PhaseDefeat {
		t.Fatalf("expected DEFEAT, got %s", m.Phase())
	}
	if len(logger.EventsOfType(log.EventDefeat)) != 1 {
		t.Error("expected a defeat event")
	}
}

func TestTerminalPhaseRejectsAllInput(t *testing.T) {
	m, _ := newTestCombat(t, 5, nil, attackCard("Strike", 1, 6), attackCard("Strike", 1, 6))

	mustPlay(t, m, 0)
	if m.Phase() != PhaseVictory {
		t.Fatalf("expected VICTORY, got %s", m.Phase())
	}

	before := m.State()
	if m.PlayCard(m.HandCard(0)) {
		t.Error("PlayCard must fail in a terminal phase")
	}
	if m.EndPlayerTurn() {
		t.Error("EndPlayerTurn must fail in a terminal phase")
	}
	m.Update(10.0)
	after := m.State()
	if after.Phase != before.Phase || after.Turn != before.Turn ||
		after.Player.Health != before.Player.Health || after.HandSize != before.HandSize {
		t.Errorf("terminal state mutated: before %+v, after %+v", before, after)
	}
}

// Termination can be reached by means other than an action resolution;
// Update must notice on its next tick.
func TestUpdateDetectsOutOfBandDeath(t *testing.T) {
	m, _ := newTestCombat(t, 50, nil, attackCard("Strike", 1, 6))

	m.enemy.Health = 0
	m.Update(0.1)
	if m.Phase() != PhaseVictory {
		t.Errorf("expected VICTORY after out-of-band death, got %s", m.Phase())
	}
}

func TestMalformedCardRejectedAtSetup(t *testing.T) {
	bad := effectCard("Mind Leech", 1,
		CardEffect{Type: EffectDrawCards, Value: 2, Target: TargetEnemy},
	)
	_, err := NewCombat(CombatConfig{
		PlayerHealth:    50,
		PlayerMaxHealth: 50,
		EnemyName:       "Desert Guardian",
		EnemyHealth:     50,
		EnemyMaxHealth:  50,
		PlayerCards:     []*Card{bad},
	})
	if err == nil {
		t.Fatal("expected setup to fail on a malformed card")
	}
	if !errors.Is(err, ErrMalformedEffect) {
		t.Errorf("expected ErrMalformedEffect, got %v", err)
	}
}

func TestMalformedEnemyMoveRejectedAtSetup(t *testing.T) {
	moves := []EnemyAction{{
		Name: "Forbidden Draw",
		Cost: 1,
		Effects: []CardEffect{
			{Type: EffectDrawCards, Value: 1, Target: TargetSelf},
		},
	}}
	_, err := NewCombat(CombatConfig{
		PlayerHealth:    50,
		PlayerMaxHealth: 50,
		EnemyName:       "Desert Guardian",
		EnemyHealth:     50,
		EnemyMaxHealth:  50,
		PlayerCards:     []*Card{attackCard("Strike", 1, 6)},
		EnemyMoves:      moves,
	})
	if !errors.Is(err, ErrMalformedEffect) {
		t.Errorf("expected ErrMalformedEffect, got %v", err)
	}
}

func TestGainSandEffect(t *testing.T) {
	m, _ := newTestCombat(t, 50, nil, SandGrain(), RasSolarFlare())

	mustPlay(t, m, 0) // Sand Grain: cost 0, gain 1
	if got := m.State().Player.Sand; got != 4 {
		t.Errorf("expected 4 sand after Sand Grain, got %d", got)
	}
}

func TestDrawEffectPullsFromDeck(t *testing.T) {
	cards := []*Card{
		effectCard("Scry", 0, CardEffect{Type: EffectDrawCards, Value: 2, Target: TargetSelf}),
		attackCard("Strike", 1, 6),
		attackCard("Strike", 1, 6),
		attackCard("Strike", 1, 6),
		attackCard("Strike", 1, 6),
		attackCard("Buried A", 1, 6),
		attackCard("Buried B", 1, 6),
	}
	m, _ := newTestCombat(t, 50, nil, cards...)

	st := m.State()
	if st.HandSize != HandSize || st.DeckSize != 2 {
		t.Fatalf("expected 5 hand / 2 deck, got %d / %d", st.HandSize, st.DeckSize)
	}

	mustPlay(t, m, 0) // Scry draws both buried cards

	st = m.State()
	if st.HandSize != 6 || st.DeckSize != 0 {
		t.Errorf("expected 6 hand / 0 deck after draw, got %d / %d", st.HandSize, st.DeckSize)
	}
}

func TestStrengthRaisesCardDamage(t *testing.T) {
	cards := []*Card{
		effectCard("War Chant", 0, CardEffect{Type: EffectApplyStrength, Value: 3, Target: TargetSelf}),
		attackCard("Strike", 1, 6),
	}
	m, _ := newTestCombat(t, 50, nil, cards...)

	mustPlay(t, m, 0)
	mustPlay(t, m, 0) // 6 base + 3 strength

	if got := m.State().Enemy.Health; got != 41 {
		t.Errorf("expected enemy at 41, got %d", got)
	}
}

func TestWeakLowersEnemyDamage(t *testing.T) {
	cards := []*Card{
		effectCard("Enfeeble", 0, CardEffect{Type: EffectApplyWeak, Value: 2, Target: TargetEnemy}),
	}
	m, _ := newTestCombat(t, 50, DefaultEnemyMoves(), cards...)

	mustPlay(t, m, 0)
	runEnemyTurn(t, m)

	// Weak ticks 2 → 1 at the enemy's turn start, so Claw Strike lands
	// for 8 − 1 = 7.
	if got := m.State().Player.Health; got != 43 {
		t.Errorf("expected player at 43, got %d", got)
	}
}

func TestBlockDecaysAtOwnerTurnStart(t *testing.T) {
	cards := []*Card{
		blockCard("Brace", 1, 10),
		attackCard("Strike", 1, 6),
	}
	m, logger := newTestCombat(t, 50, DefaultEnemyMoves(), cards...)

	mustPlay(t, m, 0)
	if got := m.State().Player.Block; got != 10 {
		t.Fatalf("expected 10 block, got %d", got)
	}

	runEnemyTurn(t, m)

	// Claw Strike's 8 damage is fully absorbed; the 2 leftover block
	// decays when the player's next turn starts.
	st := m.State()
	if st.Player.Health != 50 {
		t.Errorf("block should have absorbed the claw, player at %d", st.Player.Health)
	}
	if st.Player.Block != 0 {
		t.Errorf("leftover block should decay at turn start, got %d", st.Player.Block)
	}
	if len(logger.EventsOfType(log.EventBlockDecayed)) == 0 {
		t.Error("expected a block decay event")
	}
}

func TestPharaohsResurrectionRestoresAndRaisesSand(t *testing.T) {
	cards := []*Card{
		SandGrain(), SandGrain(), SandGrain(), // 3 + 3 gained = 6 sand
		PharaohsResurrection(),
	}
	m, _ := newTestCombat(t, 50, nil, cards...)
	m.player.Health = 10

	mustPlay(t, m, 0)
	mustPlay(t, m, 0)
	mustPlay(t, m, 0)
	mustPlay(t, m, 0) // costs all 6 sand, heals to full, gains 3

	st := m.State()
	if st.Player.Health != 50 {
		t.Errorf("expected full health, got %d", st.Player.Health)
	}
	if st.Player.Sand != 3 {
		t.Errorf("expected 3 sand after resurrection, got %d", st.Player.Sand)
	}
}

func TestStateSnapshotIsDetached(t *testing.T) {
	m, _ := newTestCombat(t, 50, nil, attackCard("Strike", 1, 6))

	st := m.State()
	st.Player.Health = 1
	st.Enemy.Health = 1
	if len(st.Hand) > 0 {
		st.Hand[0] = "Tampered"
	}

	fresh := m.State()
	if fresh.Player.Health != 50 || fresh.Enemy.Health != 50 {
		t.Error("mutating a snapshot must not affect the engine")
	}
	if fresh.Hand[0] != "Strike" {
		t.Error("hand snapshot should be a copy")
	}
}

func TestSetupCombatDefaults(t *testing.T) {
	m, err := SetupCombat(50, 50, "Desert Guardian", 50, 50, []*Card{TombStrike()})
	if err != nil {
		t.Fatalf("SetupCombat: %v", err)
	}
	st := m.State()
	if st.Phase != PhasePlayerTurn || st.Turn != 1 {
		t.Errorf("expected PLAYER_TURN turn 1, got %s turn %d", st.Phase, st.Turn)
	}
	if st.Player.Sand != PlayerTurnSand {
		t.Errorf("expected %d starting sand, got %d", PlayerTurnSand, st.Player.Sand)
	}
	if st.Enemy.Sand != EnemyTurnSand {
		t.Errorf("expected %d enemy sand, got %d", EnemyTurnSand, st.Enemy.Sand)
	}
}
