package game

import (
	"fmt"
	"math/rand"

	"github.com/sandglass-games/duat/internal/log"
)

// DefaultThinkDelay is how long the enemy "thinks" before acting, in
// seconds of Update time. Purely presentational; tests set it to 0.
const DefaultThinkDelay = 1.5

// CombatConfig holds configuration for creating a new combat encounter.
type CombatConfig struct {
	PlayerHealth    int
	PlayerMaxHealth int

	EnemyName      string
	EnemyHealth    int
	EnemyMaxHealth int

	PlayerCards []*Card       // opening hand + deck, dealt in order
	EnemyMoves  []EnemyAction // nil = DefaultEnemyMoves()

	Policy     EnemyPolicy     // nil = NewHeuristicPolicy()
	Logger     log.EventLogger // nil = MemoryLogger
	Seed       int64           // RNG seed for reshuffles and WeightedPolicy
	NoShuffle  bool            // skip the opening deck shuffle (deterministic tests)
	ThinkDelay float64         // seconds before the enemy acts; negative = DefaultThinkDelay
}

// CombatManager owns all combat state and drives the phase machine
// SETUP → PLAYER_TURN → ENEMY_TURN → … → VICTORY | DEFEAT. It is the sole
// mutator of the combatants it owns; external callers interact only
// through PlayCard, EndPlayerTurn, Update and State.
type CombatManager struct {
	phase Phase
	turn  int

	player *Combatant
	enemy  *Combatant

	moves  []EnemyAction
	policy EnemyPolicy
	intent *EnemyAction // chosen action this enemy turn, for State()

	logger log.EventLogger
	rng    *rand.Rand

	thinkDelay     float64
	thinkRemaining float64
}

// NewCombat validates the content, builds both combatants, deals the
// opening hand, and enters PLAYER_TURN with turn number 1.
func NewCombat(cfg CombatConfig) (*CombatManager, error) {
	for _, card := range cfg.PlayerCards {
		if err := ValidateCard(card); err != nil {
			return nil, err
		}
	}
	moves := cfg.EnemyMoves
	if moves == nil {
		moves = DefaultEnemyMoves()
	}
	for _, a := range moves {
		if err := ValidateEnemyAction(a); err != nil {
			return nil, err
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	policy := cfg.Policy
	if policy == nil {
		policy = NewHeuristicPolicy()
	}
	thinkDelay := cfg.ThinkDelay
	if thinkDelay < 0 {
		thinkDelay = DefaultThinkDelay
	}

	m := &CombatManager{
		phase:      PhaseSetup,
		player:     NewCombatant("Player", cfg.PlayerHealth, cfg.PlayerMaxHealth, NewHourGlass(DefaultMaxSand, PlayerTurnSand), true),
		enemy:      NewCombatant(cfg.EnemyName, cfg.EnemyHealth, cfg.EnemyMaxHealth, NewHourGlass(DefaultMaxSand, EnemyTurnSand), false),
		moves:      moves,
		policy:     policy,
		logger:     logger,
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		thinkDelay: thinkDelay,
	}

	// Deal: first HandSize cards become the opening hand, the rest the deck.
	cards := cfg.PlayerCards
	if len(cards) > HandSize {
		m.player.Hand = append(m.player.Hand, cards[:HandSize]...)
		m.player.Deck = append(m.player.Deck, cards[HandSize:]...)
		if !cfg.NoShuffle {
			m.rng.Shuffle(len(m.player.Deck), func(i, j int) {
				m.player.Deck[i], m.player.Deck[j] = m.player.Deck[j], m.player.Deck[i]
			})
		}
	} else {
		m.player.Hand = append(m.player.Hand, cards...)
	}

	m.player.Sand.SetSand(PlayerTurnSand)
	m.enemy.Sand.SetSand(EnemyTurnSand)

	m.turn = 1
	m.logEvent(log.NewCombatStartEvent(m.enemy.Name, m.player.Health, m.enemy.Health))
	if len(cards) == 0 {
		m.logEvent(log.NewWarningEvent(m.turn, m.phase.String(), "combat started with an empty card list"))
	}

	m.phase = PhasePlayerTurn
	m.logEvent(log.NewTurnEvent(m.turn))

	return m, nil
}

// SetupCombat is the convenience constructor matching the engine's
// documented entry point. It uses the default enemy move set, policy,
// think delay and an in-memory event log.
func SetupCombat(playerHealth, playerMaxHealth int, enemyName string, enemyHealth, enemyMaxHealth int, playerCards []*Card) (*CombatManager, error) {
	return NewCombat(CombatConfig{
		PlayerHealth:    playerHealth,
		PlayerMaxHealth: playerMaxHealth,
		EnemyName:       enemyName,
		EnemyHealth:     enemyHealth,
		EnemyMaxHealth:  enemyMaxHealth,
		PlayerCards:     playerCards,
	})
}

// PlayCard attempts to play a card from the player's hand. It returns
// false, with no state mutated, when the phase is wrong, the card is
// not in hand, or the player cannot afford it. On success the cost is
// spent, the card moves to the discard pile, its effects resolve in
// order, and the termination check runs.
func (m *CombatManager) PlayCard(card *Card) bool {
	if m.phase != PhasePlayerTurn || card == nil {
		return false
	}
	if !m.player.InHand(card) {
		return false
	}
	if !m.player.Sand.CanAfford(card.Cost) {
		return false
	}

	// Legality fully established; the play is atomic from here on.
	m.player.Sand.Spend(card.Cost)
	m.player.RemoveFromHand(card)
	m.player.Discard = append(m.player.Discard, card)

	m.logEvent(log.NewCardPlayedEvent(m.turn, m.phase.String(), card.Name, card.Cost))
	if err := m.resolveEffects(card.Name, card.Effects, m.player, m.enemy); err != nil {
		// Malformed content slipped past load-time validation; surface it
		// loudly rather than leaving combat half-resolved.
		panic(fmt.Sprintf("resolve %s: %v", card.Name, err))
	}

	m.resolveOutcome()
	return true
}

// EndPlayerTurn hands control to the enemy. Legal only during PLAYER_TURN;
// returns false otherwise. Ending the turn with an empty hand is fine.
func (m *CombatManager) EndPlayerTurn() bool {
	if m.phase != PhasePlayerTurn {
		return false
	}
	m.phase = PhaseEnemyTurn
	m.logEvent(log.NewPhaseChangeEvent(m.turn, m.phase.String()))

	m.startEnemyTurn()
	return true
}

// startEnemyTurn resets the enemy's turn-scoped state and arms the think
// timer. The decision policy runs later, from Update, once the timer
// elapses.
func (m *CombatManager) startEnemyTurn() {
	blockLost, expired := m.enemy.StartTurn()
	if blockLost > 0 {
		m.logEvent(log.NewBlockDecayedEvent(m.turn, m.phase.String(), m.enemy.Name, blockLost))
	}
	for _, s := range expired {
		m.logEvent(log.NewStatusExpiredEvent(m.turn, m.phase.String(), m.enemy.Name, s.String()))
	}
	m.enemy.Sand.RefillForNewTurn()
	m.logEvent(log.NewSandRefillEvent(m.turn, m.phase.String(), m.enemy.Name, m.enemy.Sand.Grains()))

	m.intent = nil
	m.thinkRemaining = m.thinkDelay
}

// Update advances time-boxed sub-phases. During ENEMY_TURN it counts down
// the think delay and, once elapsed, consults the decision policy exactly
// once, resolves the chosen action, checks termination, and returns
// control to the player. Calling Update in a terminal phase does nothing.
func (m *CombatManager) Update(dt float64) {
	if m.phase.Terminal() {
		return
	}

	// Termination can also be reached outside of an action resolution
	// (e.g. a harness-driven mutation); re-check every frame.
	if m.resolveOutcome() {
		return
	}

	if m.phase != PhaseEnemyTurn {
		return
	}

	if dt > 0 {
		m.thinkRemaining -= dt
	}
	if m.thinkRemaining > 0 {
		return
	}

	m.executeEnemyAction()
	if m.phase.Terminal() {
		return
	}
	m.startPlayerTurn()
}

// executeEnemyAction consults the policy and resolves its choice.
func (m *CombatManager) executeEnemyAction() {
	affordable := make([]EnemyAction, 0, len(m.moves))
	for _, a := range m.moves {
		if m.enemy.Sand.CanAfford(a.Cost) {
			affordable = append(affordable, a)
		}
	}

	action, ok := m.policy.Choose(m.enemy, m.player, affordable)
	if !ok {
		m.logEvent(log.NewEnemyPassEvent(m.turn, m.enemy.Name))
		return
	}
	if !m.enemy.Sand.Spend(action.Cost) {
		// Policy returned an unaffordable action; treat it as a pass
		// rather than crashing the encounter.
		m.logEvent(log.NewEnemyPassEvent(m.turn, m.enemy.Name))
		return
	}

	m.intent = &action
	m.logEvent(log.NewEnemyIntentEvent(m.turn, m.enemy.Name, action.Name))
	m.logEvent(log.NewEnemyActionEvent(m.turn, m.enemy.Name, action.Name, action.Cost))
	if err := m.resolveEffects(action.Name, action.Effects, m.enemy, m.player); err != nil {
		panic(fmt.Sprintf("resolve %s: %v", action.Name, err))
	}

	m.resolveOutcome()
}

// startPlayerTurn begins the next player turn: turn counter, block decay,
// status tick, hourglass refill, and hand refill.
func (m *CombatManager) startPlayerTurn() {
	m.turn++
	m.phase = PhasePlayerTurn
	m.logEvent(log.NewTurnEvent(m.turn))

	blockLost, expired := m.player.StartTurn()
	if blockLost > 0 {
		m.logEvent(log.NewBlockDecayedEvent(m.turn, m.phase.String(), m.player.Name, blockLost))
	}
	for _, s := range expired {
		m.logEvent(log.NewStatusExpiredEvent(m.turn, m.phase.String(), m.player.Name, s.String()))
	}

	m.player.Sand.RefillForNewTurn()
	m.logEvent(log.NewSandRefillEvent(m.turn, m.phase.String(), m.player.Name, m.player.Sand.Grains()))

	// Refill the hand back up to HandSize.
	if need := HandSize - len(m.player.Hand); need > 0 {
		m.drawCards(need)
	}
}

// resolveOutcome applies the mutual-kill tie-break: the enemy's death is
// checked BEFORE the player's, so a resolution batch that drops both to
// zero is a player victory. Returns true if combat ended.
func (m *CombatManager) resolveOutcome() bool {
	if m.phase.Terminal() {
		return true
	}
	if !m.enemy.Alive() {
		m.phase = PhaseVictory
		m.logEvent(log.NewVictoryEvent(m.turn, m.enemy.Name))
		return true
	}
	if !m.player.Alive() {
		m.phase = PhaseDefeat
		m.logEvent(log.NewDefeatEvent(m.turn, m.enemy.Name))
		return true
	}
	return false
}

func (m *CombatManager) logEvent(event log.CombatEvent) {
	m.logger.Log(event)
}

// Events returns the combat log recorded so far.
func (m *CombatManager) Events() []log.CombatEvent {
	return m.logger.Events()
}

// --- Read-only state snapshot ---

// CombatantState is one side's visible state inside a CombatState.
type CombatantState struct {
	Name      string
	Health    int
	MaxHealth int
	Block     int
	Sand      int
	MaxSand   int
	Statuses  map[string]int
	Intent    string // enemy only: name of the action being taken
}

// CombatState is a read-only snapshot of the encounter, decoupling the
// engine from any renderer. Mutating it has no effect on the engine.
type CombatState struct {
	Phase       Phase
	Turn        int
	Player      CombatantState
	Enemy       CombatantState
	EnemyIntent *EnemyAction // action taken this enemy turn, if any
	HandSize    int
	Hand        []string // card names, in hand order
	DeckSize    int
	Discards    int
}

// State returns the current snapshot. It never mutates the encounter.
func (m *CombatManager) State() CombatState {
	st := CombatState{
		Phase:    m.phase,
		Turn:     m.turn,
		Player:   snapshotCombatant(m.player),
		Enemy:    snapshotCombatant(m.enemy),
		HandSize: len(m.player.Hand),
		DeckSize: len(m.player.Deck),
		Discards: len(m.player.Discard),
	}
	for _, c := range m.player.Hand {
		st.Hand = append(st.Hand, c.Name)
	}
	if m.intent != nil {
		st.Enemy.Intent = m.intent.Name
		action := *m.intent
		st.EnemyIntent = &action
	}
	return st
}

func snapshotCombatant(c *Combatant) CombatantState {
	cs := CombatantState{
		Name:      c.Name,
		Health:    c.Health,
		MaxHealth: c.MaxHealth,
		Block:     c.Block,
		Sand:      c.Sand.Grains(),
		MaxSand:   c.Sand.MaxGrains(),
	}
	if len(c.Statuses) > 0 {
		cs.Statuses = make(map[string]int, len(c.Statuses))
		for s, v := range c.Statuses {
			cs.Statuses[s.String()] = v
		}
	}
	return cs
}

// Phase returns the current phase of the state machine.
func (m *CombatManager) Phase() Phase {
	return m.phase
}

// Turn returns the 1-based turn counter.
func (m *CombatManager) Turn() int {
	return m.turn
}

// HandCard returns the idx-th card in the player's hand, or nil.
func (m *CombatManager) HandCard(idx int) *Card {
	if idx < 0 || idx >= len(m.player.Hand) {
		return nil
	}
	return m.player.Hand[idx]
}

// HandCards returns a copy of the player's hand in order.
func (m *CombatManager) HandCards() []*Card {
	hand := make([]*Card, len(m.player.Hand))
	copy(hand, m.player.Hand)
	return hand
}
