package log

// EventType enumerates all observable combat events.
type EventType int

const (
	EventCombatStart EventType = iota
	EventNewTurn
	EventPhaseChange
	EventCardPlayed
	EventDamage
	EventBlockGained
	EventBlockDecayed
	EventHeal
	EventDraw
	EventReshuffle
	EventSandGained
	EventSandRefill
	EventStatusApplied
	EventStatusExpired
	EventMaxHealthRaised
	EventMaxSandRaised
	EventEnemyIntent
	EventEnemyAction
	EventEnemyPass
	EventVictory
	EventDefeat
	EventWarning
)

func (e EventType) String() string {
	switch e {
	case EventCombatStart:
		return "CombatStart"
	case EventNewTurn:
		return "NewTurn"
	case EventPhaseChange:
		return "PhaseChange"
	case EventCardPlayed:
		return "CardPlayed"
	case EventDamage:
		return "Damage"
	case EventBlockGained:
		return "BlockGained"
	case EventBlockDecayed:
		return "BlockDecayed"
	case EventHeal:
		return "Heal"
	case EventDraw:
		return "Draw"
	case EventReshuffle:
		return "Reshuffle"
	case EventSandGained:
		return "SandGained"
	case EventSandRefill:
		return "SandRefill"
	case EventStatusApplied:
		return "StatusApplied"
	case EventStatusExpired:
		return "StatusExpired"
	case EventMaxHealthRaised:
		return "MaxHealthRaised"
	case EventMaxSandRaised:
		return "MaxSandRaised"
	case EventEnemyIntent:
		return "EnemyIntent"
	case EventEnemyAction:
		return "EnemyAction"
	case EventEnemyPass:
		return "EnemyPass"
	case EventVictory:
		return "Victory"
	case EventDefeat:
		return "Defeat"
	case EventWarning:
		return "Warning"
	default:
		return "Unknown"
	}
}

// CombatEvent is a single observable event in a combat encounter. The
// event log is the engine's result log: renderers and tests consume it,
// the engine only appends to it.
type CombatEvent struct {
	Seq     int       // monotonic sequence number
	Turn    int       // which turn (1-based)
	Phase   string    // phase name at the time of the event
	Actor   string    // acting combatant ("Player" or the enemy's name)
	Type    EventType // event type
	Card    string    // card or enemy action name (if applicable)
	Amount  int       // damage dealt, health healed, block gained, etc.
	Details string    // human-readable detail string
}
