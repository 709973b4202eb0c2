package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for recording combat events.
type EventLogger interface {
	Log(event CombatEvent)
	Events() []CombatEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []CombatEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event CombatEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []CombatEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []CombatEvent {
	var result []CombatEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() CombatEvent {
	if len(l.events) == 0 {
		return CombatEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event CombatEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e CombatEvent) string {
	phase := e.Phase
	if phase == "" {
		phase = "          "
	}
	// Pad phase to 12 chars for alignment
	for len(phase) < 12 {
		phase += " "
	}

	return fmt.Sprintf("T%-2d %s| %s", e.Turn, phase, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []CombatEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewCombatStartEvent(enemyName string, playerHealth, enemyHealth int) CombatEvent {
	return CombatEvent{
		Turn:    1,
		Phase:   "Setup",
		Actor:   "Player",
		Type:    EventCombatStart,
		Details: fmt.Sprintf("=== Combat begins: Player (%d HP) vs %s (%d HP) ===", playerHealth, enemyName, enemyHealth),
	}
}

func NewTurnEvent(turn int) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   "Player Turn",
		Actor:   "Player",
		Type:    EventNewTurn,
		Details: fmt.Sprintf("=== Turn %d ===", turn),
	}
}

func NewPhaseChangeEvent(turn int, phase string) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   phase,
		Type:    EventPhaseChange,
		Details: fmt.Sprintf("Phase → %s", phase),
	}
}

func NewCardPlayedEvent(turn int, phase, cardName string, cost int) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   phase,
		Actor:   "Player",
		Type:    EventCardPlayed,
		Card:    cardName,
		Amount:  cost,
		Details: fmt.Sprintf("Player plays %s (%d sand)", cardName, cost),
	}
}

func NewDamageEvent(turn int, phase, source, target string, dealt, blocked int) CombatEvent {
	details := fmt.Sprintf("%s takes %d damage from %s", target, dealt, source)
	if blocked > 0 {
		details = fmt.Sprintf("%s takes %d damage from %s (%d blocked)", target, dealt, source, blocked)
	}
	return CombatEvent{
		Turn:    turn,
		Phase:   phase,
		Actor:   source,
		Type:    EventDamage,
		Amount:  dealt,
		Details: details,
	}
}

func NewBlockGainedEvent(turn int, phase, actor string, amount, total int) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   phase,
		Actor:   actor,
		Type:    EventBlockGained,
		Amount:  amount,
		Details: fmt.Sprintf("%s gains %d block (now %d)", actor, amount, total),
	}
}

func NewBlockDecayedEvent(turn int, phase, actor string, amount int) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   phase,
		Actor:   actor,
		Type:    EventBlockDecayed,
		Amount:  amount,
		Details: fmt.Sprintf("%s's %d block decays", actor, amount),
	}
}

func NewHealEvent(turn int, phase, actor string, amount, health int) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   phase,
		Actor:   actor,
		Type:    EventHeal,
		Amount:  amount,
		Details: fmt.Sprintf("%s heals %d (now %d HP)", actor, amount, health),
	}
}

func NewDrawEvent(turn int, phase string, count int) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   phase,
		Actor:   "Player",
		Type:    EventDraw,
		Amount:  count,
		Details: fmt.Sprintf("Player draws %d card(s)", count),
	}
}

func NewReshuffleEvent(turn int, phase string, count int) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   phase,
		Actor:   "Player",
		Type:    EventReshuffle,
		Amount:  count,
		Details: fmt.Sprintf("Discard pile (%d cards) reshuffled into deck", count),
	}
}

func NewSandGainedEvent(turn int, phase, actor string, amount, current int) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   phase,
		Actor:   actor,
		Type:    EventSandGained,
		Amount:  amount,
		Details: fmt.Sprintf("%s gains %d sand (now %d)", actor, amount, current),
	}
}

func NewSandRefillEvent(turn int, phase, actor string, current int) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   phase,
		Actor:   actor,
		Type:    EventSandRefill,
		Amount:  current,
		Details: fmt.Sprintf("%s's hourglass refills to %d sand", actor, current),
	}
}

func NewStatusAppliedEvent(turn int, phase, actor, status string, value int) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   phase,
		Actor:   actor,
		Type:    EventStatusApplied,
		Amount:  value,
		Details: fmt.Sprintf("%s gains %s %d", actor, status, value),
	}
}

func NewStatusExpiredEvent(turn int, phase, actor, status string) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   phase,
		Actor:   actor,
		Type:    EventStatusExpired,
		Details: fmt.Sprintf("%s's %s wears off", actor, status),
	}
}

func NewMaxHealthRaisedEvent(turn int, phase, actor string, amount, max int) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   phase,
		Actor:   actor,
		Type:    EventMaxHealthRaised,
		Amount:  amount,
		Details: fmt.Sprintf("%s's max health rises by %d (now %d)", actor, amount, max),
	}
}

func NewMaxSandRaisedEvent(turn int, phase, actor string, amount, max int) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   phase,
		Actor:   actor,
		Type:    EventMaxSandRaised,
		Amount:  amount,
		Details: fmt.Sprintf("%s's hourglass capacity rises by %d (now %d)", actor, amount, max),
	}
}

func NewEnemyIntentEvent(turn int, enemy, action string) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   "Enemy Turn",
		Actor:   enemy,
		Type:    EventEnemyIntent,
		Card:    action,
		Details: fmt.Sprintf("%s prepares %s", enemy, action),
	}
}

func NewEnemyActionEvent(turn int, enemy, action string, cost int) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   "Enemy Turn",
		Actor:   enemy,
		Type:    EventEnemyAction,
		Card:    action,
		Amount:  cost,
		Details: fmt.Sprintf("%s uses %s (%d sand)", enemy, action, cost),
	}
}

func NewEnemyPassEvent(turn int, enemy string) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   "Enemy Turn",
		Actor:   enemy,
		Type:    EventEnemyPass,
		Details: fmt.Sprintf("%s hesitates and does nothing", enemy),
	}
}

func NewVictoryEvent(turn int, enemy string) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   "Victory",
		Actor:   "Player",
		Type:    EventVictory,
		Details: fmt.Sprintf("Victory! %s is defeated", enemy),
	}
}

func NewDefeatEvent(turn int, enemy string) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   "Defeat",
		Actor:   enemy,
		Type:    EventDefeat,
		Details: "Defeat! The player has fallen",
	}
}

func NewWarningEvent(turn int, phase, details string) CombatEvent {
	return CombatEvent{
		Turn:    turn,
		Phase:   phase,
		Type:    EventWarning,
		Details: details,
	}
}
