package proto

// Message types for the JSON protocol shared by the websocket and MCP
// frontends.

import (
	"github.com/sandglass-games/duat/internal/game"
	"github.com/sandglass-games/duat/internal/log"
)

// --- Server → Client messages ---

// ServerMessage is the envelope for all server-to-client messages.
type ServerMessage struct {
	Type string `json:"type"`

	// For "state"
	State *StateView `json:"state,omitempty"`

	// For "events"
	Events []EventView `json:"events,omitempty"`

	// For "error"
	Error string `json:"error,omitempty"`

	// For "started"
	SessionID string `json:"session_id,omitempty"`
	DeckName  string `json:"deck_name,omitempty"`
}

// EventView is a simplified combat event for the client.
type EventView struct {
	Seq     int    `json:"seq"`
	Turn    int    `json:"turn"`
	Phase   string `json:"phase"`
	Actor   string `json:"actor,omitempty"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Amount  int    `json:"amount,omitempty"`
	Details string `json:"details"`
}

// StateView is the combat state as the player sees it.
type StateView struct {
	Phase    string        `json:"phase"`
	Turn     int           `json:"turn"`
	Over     bool          `json:"over"`
	You      CombatantView `json:"you"`
	Enemy    CombatantView `json:"enemy"`
	Hand     []CardView    `json:"hand"`
	DeckSize int           `json:"deck_size"`
	Discards int           `json:"discards"`
}

// CombatantView shows one side of the encounter.
type CombatantView struct {
	Name      string         `json:"name"`
	Health    int            `json:"health"`
	MaxHealth int            `json:"max_health"`
	Block     int            `json:"block,omitempty"`
	Sand      int            `json:"sand"`
	MaxSand   int            `json:"max_sand"`
	Statuses  map[string]int `json:"statuses,omitempty"`
	Intent    *IntentView    `json:"intent,omitempty"`
}

// IntentView describes the enemy action taken this turn.
type IntentView struct {
	Name   string `json:"name"`
	Cost   int    `json:"cost"`
	Damage int    `json:"damage,omitempty"`
	Block  int    `json:"block,omitempty"`
}

// CardView describes a card in the player's hand.
type CardView struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	Cost        int    `json:"cost"`
	Type        string `json:"type"`
	Rarity      string `json:"rarity"`
	Description string `json:"description"`
	FlavorText  string `json:"flavor_text,omitempty"`
}

// --- Client → Server messages ---

// ClientMessage is the envelope for all client-to-server messages.
type ClientMessage struct {
	Type string `json:"type"`

	// For "start" (initial handshake)
	DeckNumber int    `json:"deck_number,omitempty"`
	Encounter  string `json:"encounter,omitempty"`
	Seed       int64  `json:"seed,omitempty"`

	// For "play_card"
	Index int `json:"index,omitempty"`
}

// --- View construction ---

// NewStateView builds a StateView from an engine snapshot plus the hand
// card templates for cost and description display.
func NewStateView(st game.CombatState, hand []*game.Card) StateView {
	sv := StateView{
		Phase:    st.Phase.String(),
		Turn:     st.Turn,
		Over:     st.Phase.Terminal(),
		You:      newCombatantView(st.Player),
		Enemy:    newCombatantView(st.Enemy),
		DeckSize: st.DeckSize,
		Discards: st.Discards,
	}
	if st.EnemyIntent != nil {
		sv.Enemy.Intent = &IntentView{
			Name:   st.EnemyIntent.Name,
			Cost:   st.EnemyIntent.Cost,
			Damage: st.EnemyIntent.TotalDamage(),
			Block:  st.EnemyIntent.TotalBlock(),
		}
	}
	for i, c := range hand {
		sv.Hand = append(sv.Hand, NewCardView(i, c))
	}
	return sv
}

func newCombatantView(cs game.CombatantState) CombatantView {
	return CombatantView{
		Name:      cs.Name,
		Health:    cs.Health,
		MaxHealth: cs.MaxHealth,
		Block:     cs.Block,
		Sand:      cs.Sand,
		MaxSand:   cs.MaxSand,
		Statuses:  cs.Statuses,
	}
}

// NewCardView builds a CardView for one hand slot.
func NewCardView(index int, c *game.Card) CardView {
	return CardView{
		Index:       index,
		Name:        c.Name,
		Cost:        c.Cost,
		Type:        c.Type.String(),
		Rarity:      c.Rarity.String(),
		Description: c.Description,
		FlavorText:  c.FlavorText,
	}
}

// NewEventView converts a combat log event for the wire.
func NewEventView(e log.CombatEvent) EventView {
	return EventView{
		Seq:     e.Seq,
		Turn:    e.Turn,
		Phase:   e.Phase,
		Actor:   e.Actor,
		Type:    e.Type.String(),
		Card:    e.Card,
		Amount:  e.Amount,
		Details: e.Details,
	}
}

// NewEventViews converts a slice of combat log events.
func NewEventViews(events []log.CombatEvent) []EventView {
	views := make([]EventView, 0, len(events))
	for _, e := range events {
		views = append(views, NewEventView(e))
	}
	return views
}
