package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/sandglass-games/duat/internal/game"
	"github.com/sandglass-games/duat/internal/proto"
)

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	SessionID string            `json:"session_id,omitempty"`
	DeckName  string            `json:"deck_name,omitempty"`
	Events    []proto.EventView `json:"events"`
	State     *proto.StateView  `json:"state,omitempty"`
	Over      bool              `json:"over"`
	Outcome   string            `json:"outcome,omitempty"` // "victory" or "defeat"
}

// CombatSession holds the state of a single MCP combat session.
type CombatSession struct {
	id       string
	deckName string
	combat   *game.CombatManager
	lastSeq  int
}

// NewCombatSession loads the deck and optional encounter from the content
// file and starts a combat.
func NewCombatSession(contentFile string, deckNumber int, encounter string, seed int64) (*CombatSession, error) {
	deckName, cards, err := game.DeckByNumber(contentFile, deckNumber)
	if err != nil {
		return nil, err
	}

	enemyName := "Desert Guardian"
	enemyHealth := 50
	var moves []game.EnemyAction
	if encounter != "" {
		encounters, err := game.ParseEncounterFile(contentFile)
		if err != nil {
			return nil, err
		}
		enc, ok := encounters[encounter]
		if !ok {
			return nil, fmt.Errorf("unknown encounter %q", encounter)
		}
		enemyName = enc.Name
		enemyHealth = enc.Health
		moves = enc.Moves
	}

	combat, err := game.NewCombat(game.CombatConfig{
		PlayerHealth:    50,
		PlayerMaxHealth: 50,
		EnemyName:       enemyName,
		EnemyHealth:     enemyHealth,
		EnemyMaxHealth:  enemyHealth,
		PlayerCards:     cards,
		EnemyMoves:      moves,
		Policy:          game.NewWeightedPolicy(seed),
		Seed:            seed,
	})
	if err != nil {
		return nil, err
	}

	return &CombatSession{
		id:       uuid.NewString(),
		deckName: deckName,
		combat:   combat,
	}, nil
}

// drainEvents returns the events logged since the previous drain.
func (s *CombatSession) drainEvents() []proto.EventView {
	fresh := []proto.EventView{}
	for _, e := range s.combat.Events() {
		if e.Seq > s.lastSeq {
			fresh = append(fresh, proto.NewEventView(e))
			s.lastSeq = e.Seq
		}
	}
	return fresh
}

// respond builds the standard tool response: fresh events plus the
// current state snapshot.
func (s *CombatSession) respond() *ToolResponse {
	resp := &ToolResponse{
		SessionID: s.id,
		DeckName:  s.deckName,
		Events:    s.drainEvents(),
	}

	view := proto.NewStateView(s.combat.State(), s.combat.HandCards())
	resp.State = &view

	switch s.combat.Phase() {
	case game.PhaseVictory:
		resp.Over = true
		resp.Outcome = "victory"
	case game.PhaseDefeat:
		resp.Over = true
		resp.Outcome = "defeat"
	}
	return resp
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
