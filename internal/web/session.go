package web

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sandglass-games/duat/internal/game"
	"github.com/sandglass-games/duat/internal/proto"
)

// session drives one combat encounter over a websocket connection.
type session struct {
	id          string
	contentFile string
	conn        *websocket.Conn

	combat  *game.CombatManager
	lastSeq int // highest event seq already sent
}

func newSession(contentFile string, conn *websocket.Conn) *session {
	return &session{
		id:          uuid.NewString(),
		contentFile: contentFile,
		conn:        conn,
	}
}

// run reads client commands until the connection drops or combat ends.
func (s *session) run(ctx context.Context) {
	for {
		_, data, err := s.conn.Read(ctx)
		if err != nil {
			return
		}

		var msg proto.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError(ctx, "malformed message")
			continue
		}

		switch msg.Type {
		case "start":
			s.handleStart(ctx, msg)
		case "play_card":
			s.handlePlayCard(ctx, msg)
		case "end_turn":
			s.handleEndTurn(ctx)
		case "state":
			s.sendState(ctx)
		default:
			s.sendError(ctx, fmt.Sprintf("unknown message type %q", msg.Type))
		}

		if s.combat != nil && s.combat.Phase().Terminal() {
			s.sendState(ctx)
			s.conn.Close(websocket.StatusNormalClosure, "combat ended")
			return
		}
	}
}

func (s *session) handleStart(ctx context.Context, msg proto.ClientMessage) {
	if s.combat != nil {
		s.sendError(ctx, "combat already started")
		return
	}

	deckName, cards, err := game.DeckByNumber(s.contentFile, msg.DeckNumber)
	if err != nil {
		s.sendError(ctx, fmt.Sprintf("deck: %v", err))
		return
	}

	enemyName := "Desert Guardian"
	enemyHealth := 50
	var moves []game.EnemyAction
	if msg.Encounter != "" {
		encounters, err := game.ParseEncounterFile(s.contentFile)
		if err != nil {
			s.sendError(ctx, "could not load encounters")
			return
		}
		enc, ok := encounters[msg.Encounter]
		if !ok {
			s.sendError(ctx, fmt.Sprintf("unknown encounter %q", msg.Encounter))
			return
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
		Policy:          game.NewWeightedPolicy(msg.Seed),
		Seed:            msg.Seed,
	})
	if err != nil {
		s.sendError(ctx, fmt.Sprintf("setup: %v", err))
		return
	}
	s.combat = combat

	s.send(ctx, proto.ServerMessage{
		Type:      "started",
		SessionID: s.id,
		DeckName:  deckName,
	})
	s.sendState(ctx)
}

func (s *session) handlePlayCard(ctx context.Context, msg proto.ClientMessage) {
	if s.combat == nil {
		s.sendError(ctx, "combat not started")
		return
	}
	card := s.combat.HandCard(msg.Index)
	if card == nil {
		s.sendError(ctx, fmt.Sprintf("no card at index %d", msg.Index))
		return
	}
	if !s.combat.PlayCard(card) {
		s.sendError(ctx, fmt.Sprintf("cannot play %s", card.Name))
		return
	}
	s.sendState(ctx)
}

func (s *session) handleEndTurn(ctx context.Context) {
	if s.combat == nil {
		s.sendError(ctx, "combat not started")
		return
	}
	if !s.combat.EndPlayerTurn() {
		s.sendError(ctx, "cannot end turn now")
		return
	}
	// Run the enemy turn to completion; the default think delay only
	// matters for frame-driven frontends.
	for i := 0; i < 10 && s.combat.Phase() == game.PhaseEnemyTurn; i++ {
		s.combat.Update(game.DefaultThinkDelay)
	}
	s.sendState(ctx)
}

// sendState pushes the current state plus any events since the last push.
func (s *session) sendState(ctx context.Context) {
	if s.combat == nil {
		return
	}

	var fresh []proto.EventView
	for _, e := range s.combat.Events() {
		if e.Seq > s.lastSeq {
			fresh = append(fresh, proto.NewEventView(e))
			s.lastSeq = e.Seq
		}
	}
	if len(fresh) > 0 {
		s.send(ctx, proto.ServerMessage{Type: "events", Events: fresh})
	}

	view := proto.NewStateView(s.combat.State(), s.combat.HandCards())
	s.send(ctx, proto.ServerMessage{Type: "state", State: &view})
}

func (s *session) sendError(ctx context.Context, text string) {
	s.send(ctx, proto.ServerMessage{Type: "error", Error: text})
}

func (s *session) send(ctx context.Context, msg proto.ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("session %s: marshal: %v", s.id, err)
		return
	}
	if err := s.conn.Write(ctx, websocket.MessageText, data); err != nil {
		log.Printf("session %s: write: %v", s.id, err)
	}
}
