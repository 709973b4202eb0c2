package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sandglass-games/duat/internal/game"
)

// activeSession is the singleton combat session (one per stdio process).
var activeSession *CombatSession

// contentFile is the path to the content YAML file, set by main.
var contentFile string

// SetContentFile sets the path to the content YAML file.
func SetContentFile(path string) {
	contentFile = path
}

// RegisterTools adds all combat tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startCombatTool(), handleStartCombat)
	s.AddTool(playCardTool(), handlePlayCard)
	s.AddTool(endTurnTool(), handleEndTurn)
	s.AddTool(getCombatStateTool(), handleGetCombatState)
}

// --- Tool definitions ---

func startCombatTool() mcp.Tool {
	return mcp.NewTool("start_combat",
		mcp.WithDescription("Start a new Sands of Duat combat encounter. Returns the opening state: "+
			"your hand, your hourglass (sand), and the enemy. Play cards during your turn, then end the turn; "+
			"the enemy acts and control returns to you."),
		mcp.WithNumber("deck_number", mcp.Required(), mcp.Description("Deck number (1-indexed from the content file)")),
		mcp.WithString("encounter", mcp.Description("Encounter name from the content file (default: Desert Guardian)")),
		mcp.WithNumber("seed", mcp.Description("RNG seed for reproducible shuffles and enemy rolls")),
	)
}

func playCardTool() mcp.Tool {
	return mcp.NewTool("play_card",
		mcp.WithDescription("Play a card from your hand by index. Legal only during your turn and only if you "+
			"can afford the card's sand cost. A rejected play changes nothing."),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("0-based index of the card in your hand")),
	)
}

func endTurnTool() mcp.Tool {
	return mcp.NewTool("end_turn",
		mcp.WithDescription("End your turn. The enemy takes its action, then a new turn starts: your sand "+
			"refills, leftover block decays, and your hand refills from the deck."),
	)
}

func getCombatStateTool() mcp.Tool {
	return mcp.NewTool("get_combat_state",
		mcp.WithDescription("Get the current combat state and any events since the last call. Read-only."),
	)
}

// --- Tool handlers ---

func handleStartCombat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession != nil && !activeSession.combat.Phase().Terminal() {
		return mcp.NewToolResultError("A combat is already running. Finish it or use get_combat_state."), nil
	}

	deckNumber := request.GetInt("deck_number", 0)
	if deckNumber < 1 {
		return mcp.NewToolResultError("deck_number must be >= 1"), nil
	}
	encounter := request.GetString("encounter", "")
	seed := int64(request.GetInt("seed", 0))

	sess, err := NewCombatSession(contentFile, deckNumber, encounter, seed)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start combat: %v", err), nil
	}

	activeSession = sess
	return mcp.NewToolResultText(respondJSON(sess.respond())), nil
}

func handlePlayCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No combat is running. Use start_combat first."), nil
	}

	index := request.GetInt("index", -1)
	card := sess.combat.HandCard(index)
	if card == nil {
		return mcp.NewToolResultErrorf("Invalid index %d: no such card in hand.", index), nil
	}
	if !sess.combat.PlayCard(card) {
		return mcp.NewToolResultErrorf("Cannot play %s: wrong phase or not enough sand (costs %d).", card.Name, card.Cost), nil
	}

	resp := sess.respond()
	if resp.Over {
		activeSession = nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleEndTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No combat is running. Use start_combat first."), nil
	}

	if !sess.combat.EndPlayerTurn() {
		return mcp.NewToolResultError("Cannot end the turn right now."), nil
	}
	for i := 0; i < 10 && sess.combat.Phase() == game.PhaseEnemyTurn; i++ {
		sess.combat.Update(game.DefaultThinkDelay)
	}

	resp := sess.respond()
	if resp.Over {
		activeSession = nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleGetCombatState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No combat is running. Use start_combat first."), nil
	}
	return mcp.NewToolResultText(respondJSON(sess.respond())), nil
}
