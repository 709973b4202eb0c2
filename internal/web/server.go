package web

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/coder/websocket"
	"github.com/sandglass-games/duat/internal/game"
)

// CardInfo is the JSON representation of a card for the /api/cards endpoint.
type CardInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
	CardType    string `json:"cardType"`
	Rarity      string `json:"rarity"`
	FlavorText  string `json:"flavorText,omitempty"`
}

// DeckInfo is the JSON representation of a deck for the /api/decks endpoint.
type DeckInfo struct {
	Number int      `json:"number"`
	Name   string   `json:"name"`
	Cards  []string `json:"cards"`
}

// EncounterInfo is the JSON representation of an enemy for the
// /api/encounters endpoint.
type EncounterInfo struct {
	Name      string   `json:"name"`
	Health    int      `json:"health"`
	MaxHealth int      `json:"maxHealth"`
	Moves     []string `json:"moves"`
}

// Server hosts the combat API and websocket sessions.
type Server struct {
	contentFile string
	mux         *http.ServeMux
}

// NewServer creates a new web server backed by the given content file.
func NewServer(contentFile string) (*Server, error) {
	// Fail at startup on unreadable or malformed content, not per request.
	if _, err := game.ParseDeckFile(contentFile); err != nil {
		return nil, err
	}
	if _, err := game.ParseEncounterFile(contentFile); err != nil {
		return nil, err
	}

	s := &Server{
		contentFile: contentFile,
		mux:         http.NewServeMux(),
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("GET /api/cards", s.handleCards)
	s.mux.HandleFunc("GET /api/decks", s.handleDecks)
	s.mux.HandleFunc("GET /api/encounters", s.handleEncounters)
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	var cards []CardInfo
	for name, ctor := range game.CardRegistry {
		c := ctor()
		cards = append(cards, CardInfo{
			Name:        name,
			Description: c.Description,
			Cost:        c.Cost,
			CardType:    c.Type.String(),
			Rarity:      c.Rarity.String(),
			FlavorText:  c.FlavorText,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cards)
}

func (s *Server) handleDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := game.ParseDeckFile(s.contentFile)
	if err != nil {
		http.Error(w, "could not read content file", http.StatusInternalServerError)
		return
	}

	var out []DeckInfo
	number := 1
	for name, cards := range decks {
		di := DeckInfo{Number: number, Name: name}
		// Unique card names for display
		seen := make(map[string]bool)
		for _, c := range cards {
			if !seen[c.Name] {
				di.Cards = append(di.Cards, c.Name)
				seen[c.Name] = true
			}
		}
		out = append(out, di)
		number++
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func (s *Server) handleEncounters(w http.ResponseWriter, r *http.Request) {
	encounters, err := game.ParseEncounterFile(s.contentFile)
	if err != nil {
		http.Error(w, "could not read content file", http.StatusInternalServerError)
		return
	}

	var out []EncounterInfo
	for name, enc := range encounters {
		ei := EncounterInfo{
			Name:      name,
			Health:    enc.Health,
			MaxHealth: enc.MaxHealth,
		}
		for _, mv := range enc.Moves {
			ei.Moves = append(ei.Moves, mv.Name)
		}
		out = append(out, ei)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		log.Printf("WebSocket accept error: %v", err)
		return
	}
	defer wsConn.CloseNow()

	sess := newSession(s.contentFile, wsConn)
	sess.run(r.Context())
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}
