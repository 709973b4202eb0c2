package game

import (
	"os"
	"path/filepath"
	"testing"
)

const testContentYAML = `decks:
  - name: Starter
    cards:
      - name: Tomb Strike
        count: 4
      - name: Ankh Blessing
        count: 2
  - name: Solar Fury
    cards:
      - name: Ra's Solar Flare
        count: 1

encounters:
  - name: Desert Guardian
    health: 50
    max_health: 50
    moves:
      - name: Claw Strike
        cost: 1
        description: A swift claw attack
        weight: 0.6
        effects:
          - type: damage
            value: 8
            target: enemy
      - name: Guard Stance
        cost: 2
        weight: 0.3
        effects:
          - type: block
            value: 12
            target: self
`

func writeContentFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write content file: %v", err)
	}
	return path
}

func TestParseDeckFile(t *testing.T) {
	path := writeContentFile(t, testContentYAML)

	decks, err := ParseDeckFile(path)
	if err != nil {
		t.Fatalf("ParseDeckFile: %v", err)
	}

	starter, ok := decks["Starter"]
	if !ok {
		t.Fatal("Starter deck missing")
	}
	if len(starter) != 6 {
		t.Errorf("expected 6 cards in Starter, got %d", len(starter))
	}

	strikes := 0
	for _, c := range starter {
		if c.Name == "Tomb Strike" {
			strikes++
		}
	}
	if strikes != 4 {
		t.Errorf("expected 4 Tomb Strikes, got %d", strikes)
	}
}

func TestDeckByNumber(t *testing.T) {
	path := writeContentFile(t, testContentYAML)

	name, cards, err := DeckByNumber(path, 2)
	if err != nil {
		t.Fatalf("DeckByNumber: %v", err)
	}
	if name != "Solar Fury" || len(cards) != 1 {
		t.Errorf("expected Solar Fury with 1 card, got %q with %d", name, len(cards))
	}

	if _, _, err := DeckByNumber(path, 3); err == nil {
		t.Error("expected an error for an out-of-range deck number")
	}
	if _, _, err := DeckByNumber(path, 0); err == nil {
		t.Error("expected an error for deck number 0")
	}
}

func TestParseEncounterFile(t *testing.T) {
	path := writeContentFile(t, testContentYAML)

	encounters, err := ParseEncounterFile(path)
	if err != nil {
		t.Fatalf("ParseEncounterFile: %v", err)
	}

	guardian, ok := encounters["Desert Guardian"]
	if !ok {
		t.Fatal("Desert Guardian encounter missing")
	}
	if guardian.Health != 50 || guardian.MaxHealth != 50 {
		t.Errorf("unexpected health %d/%d", guardian.Health, guardian.MaxHealth)
	}
	if len(guardian.Moves) != 2 {
		t.Fatalf("expected 2 moves, got %d", len(guardian.Moves))
	}

	claw := guardian.Moves[0]
	if claw.Name != "Claw Strike" || claw.Cost != 1 || claw.Weight != 0.6 {
		t.Errorf("unexpected claw move: %+v", claw)
	}
	if claw.TotalDamage() != 8 {
		t.Errorf("expected claw damage 8, got %d", claw.TotalDamage())
	}
	if !guardian.Moves[1].GrantsBlock() {
		t.Error("Guard Stance should grant block")
	}
}

func TestParseEncounterFileRejectsBadEffectType(t *testing.T) {
	path := writeContentFile(t, `encounters:
  - name: Broken
    health: 10
    max_health: 10
    moves:
      - name: Glitch
        cost: 1
        effects:
          - type: summon_locusts
            value: 3
            target: enemy
`)
	if _, err := ParseEncounterFile(path); err == nil {
		t.Error("expected an error for an unknown effect type")
	}
}

func TestParseEncounterFileRejectsMalformedMove(t *testing.T) {
	path := writeContentFile(t, `encounters:
  - name: Broken
    health: 10
    max_health: 10
    moves:
      - name: Forbidden Draw
        cost: 1
        effects:
          - type: draw_cards
            value: 2
            target: self
`)
	if _, err := ParseEncounterFile(path); err == nil {
		t.Error("enemy draw moves must fail validation")
	}
}

func TestParseDeckFileMissing(t *testing.T) {
	if _, err := ParseDeckFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
