package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ContentFile represents the top-level YAML structure.
type ContentFile struct {
	Decks      []DeckEntry      `yaml:"decks"`
	Encounters []EncounterEntry `yaml:"encounters"`
}

// DeckEntry represents a single deck in the YAML file.
type DeckEntry struct {
	Name  string      `yaml:"name"`
	Cards []CardEntry `yaml:"cards"`
}

// CardEntry represents a card and its count in a deck.
type CardEntry struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// EncounterEntry represents an enemy encounter in the YAML file.
type EncounterEntry struct {
	Name      string        `yaml:"name"`
	Health    int           `yaml:"health"`
	MaxHealth int           `yaml:"max_health"`
	Moves     []ActionEntry `yaml:"moves"`
}

// ActionEntry represents one enemy move in an encounter.
type ActionEntry struct {
	Name        string        `yaml:"name"`
	Cost        int           `yaml:"cost"`
	Description string        `yaml:"description"`
	Weight      float64       `yaml:"weight"`
	Effects     []EffectEntry `yaml:"effects"`
}

// EffectEntry represents one effect of an enemy move.
type EffectEntry struct {
	Type   string `yaml:"type"`
	Value  int    `yaml:"value"`
	Target string `yaml:"target"`
}

func loadContentFile(path string) (*ContentFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cf ContentFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse content YAML: %w", err)
	}
	return &cf, nil
}

func buildDeck(entry DeckEntry) []*Card {
	var cards []*Card
	for _, e := range entry.Cards {
		for i := 0; i < e.Count; i++ {
			cards = append(cards, LookupCard(e.Name))
		}
	}
	return cards
}

// ParseDeckFile parses a YAML content file and returns a map of deck name → card slice.
func ParseDeckFile(path string) (map[string][]*Card, error) {
	cf, err := loadContentFile(path)
	if err != nil {
		return nil, err
	}

	decks := make(map[string][]*Card)
	for _, deck := range cf.Decks {
		decks[deck.Name] = buildDeck(deck)
	}
	return decks, nil
}

// DeckByNumber returns the Nth deck (1-indexed) from the content file.
func DeckByNumber(path string, n int) (string, []*Card, error) {
	cf, err := loadContentFile(path)
	if err != nil {
		return "", nil, err
	}

	if n < 1 || n > len(cf.Decks) {
		return "", nil, fmt.Errorf("deck %d not found (have %d decks)", n, len(cf.Decks))
	}

	deck := cf.Decks[n-1]
	return deck.Name, buildDeck(deck), nil
}

// Encounter is a fully resolved enemy loaded from a content file.
type Encounter struct {
	Name      string
	Health    int
	MaxHealth int
	Moves     []EnemyAction
}

var effectTypeNames = map[string]EffectType{
	"damage":                  EffectDamage,
	"heal":                    EffectHeal,
	"block":                   EffectBlock,
	"draw_cards":              EffectDrawCards,
	"gain_sand":               EffectGainSand,
	"apply_strength":          EffectApplyStrength,
	"apply_dexterity":         EffectApplyDexterity,
	"apply_weak":              EffectApplyWeak,
	"apply_vulnerable":        EffectApplyVulnerable,
	"max_health_increase":     EffectMaxHealthIncrease,
	"permanent_sand_increase": EffectPermanentSandIncrease,
}

var targetTypeNames = map[string]TargetType{
	"self":        TargetSelf,
	"enemy":       TargetEnemy,
	"all_enemies": TargetAllEnemies,
}

func buildEffect(e EffectEntry) (CardEffect, error) {
	typ, ok := effectTypeNames[e.Type]
	if !ok {
		return CardEffect{}, fmt.Errorf("unknown effect type %q", e.Type)
	}
	target, ok := targetTypeNames[e.Target]
	if !ok {
		return CardEffect{}, fmt.Errorf("unknown target type %q", e.Target)
	}
	return CardEffect{Type: typ, Value: e.Value, Target: target}, nil
}

// ParseEncounterFile parses the encounters section of a YAML content file.
// Every move is validated; a malformed move fails the whole load.
func ParseEncounterFile(path string) (map[string]Encounter, error) {
	cf, err := loadContentFile(path)
	if err != nil {
		return nil, err
	}

	encounters := make(map[string]Encounter)
	for _, entry := range cf.Encounters {
		enc := Encounter{
			Name:      entry.Name,
			Health:    entry.Health,
			MaxHealth: entry.MaxHealth,
		}
		for _, me := range entry.Moves {
			action := EnemyAction{
				Name:        me.Name,
				Cost:        me.Cost,
				Description: me.Description,
				Weight:      me.Weight,
			}
			for _, ee := range me.Effects {
				eff, err := buildEffect(ee)
				if err != nil {
					return nil, fmt.Errorf("encounter %q, move %q: %w", entry.Name, me.Name, err)
				}
				action.Effects = append(action.Effects, eff)
			}
			if err := ValidateEnemyAction(action); err != nil {
				return nil, fmt.Errorf("encounter %q: %w", entry.Name, err)
			}
			enc.Moves = append(enc.Moves, action)
		}
		encounters[entry.Name] = enc
	}
	return encounters, nil
}
