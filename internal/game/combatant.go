package game

import "fmt"

const (
	// HandSize is the number of cards dealt to the player's opening hand
	// and the size the hand is refilled to at the start of each turn.
	HandSize = 5

	// MaxHandSize caps the hand; draws beyond it are silently dropped.
	MaxHandSize = 10
)

// Combatant is the mutable runtime state of one side of a combat. It is
// created by SetupCombat, owned exclusively by the CombatManager for the
// duration of one encounter, and never outlives it.
type Combatant struct {
	Name      string
	Health    int
	MaxHealth int
	Block     int
	Sand      *HourGlass

	Hand    []*Card
	Deck    []*Card // top of deck is index 0
	Discard []*Card

	Statuses map[Status]int

	IsPlayer bool
}

// NewCombatant creates a combatant with the given vitals and hourglass.
func NewCombatant(name string, health, maxHealth int, sand *HourGlass, isPlayer bool) *Combatant {
	if maxHealth < 1 {
		maxHealth = 1
	}
	if health > maxHealth {
		health = maxHealth
	}
	if health < 0 {
		health = 0
	}
	return &Combatant{
		Name:      name,
		Health:    health,
		MaxHealth: maxHealth,
		Sand:      sand,
		Statuses:  make(map[Status]int),
		IsPlayer:  isPlayer,
	}
}

// Alive reports whether the combatant still has health remaining.
func (c *Combatant) Alive() bool {
	return c.Health > 0
}

// TakeDamage applies incoming damage: vulnerable scaling first, then block
// absorbs what it can, the remainder comes off health (floored at 0).
// Returns health lost and damage absorbed by block.
func (c *Combatant) TakeDamage(amount int) (dealt, blocked int) {
	if amount <= 0 {
		return 0, 0
	}
	if c.Statuses[StatusVulnerable] > 0 {
		amount = amount * 3 / 2
	}

	blocked = amount
	if blocked > c.Block {
		blocked = c.Block
	}
	c.Block -= blocked
	remaining := amount - blocked

	old := c.Health
	c.Health -= remaining
	if c.Health < 0 {
		c.Health = 0
	}
	return old - c.Health, blocked
}

// Heal restores health, capped at MaxHealth. Returns the amount restored.
func (c *Combatant) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	old := c.Health
	c.Health += amount
	if c.Health > c.MaxHealth {
		c.Health = c.MaxHealth
	}
	return c.Health - old
}

// AddBlock grants block, including the dexterity bonus. Block has no cap.
// Returns the amount actually granted.
func (c *Combatant) AddBlock(amount int) int {
	if amount <= 0 {
		return 0
	}
	amount += c.Statuses[StatusDexterity]
	c.Block += amount
	return amount
}

// AttackBonus returns the net adjustment this combatant applies to damage
// it deals: strength adds, weak subtracts.
func (c *Combatant) AttackBonus() int {
	return c.Statuses[StatusStrength] - c.Statuses[StatusWeak]
}

// ApplyStatus adds stacks (for flat bonuses) or sets the duration (for
// timed statuses) of the given status.
func (c *Combatant) ApplyStatus(s Status, value int) {
	if value <= 0 {
		return
	}
	if s.Timed() {
		c.Statuses[s] = value
	} else {
		c.Statuses[s] += value
	}
}

// StartTurn resets turn-scoped state: block decays fully and timed status
// durations tick down. Returns the block lost and the statuses that expired.
func (c *Combatant) StartTurn() (blockLost int, expired []Status) {
	blockLost = c.Block
	c.Block = 0

	for s, v := range c.Statuses {
		if !s.Timed() {
			continue
		}
		v--
		if v <= 0 {
			delete(c.Statuses, s)
			expired = append(expired, s)
		} else {
			c.Statuses[s] = v
		}
	}
	return blockLost, expired
}

// --- Hand and deck management ---

// HandCount returns the number of cards in hand.
func (c *Combatant) HandCount() int {
	return len(c.Hand)
}

// InHand reports whether the exact card (by pointer) is in the hand.
func (c *Combatant) InHand(card *Card) bool {
	for _, h := range c.Hand {
		if h == card {
			return true
		}
	}
	return false
}

// RemoveFromHand removes the first occurrence of the card (by pointer)
// from the hand and returns true if it was present.
func (c *Combatant) RemoveFromHand(card *Card) bool {
	for i, h := range c.Hand {
		if h == card {
			c.Hand = append(c.Hand[:i], c.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// DrawCard moves the top card of the deck into the hand. Returns nil when
// the deck is empty or the hand is full; reshuffling the discard into the
// deck is the CombatManager's job, not the combatant's.
func (c *Combatant) DrawCard() *Card {
	if len(c.Deck) == 0 || len(c.Hand) >= MaxHandSize {
		return nil
	}
	card := c.Deck[0]
	c.Deck = c.Deck[1:]
	c.Hand = append(c.Hand, card)
	return card
}

func (c *Combatant) String() string {
	return fmt.Sprintf("%s (%d/%d HP, %d block, %s)", c.Name, c.Health, c.MaxHealth, c.Block, c.Sand)
}
