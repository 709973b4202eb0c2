package game

import "fmt"

// --- Enums ---

type Phase int

const (
	PhaseSetup Phase = iota
	PhasePlayerTurn
	PhaseEnemyTurn
	PhaseVictory
	PhaseDefeat
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "Setup"
	case PhasePlayerTurn:
		return "Player Turn"
	case PhaseEnemyTurn:
		return "Enemy Turn"
	case PhaseVictory:
		return "Victory"
	case PhaseDefeat:
		return "Defeat"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the combat has ended and no further mutation is accepted.
func (p Phase) Terminal() bool {
	return p == PhaseVictory || p == PhaseDefeat
}

type CardType int

const (
	CardTypeAttack CardType = iota
	CardTypeSkill
	CardTypePower
)

func (ct CardType) String() string {
	switch ct {
	case CardTypeAttack:
		return "Attack"
	case CardTypeSkill:
		return "Skill"
	case CardTypePower:
		return "Power"
	default:
		return "Unknown"
	}
}

type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityLegendary
)

func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityUncommon:
		return "Uncommon"
	case RarityRare:
		return "Rare"
	case RarityLegendary:
		return "Legendary"
	default:
		return "Unknown"
	}
}

// EffectType is the closed set of state mutations a card effect can produce.
// The resolver switches over this exhaustively; adding a kind here without
// handling it there is a resolver error, not a silent no-op.
type EffectType int

const (
	EffectDamage EffectType = iota
	EffectHeal
	EffectBlock
	EffectDrawCards
	EffectGainSand
	EffectApplyStrength
	EffectApplyDexterity
	EffectApplyWeak
	EffectApplyVulnerable
	EffectMaxHealthIncrease
	EffectPermanentSandIncrease
)

func (e EffectType) String() string {
	switch e {
	case EffectDamage:
		return "Damage"
	case EffectHeal:
		return "Heal"
	case EffectBlock:
		return "Block"
	case EffectDrawCards:
		return "DrawCards"
	case EffectGainSand:
		return "GainSand"
	case EffectApplyStrength:
		return "ApplyStrength"
	case EffectApplyDexterity:
		return "ApplyDexterity"
	case EffectApplyWeak:
		return "ApplyWeak"
	case EffectApplyVulnerable:
		return "ApplyVulnerable"
	case EffectMaxHealthIncrease:
		return "MaxHealthIncrease"
	case EffectPermanentSandIncrease:
		return "PermanentSandIncrease"
	default:
		return "Unknown"
	}
}

// SelfOnly reports whether this effect kind may only ever target its source.
func (e EffectType) SelfOnly() bool {
	switch e {
	case EffectDrawCards, EffectGainSand, EffectPermanentSandIncrease:
		return true
	default:
		return false
	}
}

type TargetType int

const (
	TargetSelf TargetType = iota
	TargetEnemy
	TargetAllEnemies
)

func (t TargetType) String() string {
	switch t {
	case TargetSelf:
		return "Self"
	case TargetEnemy:
		return "Enemy"
	case TargetAllEnemies:
		return "AllEnemies"
	default:
		return "Unknown"
	}
}

// Status identifies a buff or debuff stack on a combatant. Weak and
// Vulnerable values are turn durations; Strength and Dexterity are flat
// stat bonuses that persist for the rest of the combat.
type Status int

const (
	StatusStrength  Status = iota // +N damage dealt per hit
	StatusDexterity               // +N block per BLOCK effect
	StatusWeak                    // damage dealt reduced by N, timed
	StatusVulnerable              // damage taken ×1.5, timed
)

func (s Status) String() string {
	switch s {
	case StatusStrength:
		return "Strength"
	case StatusDexterity:
		return "Dexterity"
	case StatusWeak:
		return "Weak"
	case StatusVulnerable:
		return "Vulnerable"
	default:
		return "Unknown"
	}
}

// Timed reports whether the status value counts down in turns rather than
// being a flat stat bonus.
func (s Status) Timed() bool {
	return s == StatusWeak || s == StatusVulnerable
}

// --- Card definition (static content) ---

// CardEffect is one atomic mutation produced by resolving part of a card.
// Value is always non-negative; direction is implied by Type.
type CardEffect struct {
	Type   EffectType
	Value  int
	Target TargetType
}

func (e CardEffect) String() string {
	return fmt.Sprintf("%s(%d) -> %s", e.Type, e.Value, e.Target)
}

// Card is an immutable playable card template. Cards are created at
// content-load time and shared by pointer; nothing mutates them afterward.
type Card struct {
	Name        string
	Description string
	Cost        int
	Type        CardType
	Rarity      Rarity
	Effects     []CardEffect
	Keywords    []string
	FlavorText  string
}

func (c *Card) String() string {
	return fmt.Sprintf("%s (%d sand)", c.Name, c.Cost)
}

// TotalDamage sums the damage this card deals across its effects.
func (c *Card) TotalDamage() int {
	total := 0
	for _, eff := range c.Effects {
		if eff.Type == EffectDamage {
			total += eff.Value
		}
	}
	return total
}

// TotalBlock sums the block this card grants across its effects.
func (c *Card) TotalBlock() int {
	total := 0
	for _, eff := range c.Effects {
		if eff.Type == EffectBlock {
			total += eff.Value
		}
	}
	return total
}

// HasKeyword reports whether the card carries the given keyword.
func (c *Card) HasKeyword(kw string) bool {
	for _, k := range c.Keywords {
		if k == kw {
			return true
		}
	}
	return false
}

// --- Enemy actions ---

// EnemyAction is one move an enemy can make on its turn. Weight biases the
// WeightedPolicy; HeuristicPolicy ignores it.
type EnemyAction struct {
	Name        string
	Cost        int
	Effects     []CardEffect
	Description string
	Weight      float64
}

func (a EnemyAction) String() string {
	return fmt.Sprintf("%s (%d sand)", a.Name, a.Cost)
}

// DealsDamage reports whether any effect of this action is a DAMAGE effect.
func (a EnemyAction) DealsDamage() bool {
	for _, eff := range a.Effects {
		if eff.Type == EffectDamage {
			return true
		}
	}
	return false
}

// GrantsBlock reports whether any effect of this action is a BLOCK effect.
func (a EnemyAction) GrantsBlock() bool {
	for _, eff := range a.Effects {
		if eff.Type == EffectBlock {
			return true
		}
	}
	return false
}

// TotalDamage sums damage across the action's effects.
func (a EnemyAction) TotalDamage() int {
	total := 0
	for _, eff := range a.Effects {
		if eff.Type == EffectDamage {
			total += eff.Value
		}
	}
	return total
}

// TotalBlock sums block across the action's effects.
func (a EnemyAction) TotalBlock() int {
	total := 0
	for _, eff := range a.Effects {
		if eff.Type == EffectBlock {
			total += eff.Value
		}
	}
	return total
}
