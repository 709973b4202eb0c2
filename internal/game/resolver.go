package game

import (
	"fmt"

	"github.com/sandglass-games/duat/internal/log"
)

// ErrMalformedEffect marks a content-authoring bug: an effect whose shape
// is invalid (e.g. DRAW_CARDS targeting the enemy). The resolver fails
// fast on these instead of silently doing nothing.
var ErrMalformedEffect = fmt.Errorf("malformed effect")

// ValidateCard checks a card template for content bugs. It is called at
// registration time so that broken content fails at load, not mid-combat.
func ValidateCard(c *Card) error {
	if c.Name == "" {
		return fmt.Errorf("card has no name")
	}
	if c.Cost < 0 || c.Cost > DefaultMaxSand {
		return fmt.Errorf("card %q: cost %d outside [0, %d]", c.Name, c.Cost, DefaultMaxSand)
	}
	if len(c.Effects) == 0 {
		return fmt.Errorf("card %q has no effects", c.Name)
	}
	for _, eff := range c.Effects {
		if err := validateEffect(eff); err != nil {
			return fmt.Errorf("card %q: %w", c.Name, err)
		}
	}
	return nil
}

// ValidateEnemyAction checks an enemy move for content bugs. Enemies have
// no deck, so DRAW_CARDS is invalid in enemy move lists.
func ValidateEnemyAction(a EnemyAction) error {
	if a.Name == "" {
		return fmt.Errorf("enemy action has no name")
	}
	if a.Cost < 0 || a.Cost > DefaultMaxSand {
		return fmt.Errorf("enemy action %q: cost %d outside [0, %d]", a.Name, a.Cost, DefaultMaxSand)
	}
	for _, eff := range a.Effects {
		if err := validateEffect(eff); err != nil {
			return fmt.Errorf("enemy action %q: %w", a.Name, err)
		}
		if eff.Type == EffectDrawCards {
			return fmt.Errorf("enemy action %q: %w: enemies cannot draw cards", a.Name, ErrMalformedEffect)
		}
	}
	return nil
}

func validateEffect(eff CardEffect) error {
	if eff.Value < 0 {
		return fmt.Errorf("%w: %s has negative value %d", ErrMalformedEffect, eff.Type, eff.Value)
	}
	if eff.Type.SelfOnly() && eff.Target != TargetSelf {
		return fmt.Errorf("%w: %s must target Self, not %s", ErrMalformedEffect, eff.Type, eff.Target)
	}
	return nil
}

// resolveEffects applies a card's or enemy action's effect list strictly
// in declaration order. The caller has already verified legality; each
// effect is atomic, and a malformed effect aborts resolution with an error.
func (m *CombatManager) resolveEffects(name string, effects []CardEffect, source, target *Combatant) error {
	for _, eff := range effects {
		if err := m.resolveEffect(name, eff, source, target); err != nil {
			return err
		}
	}
	return nil
}

// resolveEffect applies a single effect and appends the result to the
// combat log. The switch is exhaustive over EffectType.
func (m *CombatManager) resolveEffect(name string, eff CardEffect, source, target *Combatant) error {
	if err := validateEffect(eff); err != nil {
		return err
	}

	// Single-enemy encounters: ENEMY and ALL_ENEMIES both resolve to the
	// one opposing combatant.
	actual := target
	if eff.Target == TargetSelf {
		actual = source
	}

	switch eff.Type {
	case EffectDamage:
		amount := eff.Value + source.AttackBonus()
		if amount < 0 {
			amount = 0
		}
		dealt, blocked := actual.TakeDamage(amount)
		m.logEvent(log.NewDamageEvent(m.turn, m.phase.String(), name, actual.Name, dealt, blocked))

	case EffectHeal:
		healed := actual.Heal(eff.Value)
		m.logEvent(log.NewHealEvent(m.turn, m.phase.String(), actual.Name, healed, actual.Health))

	case EffectBlock:
		granted := actual.AddBlock(eff.Value)
		m.logEvent(log.NewBlockGainedEvent(m.turn, m.phase.String(), actual.Name, granted, actual.Block))

	case EffectDrawCards:
		m.drawCards(eff.Value)

	case EffectGainSand:
		before := actual.Sand.Grains()
		actual.Sand.Gain(eff.Value)
		m.logEvent(log.NewSandGainedEvent(m.turn, m.phase.String(), actual.Name, actual.Sand.Grains()-before, actual.Sand.Grains()))

	case EffectApplyStrength:
		actual.ApplyStatus(StatusStrength, eff.Value)
		m.logEvent(log.NewStatusAppliedEvent(m.turn, m.phase.String(), actual.Name, StatusStrength.String(), eff.Value))

	case EffectApplyDexterity:
		actual.ApplyStatus(StatusDexterity, eff.Value)
		m.logEvent(log.NewStatusAppliedEvent(m.turn, m.phase.String(), actual.Name, StatusDexterity.String(), eff.Value))

	case EffectApplyWeak:
		actual.ApplyStatus(StatusWeak, eff.Value)
		m.logEvent(log.NewStatusAppliedEvent(m.turn, m.phase.String(), actual.Name, StatusWeak.String(), eff.Value))

	case EffectApplyVulnerable:
		actual.ApplyStatus(StatusVulnerable, eff.Value)
		m.logEvent(log.NewStatusAppliedEvent(m.turn, m.phase.String(), actual.Name, StatusVulnerable.String(), eff.Value))

	case EffectMaxHealthIncrease:
		actual.MaxHealth += eff.Value
		actual.Health += eff.Value
		m.logEvent(log.NewMaxHealthRaisedEvent(m.turn, m.phase.String(), actual.Name, eff.Value, actual.MaxHealth))

	case EffectPermanentSandIncrease:
		if actual.Sand.IncreaseMax(eff.Value) {
			m.logEvent(log.NewMaxSandRaisedEvent(m.turn, m.phase.String(), actual.Name, eff.Value, actual.Sand.MaxGrains()))
		} else {
			m.logEvent(log.NewWarningEvent(m.turn, m.phase.String(),
				fmt.Sprintf("%s's hourglass is already at its limit", actual.Name)))
		}

	default:
		return fmt.Errorf("unhandled effect type: %s", eff.Type)
	}

	return nil
}

// drawCards draws up to n cards into the player's hand, reshuffling the
// discard pile into the deck when the deck runs dry. Drawing with nothing
// available is a valid no-op.
func (m *CombatManager) drawCards(n int) {
	drawn := 0
	for i := 0; i < n; i++ {
		if len(m.player.Hand) >= MaxHandSize {
			break
		}
		if len(m.player.Deck) == 0 && len(m.player.Discard) > 0 {
			m.reshuffleDiscard()
		}
		if m.player.DrawCard() == nil {
			break
		}
		drawn++
	}
	if drawn > 0 {
		m.logEvent(log.NewDrawEvent(m.turn, m.phase.String(), drawn))
	}
}

// reshuffleDiscard moves the discard pile back into the deck and shuffles it.
func (m *CombatManager) reshuffleDiscard() {
	count := len(m.player.Discard)
	m.player.Deck = append(m.player.Deck, m.player.Discard...)
	m.player.Discard = nil
	m.rng.Shuffle(len(m.player.Deck), func(i, j int) {
		m.player.Deck[i], m.player.Deck[j] = m.player.Deck[j], m.player.Deck[i]
	})
	m.logEvent(log.NewReshuffleEvent(m.turn, m.phase.String(), count))
}
