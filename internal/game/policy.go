package game

import "math/rand"

// EnemyPolicy chooses the enemy's action for a turn. The affordable slice
// contains only actions the enemy can currently pay for; an empty slice
// forces a pass. Implementations must not mutate the combatants.
type EnemyPolicy interface {
	Choose(enemy, player *Combatant, affordable []EnemyAction) (EnemyAction, bool)
}

// DefaultEnemyMoves returns the baseline desert-guardian move set.
func DefaultEnemyMoves() []EnemyAction {
	return []EnemyAction{
		{
			Name:        "Claw Strike",
			Cost:        1,
			Description: "A swift claw attack",
			Weight:      0.6,
			Effects: []CardEffect{
				{Type: EffectDamage, Value: 8, Target: TargetEnemy},
			},
		},
		{
			Name:        "Guard Stance",
			Cost:        2,
			Description: "Braces behind weathered stone",
			Weight:      0.3,
			Effects: []CardEffect{
				{Type: EffectBlock, Value: 12, Target: TargetSelf},
			},
		},
		{
			Name:        "Fury Swipe",
			Cost:        3,
			Description: "A savage flurry of strikes",
			Weight:      0.4,
			Effects: []CardEffect{
				{Type: EffectDamage, Value: 15, Target: TargetEnemy},
			},
		},
	}
}

// HeuristicPolicy plays defensively when hurt and aggressively otherwise:
// below the health threshold it takes the biggest affordable block action,
// above it the biggest affordable damage action.
type HeuristicPolicy struct {
	// BlockThreshold is the health fraction below which blocking is
	// preferred over attacking.
	BlockThreshold float64
}

// NewHeuristicPolicy returns a HeuristicPolicy with a 30% threshold.
func NewHeuristicPolicy() *HeuristicPolicy {
	return &HeuristicPolicy{BlockThreshold: 0.3}
}

func (p *HeuristicPolicy) Choose(enemy, player *Combatant, affordable []EnemyAction) (EnemyAction, bool) {
	if len(affordable) == 0 {
		return EnemyAction{}, false
	}

	hurting := enemy.MaxHealth > 0 &&
		float64(enemy.Health) < float64(enemy.MaxHealth)*p.BlockThreshold

	if hurting {
		if a, ok := bestBy(affordable, EnemyAction.TotalBlock); ok {
			return a, true
		}
	}
	if a, ok := bestBy(affordable, EnemyAction.TotalDamage); ok {
		return a, true
	}
	// Nothing deals damage or blocks; take the first affordable action
	// rather than passing forever.
	return affordable[0], true
}

// bestBy returns the action maximizing score, skipping zero-score actions.
func bestBy(actions []EnemyAction, score func(EnemyAction) int) (EnemyAction, bool) {
	best := -1
	var pick EnemyAction
	for _, a := range actions {
		if s := score(a); s > 0 && s > best {
			best = s
			pick = a
		}
	}
	return pick, best > 0
}

// WeightedPolicy picks among affordable actions with probability
// proportional to their weights, scaling block weights up as the enemy's
// health drops. A zero-weight action is never chosen.
type WeightedPolicy struct {
	rng *rand.Rand
}

// NewWeightedPolicy returns a WeightedPolicy seeded for reproducibility.
func NewWeightedPolicy(seed int64) *WeightedPolicy {
	return &WeightedPolicy{rng: rand.New(rand.NewSource(seed))}
}

func (p *WeightedPolicy) Choose(enemy, player *Combatant, affordable []EnemyAction) (EnemyAction, bool) {
	if len(affordable) == 0 {
		return EnemyAction{}, false
	}

	healthFrac := 1.0
	if enemy.MaxHealth > 0 {
		healthFrac = float64(enemy.Health) / float64(enemy.MaxHealth)
	}

	weights := make([]float64, len(affordable))
	total := 0.0
	for i, a := range affordable {
		w := a.Weight
		if a.GrantsBlock() {
			// Blocking gets more attractive as health drops.
			w *= 1.0 + (1.0-healthFrac)*2.0
		}
		weights[i] = w
		total += w
	}
	if total <= 0 {
		return EnemyAction{}, false
	}

	roll := p.rng.Float64() * total
	for i, w := range weights {
		roll -= w
		if roll < 0 {
			return affordable[i], true
		}
	}
	return affordable[len(affordable)-1], true
}
