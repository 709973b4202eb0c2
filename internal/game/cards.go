package game

// Starter card pool. Each constructor returns a fresh template so callers
// can hold per-copy pointers without aliasing.

func DesertWhisper() *Card {
	return &Card{
		Name:        "Desert Whisper",
		Description: "Draw 1 card",
		Cost:        0,
		Type:        CardTypeSkill,
		Rarity:      RarityCommon,
		Effects: []CardEffect{
			{Type: EffectDrawCards, Value: 1, Target: TargetSelf},
		},
		FlavorText: "The sands carry secrets to those who listen.",
	}
}

func SandGrain() *Card {
	return &Card{
		Name:        "Sand Grain",
		Description: "Gain 1 sand",
		Cost:        0,
		Type:        CardTypeSkill,
		Rarity:      RarityCommon,
		Effects: []CardEffect{
			{Type: EffectGainSand, Value: 1, Target: TargetSelf},
		},
		FlavorText: "Every grain counts in the hourglass of fate.",
	}
}

func TombStrike() *Card {
	return &Card{
		Name:        "Tomb Strike",
		Description: "Deal 6 damage",
		Cost:        1,
		Type:        CardTypeAttack,
		Rarity:      RarityCommon,
		Effects: []CardEffect{
			{Type: EffectDamage, Value: 6, Target: TargetEnemy},
		},
		FlavorText: "Strike with the weight of ancient tombs.",
	}
}

func AnkhBlessing() *Card {
	return &Card{
		Name:        "Ankh Blessing",
		Description: "Restore 5 health",
		Cost:        1,
		Type:        CardTypeSkill,
		Rarity:      RarityCommon,
		Effects: []CardEffect{
			{Type: EffectHeal, Value: 5, Target: TargetSelf},
		},
		FlavorText: "The ankh grants life to the worthy.",
	}
}

func ScarabSwarm() *Card {
	return &Card{
		Name:        "Scarab Swarm",
		Description: "Deal 9 damage",
		Cost:        2,
		Type:        CardTypeAttack,
		Rarity:      RarityCommon,
		Effects: []CardEffect{
			{Type: EffectDamage, Value: 9, Target: TargetEnemy},
		},
		FlavorText: "A thousand tiny guardians answer your call.",
	}
}

func PapyrusScroll() *Card {
	return &Card{
		Name:        "Papyrus Scroll",
		Description: "Draw 2 cards",
		Cost:        2,
		Type:        CardTypeSkill,
		Rarity:      RarityCommon,
		Effects: []CardEffect{
			{Type: EffectDrawCards, Value: 2, Target: TargetSelf},
		},
		FlavorText: "Knowledge of the ancients flows through papyrus.",
	}
}

func MummysWrath() *Card {
	return &Card{
		Name:        "Mummy's Wrath",
		Description: "Deal 14 damage",
		Cost:        3,
		Type:        CardTypeAttack,
		Rarity:      RarityUncommon,
		Effects: []CardEffect{
			{Type: EffectDamage, Value: 14, Target: TargetEnemy},
		},
		FlavorText: "The wrapped dead do not forgive intrusion.",
	}
}

func IsissGrace() *Card {
	return &Card{
		Name:        "Isis's Grace",
		Description: "Restore 8 health and draw 1 card",
		Cost:        3,
		Type:        CardTypeSkill,
		Rarity:      RarityUncommon,
		Effects: []CardEffect{
			{Type: EffectHeal, Value: 8, Target: TargetSelf},
			{Type: EffectDrawCards, Value: 1, Target: TargetSelf},
		},
		FlavorText: "The goddess of magic shelters her children.",
	}
}

func PyramidPower() *Card {
	return &Card{
		Name:        "Pyramid Power",
		Description: "Deal 18 damage",
		Cost:        4,
		Type:        CardTypeAttack,
		Rarity:      RarityUncommon,
		Effects: []CardEffect{
			{Type: EffectDamage, Value: 18, Target: TargetEnemy},
		},
		FlavorText: "Channel the focused might of the great pyramids.",
	}
}

func ThothsWisdom() *Card {
	return &Card{
		Name:        "Thoth's Wisdom",
		Description: "Draw 3 cards and gain 2 sand",
		Cost:        4,
		Type:        CardTypeSkill,
		Rarity:      RarityRare,
		Effects: []CardEffect{
			{Type: EffectDrawCards, Value: 3, Target: TargetSelf},
			{Type: EffectGainSand, Value: 2, Target: TargetSelf},
		},
		FlavorText: "The scribe of the gods shares his endless knowledge.",
	}
}

func AnubisJudgment() *Card {
	return &Card{
		Name:        "Anubis Judgment",
		Description: "Deal 25 damage",
		Cost:        5,
		Type:        CardTypeAttack,
		Rarity:      RarityRare,
		Effects: []CardEffect{
			{Type: EffectDamage, Value: 25, Target: TargetEnemy},
		},
		FlavorText: "The jackal god weighs your enemy's heart and finds it wanting.",
	}
}

func RasSolarFlare() *Card {
	return &Card{
		Name:        "Ra's Solar Flare",
		Description: "Deal 30 damage",
		Cost:        6,
		Type:        CardTypeAttack,
		Rarity:      RarityLegendary,
		Effects: []CardEffect{
			{Type: EffectDamage, Value: 30, Target: TargetEnemy},
		},
		FlavorText: "The sun god's fury scorches all it touches.",
	}
}

func PharaohsResurrection() *Card {
	return &Card{
		Name:        "Pharaoh's Resurrection",
		Description: "Restore to full health and gain 3 sand",
		Cost:        6,
		Type:        CardTypePower,
		Rarity:      RarityLegendary,
		Effects: []CardEffect{
			{Type: EffectHeal, Value: 100, Target: TargetSelf},
			{Type: EffectGainSand, Value: 3, Target: TargetSelf},
		},
		FlavorText: "Death is but a doorway for the chosen of Osiris.",
	}
}
