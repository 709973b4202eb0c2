package game

import "fmt"

// CardRegistry maps card names to their constructor functions.
var CardRegistry = map[string]func() *Card{
	"Desert Whisper":         DesertWhisper,
	"Sand Grain":             SandGrain,
	"Tomb Strike":            TombStrike,
	"Ankh Blessing":          AnkhBlessing,
	"Scarab Swarm":           ScarabSwarm,
	"Papyrus Scroll":         PapyrusScroll,
	"Mummy's Wrath":          MummysWrath,
	"Isis's Grace":           IsissGrace,
	"Pyramid Power":          PyramidPower,
	"Thoth's Wisdom":         ThothsWisdom,
	"Anubis Judgment":        AnubisJudgment,
	"Ra's Solar Flare":       RasSolarFlare,
	"Pharaoh's Resurrection": PharaohsResurrection,
}

// LookupCard looks up a card by name and returns a new instance.
// Panics if the card is not found.
func LookupCard(name string) *Card {
	ctor, ok := CardRegistry[name]
	if !ok {
		panic(fmt.Sprintf("card not found in registry: %q", name))
	}
	return ctor()
}

// CardNames returns every registered card name in no particular order.
func CardNames() []string {
	names := make([]string, 0, len(CardRegistry))
	for name := range CardRegistry {
		names = append(names, name)
	}
	return names
}
