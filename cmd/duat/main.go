package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sandglass-games/duat/internal/game"
	"github.com/sandglass-games/duat/internal/log"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "play":
		runPlay(os.Args[2:])
	case "sim":
		runSim(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  duat play [--deck N] [--encounter NAME] [--content FILE] [--seed S]")
	fmt.Println("  duat sim  [--deck N] [--encounter NAME] [--content FILE] [--seed S] [--runs R]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  play    Fight an encounter interactively")
	fmt.Println("  sim     Auto-play encounters and report outcomes")
}

type encounterFlags struct {
	deck      int
	encounter string
	content   string
	seed      int64
}

func parseEncounterFlags(fs *flag.FlagSet, args []string) encounterFlags {
	var ef encounterFlags
	fs.IntVar(&ef.deck, "deck", 1, "deck number to use (from the content file)")
	fs.StringVar(&ef.encounter, "encounter", "Desert Guardian", "encounter name")
	fs.StringVar(&ef.content, "content", "decks.yaml", "path to content file")
	fs.Int64Var(&ef.seed, "seed", time.Now().UnixNano(), "RNG seed")
	fs.Parse(args)
	return ef
}

func buildCombat(ef encounterFlags, logger log.EventLogger) (*game.CombatManager, error) {
	_, cards, err := game.DeckByNumber(ef.content, ef.deck)
	if err != nil {
		return nil, err
	}
	encounters, err := game.ParseEncounterFile(ef.content)
	if err != nil {
		return nil, err
	}
	enc, ok := encounters[ef.encounter]
	if !ok {
		return nil, fmt.Errorf("unknown encounter %q", ef.encounter)
	}

	return game.NewCombat(game.CombatConfig{
		PlayerHealth:    50,
		PlayerMaxHealth: 50,
		EnemyName:       enc.Name,
		EnemyHealth:     enc.Health,
		EnemyMaxHealth:  enc.MaxHealth,
		PlayerCards:     cards,
		EnemyMoves:      enc.Moves,
		Policy:          game.NewWeightedPolicy(ef.seed),
		Logger:          logger,
		Seed:            ef.seed,
	})
}

func runPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	ef := parseEncounterFlags(fs, args)

	m, err := buildCombat(ef, log.NewTextLogger(os.Stdout))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	in := bufio.NewScanner(os.Stdin)
	for !m.Phase().Terminal() {
		printState(m)
		fmt.Print("> play N, (e)nd turn, (q)uit: ")
		if !in.Scan() {
			return
		}
		input := strings.TrimSpace(in.Text())

		switch input {
		case "q", "quit":
			return
		case "e", "end":
			m.EndPlayerTurn()
			for m.Phase() == game.PhaseEnemyTurn {
				m.Update(game.DefaultThinkDelay)
			}
		default:
			idx, err := strconv.Atoi(input)
			if err != nil {
				fmt.Println("unrecognized input")
				continue
			}
			card := m.HandCard(idx)
			if card == nil {
				fmt.Println("no card at that index")
				continue
			}
			if !m.PlayCard(card) {
				fmt.Printf("cannot play %s (costs %d sand)\n", card.Name, card.Cost)
			}
		}
	}

	printState(m)
	fmt.Printf("\n=== %s ===\n", strings.ToUpper(m.Phase().String()))
}

func printState(m *game.CombatManager) {
	st := m.State()
	fmt.Println()
	fmt.Printf("%s  HP %d/%d  block %d", st.Enemy.Name, st.Enemy.Health, st.Enemy.MaxHealth, st.Enemy.Block)
	if st.Enemy.Intent != "" {
		fmt.Printf("  [last: %s]", st.Enemy.Intent)
	}
	fmt.Println()
	fmt.Printf("You   HP %d/%d  block %d  sand %d/%d  deck %d  discard %d\n",
		st.Player.Health, st.Player.MaxHealth, st.Player.Block,
		st.Player.Sand, st.Player.MaxSand, st.DeckSize, st.Discards)
	for i, c := range m.HandCards() {
		fmt.Printf("  [%d] %s (%d) - %s\n", i, c.Name, c.Cost, c.Description)
	}
}

// simPlayer greedily plays the most expensive affordable card each step.
func simPlayer(m *game.CombatManager) {
	for {
		var best *game.Card
		for _, c := range m.HandCards() {
			if c.Cost > m.State().Player.Sand {
				continue
			}
			if best == nil || c.Cost > best.Cost {
				best = c
			}
		}
		if best == nil || !m.PlayCard(best) {
			return
		}
		if m.Phase().Terminal() {
			return
		}
	}
}

func runSim(args []string) {
	fs := flag.NewFlagSet("sim", flag.ExitOnError)
	runs := fs.Int("runs", 100, "number of encounters to simulate")
	ef := parseEncounterFlags(fs, args)

	victories := 0
	totalTurns := 0
	for i := 0; i < *runs; i++ {
		run := ef
		run.seed = ef.seed + int64(i)
		var logger log.EventLogger = log.NewMemoryLogger()
		if *runs == 1 {
			// Single run: stream the full event log for inspection.
			logger = log.NewTextLogger(os.Stdout)
		}
		m, err := buildCombat(run, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		for !m.Phase().Terminal() && m.Turn() < 100 {
			simPlayer(m)
			if m.Phase().Terminal() {
				break
			}
			m.EndPlayerTurn()
			for m.Phase() == game.PhaseEnemyTurn {
				m.Update(game.DefaultThinkDelay)
			}
		}

		if m.Phase() == game.PhaseVictory {
			victories++
		}
		totalTurns += m.Turn()
	}

	fmt.Printf("%d/%d victories (%.0f%%), avg %.1f turns\n",
		victories, *runs, float64(victories)/float64(*runs)*100,
		float64(totalTurns)/float64(*runs))
}
