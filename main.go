package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"othello/engine"
	"othello/experiments"
	"othello/game"
	"othello/meta"
	"othello/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const humanKind = "human"

func main() {
	black := flag.String("black", experiments.SearchKind, "Black seat: search, random or human")
	white := flag.String("white", experiments.RandomKind, "White seat: search, random or human")
	depth := flag.Int("depth", meta.DEPTH, "Search depth in plies")
	seed := flag.Uint64("seed", 1, "Seed for random agents")
	experiment := flag.String("experiment", "", "Experiment file to run, or \"depth\" for the depth sweep")
	output := flag.String("output", experiments.DefaultOutput, "Directory for experiment reports")
	debug := flag.Bool("debug", false, "Log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	if *experiment != "" {
		err = runExperiment(ctx, *experiment, *output)
	} else {
		err = playGame(ctx, *black, *white, *depth, *seed)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("othello failed")
	}
}

func runExperiment(ctx context.Context, path, output string) error {
	var dir string
	var err error
	if path == "depth" {
		dir, err = experiments.RunDepthExperiment(ctx, output)
	} else {
		var cfg experiments.Config
		cfg, err = experiments.LoadConfig(path)
		if err != nil {
			return err
		}
		if output != experiments.DefaultOutput {
			cfg.Output = output
		}
		var report experiments.Report
		report, err = experiments.Run(ctx, cfg)
		if err != nil {
			return err
		}
		for id, wins := range report.Wins() {
			log.Info().Msgf("agent %d won %d games", id, wins)
		}
		log.Info().Msgf("%d draws", report.Draws())
		dir, err = experiments.Write(report)
	}
	if err != nil {
		return err
	}
	log.Info().Msgf("results written to %s", dir)
	return nil
}

func createSeat(kind string, depth int, seed uint64) (agent.Agent, error) {
	switch kind {
	case experiments.SearchKind:
		return agent.NewSearchAgent(depth), nil
	case experiments.RandomKind:
		return agent.NewRandomAgent(seed), nil
	case humanKind:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown seat %q", kind)
	}
}

// playGame runs one game on the console. Human seats type moves such as "d3".
func playGame(ctx context.Context, blackKind, whiteKind string, depth int, seed uint64) error {
	black, err := createSeat(blackKind, depth, seed)
	if err != nil {
		return err
	}
	white, err := createSeat(whiteKind, depth, seed+1)
	if err != nil {
		return err
	}
	human := map[game.Color]bool{game.Black: black == nil, game.White: white == nil}

	e := engine.LocalEngine(black, white)
	input := bufio.NewScanner(os.Stdin)
	for !e.Over() {
		turn := e.Turn()
		if !human[turn] {
			u, err := e.Step(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("%v plays %v\n", u.Player, u.Move.Coord)
			continue
		}

		fmt.Printf("%v\n%v to move: ", e.Board(), turn)
		if !input.Scan() {
			return errors.New("input closed before the game ended")
		}
		c, err := game.ParseCoord(input.Text())
		if err != nil {
			fmt.Println(err)
			continue
		}
		if _, err := e.Play(c); err != nil {
			fmt.Println(err)
		}
	}

	outcome := e.Outcome()
	fmt.Printf("%v\nblack %d - white %d: %s\n", e.Board(), outcome.Black, outcome.White, outcome.Label())
	return nil
}
