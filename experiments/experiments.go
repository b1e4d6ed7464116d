package experiments

import (
	"context"
	"fmt"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Report holds everything an experiment measured.
type Report struct {
	Config      Config
	GameRecords []metrics.GameRecord
	MoveRecords []metrics.MoveRecord
}

// Wins counts the games won by each agent id. Draws count for nobody.
func (r Report) Wins() map[int]int {
	wins := make(map[int]int)
	for _, g := range r.GameRecords {
		switch g.Winner {
		case game.Black:
			wins[g.Black]++
		case game.White:
			wins[g.White]++
		}
	}
	return wins
}

func (r Report) Draws() int {
	n := 0
	for _, g := range r.GameRecords {
		if g.Winner == game.None {
			n++
		}
	}
	return n
}

type gameTask struct {
	id    int
	black metrics.AgentConfig
	white metrics.AgentConfig
}

type gameResult struct {
	record metrics.GameRecord
	moves  []metrics.MoveMetric
}

// Run plays every matchup cfg.Games times, at most cfg.Concurrency games at
// once. Game ids follow matchup order, so reports are stable across runs.
func Run(ctx context.Context, cfg Config) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	var tasks []gameTask
	for _, m := range cfg.MatchUps {
		config1, config2 := cfg.agentConfig(m[0]), cfg.agentConfig(m[1])
		for i := 0; i < cfg.Games; i++ {
			// Alternate colors for the same number of starts
			black, white := config1, config2
			if i%2 == 1 {
				black, white = config2, config1
			}
			tasks = append(tasks, gameTask{id: len(tasks) + 1, black: black, white: white})
		}
	}

	log.Info().Msgf("starting %s experiment: %d matchups, %d games", cfg.Name, len(cfg.MatchUps), len(tasks))

	results := make([]gameResult, len(tasks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for i, task := range tasks {
		g.Go(func() error {
			res, err := runGame(ctx, task)
			if err != nil {
				return fmt.Errorf("game %d: %w", task.id, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report := Report{Config: cfg}
	for _, res := range results {
		report.GameRecords = append(report.GameRecords, res.record)
		for _, mm := range res.moves {
			report.MoveRecords = append(report.MoveRecords, metrics.MoveRecord{Game: res.record.ID, MoveMetric: mm})
		}
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)
	return report, nil
}

// runGame executes a single game between two agents
func runGame(ctx context.Context, task gameTask) (gameResult, error) {
	log.Debug().Msgf("starting game %d: agent %d (black) vs agent %d (white)", task.id, task.black.ID, task.white.ID)

	var runner engine.Runner = engine.LocalEngine(createAgent(task.black, task.id), createAgent(task.white, task.id))
	outcome, gameMetric, moveMetrics, err := runner.Run(ctx)
	if err != nil {
		return gameResult{}, err
	}

	log.Info().Msgf("completed game %d: %s %d-%d", task.id, outcome.Label(), outcome.Black, outcome.White)
	return gameResult{
		record: metrics.GameRecord{
			ID:         task.id,
			Black:      task.black.ID,
			White:      task.white.ID,
			GameMetric: gameMetric,
		},
		moves: moveMetrics,
	}, nil
}

// Write stores the agent configs and all records under cfg.Output and
// returns the directory used.
func Write(report Report) (string, error) {
	writer, err := metrics.NewWriter(report.Config.Output, report.Config.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	configs := make([]metrics.AgentConfig, len(report.Config.Agents))
	copy(configs, report.Config.Agents)
	sort.Slice(configs, func(i, j int) bool { return configs[i].ID < configs[j].ID })

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(report.GameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(report.MoveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
