package experiments

import (
	"context"
	"othello/experiments/metrics"
	"othello/meta"
)

const baselineID = 0

// DepthConfig pits a search agent of every depth from 1 to maxDepth against a
// random baseline, measuring how playing strength and search cost grow with
// depth.
func DepthConfig(maxDepth, games int, output string) Config {
	baseline := metrics.AgentConfig{ID: baselineID, Kind: RandomKind, Seed: 1}
	cfg := Config{
		Name:        "depth",
		Games:       games,
		Concurrency: meta.GO_ROUTINES,
		Output:      output,
		Agents:      []metrics.AgentConfig{baseline},
	}
	for depth := 1; depth <= maxDepth; depth++ {
		cfg.Agents = append(cfg.Agents, metrics.AgentConfig{ID: depth, Kind: SearchKind, Depth: depth})
		cfg.MatchUps = append(cfg.MatchUps, [2]int{baselineID, depth})
	}
	return cfg
}

// RunDepthExperiment runs DepthConfig up to the default depth and writes the
// report. It returns the report directory.
func RunDepthExperiment(ctx context.Context, output string) (string, error) {
	report, err := Run(ctx, DepthConfig(meta.DEPTH, meta.GAMES, output))
	if err != nil {
		return "", err
	}
	return Write(report)
}
