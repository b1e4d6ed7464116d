package experiments

import (
	"errors"
	"fmt"
	"os"
	"othello/experiments/metrics"
	"othello/meta"
	"othello/searcher/agent"

	"gopkg.in/yaml.v3"
)

const (
	SearchKind = "search"
	RandomKind = "random"
)

const DefaultOutput = "results"

var ErrInvalidConfig = errors.New("invalid experiment config")

// Config is an experiment file. Each matchup lists the black agent then the
// white agent; colors alternate from one game to the next.
type Config struct {
	Name        string                `yaml:"name"`
	Games       int                   `yaml:"games"`
	Concurrency int                   `yaml:"concurrency"`
	Output      string                `yaml:"output"`
	Agents      []metrics.AgentConfig `yaml:"agents"`
	MatchUps    [][2]int              `yaml:"matchups"`
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read experiment config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML experiment, fills defaults and validates it.
func ParseConfig(data []byte) (Config, error) {
	cfg := Config{
		Games:       meta.GAMES,
		Concurrency: meta.GO_ROUTINES,
		Output:      DefaultOutput,
	}
	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse experiment config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidConfig)
	}
	if c.Games < 1 {
		return fmt.Errorf("%w: games must be at least 1", ErrInvalidConfig)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency must be at least 1", ErrInvalidConfig)
	}
	if len(c.MatchUps) == 0 {
		return fmt.Errorf("%w: no matchups", ErrInvalidConfig)
	}

	ids := make(map[int]bool, len(c.Agents))
	for _, a := range c.Agents {
		if ids[a.ID] {
			return fmt.Errorf("%w: duplicate agent id %d", ErrInvalidConfig, a.ID)
		}
		ids[a.ID] = true
		switch a.Kind {
		case SearchKind:
			if a.Depth < 1 {
				return fmt.Errorf("%w: agent %d depth must be at least 1", ErrInvalidConfig, a.ID)
			}
		case RandomKind:
		default:
			return fmt.Errorf("%w: agent %d has unknown kind %q", ErrInvalidConfig, a.ID, a.Kind)
		}
	}
	for _, m := range c.MatchUps {
		for _, id := range m {
			if !ids[id] {
				return fmt.Errorf("%w: matchup %v names unknown agent %d", ErrInvalidConfig, m, id)
			}
		}
	}
	return nil
}

func (c Config) agentConfig(id int) metrics.AgentConfig {
	for _, a := range c.Agents {
		if a.ID == id {
			return a
		}
	}
	panic(fmt.Sprintf("unknown agent %d", id))
}

// createAgent builds a fresh agent for one game. Random agents are reseeded
// with the game number so every game differs but reruns repeat.
func createAgent(config metrics.AgentConfig, game int) agent.Agent {
	switch config.Kind {
	case SearchKind:
		return agent.NewSearchAgent(config.Depth)
	case RandomKind:
		return agent.NewRandomAgent(config.Seed + uint64(game))
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}
