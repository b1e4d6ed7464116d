package metrics

import (
	"othello/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth     int
	Duration  time.Duration
	Nodes     int // Every negamax call, root included
	Leaves    int // Depth limit evaluations
	Terminals int // Finished games reached during search
	Passes    int // Nodes where the side to move had to pass
	Cutoffs   int // Sibling lists abandoned because beta <= alpha
	Value     int // Backed-up value of the root
}

type MoveMetric struct {
	Step   int
	Player game.Color
	Move   string // Algebraic coordinate
	Pass   bool   // Opponent had no reply so Player moves again
	Hash   uint64 // Board fingerprint after the move
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Color
	Winner         game.Color // None for a draw
	Black          int
	White          int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddTerminal()
	AddPass()
	AddCutoff()
	Complete(value int) SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	terminals atomic.Int64
	passes    atomic.Int64
	cutoffs   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) AddPass() {
	m.passes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete(value int) SearchMetric {
	return SearchMetric{
		Depth:     m.depth,
		Duration:  time.Since(m.startTime),
		Nodes:     int(m.nodes.Load()),
		Leaves:    int(m.leaves.Load()),
		Terminals: int(m.terminals.Load()),
		Passes:    int(m.passes.Load()),
		Cutoffs:   int(m.cutoffs.Load()),
		Value:     value,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)                 {}
func (m *dummyCollector) AddNode()                        {}
func (m *dummyCollector) AddLeaf()                        {}
func (m *dummyCollector) AddTerminal()                    {}
func (m *dummyCollector) AddPass()                        {}
func (m *dummyCollector) AddCutoff()                      {}
func (m *dummyCollector) Complete(value int) SearchMetric { return SearchMetric{Value: value} }
