package bot

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// DefaultMemoryThreshold is the largest head×food distance product at which
// a stored memory still counts as the same situation.
const DefaultMemoryThreshold = 10.0

const flushTimeout = 5 * time.Second

func init() {
	registry.Register("memory", "replays remembered good moves and avoids bad ones", func(env registry.Env) (registry.DecisionSource, error) {
		var store MemoryStore
		if env.Store != nil {
			store = env.Store
		}
		return NewMemory(context.Background(), MemoryOptions{
			Rand:      env.Rand(),
			Store:     store,
			Logger:    env.Log(),
			Threshold: env.MemoryThreshold,
		})
	})
}

// MemoryStore persists memories between runs.
type MemoryStore interface {
	LoadMemories(ctx context.Context) ([]storage.Memory, error)
	SaveMemories(ctx context.Context, memories []storage.Memory) (int64, error)
}

// MemoryOptions configures NewMemory.
type MemoryOptions struct {
	Rand      *rand.Rand
	Store     MemoryStore // optional
	Logger    *log.Logger
	Threshold float64 // DefaultMemoryThreshold when zero
}

type memoryKey struct {
	head, food snake.Cell
	dir        snake.Direction
	outcome    storage.Outcome
}

// Memory is a toy reinforcement policy. It finds the stored situation closest
// to the current one; a good memory is replayed, a bad one is avoided, and with
// nothing close enough it moves at random. Every decision is graded by whether
// it brought the head closer to the food and remembered.
type Memory struct {
	rng       *rand.Rand
	store     MemoryStore
	logger    *log.Logger
	threshold float64

	memories []storage.Memory
	seen     map[memoryKey]struct{}
	unsaved  []storage.Memory
}

// NewMemory creates a memory policy, preloading whatever the store holds.
func NewMemory(ctx context.Context, opts MemoryOptions) (*Memory, error) {
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultMemoryThreshold
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // gameplay randomness
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	m := &Memory{
		rng:       opts.Rand,
		store:     opts.Store,
		logger:    opts.Logger,
		threshold: opts.Threshold,
		seen:      make(map[memoryKey]struct{}),
	}

	if m.store != nil {
		loaded, err := m.store.LoadMemories(ctx)
		if err != nil {
			return nil, fmt.Errorf("bot: load memories: %w", err)
		}
		for _, mem := range loaded {
			m.add(mem)
		}
		m.logger.Debug("memories loaded", "count", len(loaded))
	}

	return m, nil
}

// Name implements registry.DecisionSource.
func (*Memory) Name() string { return "memory" }

// Decide implements registry.DecisionSource.
func (m *Memory) Decide(v snake.View) snake.Intent {
	if in, ok := lifecycle(v); ok {
		return in
	}
	if !v.HasFood {
		return snake.NoIntent()
	}

	next := m.choose(v)

	outcome := storage.OutcomeBad
	if distance(v.Head.Add(next, v.Step), v.Food) < distance(v.Head, v.Food) {
		outcome = storage.OutcomeGood
	}
	mem := storage.Memory{
		HeadX: v.Head.X, HeadY: v.Head.Y,
		FoodX: v.Food.X, FoodY: v.Food.Y,
		DirX: next.DX, DirY: next.DY,
		Outcome: outcome,
	}
	if m.add(mem) {
		m.unsaved = append(m.unsaved, mem)
	}

	return snake.MoveIntent(next)
}

func (m *Memory) choose(v snake.View) snake.Direction {
	options := legal(v)

	recalled, ok := m.recall(v.Head, v.Food)
	if !ok {
		return options[m.rng.Intn(len(options))]
	}

	dir := snake.Direction{DX: recalled.DirX, DY: recalled.DirY}
	if recalled.Outcome == storage.OutcomeGood && dir != v.Heading.Opposite() {
		return dir
	}

	others := options[:0:0]
	for _, d := range options {
		if d != dir {
			others = append(others, d)
		}
	}
	if len(others) == 0 {
		others = options
	}
	return others[m.rng.Intn(len(others))]
}

// recall returns the memory minimizing head distance × food distance, if that
// product is under the threshold.
func (m *Memory) recall(head, food snake.Cell) (storage.Memory, bool) {
	best := -1
	bestScore := 0.0
	for i, mem := range m.memories {
		score := distance(head, snake.Cell{X: mem.HeadX, Y: mem.HeadY}) *
			distance(food, snake.Cell{X: mem.FoodX, Y: mem.FoodY})
		if best < 0 || score < bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 || bestScore >= m.threshold {
		return storage.Memory{}, false
	}
	return m.memories[best], true
}

func (m *Memory) add(mem storage.Memory) bool {
	key := memoryKey{
		head:    snake.Cell{X: mem.HeadX, Y: mem.HeadY},
		food:    snake.Cell{X: mem.FoodX, Y: mem.FoodY},
		dir:     snake.Direction{DX: mem.DirX, DY: mem.DirY},
		outcome: mem.Outcome,
	}
	if _, dup := m.seen[key]; dup {
		return false
	}
	m.seen[key] = struct{}{}
	m.memories = append(m.memories, mem)
	return true
}

// Len returns the number of distinct memories held.
func (m *Memory) Len() int {
	return len(m.memories)
}

// Finish implements registry.Finisher by flushing new memories to the store.
func (m *Memory) Finish(final snake.Snapshot) error {
	if m.store == nil || len(m.unsaved) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	n, err := m.store.SaveMemories(ctx, m.unsaved)
	if err != nil {
		return fmt.Errorf("bot: save memories: %w", err)
	}
	m.logger.Info("memories saved", "new", n, "total", len(m.memories), "score", final.Score)
	m.unsaved = m.unsaved[:0]
	return nil
}
