package sim

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/automoto/haunt/logging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NextLevelFunc builds the simulation for a requested level. An empty id
// asks for the level after current.
type NextLevelFunc func(current *Simulation, levelID string) (*Simulation, error)

// GameLoop drives a Simulation from a ticker and swaps levels when the
// flow requests a transition.
type GameLoop struct {
	sim      *Simulation
	next     NextLevelFunc
	tickRate int
	session  string
	log      *zap.Logger

	mu       sync.Mutex
	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(s *Simulation, tickRate int, next NextLevelFunc, log *zap.Logger) *GameLoop {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	log = logging.OrNop(log)
	session := uuid.NewString()
	return &GameLoop{
		sim:      s,
		next:     next,
		tickRate: tickRate,
		session:  session,
		log:      log.With(zap.String("session", session)),
		stopChan: make(chan struct{}),
	}
}

// Run ticks until Stop is called.
func (g *GameLoop) Run() {
	g.running.Store(true)
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.log.Info("game loop started", zap.Int("tickRate", g.tickRate))

	for {
		select {
		case <-g.stopChan:
			g.running.Store(false)
			g.log.Info("game loop stopped", zap.Uint64("ticks", g.Simulation().Ticks()))
			return
		case <-ticker.C:
			g.Step()
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) Running() bool {
	return g.running.Load()
}

// Session identifies this loop in logs.
func (g *GameLoop) Session() string {
	return g.session
}

// Simulation returns the level currently being played.
func (g *GameLoop) Simulation() *Simulation {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sim
}

// Step runs one tick and performs a pending level transition. It returns
// false once the loop has nothing left to play.
func (g *GameLoop) Step() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.sim.Tick()
	levelID, ok := g.sim.RequestedLevel()
	if !ok {
		return true
	}
	if g.next == nil {
		g.log.Info("no next level, stopping")
		g.Stop()
		return false
	}
	next, err := g.next(g.sim, levelID)
	if err != nil {
		g.log.Error("load next level", zap.String("next", levelID), zap.Error(err))
		g.Stop()
		return false
	}
	if next == nil {
		g.log.Info("last level finished")
		g.Stop()
		return false
	}
	g.log.Info("level changed", zap.String("from", g.sim.Level().Name), zap.String("to", next.Level().Name))
	g.sim = next
	return true
}
