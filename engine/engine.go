package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/okastra/caissa/board"
)

const (
	// ScoreInfinite bounds the alpha-beta window.
	ScoreInfinite = 1 << 30

	// scoreCheckmate is the base magnitude of a forced mate; the distance to
	// the mate is subtracted so faster mates (and slower losses) score better.
	scoreCheckmate = 1 << 20

	// minThinkDelay is the minimum response time of the weak difficulty. It
	// is a UX affordance with no correctness contract.
	minThinkDelay = 400 * time.Millisecond

	// topMoveSpread is how many of the best root moves the randomness picks
	// among when it triggers.
	topMoveSpread = 3
)

var (
	// ErrNoLegalMoves is returned when a search is requested on a position
	// with no legal moves. That is a caller error: the game is already over.
	ErrNoLegalMoves = errors.New("no legal moves")
)

// Difficulty selects a (max depth, randomness probability) preset.
type Difficulty uint8

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return ""
	}
}

type preset struct {
	maxDepth   uint8
	randomness float64
	thinkDelay time.Duration
}

var presets = map[Difficulty]preset{
	DifficultyEasy:   {maxDepth: 2, randomness: 0.5, thinkDelay: minThinkDelay},
	DifficultyMedium: {maxDepth: 3, randomness: 0.15},
	DifficultyHard:   {maxDepth: 4},
}

func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

// Config configures an Engine. The zero value plays at the easy preset with
// the default soft time budget and no repertoire.
type Config struct {
	Difficulty Difficulty
	MaxDepth   uint8         // overrides the preset's depth when non-zero
	Movetime   time.Duration // soft budget per search; DefaultMovetime when zero

	Repertoire Repertoire // optional; nil disables the opening fast path

	Seed   int64 // randomness source; searches are deterministic modulo this
	Logger func(...any)
	Debug  bool
}

// Engine is the adversarial search opponent: minimax with alpha-beta pruning
// over cloned boards, an opening-repertoire fast path, and difficulty-tuned
// randomness. An Engine is not safe for concurrent searches.
type Engine struct {
	maxDepth   uint8
	randomness float64
	thinkDelay time.Duration
	movetime   time.Duration
	repertoire Repertoire

	rng     *rand.Rand
	logger  func(...any)
	printer *message.Printer
	debug   bool

	nodes int
}

func NewEngine(cfg *Config) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger
	}
	p, ok := presets[cfg.Difficulty]
	if !ok {
		p = presets[DifficultyEasy]
	}
	if cfg.MaxDepth != 0 {
		p.maxDepth = cfg.MaxDepth
	}
	movetime := cfg.Movetime
	if movetime <= 0 {
		movetime = DefaultMovetime
	}
	return &Engine{
		maxDepth:   p.maxDepth,
		randomness: p.randomness,
		thinkDelay: p.thinkDelay,
		movetime:   movetime,
		repertoire: cfg.Repertoire,
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		logger:     cfg.Logger,
		printer:    message.NewPrinter(language.English),
		debug:      cfg.Debug,
	}
}

// ScoredMove pairs a root move with its search score.
type ScoredMove struct {
	Move  board.Move
	Score int
}

// Analysis is the full result of one search.
type Analysis struct {
	BestMove       board.Move
	Score          int // from White's perspective, centipawns
	Depth          uint8
	NodesEvaluated int
	ThinkingTime   time.Duration
	TopMoves       []ScoredMove
	Opening        string // opening name when served by the repertoire
}

// BestMove returns the move the engine would play for the side to move.
func (e *Engine) BestMove(ctx context.Context, b *board.Board) (board.Move, error) {
	a, err := e.Analyze(ctx, b)
	if err != nil {
		return board.Move{}, err
	}
	return a.BestMove, nil
}

// Analyze searches the position and reports the chosen move along with
// search statistics. Zero legal moves is a caller error and fails loudly.
func (e *Engine) Analyze(ctx context.Context, b *board.Board) (*Analysis, error) {
	start := time.Now()
	turn := b.Turn()
	legal := b.LegalMoves(turn)
	if len(legal) == 0 {
		return nil, fmt.Errorf("%w: status %s", ErrNoLegalMoves, b.Status())
	}
	e.nodes = 0

	// a single legal move needs no exploration at any configured depth
	if len(legal) == 1 {
		if err := e.wait(ctx, start); err != nil {
			return nil, err
		}
		return &Analysis{
			BestMove:     legal[0],
			Score:        e.staticScore(b),
			Depth:        0,
			ThinkingTime: time.Since(start),
		}, nil
	}

	// opening repertoire fast path, short-circuiting before tree search
	if e.repertoire != nil && b.Ply() < e.repertoire.MaxPly() {
		if bm, ok := e.repertoire.Lookup(b); ok {
			for _, mv := range legal {
				if !mv.Matches(bm.Intent) {
					continue
				}
				if err := e.wait(ctx, start); err != nil {
					return nil, err
				}
				if e.debug {
					e.logger(fmt.Sprintf("book hit: %s (%s)", mv, bm.Name))
				}
				return &Analysis{
					BestMove:     mv,
					Score:        e.staticScore(b),
					Depth:        0,
					ThinkingTime: time.Since(start),
					Opening:      bm.Name,
				}, nil
			}
		}
	}

	ck := newClock(ctx, e.movetime)
	maximizing := turn == board.SideWhite
	scored := make([]ScoredMove, 0, len(legal))
	for _, mv := range legal {
		bb := b.Clone()
		if _, err := bb.ApplyMove(board.MoveIntent{From: mv.From, To: mv.To, Promotion: mv.Promotion}); err != nil {
			return nil, fmt.Errorf("applying generated move %s: %w", mv, err)
		}
		// full window per root move so the top-3 ranking stays exact
		score := e.minimax(bb, e.maxDepth-1, 1, -ScoreInfinite, ScoreInfinite, !maximizing, ck)
		scored = append(scored, ScoredMove{Move: mv, Score: score})
		if ck.Done() {
			break
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if maximizing {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Score < scored[j].Score
	})

	best := scored[0]
	if e.randomness > 0 && e.rng.Float64() < e.randomness {
		best = scored[e.rng.Intn(min(topMoveSpread, len(scored)))]
	}

	if err := e.wait(ctx, start); err != nil {
		return nil, err
	}
	elapsed := time.Since(start)
	if e.debug {
		e.logger(e.printer.Sprintf("depth:%d nodes:%d (%.0fn/s) t:%s best:%s score:%d",
			e.maxDepth, e.nodes, float64(e.nodes)/(elapsed.Seconds()+1e-9), elapsed, best.Move, best.Score))
	}
	return &Analysis{
		BestMove:       best.Move,
		Score:          best.Score,
		Depth:          e.maxDepth,
		NodesEvaluated: e.nodes,
		ThinkingTime:   elapsed,
		TopMoves:       scored[:min(topMoveSpread, len(scored))],
	}, nil
}

// minimax explores the move tree on cloned boards: maximize for White,
// minimize for Black, prune when beta <= alpha, evaluate at depth zero or
// when the soft time budget has elapsed. dist is the ply distance from the
// search root, used to scale mate scores.
func (e *Engine) minimax(b *board.Board, depth uint8, dist int, alpha, beta int, maximizing bool, ck *clock) int {
	e.nodes++

	status := b.Status()
	switch {
	case status == board.StatusCheckmate:
		if maximizing {
			return -(scoreCheckmate - dist)
		}
		return scoreCheckmate - dist
	case status.IsDraw():
		return 0
	}

	if depth == 0 || ck.Done() {
		return e.staticScore(b)
	}

	moves := b.LegalMoves(b.Turn())
	if maximizing {
		best := -ScoreInfinite
		for _, mv := range moves {
			bb := b.Clone()
			_, _ = bb.ApplyMove(board.MoveIntent{From: mv.From, To: mv.To, Promotion: mv.Promotion})
			best = max(best, e.minimax(bb, depth-1, dist+1, alpha, beta, false, ck))
			alpha = max(alpha, best)
			if beta <= alpha {
				break
			}
			if ck.Done() {
				break
			}
		}
		return best
	}
	best := ScoreInfinite
	for _, mv := range moves {
		bb := b.Clone()
		_, _ = bb.ApplyMove(board.MoveIntent{From: mv.From, To: mv.To, Promotion: mv.Promotion})
		best = min(best, e.minimax(bb, depth-1, dist+1, alpha, beta, true, ck))
		beta = min(beta, best)
		if beta <= alpha {
			break
		}
		if ck.Done() {
			break
		}
	}
	return best
}

// staticScore evaluates the leaf from White's perspective.
func (e *Engine) staticScore(b *board.Board) int {
	grid := b.Grid()
	return Score(&grid, board.SideWhite)
}

// wait blocks until the minimum thinking delay has passed, cooperatively.
func (e *Engine) wait(ctx context.Context, start time.Time) error {
	remaining := e.thinkDelay - time.Since(start)
	if remaining <= 0 {
		return nil
	}
	timer := time.NewTimer(remaining)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func max[T constraints.Ordered](x1, x2 T) T {
	if x1 > x2 {
		return x1
	}
	return x2
}

func min[T constraints.Ordered](x1, x2 T) T {
	if x1 < x2 {
		return x1
	}
	return x2
}
