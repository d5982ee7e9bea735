package engine

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/okastra/caissa/board"
	"github.com/okastra/caissa/position"
)

// Repertoire is the pluggable opening source consulted before tree search.
// It may be absent; the engine treats nil as "no repertoire".
type Repertoire interface {
	// Lookup returns a weighted suggestion for the position, if any.
	Lookup(b *board.Board) (BookMove, bool)
	// MaxPly is the depth ceiling below which the repertoire is consulted.
	MaxPly() int
}

// BookMove is one weighted repertoire suggestion.
type BookMove struct {
	Intent board.MoveIntent
	Weight int
	Name   string // opening name carried as metadata
}

// Book is a position-keyed repertoire: canonical position key to weighted
// move suggestions. Lookups pick among the entries at random, proportional
// to weight, using the book's own deterministic source.
type Book struct {
	positions map[string][]BookMove
	maxPly    int
	rng       *rand.Rand
}

func NewBook(seed int64, maxPly int) *Book {
	return &Book{
		positions: make(map[string][]BookMove),
		maxPly:    maxPly,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

func (bk *Book) MaxPly() int {
	return bk.maxPly
}

// Add registers a suggestion under the canonical position key. Non-positive
// weights count as 1.
func (bk *Book) Add(key string, mv BookMove) {
	if mv.Weight <= 0 {
		mv.Weight = 1
	}
	bk.positions[key] = append(bk.positions[key], mv)
}

// AddLine replays a space-separated coordinate-notation line from the
// starting position and registers each move under the position it was played
// from. Illegal lines are rejected whole.
func (bk *Book) AddLine(name string, line string, weight int) error {
	b, err := board.NewBoard()
	if err != nil {
		return err
	}
	for _, uci := range strings.Fields(line) {
		intent, err := parseUCI(uci)
		if err != nil {
			return fmt.Errorf("line %q: %w", name, err)
		}
		key := b.PositionKey()
		if _, err := b.ApplyMove(intent); err != nil {
			return fmt.Errorf("line %q: move %s: %w", name, uci, err)
		}
		bk.Add(key, BookMove{Intent: intent, Weight: weight, Name: name})
	}
	return nil
}

// Lookup picks a suggestion for the board's position, weighted at random.
func (bk *Book) Lookup(b *board.Board) (BookMove, bool) {
	entries := bk.positions[b.PositionKey()]
	if len(entries) == 0 {
		return BookMove{}, false
	}
	total := 0
	for _, e := range entries {
		total += e.Weight
	}
	pick := bk.rng.Intn(total)
	for _, e := range entries {
		pick -= e.Weight
		if pick < 0 {
			return e, true
		}
	}
	return entries[len(entries)-1], true
}

// Positions lists the canonical keys the book covers, sorted for stable output.
func (bk *Book) Positions() []string {
	keys := maps.Keys(bk.positions)
	sort.Strings(keys)
	return keys
}

func parseUCI(s string) (board.MoveIntent, error) {
	if len(s) != 4 && len(s) != 5 {
		return board.MoveIntent{}, fmt.Errorf("bad coordinate move %q", s)
	}
	from, err := position.NewSquareFromNotation(s[:2])
	if err != nil {
		return board.MoveIntent{}, err
	}
	to, err := position.NewSquareFromNotation(s[2:4])
	if err != nil {
		return board.MoveIntent{}, err
	}
	intent := board.MoveIntent{From: from, To: to}
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			intent.Promotion = board.PieceTypeQueen
		case 'r':
			intent.Promotion = board.PieceTypeRook
		case 'b':
			intent.Promotion = board.PieceTypeBishop
		case 'n':
			intent.Promotion = board.PieceTypeKnight
		default:
			return board.MoveIntent{}, fmt.Errorf("bad promotion %q", s)
		}
	}
	return intent, nil
}

// DefaultBook returns a small built-in repertoire of mainline openings,
// weighted towards the most played continuations.
func DefaultBook(seed int64) *Book {
	bk := NewBook(seed, 8)
	lines := []struct {
		name   string
		line   string
		weight int
	}{
		{"Ruy Lopez", "e2e4 e7e5 g1f3 b8c6 f1b5 a7a6 b5a4 g8f6", 4},
		{"Italian Game", "e2e4 e7e5 g1f3 b8c6 f1c4 f8c5", 3},
		{"Sicilian Defence", "e2e4 c7c5 g1f3 d7d6 d2d4 c5d4 f3d4 g8f6", 4},
		{"French Defence", "e2e4 e7e6 d2d4 d7d5", 2},
		{"Caro-Kann Defence", "e2e4 c7c6 d2d4 d7d5", 2},
		{"Queen's Gambit", "d2d4 d7d5 c2c4 e7e6 b1c3 g8f6", 4},
		{"Slav Defence", "d2d4 d7d5 c2c4 c7c6", 2},
		{"King's Indian Defence", "d2d4 g8f6 c2c4 g7g6 b1c3 f8g7", 3},
		{"Nimzo-Indian Defence", "d2d4 g8f6 c2c4 e7e6 b1c3 f8b4", 3},
		{"English Opening", "c2c4 e7e5 b1c3 g8f6", 2},
	}
	for _, l := range lines {
		// lines are fixed and legal; AddLine cannot fail here
		_ = bk.AddLine(l.name, l.line, l.weight)
	}
	return bk
}
