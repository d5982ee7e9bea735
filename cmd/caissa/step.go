package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/okastra/caissa/board"
)

// step plays random legal moves from the given position, timing the core
// operations along the way.
func step(fen string, limit int) error {
	log.Println("============ step")
	var (
		timesLegalMoves []time.Duration
		timesApply      []time.Duration
	)
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < limit; i++ {
		t1 := time.Now()
		mvs := b.LegalMoves(b.Turn())
		timesLegalMoves = append(timesLegalMoves, time.Since(t1))
		if len(mvs) == 0 {
			break
		}
		pick := mvs[rng.Intn(len(mvs))]

		t1 = time.Now()
		mv, err := b.ApplyMove(board.MoveIntent{From: pick.From, To: pick.To, Promotion: pick.Promotion})
		if err != nil {
			return fmt.Errorf("unexpected rejection: %w", err)
		}
		timesApply = append(timesApply, time.Since(t1))

		fmt.Printf("\n===== [#%d] %s: %s\n", i/2+1, mv.Piece.Side, mv)
		fmt.Println(draw(b))
		fmt.Println(b.FEN())
		if !b.Status().IsRunning() {
			break
		}
	}

	avg := func(ds []time.Duration) time.Duration {
		var s time.Duration
		for _, d := range ds {
			s += d
		}
		if len(ds) == 0 {
			return 0
		}
		return s / time.Duration(len(ds))
	}

	fmt.Println()
	fmt.Println(b.Status())
	fmt.Println("legal:", avg(timesLegalMoves))
	fmt.Println("apply:", avg(timesApply))
	dumpHistory(b.History())
	return nil
}
