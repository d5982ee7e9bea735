package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/okastra/caissa/board"
	"github.com/okastra/caissa/engine"
)

// play runs an engine self-play game from the given position.
func play(fen string, difficulty string, timeoutSec int) error {
	log.Println("============ play")
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}

	var d engine.Difficulty
	switch difficulty {
	case "easy":
		d = engine.DifficultyEasy
	case "medium":
		d = engine.DifficultyMedium
	case "hard":
		d = engine.DifficultyHard
	default:
		return fmt.Errorf("unknown difficulty %q", difficulty)
	}

	e := engine.NewEngine(&engine.Config{
		Difficulty: d,
		Movetime:   time.Duration(timeoutSec) * time.Second,
		Repertoire: engine.DefaultBook(time.Now().UnixNano()),
		Seed:       time.Now().UnixNano(),
		Debug:      true,
	})

	ctx := context.Background()
	fmt.Println(draw(b))
	fmt.Println(b.FEN())

	for b.Status().IsRunning() {
		a, err := e.Analyze(ctx, b)
		if err != nil {
			return err
		}
		mv, err := b.ApplyMove(board.MoveIntent{From: a.BestMove.From, To: a.BestMove.To, Promotion: a.BestMove.Promotion})
		if err != nil {
			return err
		}

		fmt.Printf("\n>>> %s: %s", mv.Piece.Side, mv)
		if a.Opening != "" {
			fmt.Printf(" (%s)", a.Opening)
		}
		fmt.Println()
		fmt.Println(draw(b))
		fmt.Println(b.FEN())
	}

	log.Println("=============== game ended:", b.Status())
	dumpHistory(b.History())
	return nil
}
