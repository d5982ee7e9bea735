package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/okastra/caissa/board"
)

func movegen(fen string) error {
	log.Println("============ movegen")
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Println("to move:", b.Turn())
	fmt.Println(b.Dump())
	fmt.Println(b.DebugString())

	mvs := b.LegalMoves(b.Turn())
	for i, mv := range mvs {
		fmt.Printf("option %*d: [%s] [%s] %s %s => %s (cap=%v) (enp=%v) (cas=%s) (pro=%s)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.UCI(), mv.Algebra(), mv.Piece, mv.From, mv.To,
			mv.IsCapture(), mv.IsEnPassant, mv.Castle, mv.Promotion)
	}
	return nil
}
