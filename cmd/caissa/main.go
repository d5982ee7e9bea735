package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/okastra/caissa/board"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	movegenRun = flag.Bool("movegen", false, "run movegen mode")

	stepRun   = flag.Bool("step", false, "run step mode (random self-play)")
	stepLimit = flag.Int("step.limit", 5000, "half-move limit in step mode")

	playRun        = flag.Bool("play", false, "run play mode (engine self-play)")
	playDifficulty = flag.String("play.difficulty", "hard", "difficulty preset: easy, medium, hard")
	playTimeout    = flag.Int("play.timeout", 0, "soft search budget in seconds")
)

func main() {
	flag.Parse()

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain(args []string) error {
	fen := board.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}
	if *movegenRun {
		return movegen(fen)
	}
	if *stepRun {
		return step(fen, *stepLimit)
	}
	if *playRun {
		return play(fen, *playDifficulty, *playTimeout)
	}
	flag.Usage()
	return nil
}
