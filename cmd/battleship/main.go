package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/saeidalz13/battleship-autoplay/internal/config"
	mb "github.com/saeidalz13/battleship-autoplay/models/battleship"
)

func main() {
	if err := run(os.Stdin, os.Stdout, os.Args[1:]); err != nil {
		log.Fatalln(err)
	}
}

func run(in io.Reader, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("battleship", flag.ContinueOnError)
	fs.SetOutput(out)
	matchPath := fs.String("match", "", "HCL file with player_one, player_two and seed")
	seed := fs.Int64("seed", -1, "seed of the random source; negative picks one from the clock")
	everyRound := fs.Bool("every-round", false, "print the boards after every round")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var match config.MatchFile
	if *matchPath != "" {
		m, err := config.LoadMatchFile(*matchPath)
		if err != nil {
			return err
		}
		match = m
	}
	if *seed >= 0 {
		match.Seed = seed
	}

	reader := bufio.NewReader(in)
	if match.PlayerOne == "" {
		match.PlayerOne = prompt(reader, out, "Enter Player 1 name: ")
	}
	if match.PlayerTwo == "" {
		match.PlayerTwo = prompt(reader, out, "Enter Player 2 name: ")
	}

	var opts []mb.GameOption
	if match.Seed != nil {
		opts = append(opts, mb.WithSeed(uint64(*match.Seed)))
	}
	game := mb.NewGame(match.PlayerOne, match.PlayerTwo, opts...)

	for !game.IsOver() {
		if err := game.AdvanceRound(); err != nil {
			return err
		}
		if *everyRound {
			renderGame(out, game.Snapshot())
		}
	}

	fmt.Fprintln(out, "----------------------------")
	fmt.Fprintln(out, "Last round board status")
	fmt.Fprintln(out, "----------------------------")
	renderGame(out, game.Snapshot())
	fmt.Fprintln(out, "You sunk my battleship")
	return nil
}

// prompt returns the trimmed answer; empty on EOF.
func prompt(reader *bufio.Reader, out io.Writer, question string) string {
	fmt.Fprint(out, question)
	answer, _ := reader.ReadString('\n')
	return strings.TrimSpace(answer)
}
