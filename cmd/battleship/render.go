package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	mb "github.com/saeidalz13/battleship-autoplay/models/battleship"
)

const (
	separatorBoards = "---------------------------------------------------------------------------------------------------"
	separatorRounds = "==================================================================================================="
)

var shipPartStyle = color.New(color.FgBlue, color.BgYellow)

func renderCell(c mb.CellSnapshot) string {
	hit := color.Green.Sprint("o")
	if c.Hit {
		hit = color.Red.Sprint("x")
	}

	part := "n"
	if c.Part != "" {
		part = strings.ToLower(c.Part[:1])
	}

	cell := fmt.Sprintf("%s%d[%s%s]", c.Col, c.Row, part, hit)
	if c.Part != "" {
		return shipPartStyle.Sprint(cell)
	}
	return cell
}

func renderGrid(grid [][]mb.CellSnapshot) string {
	var sb strings.Builder
	for _, row := range grid {
		sb.WriteByte('\n')
		for _, cell := range row {
			sb.WriteString(renderCell(cell))
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func lastHit(p mb.PlayerSnapshot) string {
	if p.LastHitPosition == nil {
		return "None"
	}
	return renderCell(*p.LastHitPosition)
}

// renderGame writes the boards in shooting order, followed by the
// last cell each player hit.
func renderGame(w io.Writer, s mb.GameSnapshot) {
	first, second := s.Players[s.ShootsFirstIndex], s.Players[1-s.ShootsFirstIndex]

	winner := s.Winner
	if winner == "" {
		winner = "None"
	}

	fmt.Fprintf(w, "\n%s vs %s: Round %d, %s, Winner: %s\n", s.ShootsFirst, s.ShootsSecond, s.Round, s.Status, winner)
	fmt.Fprintf(w, "%s's Board%s\n", first.Name, renderGrid(first.Grid))
	fmt.Fprintln(w, separatorBoards)
	fmt.Fprintf(w, "%s's Board%s\n", second.Name, renderGrid(second.Grid))
	fmt.Fprintf(w, "%s hit %s\n", first.Name, lastHit(second))
	fmt.Fprintf(w, "%s hit %s\n", second.Name, lastHit(first))
	fmt.Fprintf(w, "%s\n\n", separatorRounds)
}
