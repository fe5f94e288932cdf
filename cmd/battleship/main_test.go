package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gookit/color"
	mb "github.com/saeidalz13/battleship-autoplay/models/battleship"
)

func TestRunPromptsForNames(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("John\n\n")

	if err := run(in, &out, []string{"-seed", "3"}); err != nil {
		t.Fatal(err)
	}

	got := color.ClearCode(out.String())
	for _, expected := range []string{
		"Enter Player 1 name: ",
		"Enter Player 2 name: ",
		"John's Board",
		mb.DefaultPlayerTwoName + "'s Board",
		mb.GameStatusComplete,
		"You sunk my battleship",
	} {
		if !strings.Contains(got, expected) {
			t.Fatalf("expected output to contain %q\tgot:\n%s", expected, got)
		}
	}
}

func TestRunWithMatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match.hcl")
	src := "player_one = \"John\"\nplayer_two = \"Jack\"\nseed = 9\n"
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}

	var first, second bytes.Buffer
	if err := run(strings.NewReader(""), &first, []string{"-match", path}); err != nil {
		t.Fatal(err)
	}
	if err := run(strings.NewReader(""), &second, []string{"-match", path}); err != nil {
		t.Fatal(err)
	}

	got := color.ClearCode(first.String())
	if strings.Contains(got, "Enter Player") {
		t.Fatalf("names from the match file must not be prompted\tgot:\n%s", got)
	}
	if !strings.Contains(got, "John vs Jack") && !strings.Contains(got, "Jack vs John") {
		t.Fatalf("expected title with both names\tgot:\n%s", got)
	}
	if first.String() != second.String() {
		t.Fatal("same seed must produce the same game")
	}
}

func TestRenderCell(t *testing.T) {
	tests := []struct {
		name     string
		cell     mb.CellSnapshot
		expected string
	}{
		{name: "empty", cell: mb.CellSnapshot{Col: "A", Row: 1}, expected: "A1[no]"},
		{name: "empty hit", cell: mb.CellSnapshot{Col: "H", Row: 8, Hit: true}, expected: "H8[nx]"},
		{name: "front", cell: mb.CellSnapshot{Col: "C", Row: 3, Part: "Front"}, expected: "C3[fo]"},
		{name: "middle hit", cell: mb.CellSnapshot{Col: "D", Row: 3, Hit: true, Part: "Middle"}, expected: "D3[mx]"},
		{name: "rear", cell: mb.CellSnapshot{Col: "E", Row: 3, Part: "Rear"}, expected: "E3[ro]"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := color.ClearCode(renderCell(test.cell)); got != test.expected {
				t.Fatalf("expected %s\tgot: %s", test.expected, got)
			}
		})
	}
}

func TestRenderGameOrderWithEqualNames(t *testing.T) {
	s := mb.GameSnapshot{
		Round:            3,
		Status:           mb.GameStatusInProgress,
		ShootsFirst:      "Bob",
		ShootsSecond:     "Bob",
		ShootsFirstIndex: 1,
		Players: [2]mb.PlayerSnapshot{
			{Name: "Bob", LastHitPosition: &mb.CellSnapshot{Col: "A", Row: 1}},
			{Name: "Bob", LastHitPosition: &mb.CellSnapshot{Col: "H", Row: 8}},
		},
	}

	var out bytes.Buffer
	renderGame(&out, s)
	got := color.ClearCode(out.String())

	// Player two shoots first, so its line reports the hit on player one's grid
	first := strings.Index(got, "Bob hit A1[no]")
	second := strings.Index(got, "Bob hit H8[no]")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("expected the first shooter's hit line first\tgot:\n%s", got)
	}
}
