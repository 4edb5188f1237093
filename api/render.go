package api

import (
	"fmt"
	"strings"

	mb "github.com/saeidalz13/seabattle/models/battleship"
)

const boardsSeparator = "   :   "

func cellGlyph(state mb.CellState, hidden bool) string {
	switch state {
	case mb.CellShip:
		if hidden {
			return "O"
		}
		return "■"
	case mb.CellHit:
		return "X"
	case mb.CellSunk:
		return "#"
	case mb.CellMiss:
		return "."
	default:
		return "O"
	}
}

// RenderBoard draws the board with 1-indexed headers: columns are X,
// rows are Y. Ships of a hidden board are drawn as open water; the
// board itself is not changed.
func RenderBoard(b *mb.Board) []string {
	lines := make([]string, 0, b.Size()+1)

	var header strings.Builder
	header.WriteString("  |")
	for x := 0; x < b.Size(); x++ {
		fmt.Fprintf(&header, " %d |", x+1)
	}
	lines = append(lines, header.String())

	for y := 0; y < b.Size(); y++ {
		var row strings.Builder
		fmt.Fprintf(&row, "%d |", y+1)
		for x := 0; x < b.Size(); x++ {
			fmt.Fprintf(&row, " %s |", cellGlyph(b.Cell(mb.NewDot(x, y)), b.Hidden()))
		}
		lines = append(lines, row.String())
	}
	return lines
}

// RenderBoards puts both boards side by side under their titles.
func RenderBoards(userTitle, aiTitle string, user, ai *mb.Board) string {
	userLines := RenderBoard(user)
	aiLines := RenderBoard(ai)

	// fmt pads by runes, which keeps the ■ glyph and non latin titles aligned
	width := len([]rune(userLines[0])) + len(boardsSeparator)

	var out strings.Builder
	fmt.Fprintf(&out, "%-*s%s\n", width, userTitle, aiTitle)
	for i := 0; i < len(userLines) && i < len(aiLines); i++ {
		out.WriteString(userLines[i] + boardsSeparator + aiLines[i] + "\n")
	}
	return out.String()
}
