package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	currentMoveStyle = lipgloss.NewStyle().
				Bold(true).
				Underline(true).
				Foreground(lipgloss.Color("226"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// stickerStyles is indexed by cube.Color.
var stickerStyles = [...]lipgloss.Style{
	cube.White:  sticker("255"),
	cube.Yellow: sticker("226"),
	cube.Green:  sticker("34"),
	cube.Blue:   sticker("27"),
	cube.Red:    sticker("196"),
	cube.Orange: sticker("208"),
}

func sticker(bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color("0"))
}

// renderNet draws the cube unfolded as
//
//	  U
//	L F R B
//	  D
//
// with colored stickers.
func renderNet(f cube.FaceletCube) string {
	var b strings.Builder
	row := func(block, r int) {
		face := f.Face(block)
		for col := 0; col < 3; col++ {
			c := face[r*3+col]
			if int(c) < len(stickerStyles) {
				b.WriteString(stickerStyles[c].Render(" " + c.String() + " "))
			} else {
				b.WriteString(" ? ")
			}
		}
		b.WriteString(" ")
	}
	pad := strings.Repeat(" ", 10)

	// Blocks in facelet order: 0=U 1=R 2=F 3=D 4=L 5=B.
	for r := 0; r < 3; r++ {
		b.WriteString(pad)
		row(0, r)
		b.WriteString("\n")
	}
	for r := 0; r < 3; r++ {
		for _, block := range []int{4, 2, 1, 5} {
			row(block, r)
		}
		b.WriteString("\n")
	}
	for r := 0; r < 3; r++ {
		b.WriteString(pad)
		row(3, r)
		b.WriteString("\n")
	}
	return b.String()
}
