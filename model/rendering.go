package model

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Display renders a bounded grid, one terminal row per grid row
func (r *TerminalRenderer) Display(w io.Writer, grid [][]bool) {
	for _, row := range grid {
		for _, alive := range row {
			if alive {
				fmt.Fprint(w, gridPosBlock)
			} else {
				fmt.Fprint(w, gridPosEmpty)
			}
		}
		fmt.Fprintln(w)
	}
}

// DisplayWindow renders a rectangle of a sparse universe
func (r *TerminalRenderer) DisplayWindow(w io.Writer, s *SparseEngine, win Window) error {
	return s.PrintWindow(w, win)
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	var cmd *exec.Cmd
	cmd = exec.Command(macosClearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		log.Println("Error clearing terminal:", err)
	}
}
