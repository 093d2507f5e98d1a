package main

import (
	"io"
	"os"
	"os/exec"
)

var resetSequences = []string{
	"\x1b[?1003l", // Mouse motion off
	"\x1b[?1002l", // Mouse drag off
	"\x1b[?1000l", // Mouse click off
	"\x1b[?1006l", // SGR mouse off
	"\x1b[?25h",   // Show cursor
	"\x1b[?1049l", // Leave alternate screen
	"\x1b[0m",     // Reset attributes
	"\x1b[?7h",    // Auto wrap on
}

// emergencyReset restores a usable terminal after a crash left tcell mid-session
func emergencyReset(w io.Writer) {
	for _, seq := range resetSequences {
		io.WriteString(w, seq)
	}
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences do not restore termios; best effort only
	cmd := exec.Command("stty", "sane")
	cmd.Stdin = os.Stdin
	_ = cmd.Run()
}
