package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sys/unix"
)

// Styles holds the lipgloss styles for rendered lines.
type Styles struct {
	Kind   lipgloss.Style
	Value  lipgloss.Style
	Marker lipgloss.Style
}

// NewStyles creates the default color styles.
func NewStyles() Styles {
	return Styles{
		Kind:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // cyan
		Value:  lipgloss.NewStyle(),
		Marker: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true), // bold red
	}
}

// NoStyles returns styles with no coloring.
func NoStyles() Styles {
	return Styles{
		Kind:   lipgloss.NewStyle(),
		Value:  lipgloss.NewStyle(),
		Marker: lipgloss.NewStyle(),
	}
}

// IsTerminal checks if the given file descriptor is a terminal using ioctl.
func IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}

// StdoutIsTerminal returns true if stdout is a terminal.
func StdoutIsTerminal() bool {
	return IsTerminal(os.Stdout.Fd())
}
