// Package clipboard provides clipboard operations via platform-specific commands.
package clipboard

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/noahmasoud/autodoc"
)

// Ensure Command implements the Clipboard interface.
var _ autodoc.Clipboard = (*Command)(nil)

// Command implements Clipboard by piping content to a system clipboard
// command: pbcopy on macOS, falling back to xclip and wl-copy elsewhere.
type Command struct {
	name string
	args []string
}

// New returns a Command using the first clipboard tool found on PATH.
func New() (*Command, error) {
	candidates := []struct {
		name string
		args []string
	}{
		{"pbcopy", nil},
		{"wl-copy", nil},
		{"xclip", []string{"-selection", "clipboard"}},
	}
	for _, c := range candidates {
		if _, err := exec.LookPath(c.name); err == nil {
			return &Command{name: c.name, args: c.args}, nil
		}
	}
	return nil, fmt.Errorf("clipboard: no clipboard command found (tried pbcopy, wl-copy, xclip)")
}

// Copy writes content to the system clipboard.
func (c *Command) Copy(content string) error {
	cmd := exec.Command(c.name, c.args...)
	cmd.Stdin = strings.NewReader(content)
	return cmd.Run()
}
