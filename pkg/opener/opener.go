// Package opener hands files over to an external application.
package opener

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Opener launches a viewer or editor for the file at path.
type Opener interface {
	Open(path string) error
}

var _ Opener = (*CommandOpener)(nil)

// CommandOpener runs a command with the file path as its last argument.
// The command is started and not waited for.
type CommandOpener struct {
	name string
	args []string
}

var (
	goos        = runtime.GOOS
	execCommand = exec.Command
)

// NewCommandOpener parses command (e.g. "code --reuse-window").
// An empty command selects the platform default.
func NewCommandOpener(command string) *CommandOpener {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		fields = defaultCommand(goos)
	}
	return &CommandOpener{name: fields[0], args: fields[1:]}
}

func defaultCommand(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"cmd", "/c", "start", ""}
	default:
		return []string{"xdg-open"}
	}
}

// Command is the program and arguments that Open runs for path.
func (o *CommandOpener) Command(path string) []string {
	command := make([]string, 0, len(o.args)+2)
	command = append(command, o.name)
	command = append(command, o.args...)
	return append(command, path)
}

func (o *CommandOpener) Open(path string) error {
	command := o.Command(path)
	cmd := execCommand(command[0], command[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s with %s: %w", path, o.name, err)
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
