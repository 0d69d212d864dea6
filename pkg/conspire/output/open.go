package output

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/google/shlex"
	"github.com/pkg/browser"
)

// ErrEmptyCommand indicates a viewer command with no program.
var ErrEmptyCommand = errors.New("empty viewer command")

// Opener presents a persisted artifact to the user.
type Opener interface {
	Open(path string) error
}

// BrowserOpener opens files with the platform's default browser.
type BrowserOpener struct{}

// Open hands path to the default browser.
func (BrowserOpener) Open(path string) error {
	if err := browser.OpenFile(path); err != nil {
		return fmt.Errorf("failed to open %s in browser: %w", path, err)
	}
	return nil
}

// CommandOpener runs a user supplied command with the path appended.
type CommandOpener struct {
	Command string
}

// Open runs the command and waits for it to exit.
func (o CommandOpener) Open(path string) error {
	args, err := shlex.Split(o.Command)
	if err != nil {
		return fmt.Errorf("failed to parse viewer command %q: %w", o.Command, err)
	}
	if len(args) == 0 {
		return ErrEmptyCommand
	}
	cmd := exec.Command(args[0], append(args[1:], path)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return fmt.Errorf("viewer %s failed: %w: %s", args[0], err, msg)
		}
		return fmt.Errorf("viewer %s failed: %w", args[0], err)
	}
	return nil
}

// DefaultCommand returns the shell command that opens files on goos.
func DefaultCommand(goos string) string {
	switch goos {
	case "windows":
		// start takes its first quoted argument as the window title.
		return `cmd /C start ""`
	case "darwin":
		return "open"
	default:
		return "xdg-open"
	}
}

// SystemCommand selects the platform's open command instead of a browser.
const SystemCommand = "system"

// NewOpener returns a BrowserOpener for an empty command, the platform
// command for SystemCommand, and a CommandOpener otherwise.
func NewOpener(command string) Opener {
	switch strings.TrimSpace(command) {
	case "":
		return BrowserOpener{}
	case SystemCommand:
		return CommandOpener{Command: DefaultCommand(runtime.GOOS)}
	}
	return CommandOpener{Command: command}
}
