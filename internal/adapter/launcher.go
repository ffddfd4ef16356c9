package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
)

// ErrNoBrowser indicates no way of opening URLs was found on this system
var ErrNoBrowser = errors.New("no browser launcher found")

// launchPath defines a single way to open a URL
type launchPath struct {
	command string   // Command name looked up in PATH
	args    []string // Arguments placed before the URL
}

// openers lists, per platform, the launch paths to try in order
var openers = map[string][]launchPath{
	"darwin": {
		{command: "open"},
	},
	"linux": {
		{command: "xdg-open"},
		{command: "gio", args: []string{"open"}},
		{command: "sensible-browser"},
	},
	"windows": {
		{command: "rundll32", args: []string{"url.dll,FileProtocolHandler"}},
	},
}

// Launcher opens product pages in an external browser
type Launcher struct {
	command string   // configured browser command, empty for system default
	args    []string // additional arguments for the browser
	logger  *slog.Logger

	// lookPath and start are swapped out in tests
	lookPath func(string) (string, error)
	start    func(name string, args ...string) error
}

// NewLauncher creates a new Launcher. An empty command uses the platform default.
func NewLauncher(command string, args []string, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{
		command:  command,
		args:     args,
		logger:   logger,
		lookPath: exec.LookPath,
		start:    startDetached,
	}
}

// Open opens url without waiting for the browser to exit
func (l *Launcher) Open(url string) error {
	if l.command != "" {
		cmdArgs := append(append([]string{}, l.args...), url)
		if err := l.start(l.command, cmdArgs...); err != nil {
			return fmt.Errorf("failed to launch %s: %w", l.command, err)
		}
		l.logger.Info("opened url", "browser", l.command, "url", url)
		return nil
	}

	paths, ok := openers[runtime.GOOS]
	if !ok {
		paths = openers["linux"] // default
	}

	for _, lp := range paths {
		if _, err := l.lookPath(lp.command); err != nil {
			l.logger.Debug("browser launcher not available", "command", lp.command)
			continue
		}

		cmdArgs := append(append([]string{}, lp.args...), url)
		if err := l.start(lp.command, cmdArgs...); err != nil {
			l.logger.Warn("browser launch failed", "command", lp.command, "error", err)
			continue
		}

		l.logger.Info("opened url", "browser", lp.command, "url", url)
		return nil
	}

	return ErrNoBrowser
}

// startDetached starts a command and reaps it in the background
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
