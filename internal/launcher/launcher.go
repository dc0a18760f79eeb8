// Package launcher prepares an environment and hands control to an
// external entry point: it installs the entry point's dependencies,
// runs it, and pauses for acknowledgment before returning.
//
// The sequence is strictly linear and deliberately forgiving: the
// installer's and the entry point's exit statuses are never inspected,
// so the final pause is always reached and the user can read whatever
// the children printed before the terminal is cleared.
package launcher

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ventlab/ventctl/internal/errors"
	"github.com/ventlab/ventctl/internal/logging"
)

// clearScreen is the terminal-clear control sequence, emitted three
// times per run: before installing, before the entry point, and after
// the pause.
const clearScreen = "\x1b[H\x1b[2J"

// Defaults reproducing the historical launch script.
const (
	DefaultInstaller   = "pip3 install -r"
	DefaultManifest    = "requirements.txt"
	DefaultInterpreter = "python3"
	DefaultEntryPoint  = "src/main.py"
	DefaultPrompt      = "Press Enter to continue..."
)

// Options configures a Launcher. Zero-value fields fall back to the
// defaults above and to the process's standard streams.
type Options struct {
	// BaseDir is the directory holding the manifest and entry point.
	// When empty it is resolved from the running executable.
	BaseDir string
	// Installer is the dependency installer command; the manifest path
	// is appended as its final argument.
	Installer string
	// Manifest is the dependency manifest, relative to BaseDir.
	Manifest string
	// Interpreter runs the entry point.
	Interpreter string
	// EntryPoint is the program to hand control to, relative to BaseDir.
	EntryPoint string
	// Prompt is printed before the final blocking read.
	Prompt string

	In     io.Reader
	Out    io.Writer
	Err    io.Writer
	Runner CommandRunner
}

// Launcher runs the install/run/pause sequence.
type Launcher struct {
	opts Options
}

// New creates a launcher, filling unset options with defaults.
func New(opts Options) *Launcher {
	if opts.Installer == "" {
		opts.Installer = DefaultInstaller
	}
	if opts.Manifest == "" {
		opts.Manifest = DefaultManifest
	}
	if opts.Interpreter == "" {
		opts.Interpreter = DefaultInterpreter
	}
	if opts.EntryPoint == "" {
		opts.EntryPoint = DefaultEntryPoint
	}
	if opts.Prompt == "" {
		opts.Prompt = DefaultPrompt
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.Runner == nil {
		opts.Runner = ExecRunner{}
	}
	return &Launcher{opts: opts}
}

// ExecutableDir resolves the symlink-resolved directory of the running
// executable.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	return filepath.Dir(resolved), nil
}

// Run executes the launch sequence:
//
//  1. clear the terminal
//  2. resolve the base directory
//  3. install dependencies with stdout suppressed, ignoring failure
//  4. clear the terminal
//  5. run the entry point inheriting the terminal, ignoring its exit code
//  6. prompt and block until one line of input arrives
//  7. clear the terminal
//
// The only error Run can return is a base directory resolution failure.
func (l *Launcher) Run(ctx context.Context) error {
	l.clear()

	base := l.opts.BaseDir
	if base == "" {
		dir, err := ExecutableDir()
		if err != nil {
			return errors.LaunchPathError(err)
		}
		base = dir
	}

	l.installDependencies(ctx, base)
	l.clear()
	l.runEntryPoint(ctx, base)
	l.pause()
	l.clear()
	return nil
}

// installDependencies runs the installer against the manifest. Stdout is
// suppressed; the exit status is logged and otherwise ignored.
func (l *Launcher) installDependencies(ctx context.Context, base string) {
	fields := strings.Fields(l.opts.Installer)
	if len(fields) == 0 {
		return
	}
	manifest := filepath.Join(base, l.opts.Manifest)

	code, err := l.opts.Runner.Run(ctx, Command{
		Name:   fields[0],
		Args:   append(fields[1:], manifest),
		Dir:    base,
		Stdout: io.Discard,
		Stderr: l.opts.Err,
	})
	if err != nil {
		logging.Warn("dependency install failed to run", "installer", fields[0], "error", err)
	} else if code != 0 {
		logging.Warn("dependency install exited non-zero", "installer", fields[0], "exit_code", code)
	}
}

// runEntryPoint runs the entry point with the terminal attached. Its exit
// status is logged and otherwise ignored.
func (l *Launcher) runEntryPoint(ctx context.Context, base string) {
	entry := filepath.Join(base, l.opts.EntryPoint)

	code, err := l.opts.Runner.Run(ctx, Command{
		Name:   l.opts.Interpreter,
		Args:   []string{entry},
		Dir:    base,
		Stdin:  l.opts.In,
		Stdout: l.opts.Out,
		Stderr: l.opts.Err,
	})
	if err != nil {
		logging.Warn("entry point failed to run", "entry_point", entry, "error", err)
	} else if code != 0 {
		logging.Warn("entry point exited non-zero", "entry_point", entry, "exit_code", code)
	}
}

// pause prints the prompt and blocks until one line of input (possibly
// empty) is read. EOF unblocks as well.
func (l *Launcher) pause() {
	fmt.Fprint(l.opts.Out, l.opts.Prompt)
	reader := bufio.NewReader(l.opts.In)
	_, _ = reader.ReadString('\n')
}

func (l *Launcher) clear() {
	fmt.Fprint(l.opts.Out, clearScreen)
}
