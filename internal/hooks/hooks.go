package hooks

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/natlink-labs/natlink/internal/branding"
)

// Func is a bound lifecycle hook. A nil Func means the dependency declares
// no hook for that phase and the phase is skipped.
type Func func(ctx context.Context) error

// Runner binds manifest command lines to executable hooks.
type Runner struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Command returns a hook that runs the given shell command line in dir.
// The extra map is added to the inherited environment.
func (r *Runner) Command(command, dir string, extra map[string]string) Func {
	return func(ctx context.Context) error {
		return r.run(ctx, command, dir, extra)
	}
}

func (r *Runner) run(ctx context.Context, command, dir string, extra map[string]string) error {
	shell, flag := systemShell()

	cmd := exec.CommandContext(ctx, shell, flag, command)
	cmd.Dir = dir
	cmd.Env = buildEnv(extra)

	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stderrBuf bytes.Buffer
	cmd.Stdout = stdout
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("hook command %q exited with status %d%s",
				command, exitErr.ExitCode(), stderrTail(&stderrBuf))
		}
		return fmt.Errorf("running hook command %q: %w", command, err)
	}
	return nil
}

// systemShell returns the shell binary and its command flag for this OS.
func systemShell() (string, string) {
	if runtime.GOOS == "windows" {
		return "cmd", "/C"
	}
	return "sh", "-c"
}

// buildEnv inherits the process environment and overlays the extra variables,
// each prefixed with the CLI's environment prefix.
func buildEnv(extra map[string]string) []string {
	env := os.Environ()
	for key, value := range extra {
		env = setEnv(env, branding.EnvVar(key), value)
	}
	return env
}

// setEnv sets or replaces an environment variable in the env slice.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}

// stderrTail renders the last portion of captured stderr for error messages.
func stderrTail(buf *bytes.Buffer) string {
	out := strings.TrimSpace(buf.String())
	if out == "" {
		return ""
	}
	lines := strings.Split(out, "\n")
	if len(lines) > 5 {
		lines = lines[len(lines)-5:]
	}
	return ": " + strings.Join(lines, "; ")
}
