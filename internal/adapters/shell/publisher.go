// Package shell provides the external publish command adapter.
package shell

import (
	"context"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/packship/packship/internal/core/domain"
	"github.com/packship/packship/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Publisher = (*Publisher)(nil)

// Publisher runs the configured registry publish command via os/exec.
type Publisher struct {
	logger ports.Logger
}

// NewPublisher creates a new Publisher.
func NewPublisher(logger ports.Logger) *Publisher {
	return &Publisher{logger: logger}
}

// Publish expands the command placeholders and runs it in the package
// directory. Command output is streamed to the logger. A non-zero exit is
// returned as an error carrying the exit code.
func (p *Publisher) Publish(ctx context.Context, project *domain.Project, pkg *domain.Package, version int) error {
	if len(project.PublishCommand) == 0 {
		return zerr.New("publish command not configured")
	}

	argv := expandCommand(project.PublishCommand, pkg, version)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // command comes from project configuration
	cmd.Dir = pkg.Dir
	cmd.Env = mergeEnvironment(os.Environ(), project.PublishEnv)
	cmd.Stdout = &logWriter{logger: p.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: p.logger, level: "error"}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(zerr.Wrap(err, "publish command failed"), "package", pkg.Key), "exit_code", exitCode)
	}

	return nil
}

// expandCommand substitutes the {name}, {version} and {dir} placeholders in
// each argv element.
func expandCommand(argv []string, pkg *domain.Package, version int) []string {
	replacer := strings.NewReplacer(
		"{name}", pkg.Name,
		"{version}", strconv.Itoa(version),
		"{dir}", pkg.Dir,
	)
	out := make([]string, len(argv))
	for i, arg := range argv {
		out[i] = replacer.Replace(arg)
	}
	return out
}

// mergeEnvironment applies the configured overrides on top of the process
// environment.
func mergeEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
