// Package app implements the application layer for packship.
package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/packship/packship/internal/core/domain"
	"github.com/packship/packship/internal/core/ports"
	"github.com/packship/packship/internal/engine/updater"
	"go.trai.ch/zerr"
)

// RunOptions carries the per-invocation settings for a publish run.
type RunOptions struct {
	// ConfigPath is the path of the packship.yaml configuration file.
	ConfigPath string
	// Packages optionally restricts the run to the named packages.
	Packages []string
	// Force bypasses the content-hash gate and republishes every selected
	// package.
	Force bool
	// DryRun reports what would be published without rendering, publishing
	// or writing state.
	DryRun bool
}

// App drives publish runs: discover packages, decide per package whether the
// content changed, and publish where warranted.
type App struct {
	configLoader ports.ConfigLoader
	discoverer   ports.Discoverer
	supplier     ports.ContentSupplier
	renderer     ports.Renderer
	publisher    ports.Publisher
	stores       ports.StoreProvider
	progress     ports.ProgressReporter
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	discoverer ports.Discoverer,
	supplier ports.ContentSupplier,
	renderer ports.Renderer,
	publisher ports.Publisher,
	stores ports.StoreProvider,
	progress ports.ProgressReporter,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		discoverer:   discoverer,
		supplier:     supplier,
		renderer:     renderer,
		publisher:    publisher,
		stores:       stores,
		progress:     progress,
		logger:       logger,
	}
}

// Run executes one publish run. Packages are processed sequentially: the
// version state file has a single writer per process and decision cycles are
// load-decide-apply-save units. State corruption and persistence failures
// abort the run; a failed publish is a per-package warning and the run
// continues, returning domain.ErrPublishFailed at the end.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	project, pkgs, err := a.loadProject(opts.ConfigPath, opts.Packages)
	if err != nil {
		return err
	}

	upd := updater.New(a.stores.Open(project.StatePath))
	defer func() { _ = a.progress.Close() }()

	var failed []string
	for _, pkg := range pkgs {
		if err := ctx.Err(); err != nil {
			return err
		}

		task := a.progress.Begin(pkg.Key)

		content, err := a.supplier.Assemble(pkg)
		if err != nil {
			wrapped := zerr.With(zerr.Wrap(err, "failed to assemble package content"), "package", pkg.Key)
			task.Done(wrapped)
			return wrapped
		}

		cycle := &applyCycle{app: a, ctx: ctx, project: project, pkg: pkg, dryRun: opts.DryRun}
		updated, err := upd.PerformUpdate(pkg.Key, content, cycle.apply, opts.Force)
		if err != nil {
			task.Done(err)
			return err
		}

		switch {
		case !updated:
			a.logger.Info(pkg.Key + ": already up-to-date")
			task.Cached()
		case opts.DryRun, cycle.succeeded:
			task.Done(nil)
		default:
			a.logger.Warn(pkg.Key + ": publish failed")
			failed = append(failed, pkg.Key)
			task.Done(cycle.failure)
		}
	}

	if len(failed) > 0 {
		return zerr.With(zerr.Wrap(domain.ErrPublishFailed, "run finished with failed packages"), "packages", strings.Join(failed, ", "))
	}
	return nil
}

// applyCycle is the one-shot apply action for a single package's decision
// cycle. It translates render/publish errors into the boolean success flag
// the decision engine observes, keeping the cause for reporting.
type applyCycle struct {
	app     *App
	ctx     context.Context
	project *domain.Project
	pkg     *domain.Package
	dryRun  bool

	succeeded bool
	failure   error
}

func (c *applyCycle) apply(version int) bool {
	if c.dryRun {
		c.app.logger.Info(fmt.Sprintf("%s: would publish version %d", c.pkg.Key, version))
		return false
	}

	c.app.logger.Info(fmt.Sprintf("%s: publishing version %d", c.pkg.Key, version))

	if err := c.app.renderer.Render(c.pkg, version); err != nil {
		c.failure = err
		c.app.logger.Error(err)
		return false
	}
	if err := c.app.publisher.Publish(c.ctx, c.project, c.pkg, version); err != nil {
		c.failure = err
		c.app.logger.Error(err)
		return false
	}

	c.succeeded = true
	return true
}

// Status reports, without writing anything, each package's last committed
// version and whether its content has changed since.
func (a *App) Status(ctx context.Context, opts RunOptions) error {
	project, pkgs, err := a.loadProject(opts.ConfigPath, opts.Packages)
	if err != nil {
		return err
	}

	versions, err := a.stores.Open(project.StatePath).Load()
	if err != nil {
		return zerr.Wrap(err, "failed to load version state")
	}

	for _, pkg := range pkgs {
		if err := ctx.Err(); err != nil {
			return err
		}

		content, err := a.supplier.Assemble(pkg)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to assemble package content"), "package", pkg.Key)
		}

		entry, tracked := versions[pkg.Key]
		switch {
		case !tracked:
			a.logger.Info(pkg.Key + ": untracked, will publish version 1")
		case entry.ContentHash == updater.HashContent(content):
			a.logger.Info(pkg.Key + ": version " + strconv.Itoa(entry.Version) + ", up-to-date")
		default:
			a.logger.Info(pkg.Key + ": version " + strconv.Itoa(entry.Version) + ", content changed")
		}
	}

	return nil
}

// loadProject loads the configuration, discovers packages and applies the
// optional package selection.
func (a *App) loadProject(configPath string, selection []string) (*domain.Project, []*domain.Package, error) {
	project, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}

	pkgs, err := a.discoverer.Discover(project.ContentRoot)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to discover packages")
	}
	if len(pkgs) == 0 {
		return nil, nil, zerr.With(zerr.Wrap(domain.ErrNoPackages, "content root is empty"), "root", project.ContentRoot)
	}

	if len(selection) == 0 {
		return project, pkgs, nil
	}

	byKey := make(map[string]*domain.Package, len(pkgs))
	for _, pkg := range pkgs {
		byKey[pkg.Key] = pkg
	}

	selected := make([]*domain.Package, 0, len(selection))
	for _, name := range selection {
		key := strings.ToLower(name)
		pkg, ok := byKey[key]
		if !ok {
			return nil, nil, zerr.With(zerr.New("unknown package"), "package", name)
		}
		selected = append(selected, pkg)
	}
	return project, selected, nil
}
