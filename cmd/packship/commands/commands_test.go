package commands_test

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/packship/packship/cmd/packship/commands"
	"github.com/packship/packship/internal/adapters/state"
	"github.com/packship/packship/internal/app"
	"github.com/packship/packship/internal/core/domain"
	"github.com/packship/packship/internal/core/ports"
	"github.com/packship/packship/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

type nopProgress struct{}

func (nopProgress) Begin(string) ports.ProgressTask { return nopTask{} }
func (nopProgress) Close() error                    { return nil }

type nopTask struct{}

func (nopTask) Stdout() io.Writer { return io.Discard }
func (nopTask) Cached()           {}
func (nopTask) Done(error)        {}

func newTestCLI(t *testing.T, ctrl *gomock.Controller) (*commands.CLI, *mocks.MockConfigLoader, *mocks.MockDiscoverer, *mocks.MockContentSupplier, *mocks.MockRenderer, *mocks.MockPublisher) {
	t.Helper()

	loader := mocks.NewMockConfigLoader(ctrl)
	disc := mocks.NewMockDiscoverer(ctrl)
	supplier := mocks.NewMockContentSupplier(ctrl)
	renderer := mocks.NewMockRenderer(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)

	a := app.New(loader, disc, supplier, renderer, publisher, state.Provider{}, nopProgress{}, nopLogger{})
	return commands.New(a), loader, disc, supplier, renderer, publisher
}

func TestPublish_DefaultConfigFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, loader, disc, supplier, renderer, publisher := newTestCLI(t, ctrl)

	project := &domain.Project{
		ContentRoot:    "packages",
		StatePath:      filepath.Join(t.TempDir(), "versions.json"),
		PublishCommand: []string{"true"},
	}
	pkg := &domain.Package{Key: "acme-widget", Name: "Acme-Widget", Dir: t.TempDir()}

	loader.EXPECT().Load("packship.yaml").Return(project, nil)
	disc.EXPECT().Discover("packages").Return([]*domain.Package{pkg}, nil)
	supplier.EXPECT().Assemble(pkg).Return([]byte("content"), nil)
	renderer.EXPECT().Render(pkg, 1).Return(nil)
	publisher.EXPECT().Publish(gomock.Any(), project, pkg, 1).Return(nil)

	cli.SetArgs([]string{"publish"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestPublish_DryRunFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, loader, disc, supplier, _, _ := newTestCLI(t, ctrl)

	project := &domain.Project{
		ContentRoot:    "packages",
		StatePath:      filepath.Join(t.TempDir(), "versions.json"),
		PublishCommand: []string{"true"},
	}
	pkg := &domain.Package{Key: "acme-widget", Name: "Acme-Widget", Dir: t.TempDir()}

	loader.EXPECT().Load("custom.yaml").Return(project, nil)
	disc.EXPECT().Discover("packages").Return([]*domain.Package{pkg}, nil)
	supplier.EXPECT().Assemble(pkg).Return([]byte("content"), nil)
	// Dry run: no render, no publish.

	cli.SetArgs([]string{"publish", "--dry-run", "-c", "custom.yaml"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestStatus_PassesSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, loader, disc, supplier, _, _ := newTestCLI(t, ctrl)

	project := &domain.Project{
		ContentRoot:    "packages",
		StatePath:      filepath.Join(t.TempDir(), "versions.json"),
		PublishCommand: []string{"true"},
	}
	widget := &domain.Package{Key: "acme-widget", Name: "Acme-Widget", Dir: t.TempDir()}
	gadget := &domain.Package{Key: "gadget", Name: "gadget", Dir: t.TempDir()}

	loader.EXPECT().Load("packship.yaml").Return(project, nil)
	disc.EXPECT().Discover("packages").Return([]*domain.Package{widget, gadget}, nil)
	// Only the selected package is assembled.
	supplier.EXPECT().Assemble(gadget).Return([]byte("content"), nil)

	cli.SetArgs([]string{"status", "gadget"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestRoot_Help(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, _, _, _, _, _ := newTestCLI(t, ctrl)

	cli.SetArgs([]string{"--help"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error for help, got: %v", err)
	}
}
