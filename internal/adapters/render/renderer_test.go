package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/packship/packship/internal/adapters/render"
	"github.com/packship/packship/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testPackage(t *testing.T) *domain.Package {
	t.Helper()
	return &domain.Package{
		Key:         "acme-widget",
		Name:        "Acme-Widget",
		Dir:         t.TempDir(),
		Description: "Widgets for everyone",
		Files: []domain.PackageFile{
			{Path: "a.txt", Size: 5, Checksum: "00000000000000aa"},
			{Path: "sub/b.txt", Size: 4, Checksum: "00000000000000bb"},
		},
	}
}

func TestRender_WritesManifest(t *testing.T) {
	pkg := testPackage(t)
	require.NoError(t, render.NewRenderer().Render(pkg, 3))

	data, err := os.ReadFile(filepath.Join(pkg.Dir, render.ManifestFilename))
	require.NoError(t, err)

	var m struct {
		Name        string               `yaml:"name"`
		Version     int                  `yaml:"version"`
		Description string               `yaml:"description"`
		Files       []domain.PackageFile `yaml:"files"`
	}
	require.NoError(t, yaml.Unmarshal(data, &m))

	assert.Equal(t, "Acme-Widget", m.Name)
	assert.Equal(t, 3, m.Version)
	assert.Equal(t, "Widgets for everyone", m.Description)
	assert.Equal(t, pkg.Files, m.Files)
}

func TestRender_WritesReadme(t *testing.T) {
	pkg := testPackage(t)
	require.NoError(t, render.NewRenderer().Render(pkg, 3))

	data, err := os.ReadFile(filepath.Join(pkg.Dir, render.ReadmeFilename))
	require.NoError(t, err)

	readme := string(data)
	assert.Contains(t, readme, "# Acme-Widget")
	assert.Contains(t, readme, "Widgets for everyone")
	assert.Contains(t, readme, "Version: 3")
	assert.Contains(t, readme, "`a.txt` (5 bytes)")
	assert.Contains(t, readme, "`sub/b.txt` (4 bytes)")
}

func TestRender_Deterministic(t *testing.T) {
	pkg := testPackage(t)
	r := render.NewRenderer()

	require.NoError(t, r.Render(pkg, 3))
	first, err := os.ReadFile(filepath.Join(pkg.Dir, render.ManifestFilename))
	require.NoError(t, err)

	require.NoError(t, r.Render(pkg, 3))
	second, err := os.ReadFile(filepath.Join(pkg.Dir, render.ManifestFilename))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
