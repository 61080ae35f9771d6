// Package render writes the generated publish artifacts for a package.
package render

import (
	"bytes"
	"os"
	"path/filepath"
	"text/template"

	"github.com/packship/packship/internal/core/domain"
	"github.com/packship/packship/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// ManifestFilename is the generated manifest written next to the package
	// sources before publishing.
	ManifestFilename = "manifest.yaml"
	// ReadmeFilename is the generated readme.
	ReadmeFilename = "README.md"
)

var readmeTemplate = template.Must(template.New("readme").Parse(`# {{.Name}}

{{if .Description}}{{.Description}}

{{end}}Version: {{.Version}}

## Contents

{{range .Files}}- ` + "`{{.Path}}`" + ` ({{.Size}} bytes)
{{end}}`))

var _ ports.Renderer = (*Renderer)(nil)

// Renderer writes manifest.yaml and README.md into a package directory.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// manifest is the on-disk shape of manifest.yaml. Field order is fixed so the
// output is diff-friendly.
type manifest struct {
	Name        string               `yaml:"name"`
	Version     int                  `yaml:"version"`
	Description string               `yaml:"description,omitempty"`
	Files       []domain.PackageFile `yaml:"files"`
}

type readmeData struct {
	Name        string
	Description string
	Version     int
	Files       []domain.PackageFile
}

// Render writes both artifacts for the candidate version. pkg.Files must be
// populated by content assembly first.
func (r *Renderer) Render(pkg *domain.Package, version int) error {
	m := manifest{
		Name:        pkg.Name,
		Version:     version,
		Description: pkg.Description,
		Files:       pkg.Files,
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to marshal manifest"), "package", pkg.Key)
	}
	if err := writeArtifact(filepath.Join(pkg.Dir, ManifestFilename), data); err != nil {
		return err
	}

	var buf bytes.Buffer
	rd := readmeData{Name: pkg.Name, Description: pkg.Description, Version: version, Files: pkg.Files}
	if err := readmeTemplate.Execute(&buf, rd); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to render readme"), "package", pkg.Key)
	}
	return writeArtifact(filepath.Join(pkg.Dir, ReadmeFilename), buf.Bytes())
}

func writeArtifact(path string, data []byte) error {
	//nolint:gosec // Path is inside a discovered package directory
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write artifact"), "path", path)
	}
	return nil
}
