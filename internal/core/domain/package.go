// Package domain holds the core types for packship.
package domain

// PackageFile describes one file that contributes to a package's content.
type PackageFile struct {
	// Path is the file path relative to the package directory, slash-separated.
	Path string `yaml:"path"`
	// Size is the file size in bytes.
	Size int64 `yaml:"size"`
	// Checksum is the xxhash digest of the file content, hex-encoded.
	Checksum string `yaml:"checksum"`
}

// Package represents one publishable content unit discovered in the content root.
type Package struct {
	// Key is the normalized (lower-cased) package identifier used for
	// version tracking.
	Key string
	// Name is the display name as declared in the package metadata.
	Name string
	// Dir is the absolute path to the package directory.
	Dir string
	// Description is the human-readable summary from the package metadata.
	Description string
	// Exclude holds glob patterns for files that do not contribute to the
	// package content.
	Exclude []string
	// Files is the deterministic file table populated during content assembly.
	Files []PackageFile
}

// Project is the loaded packship configuration.
type Project struct {
	// ContentRoot is the directory scanned for packages.
	ContentRoot string
	// StatePath is the path of the persisted version state file.
	StatePath string
	// PublishCommand is the external registry command argv. It may contain
	// the placeholders {name}, {version} and {dir}.
	PublishCommand []string
	// PublishEnv holds extra environment variables for the publish command.
	PublishEnv map[string]string
}
