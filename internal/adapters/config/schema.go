package config

// File represents the structure of the garmin.yaml configuration file.
// Every field is optional; zero values fall back to defaults.
type File struct {
	Version        string   `yaml:"version"`
	Runtime        string   `yaml:"runtime"`
	PackageManager []string `yaml:"packageManager"`
	Manifest       string   `yaml:"manifest"`
	Entrypoint     []string `yaml:"entrypoint"`
	Port           int      `yaml:"port"`
	ExportDir      string   `yaml:"exportDir"`
}
