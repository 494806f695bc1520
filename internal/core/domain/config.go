package domain

import "fmt"

// LaunchConfig describes how to start the dashboard. Every field has a
// default so the launcher works with no config file and no flags.
type LaunchConfig struct {
	// Runtime is the interpreter executable checked as a prerequisite.
	Runtime string
	// PackageManager is the argv prefix used to install the manifest,
	// e.g. ["python3", "-m", "pip"]. Its first element is also checked
	// as a prerequisite when it differs from Runtime.
	PackageManager []string
	// Manifest is the dependency manifest path handed to the package manager.
	Manifest string
	// Entrypoint is the argv prefix that starts the dashboard process.
	Entrypoint []string
	// Port is the local port the dashboard binds to.
	Port int
	// WorkingDir is where install and launch commands run.
	WorkingDir string
}

// DefaultLaunchConfig returns the configuration matching the conventional
// Streamlit dashboard setup.
func DefaultLaunchConfig() LaunchConfig {
	return LaunchConfig{
		Runtime:        "python3",
		PackageManager: []string{"python3", "-m", "pip"},
		Manifest:       DefaultManifestName,
		Entrypoint:     []string{"streamlit", "run", "streamlit_dashboard.py"},
		Port:           DefaultPort,
	}
}

// InstallCommand returns the full argv for installing the manifest.
func (c LaunchConfig) InstallCommand() []string {
	argv := make([]string, 0, len(c.PackageManager)+3)
	argv = append(argv, c.PackageManager...)
	return append(argv, "install", "-r", c.Manifest)
}

// LaunchCommand returns the full argv for starting the dashboard on the
// configured port.
func (c LaunchConfig) LaunchCommand() []string {
	argv := make([]string, 0, len(c.Entrypoint)+2)
	argv = append(argv, c.Entrypoint...)
	return append(argv, "--server.port", fmt.Sprintf("%d", c.Port))
}

// Prerequisites returns the executables that must resolve on PATH before
// installation is attempted. The entrypoint binary is not included: it is
// typically provided by the installation step itself.
func (c LaunchConfig) Prerequisites() []string {
	names := []string{c.Runtime}
	if len(c.PackageManager) > 0 && c.PackageManager[0] != c.Runtime {
		names = append(names, c.PackageManager[0])
	}
	return names
}

// Command is an external process invocation.
type Command struct {
	Argv []string
	Dir  string
	Env  map[string]string
}
