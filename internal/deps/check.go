package deps

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
)

// Version represents a semantic version (major.minor.patch).
type Version struct {
	Major int
	Minor int
	Patch int
}

// String formats a version for display.
func (v *Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// CheckResult contains the results of a dependency check.
type CheckResult struct {
	Name      string
	Installed bool
	Version   *Version
	Error     error
}

// CheckAll checks all external dependencies Glass needs and returns
// results. Required: tmux (terminal sessions are tmux-backed).
// Optional: git (project root detection works without it, but most
// workspaces are git repositories).
func CheckAll() []CheckResult {
	return []CheckResult{
		CheckTmux(),
		CheckGit(),
	}
}

// CheckTmux checks if tmux is installed and meets minimum version requirements.
// Minimum version: 2.1
func CheckTmux() CheckResult {
	result := CheckResult{Name: "tmux"}

	path, err := exec.LookPath("tmux")
	if err != nil {
		result.Error = fmt.Errorf("tmux not found in PATH\n\nInstall tmux:\n  Ubuntu/Debian: sudo apt install tmux\n  macOS: brew install tmux\n  Fedora/RHEL: sudo dnf install tmux\n  Arch: sudo pacman -S tmux")
		return result
	}
	result.Installed = true

	cmd := exec.Command(path, "-V")
	output, err := cmd.Output()
	if err != nil {
		result.Error = fmt.Errorf("failed to get tmux version: %w", err)
		return result
	}

	version, err := parseTmuxVersion(string(output))
	if err != nil {
		result.Error = fmt.Errorf("failed to parse tmux version: %w", err)
		return result
	}
	result.Version = version

	if version.Major < 2 || (version.Major == 2 && version.Minor < 1) {
		result.Error = fmt.Errorf("tmux version %d.%d is too old (minimum: 2.1)\n\nUpgrade tmux:\n  Ubuntu/Debian: sudo apt update && sudo apt upgrade tmux\n  macOS: brew upgrade tmux",
			version.Major, version.Minor)
	}

	return result
}

// CheckGit checks if git is installed. Git is optional; without it every
// workspace simply runs projectless.
func CheckGit() CheckResult {
	result := CheckResult{Name: "git"}

	path, err := exec.LookPath("git")
	if err != nil {
		// Not installed, but not an error (optional)
		return result
	}
	result.Installed = true

	cmd := exec.Command(path, "--version")
	output, err := cmd.Output()
	if err == nil {
		version, _ := parseGitVersion(string(output))
		result.Version = version
	}

	return result
}

// parseTmuxVersion parses tmux version output.
// Examples: "tmux 3.2a", "tmux 2.1", "tmux next-3.4"
func parseTmuxVersion(output string) (*Version, error) {
	re := regexp.MustCompile(`tmux (?:next-)?(\d+)\.(\d+)`)
	matches := re.FindStringSubmatch(output)
	if len(matches) < 3 {
		return nil, fmt.Errorf("could not parse version from: %s", output)
	}

	major, _ := strconv.Atoi(matches[1])
	minor, _ := strconv.Atoi(matches[2])

	return &Version{
		Major: major,
		Minor: minor,
		Patch: 0,
	}, nil
}

// parseGitVersion parses git version output.
// Example: "git version 2.34.1"
func parseGitVersion(output string) (*Version, error) {
	re := regexp.MustCompile(`git version (\d+)\.(\d+)\.(\d+)`)
	matches := re.FindStringSubmatch(output)
	if len(matches) < 4 {
		return nil, fmt.Errorf("could not parse version from: %s", output)
	}

	major, _ := strconv.Atoi(matches[1])
	minor, _ := strconv.Atoi(matches[2])
	patch, _ := strconv.Atoi(matches[3])

	return &Version{
		Major: major,
		Minor: minor,
		Patch: patch,
	}, nil
}
