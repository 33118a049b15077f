package platform

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/oroddlokken/selca/internal/config"
)

// lookPath is a var so tests can run without the real tools installed.
var lookPath = exec.LookPath

// RequiredTools lists the external commands a run with cfg will invoke.
// Desktop integrations are best-effort and intentionally not listed.
func RequiredTools(cfg *config.Config) []string {
	tools := []string{"flameshot"}
	if cfg.SFTPEnabled() {
		tools = append(tools, "ssh", "rsync")
	}
	return tools
}

// CheckTools verifies every required external command is in PATH, so a
// missing tool fails before the user draws a selection.
var CheckTools = func(cfg *config.Config) error {
	var missing []string
	for _, tool := range RequiredTools(cfg) {
		if _, err := lookPath(tool); err != nil {
			missing = append(missing, tool)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("required tools not found in PATH: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ToolStatus reports PATH availability per tool, for the check command.
func ToolStatus(cfg *config.Config) map[string]bool {
	status := make(map[string]bool)
	for _, tool := range append(RequiredTools(cfg), "notify-send", "qdbus", "xdg-open") {
		_, err := lookPath(tool)
		status[tool] = err == nil
	}
	return status
}
