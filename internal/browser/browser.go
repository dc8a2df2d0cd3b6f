// Package browser opens external links with the platform's default opener.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Open launches the given URL in the user's default browser. The URL is
// not validated here; a malformed link fails at the opener.
func Open(url string) error {
	trimmed := strings.TrimSpace(url)
	if trimmed == "" {
		return fmt.Errorf("url is empty")
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", trimmed)
	case "linux":
		cmd = exec.Command("xdg-open", trimmed)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", trimmed)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	return cmd.Start()
}
