package tui

import (
	"os/exec"
	"runtime"

	"github.com/phpup/phpup-tui/internal/logging"
)

// openBrowser opens url with the platform's default browser. Failure is
// logged and otherwise ignored; the URL stays on screen for the user.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		logging.Warn("failed to open browser", "url", url, "error", err)
		return
	}
	go cmd.Wait()
}
