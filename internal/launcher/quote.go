package launcher

import "strings"

const safeChars = "@%_+=:,./-"

// ShellQuote quotes a single argument for display as a copy-pastable shell
// word. Alphanumerics and a small safe set pass through unquoted.
func ShellQuote(arg string) string {
	if arg == "" {
		return "''"
	}
	safe := true
	for _, r := range arg {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			continue
		}
		if strings.ContainsRune(safeChars, r) {
			continue
		}
		safe = false
		break
	}
	if safe {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}

// DisplayCommand renders an invocation as it would be typed, with the binary
// shown as ./phpup regardless of where it was resolved.
func DisplayCommand(args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, "./phpup")
	for _, a := range args {
		parts = append(parts, ShellQuote(a))
	}
	return strings.Join(parts, " ")
}
