package launcher

import (
	"regexp"
	"strings"
)

// ServerInfo holds what could be scraped from the launcher's startup output.
// All fields are best-effort: an empty string means the output never mentioned
// the value.
type ServerInfo struct {
	Host     string
	Port     string
	Protocol string
	Docroot  string
	Mode     string
}

var portSwitchRe = regexp.MustCompile(`switching to (\d+)`)

// ParseServerInfo scans launcher output for server details. The matching rules
// are fixed: the launcher's text format is the only discovery channel, so
// prefix checks and token positions must not drift. Lines that match nothing
// are ignored.
func ParseServerInfo(lines []string) ServerInfo {
	var info ServerInfo

	for _, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Host:") && strings.Contains(line, "Port:"):
			// "Host: 127.0.0.1  Port: 8001"
			parts := strings.Fields(line)
			if len(parts) >= 4 {
				info.Host = parts[1]
				info.Port = parts[3]
			}
		case strings.HasPrefix(line, "Protocol:"):
			info.Protocol = afterColon(line)
		case strings.HasPrefix(line, "📁 Docroot:"):
			info.Docroot = afterColon(line)
		case strings.HasPrefix(line, "Mode:"):
			info.Mode = afterColon(line)
		case strings.Contains(line, "Port") && strings.Contains(line, "is busy, switching to"):
			if m := portSwitchRe.FindStringSubmatch(line); m != nil {
				info.Port = m[1]
			}
		}
	}

	return info
}

// URL builds the server URL from the scraped info, defaulting any missing part.
func (s ServerInfo) URL() string {
	protocol := s.Protocol
	if protocol == "" {
		protocol = "http"
	}
	host := s.Host
	if host == "" {
		host = "127.0.0.1"
	}
	port := s.Port
	if port == "" {
		port = "8000"
	}
	return protocol + "://" + host + ":" + port
}

func afterColon(line string) string {
	_, rest, ok := strings.Cut(line, ":")
	if !ok {
		return ""
	}
	return strings.TrimSpace(rest)
}

// ProcessRecord is one row of `phpup --list` output.
type ProcessRecord struct {
	PID         string
	Listen      string
	Mode        string
	StartedFrom string
	Config      string
}

// ParseProcessList parses `phpup --list` output into records. Header,
// separator, and status lines are skipped; data lines are whitespace-split
// into at most five fields, with missing trailing fields shown as "-".
func ParseProcessList(lines []string) []ProcessRecord {
	var records []ProcessRecord

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" ||
			strings.HasPrefix(line, "PID") ||
			strings.HasPrefix(line, "🔎") ||
			strings.HasPrefix(line, "No FrankenPHP") ||
			strings.Contains(line, "---") {
			continue
		}

		parts := compactFields(line, 5)
		if len(parts) < 4 {
			continue
		}
		rec := ProcessRecord{
			PID:         parts[0],
			Listen:      fieldOr(parts, 1),
			Mode:        fieldOr(parts, 2),
			StartedFrom: fieldOr(parts, 3),
			Config:      fieldOr(parts, 4),
		}
		records = append(records, rec)
	}

	return records
}

// compactFields splits on runs of whitespace into at most max fields, keeping
// any remainder intact in the final field.
func compactFields(line string, max int) []string {
	var fields []string
	rest := line
	for len(fields) < max-1 {
		rest = strings.TrimSpace(rest)
		if rest == "" {
			return fields
		}
		idx := strings.IndexFunc(rest, func(r rune) bool { return r == ' ' || r == '\t' })
		if idx < 0 {
			fields = append(fields, rest)
			return fields
		}
		fields = append(fields, rest[:idx])
		rest = rest[idx:]
	}
	rest = strings.TrimSpace(rest)
	if rest != "" {
		fields = append(fields, rest)
	}
	return fields
}

func fieldOr(parts []string, idx int) string {
	if idx < len(parts) && parts[idx] != "" {
		return parts[idx]
	}
	return "-"
}
