package config

import (
	"path/filepath"
	"strings"

	"github.com/google/shlex"
)

// Config is the ordered aggregate of all launch fields. It is constructed
// once at startup, mutated in place for the life of the program, and never
// persisted here; persistence is the launcher's job via --init --save.
type Config struct {
	Host        *TextField
	Port        *TextField
	Domain      *TextField
	Docroot     *TextField
	PHPThreads  *TextField
	HTTPS       *ChoiceField
	Worker      *ToggleField
	Watch       *ToggleField
	Verbose     *ToggleField
	OpenBrowser *ToggleField
	Compression *ToggleField
	ExtraWatch  *TextField
	ExtraArgs   *TextField
}

// New creates a Config with the standard defaults. detectedDocroot may be
// empty; when set it is marked as auto-detected for display.
func New(detectedDocroot string) *Config {
	docroot := NewTextField("Docroot", detectedDocroot)
	docroot.AutoDetected = detectedDocroot != ""

	return &Config{
		Host:        NewTextField("Host", "127.0.0.1"),
		Port:        NewTextField("Port", "8000"),
		Domain:      NewTextField("Domain", ""),
		Docroot:     docroot,
		PHPThreads:  NewTextField("PHP Threads", "auto"),
		HTTPS:       NewChoiceField("HTTPS Mode", []string{"off", "local", "on"}, 0),
		Worker:      NewToggleField("Worker Mode", false),
		Watch:       NewToggleField("Watch Mode", false),
		Verbose:     NewToggleField("Verbose", false),
		OpenBrowser: NewToggleField("Open Browser", false),
		Compression: NewToggleField("Compression", true),
		ExtraWatch:  NewTextField("Watch Patterns", ""),
		ExtraArgs:   NewTextField("Extra Args", ""),
	}
}

// Fields returns all fields in display order.
func (c *Config) Fields() []Field {
	return []Field{
		c.Host,
		c.Port,
		c.Domain,
		c.Docroot,
		c.PHPThreads,
		c.HTTPS,
		c.Worker,
		c.Watch,
		c.Verbose,
		c.OpenBrowser,
		c.Compression,
		c.ExtraWatch,
		c.ExtraArgs,
	}
}

// BuildRunArgs derives the argument vector for launching the server. String
// flags are omitted when their field is empty; the docroot is always passed
// as an absolute path.
func (c *Config) BuildRunArgs(dryRun bool) []string {
	var args []string

	if v := c.Domain.Value(); v != "" {
		args = append(args, "--domain", v)
	}
	if v := c.Host.Value(); v != "" {
		args = append(args, "--host", v)
	}
	if v := c.Port.Value(); v != "" {
		args = append(args, "--port", v)
	}
	if v := c.Docroot.Value(); v != "" {
		args = append(args, "--docroot", absPath(v))
	}
	if v := c.PHPThreads.Value(); v != "" {
		args = append(args, "--php-threads", v)
	}
	if v := c.HTTPS.Value(); v != "off" {
		args = append(args, "--https", v)
	}
	if c.Worker.Value() {
		args = append(args, "--worker")
	}
	if c.Watch.Value() {
		args = append(args, "--watch")
	}
	if c.Verbose.Value() {
		args = append(args, "--verbose")
	}
	if c.OpenBrowser.Value() {
		args = append(args, "--open")
	}
	if !c.Compression.Value() {
		args = append(args, "--no-compression")
	}
	for _, pattern := range splitPatterns(c.ExtraWatch.Value()) {
		args = append(args, "--watch-pattern", pattern)
	}
	if dryRun {
		args = append(args, "--dry-run")
	}
	if v := c.ExtraArgs.Value(); v != "" {
		args = append(args, "--")
		args = append(args, SplitShellWords(v)...)
	}

	return args
}

// BuildInitArgs derives the argument vector for `phpup --init`. When a domain
// is configured, --save is added so the launcher persists it.
func (c *Config) BuildInitArgs() []string {
	args := []string{"--init"}
	if v := c.Domain.Value(); v != "" {
		args = append(args, "--domain", v)
	}
	if v := c.Docroot.Value(); v != "" {
		args = append(args, "--docroot", absPath(v))
	}
	if c.Domain.Value() != "" {
		args = append(args, "--save")
	}
	return args
}

// BuildListArgs derives the argument vector for listing running servers.
func (c *Config) BuildListArgs() []string { return []string{"--list"} }

// BuildStopArgs derives the argument vector for stopping all servers.
func (c *Config) BuildStopArgs() []string { return []string{"--stop"} }

// BuildStatsArgs derives the argument vector for process statistics.
func (c *Config) BuildStatsArgs() []string { return []string{"--stats"} }

// SplitShellWords tokenizes a string with shell quoting rules, falling back
// to whitespace splitting when the quoting is malformed.
func SplitShellWords(value string) []string {
	words, err := shlex.Split(value)
	if err != nil {
		return strings.Fields(value)
	}
	return words
}

func splitPatterns(value string) []string {
	var patterns []string
	for _, p := range strings.Split(value, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

func absPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
