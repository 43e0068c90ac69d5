// Package project inspects the working directory: docroot detection, project
// file markers, and the optional .phpup/tui.toml settings file.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Info describes the current project directory for the project-info panel.
type Info struct {
	Name               string
	Path               string
	ProjectFiles       []string
	WebDirs            []string
	PHPFiles           int
	Configs            []string
	RecommendedDocroot string
	Size               string
	FileCount          string
}

// docrootCandidates is the priority order for document-root detection.
var docrootCandidates = []string{
	"public",
	"web",
	"www",
	"htdocs",
	"dist",
	"build",
	"app/public",
	"src/public",
}

var indexFiles = []string{
	"index.php", "index.html", "index.htm",
	"app.php", "main.php", "bootstrap.php",
}

var assetDirs = []string{"css", "js", "assets", "img", "images", "static"}

// projectMarkers maps marker files to their display descriptions, in the
// order they are checked.
var projectMarkers = []struct {
	file  string
	label string
}{
	{"composer.json", "🐘 PHP Composer"},
	{"package.json", "📦 Node.js"},
	{"requirements.txt", "🐍 Python"},
	{"Cargo.toml", "🦀 Rust"},
	{"pom.xml", "☕ Java Maven"},
	{"build.gradle", "🐘 Java Gradle"},
	{"go.mod", "🐹 Go"},
	{".env", "🔧 Environment"},
	{"docker-compose.yml", "🐳 Docker Compose"},
	{"Dockerfile", "🐳 Docker"},
	{".git", "📁 Git Repository"},
}

var phpupConfigFiles = []string{
	".phpup/Caddyfile",
	".phpup/Caddyfile.classic",
	".phpup/Caddyfile.worker",
	"Caddyfile",
	"Caddyfile.local",
	"Caddyfile.dev",
}

const (
	infoCacheKey = "project-info"
	infoCacheTTL = 5 * time.Second

	// walkFileCap bounds the directory-size walk.
	walkFileCap = 1000
)

// Scanner produces Info for a project root. Scans walk the directory, so
// results are cached with a short TTL; the TUI asks for Info on every frame.
type Scanner struct {
	root  string
	cache *gocache.Cache
}

// NewScanner creates a scanner rooted at dir.
func NewScanner(dir string) *Scanner {
	return &Scanner{
		root:  dir,
		cache: gocache.New(infoCacheTTL, 2*infoCacheTTL),
	}
}

// Info returns the project description, re-scanning at most once per TTL.
func (s *Scanner) Info() Info {
	if v, ok := s.cache.Get(infoCacheKey); ok {
		return v.(Info)
	}
	info := s.scan()
	s.cache.SetDefault(infoCacheKey, info)
	return info
}

// Refresh drops the cached scan so the next Info call re-reads the directory.
func (s *Scanner) Refresh() {
	s.cache.Delete(infoCacheKey)
}

func (s *Scanner) scan() Info {
	info := Info{
		Path: s.root,
		Name: filepath.Base(s.root),
	}

	for _, m := range projectMarkers {
		if len(info.ProjectFiles) >= 6 {
			break
		}
		if _, err := os.Stat(filepath.Join(s.root, m.file)); err == nil {
			info.ProjectFiles = append(info.ProjectFiles, m.label)
		}
	}

	for _, d := range docrootCandidates[:6] {
		if len(info.WebDirs) >= 3 {
			break
		}
		if isDir(filepath.Join(s.root, d)) {
			info.WebDirs = append(info.WebDirs, d)
		}
	}

	info.PHPFiles = s.countPHPFiles()

	for _, cf := range phpupConfigFiles {
		if len(info.Configs) >= 4 {
			break
		}
		if _, err := os.Stat(filepath.Join(s.root, cf)); err == nil {
			info.Configs = append(info.Configs, filepath.Base(cf))
		}
	}

	if d := DetectDocroot(s.root); d != "" && d != "." {
		info.RecommendedDocroot = d
	}

	info.Size, info.FileCount = s.measure()

	return info
}

// countPHPFiles counts PHP files in the project root, capped at 10.
func (s *Scanner) countPHPFiles() int {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return 0
	}
	n := 0
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".php") {
			n++
		}
		if n >= 10 {
			break
		}
	}
	return n
}

// measure walks the tree for a rough size estimate, skipping hidden
// directories and the usual dependency dirs, capped at walkFileCap files.
func (s *Scanner) measure() (size, count string) {
	var total int64
	files := 0

	_ = filepath.WalkDir(s.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			if path == s.root {
				return nil
			}
			if strings.HasPrefix(name, ".") || name == "node_modules" || name == "vendor" || name == "__pycache__" {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}
		if fi, err := d.Info(); err == nil {
			total += fi.Size()
			files++
		}
		if files >= walkFileCap {
			return filepath.SkipAll
		}
		return nil
	})

	switch {
	case total > 1024*1024:
		size = fmt.Sprintf("%dMB", total/(1024*1024))
	case total > 1024:
		size = fmt.Sprintf("%dKB", total/1024)
	default:
		size = fmt.Sprintf("%dB", total)
	}
	count = fmt.Sprintf("%d", files)
	if files >= walkFileCap {
		count += "+"
	}
	return size, count
}

// DetectDocroot picks the best document root under dir. Candidates are tried
// in priority order; one qualifies when it holds an index file or a common
// asset directory. Falls back to "." when the root itself has index files,
// else "".
func DetectDocroot(dir string) string {
	for _, candidate := range docrootCandidates {
		full := filepath.Join(dir, candidate)
		if !isDir(full) {
			continue
		}
		if hasAnyFile(full, indexFiles) || hasAnyDir(full, assetDirs) {
			return candidate
		}
	}

	if hasAnyFile(dir, []string{"index.php", "index.html", "app.php"}) {
		return "."
	}

	return ""
}

// InitAvailable reports whether `phpup --init` still makes sense, i.e. the
// .phpup directory has not been created yet.
func InitAvailable(dir string) bool {
	return !isDir(filepath.Join(dir, ".phpup"))
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

func hasAnyFile(dir string, names []string) bool {
	for _, n := range names {
		if _, err := os.Stat(filepath.Join(dir, n)); err == nil {
			return true
		}
	}
	return false
}

func hasAnyDir(dir string, names []string) bool {
	for _, n := range names {
		if isDir(filepath.Join(dir, n)) {
			return true
		}
	}
	return false
}
