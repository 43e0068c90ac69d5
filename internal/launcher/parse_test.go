package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseServerInfo(t *testing.T) {
	t.Run("host and port line", func(t *testing.T) {
		info := ParseServerInfo([]string{"Host: 127.0.0.1  Port: 8001"})
		assert.Equal(t, "127.0.0.1", info.Host)
		assert.Equal(t, "8001", info.Port)
	})

	t.Run("busy port switch overrides port", func(t *testing.T) {
		info := ParseServerInfo([]string{
			"Host: 127.0.0.1  Port: 8000",
			"Port 8000 is busy, switching to 8001",
		})
		assert.Equal(t, "8001", info.Port)
	})

	t.Run("protocol docroot and mode", func(t *testing.T) {
		info := ParseServerInfo([]string{
			"Protocol: https",
			"📁 Docroot: /srv/app/public",
			"Mode: worker",
		})
		assert.Equal(t, "https", info.Protocol)
		assert.Equal(t, "/srv/app/public", info.Docroot)
		assert.Equal(t, "worker", info.Mode)
	})

	t.Run("unparseable lines are ignored", func(t *testing.T) {
		info := ParseServerInfo([]string{
			"starting up...",
			"",
			"Host only, no port here",
		})
		assert.Equal(t, ServerInfo{}, info)
	})
}

func TestServerInfoURL(t *testing.T) {
	tests := []struct {
		name string
		info ServerInfo
		want string
	}{
		{"all fields", ServerInfo{Host: "localhost", Port: "9000", Protocol: "https"}, "https://localhost:9000"},
		{"defaults", ServerInfo{}, "http://127.0.0.1:8000"},
		{"default protocol only", ServerInfo{Host: "0.0.0.0", Port: "8080"}, "http://0.0.0.0:8080"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.URL())
		})
	}
}

func TestParseProcessList(t *testing.T) {
	t.Run("skips headers and separators", func(t *testing.T) {
		lines := []string{
			"🔎 Scanning for FrankenPHP processes...",
			"PID     LISTEN               MODE     STARTED FROM                   CONFIG",
			"------- -------------------- -------- ------------------------------ ------",
			"1234    127.0.0.1:8000       classic  /srv/app                       .phpup/Caddyfile",
			"5678    127.0.0.1:8001       worker   /srv/other                     .phpup/Caddyfile.worker",
		}
		records := ParseProcessList(lines)
		assert.Len(t, records, 2)
		assert.Equal(t, "1234", records[0].PID)
		assert.Equal(t, "127.0.0.1:8000", records[0].Listen)
		assert.Equal(t, "classic", records[0].Mode)
		assert.Equal(t, "/srv/app", records[0].StartedFrom)
		assert.Equal(t, ".phpup/Caddyfile", records[0].Config)
	})

	t.Run("short rows get dash placeholders", func(t *testing.T) {
		records := ParseProcessList([]string{"9999 127.0.0.1:8000 classic /srv/app"})
		assert.Len(t, records, 1)
		assert.Equal(t, "-", records[0].Config)
	})

	t.Run("too-short rows are dropped", func(t *testing.T) {
		records := ParseProcessList([]string{"9999 127.0.0.1:8000"})
		assert.Empty(t, records)
	})

	t.Run("no processes message", func(t *testing.T) {
		records := ParseProcessList([]string{"No FrankenPHP processes found for current user."})
		assert.Empty(t, records)
	})
}
