package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := Default()
	if cfg.Server != def.Server || cfg.Games != def.Games {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigJSONOverridesOnlyGivenKeys(t *testing.T) {
	p := writeFile(t, "laro_config.json", `{
		"server": {"address": ":9090", "tick_hz": 30, "broadcast_hz": 15, "idle_timeout": "2m"},
		"games": {"luksong_baka": {"lives": 5}, "jolen": {"shots": 3}}
	}`)
	cfg, err := LoadConfig(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Address != ":9090" || cfg.Server.TickHz != 30 || cfg.Server.BroadcastHz != 15 {
		t.Fatalf("server not applied: %+v", cfg.Server)
	}
	if cfg.Server.IdleTimeout.Duration != 2*time.Minute {
		t.Fatalf("idle timeout not parsed: %v", cfg.Server.IdleTimeout)
	}
	if cfg.Server.ReapEvery != Default().Server.ReapEvery {
		t.Fatalf("reap_every should keep its default, got %v", cfg.Server.ReapEvery)
	}
	if cfg.Games.LuksongBaka.Lives != 5 || cfg.Games.LuksongBaka.MaxLevel != Default().Games.LuksongBaka.MaxLevel {
		t.Fatalf("luksong baka tuning not merged: %+v", cfg.Games.LuksongBaka)
	}
	if cfg.Games.Jolen.Shots != 3 || cfg.Games.Jolen.Friction != Default().Games.Jolen.Friction {
		t.Fatalf("jolen tuning not merged: %+v", cfg.Games.Jolen)
	}
}

func TestLoadConfigTOML(t *testing.T) {
	p := writeFile(t, "laro.toml", `
[server]
address = "127.0.0.1:7000"
reap_every = "5s"

[games.patintero]
lives = 1
guard_speed = 2.5
`)
	cfg, err := LoadConfig(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Address != "127.0.0.1:7000" || cfg.Server.ReapEvery.Duration != 5*time.Second {
		t.Fatalf("server not applied: %+v", cfg.Server)
	}
	if cfg.Games.Patintero.Lives != 1 || cfg.Games.Patintero.GuardSpeed != 2.5 {
		t.Fatalf("patintero tuning not applied: %+v", cfg.Games.Patintero)
	}
	if cfg.Games.Patintero.Lines != Default().Games.Patintero.Lines {
		t.Fatalf("patintero lines should keep default")
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"bad json":              `{"server": `,
		"broadcast>tick":        `{"server": {"tick_hz": 30, "broadcast_hz": 60}}`,
		"inverted angles":       `{"games": {"luksong_baka": {"min_angle": 60, "max_angle": 30}}}`,
		"friction":              `{"games": {"jolen": {"friction": 1.2}}}`,
		"bad duration":          `{"server": {"idle_timeout": "soon"}}`,
		"zero stop speed":       `{"games": {"jolen": {"stop_speed": 0}}}`,
		"zero power step":       `{"games": {"jolen": {"power_step": 0}}}`,
		"zero charge speed":     `{"games": {"luksong_baka": {"charge_speed": 0}}}`,
		"negative guard speed":  `{"games": {"patintero": {"guard_speed": -1}}}`,
		"negative center speed": `{"games": {"patintero": {"center_speed": -0.5}}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			p := writeFile(t, "cfg.json", body)
			if _, err := LoadConfig(p); err == nil {
				t.Fatalf("expected error")
			} else if !strings.Contains(err.Error(), p) {
				t.Fatalf("error should name the file: %v", err)
			}
		})
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("LARO_ADDR", ":7070")
	t.Setenv("LARO_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("SESSION_SECURE_COOKIE", "1")
	t.Setenv("GOOGLE_CLIENT_ID", "id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "")

	e, err := ParseEnv()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if e.Addr != ":7070" || !e.SecureCookie {
		t.Fatalf("unexpected env %+v", e)
	}
	if len(e.AllowedOrigins) != 2 || e.AllowedOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected origins %v", e.AllowedOrigins)
	}
	if e.DBPath != "laro_arcade.db" {
		t.Fatalf("expected default db path, got %q", e.DBPath)
	}
	if e.GoogleEnabled() {
		t.Fatalf("google should be disabled without a secret")
	}
}
