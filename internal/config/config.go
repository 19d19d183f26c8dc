package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ericogr/laro-arcade/internal/engine/jolen"
	"github.com/ericogr/laro-arcade/internal/engine/luksongbaka"
	"github.com/ericogr/laro-arcade/internal/engine/patintero"
)

// Duration decodes "90s" style strings from both JSON and TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type ServerConfig struct {
	Address     string   `json:"address" toml:"address"`
	TickHz      int      `json:"tick_hz" toml:"tick_hz"`
	BroadcastHz int      `json:"broadcast_hz" toml:"broadcast_hz"`
	IdleTimeout Duration `json:"idle_timeout" toml:"idle_timeout"`
	ReapEvery   Duration `json:"reap_every" toml:"reap_every"`
}

// GamesConfig carries the tuning of each minigame. Keys left out of the file
// keep their default values.
type GamesConfig struct {
	Jolen       jolen.Tuning       `json:"jolen" toml:"jolen"`
	Patintero   patintero.Tuning   `json:"patintero" toml:"patintero"`
	LuksongBaka luksongbaka.Tuning `json:"luksong_baka" toml:"luksong_baka"`
}

// LoadedConfig is the file configuration after defaults and validation.
type LoadedConfig struct {
	Server ServerConfig `json:"server" toml:"server"`
	Games  GamesConfig  `json:"games" toml:"games"`
}

func Default() *LoadedConfig {
	return &LoadedConfig{
		Server: ServerConfig{
			Address:     ":8080",
			TickHz:      60,
			BroadcastHz: 30,
			IdleTimeout: Duration{10 * time.Minute},
			ReapEvery:   Duration{30 * time.Second},
		},
		Games: GamesConfig{
			Jolen:       jolen.DefaultTuning(),
			Patintero:   patintero.DefaultTuning(),
			LuksongBaka: luksongbaka.DefaultTuning(),
		},
	}
}

// LoadConfig reads the configuration file at path over the defaults. Files
// ending in .toml are decoded as TOML, anything else as JSON. A missing file
// yields the defaults.
func LoadConfig(path string) (*LoadedConfig, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(b), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	} else if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *LoadedConfig) validate() error {
	s := c.Server
	if strings.TrimSpace(s.Address) == "" {
		return errors.New("server.address is empty")
	}
	if s.TickHz <= 0 || s.TickHz > 240 {
		return fmt.Errorf("server.tick_hz must be within 1..240, got %d", s.TickHz)
	}
	if s.BroadcastHz <= 0 || s.BroadcastHz > s.TickHz {
		return fmt.Errorf("server.broadcast_hz must be within 1..tick_hz, got %d", s.BroadcastHz)
	}
	if s.IdleTimeout.Duration <= 0 || s.ReapEvery.Duration <= 0 {
		return errors.New("server.idle_timeout and server.reap_every must be positive")
	}

	lb := c.Games.LuksongBaka
	if lb.Lives <= 0 || lb.MaxLevel <= 0 {
		return errors.New("games.luksong_baka: lives and max_level must be positive")
	}
	if lb.MinAngle >= lb.MaxAngle || lb.MinAngle <= 0 || lb.MaxAngle >= 90 {
		return fmt.Errorf("games.luksong_baka: angles must satisfy 0 < min_angle < max_angle < 90, got %v..%v", lb.MinAngle, lb.MaxAngle)
	}
	if lb.Gravity <= 0 || lb.RunSpeed <= 0 || lb.JumpPower <= 0 {
		return errors.New("games.luksong_baka: gravity, run_speed and jump_power must be positive")
	}
	if lb.ChargeSpeed <= 0 {
		return fmt.Errorf("games.luksong_baka: charge_speed must be positive, got %v", lb.ChargeSpeed)
	}

	j := c.Games.Jolen
	if j.Shots <= 0 || j.Targets <= 0 {
		return errors.New("games.jolen: shots and targets must be positive")
	}
	if j.Friction <= 0 || j.Friction >= 1 {
		return fmt.Errorf("games.jolen: friction must be within (0,1), got %v", j.Friction)
	}
	if j.MinAim >= j.MaxAim {
		return errors.New("games.jolen: min_aim must be below max_aim")
	}
	if j.StopSpeed <= 0 {
		return fmt.Errorf("games.jolen: stop_speed must be positive, got %v", j.StopSpeed)
	}
	if j.PowerStep <= 0 || j.MaxPower <= 0 {
		return errors.New("games.jolen: power_step and max_power must be positive")
	}

	p := c.Games.Patintero
	if p.Lives <= 0 || p.Lines <= 0 {
		return errors.New("games.patintero: lives and lines must be positive")
	}
	if p.RunnerSpeed <= 0 {
		return errors.New("games.patintero: runner_speed must be positive")
	}
	if p.GuardSpeed < 0 || p.CenterSpeed < 0 {
		return errors.New("games.patintero: guard_speed and center_speed must not be negative")
	}
	return nil
}
