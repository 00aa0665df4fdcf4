package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/xtding233/lotto-predictor/internal/lotto"
)

// Paths helper for default/game files.
type Paths struct {
	BaseDir string // base directory, e.g., /opt/app/config
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "games", "default.yaml")
}
func (p Paths) GamePath(id string) string {
	return filepath.Join(p.BaseDir, "games", id+".yaml")
}

// Loader reads YAML configs and merges builtin → default → game.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]RawProfile // key: profile id
}

// NewLoader creates a config loader with the given base directory.
// An empty baseDir serves the builtin profiles only.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]RawProfile),
	}
}

// WatchPaths lists the files whose changes should trigger a reload.
func (l *Loader) WatchPaths(ids []string) []string {
	if l.paths.BaseDir == "" {
		return nil
	}
	out := []string{l.paths.DefaultPath()}
	for _, id := range ids {
		out = append(out, l.paths.GamePath(id))
	}
	return out
}

// LoadAll loads, merges and validates every profile.
// It returns the effective config version alongside the merged profiles.
func (l *Loader) LoadAll() (string, []RawProfile, error) {
	profiles := builtinRaw()
	version := "builtin"

	if l.paths.BaseDir != "" {
		defCfg, err := readYAML(l.paths.DefaultPath())
		if err != nil {
			return "", nil, fmt.Errorf("read default: %w", err)
		}
		if defCfg.Version != "" {
			version = defCfg.Version
		}
		for _, p := range defCfg.Profiles {
			profiles = upsert(profiles, p)
		}
		for i, p := range profiles {
			// game file may not exist
			gameCfg, err := readProfileYAML(l.paths.GamePath(p.ID))
			if err != nil {
				return "", nil, fmt.Errorf("read game %s: %w", p.ID, err)
			}
			gameCfg.ID = p.ID
			profiles[i] = mergeRaw(p, gameCfg)
		}
	}

	if err := ValidateRaw(RawConfig{Version: version, Profiles: profiles}); err != nil {
		return "", nil, err
	}

	l.mu.Lock()
	l.cache = make(map[string]RawProfile, len(profiles))
	for _, p := range profiles {
		l.cache[p.ID] = p
	}
	l.mu.Unlock()

	return version, profiles, nil
}

// Cached returns the merged profile from the last successful LoadAll.
func (l *Loader) Cached(id string) (RawProfile, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.cache[id]
	return p, ok
}

// Invalidate clears loader's cache. Call after hot-reload detects changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawProfile)
}

// Resolve turns a merged RawProfile into an engine profile.
func Resolve(raw RawProfile) (lotto.GameProfile, error) {
	if raw.Main == nil || raw.Secondary == nil {
		return lotto.GameProfile{}, &lotto.ConfigurationError{Profile: raw.ID, Field: "pools", Reason: "main and secondary are required"}
	}
	return lotto.NewGameProfile(raw.ID, raw.Name,
		deref(raw.Main.Range), deref(raw.Main.Count),
		deref(raw.Secondary.Range), deref(raw.Secondary.Count))
}

func builtinRaw() []RawProfile {
	toRaw := func(p lotto.GameProfile, alias string) RawProfile {
		return RawProfile{
			ID:        p.ID,
			Name:      p.Name,
			Aliases:   []string{alias},
			Main:      &PoolConfig{Range: ptr(p.MainRange), Count: ptr(p.MainCount)},
			Secondary: &PoolConfig{Range: ptr(p.SecondaryRange), Count: ptr(p.SecondaryCount)},
		}
	}
	return []RawProfile{
		toRaw(lotto.ProfileA, "ssq"),
		toRaw(lotto.ProfileB, "dlt"),
	}
}

// upsert merges p into the profile with the same id, or appends it.
func upsert(profiles []RawProfile, p RawProfile) []RawProfile {
	for i := range profiles {
		if profiles[i].ID == p.ID {
			profiles[i] = mergeRaw(profiles[i], p)
			return profiles
		}
	}
	return append(profiles, p)
}

// readYAML loads a YAML file into RawConfig. Missing files return zero cfg, no error.
func readYAML(path string) (RawConfig, error) {
	var cfg RawConfig
	if err := decodeFile(path, &cfg); err != nil {
		return RawConfig{}, err
	}
	return cfg, nil
}

func readProfileYAML(path string) (RawProfile, error) {
	var p RawProfile
	if err := decodeFile(path, &p); err != nil {
		return RawProfile{}, err
	}
	return p, nil
}

func decodeFile(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(b, out)
}

// mergeRaw performs a deep merge: 'b' overrides 'a' where non-zero/non-nil.
// For slices (e.g., Aliases), 'b' replaces 'a' if provided.
func mergeRaw(a, b RawProfile) RawProfile {
	out := a
	if b.Name != "" {
		out.Name = b.Name
	}
	if len(b.Aliases) > 0 {
		out.Aliases = append([]string(nil), b.Aliases...)
	}
	if b.DefaultStrategy != "" {
		out.DefaultStrategy = b.DefaultStrategy
	}
	out.Main = mergePool(a.Main, b.Main)
	out.Secondary = mergePool(a.Secondary, b.Secondary)
	return out
}

func mergePool(a, b *PoolConfig) *PoolConfig {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		c := *b
		return &c
	case b == nil:
		c := *a
		return &c
	}
	c := *a
	if b.Range != nil {
		c.Range = b.Range
	}
	if b.Count != nil {
		c.Count = b.Count
	}
	return &c
}

func ptr(v int) *int { return &v }

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
