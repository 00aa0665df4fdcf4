package game

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/xtding233/lotto-predictor/internal/lotto"
)

// Entry is a resolved profile with its catalog metadata.
type Entry struct {
	Profile         lotto.GameProfile
	Aliases         []string
	DefaultStrategy lotto.Strategy
}

// Catalog serves resolved profiles to the engine and reloads them from a
// Loader. A failed reload keeps the previous profiles.
type Catalog struct {
	loader *Loader

	mu      sync.RWMutex
	version string
	entries map[string]Entry
	aliases map[string]string // lower-cased alias or id -> id
}

// NewCatalog loads every profile through l. A nil loader serves the builtins.
func NewCatalog(l *Loader) (*Catalog, error) {
	if l == nil {
		l = NewLoader("")
	}
	c := &Catalog{loader: l}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads the config files and swaps the catalog atomically.
func (c *Catalog) Reload() error {
	c.loader.Invalidate()
	version, raws, err := c.loader.LoadAll()
	if err != nil {
		return fmt.Errorf("load profiles: %w", err)
	}

	entries := make(map[string]Entry, len(raws))
	aliases := make(map[string]string)
	for _, raw := range raws {
		p, err := Resolve(raw)
		if err != nil {
			return fmt.Errorf("resolve profile %s: %w", raw.ID, err)
		}
		strategy := lotto.TimeSeeded
		if raw.DefaultStrategy != "" {
			if strategy, err = lotto.ParseStrategy(raw.DefaultStrategy); err != nil {
				return fmt.Errorf("resolve profile %s: %w", raw.ID, err)
			}
		}
		entries[p.ID] = Entry{Profile: p, Aliases: raw.Aliases, DefaultStrategy: strategy}
		aliases[strings.ToLower(p.ID)] = p.ID
		for _, a := range raw.Aliases {
			aliases[strings.ToLower(a)] = p.ID
		}
	}

	c.mu.Lock()
	c.version = version
	c.entries = entries
	c.aliases = aliases
	c.mu.Unlock()
	return nil
}

// Lookup resolves an id or alias, case-insensitively.
func (c *Catalog) Lookup(id string) (lotto.GameProfile, bool) {
	e, ok := c.Entry(id)
	return e.Profile, ok
}

// Entry resolves an id or alias to its catalog entry.
func (c *Catalog) Entry(id string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	canonical, ok := c.aliases[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return Entry{}, false
	}
	e, ok := c.entries[canonical]
	return e, ok
}

// List returns all entries ordered by id.
func (c *Catalog) List() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Entry) int { return strings.Compare(a.Profile.ID, b.Profile.ID) })
	return out
}

// IDs returns the profile ids ordered.
func (c *Catalog) IDs() []string {
	entries := c.List()
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.Profile.ID
	}
	return ids
}

// Version reports the config version of the active profiles.
func (c *Catalog) Version() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Paths lists the files a FileWatcher should poll for this catalog.
func (c *Catalog) Paths() []string {
	return c.loader.WatchPaths(c.IDs())
}
