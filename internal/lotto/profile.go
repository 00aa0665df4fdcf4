package lotto

import "strings"

// GameProfile is the fixed range/count configuration of one game variant.
// Main numbers are drawn from 1..MainRange, secondary from 1..SecondaryRange.
type GameProfile struct {
	ID             string
	Name           string
	MainRange      int
	MainCount      int
	SecondaryRange int
	SecondaryCount int
}

// NewGameProfile validates the counts against the ranges and returns the profile.
// Asking for more unique numbers than a range holds is a *ConfigurationError.
func NewGameProfile(id, name string, mainRange, mainCount, secondaryRange, secondaryCount int) (GameProfile, error) {
	p := GameProfile{
		ID:             id,
		Name:           name,
		MainRange:      mainRange,
		MainCount:      mainCount,
		SecondaryRange: secondaryRange,
		SecondaryCount: secondaryCount,
	}
	if err := p.Validate(); err != nil {
		return GameProfile{}, err
	}
	return p, nil
}

// Validate checks the profile invariant: 1 <= count <= range for both pools.
func (p GameProfile) Validate() error {
	if err := validatePool(p.ID, "main", p.MainRange, p.MainCount); err != nil {
		return err
	}
	return validatePool(p.ID, "secondary", p.SecondaryRange, p.SecondaryCount)
}

// Built-in profiles.
var (
	// ProfileA is the Union Lotto format: 6 of 33 plus 1 of 16.
	ProfileA = GameProfile{ID: "A", Name: "Union Lotto", MainRange: 33, MainCount: 6, SecondaryRange: 16, SecondaryCount: 1}
	// ProfileB is the Super Lotto format: 5 of 35 plus 2 of 12.
	ProfileB = GameProfile{ID: "B", Name: "Super Lotto", MainRange: 35, MainCount: 5, SecondaryRange: 12, SecondaryCount: 2}
)

// profileAliases maps the game short names onto the built-in ids.
var profileAliases = map[string]string{
	"ssq": "A",
	"dlt": "B",
}

// CanonicalID upper-cases built-in ids and resolves the ssq/dlt aliases.
// Unknown ids are returned trimmed and otherwise untouched.
func CanonicalID(id string) string {
	id = strings.TrimSpace(id)
	if alias, ok := profileAliases[strings.ToLower(id)]; ok {
		return alias
	}
	switch strings.ToUpper(id) {
	case ProfileA.ID, ProfileB.ID:
		return strings.ToUpper(id)
	}
	return id
}

// BuiltinProfiles returns the two standard profiles keyed by id.
func BuiltinProfiles() map[string]GameProfile {
	return map[string]GameProfile{
		ProfileA.ID: ProfileA,
		ProfileB.ID: ProfileB,
	}
}

// ProfileLookup resolves a profile id to its configuration.
type ProfileLookup interface {
	Lookup(id string) (GameProfile, bool)
}

type builtinLookup struct{}

func (builtinLookup) Lookup(id string) (GameProfile, bool) {
	p, ok := BuiltinProfiles()[CanonicalID(id)]
	return p, ok
}
