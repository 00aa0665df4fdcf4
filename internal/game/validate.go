package game

import (
	"fmt"
	"slices"
	"strings"

	"github.com/xtding233/lotto-predictor/internal/lotto"
)

// ValidateRaw checks semantic constraints of a merged RawConfig and reports
// every violation at once. Ids and aliases are compared case-insensitively,
// the same way the Catalog resolves them.
func ValidateRaw(cfg RawConfig) error {
	var errs []string
	ids := make(map[string]string)     // lower-cased id -> id
	aliases := make(map[string]string) // lower-cased alias -> owning id

	for i, p := range cfg.Profiles {
		where := fmt.Sprintf("profiles[%d]", i)
		if p.ID == "" {
			errs = append(errs, where+".id is required")
		} else {
			where = "profile " + p.ID
			key := strings.ToLower(p.ID)
			if prev, ok := ids[key]; ok {
				errs = append(errs, fmt.Sprintf("%s: duplicate id (already defined as %s)", where, prev))
			} else {
				ids[key] = p.ID
			}
		}

		errs = append(errs, validatePool(where+".main", p.Main)...)
		errs = append(errs, validatePool(where+".secondary", p.Secondary)...)

		for _, a := range p.Aliases {
			key := strings.ToLower(a)
			if owner, ok := aliases[key]; ok && !strings.EqualFold(owner, p.ID) {
				errs = append(errs, fmt.Sprintf("%s: alias %q already used by %s", where, a, owner))
				continue
			}
			aliases[key] = p.ID
		}

		if p.DefaultStrategy != "" {
			if _, err := lotto.ParseStrategy(p.DefaultStrategy); err != nil {
				errs = append(errs, fmt.Sprintf("%s.default_strategy: %v", where, err))
			}
		}
	}
	var shadows []string
	for a, owner := range aliases {
		if id, ok := ids[a]; ok && !strings.EqualFold(id, owner) {
			shadows = append(shadows, fmt.Sprintf("alias %q of %s shadows profile id %s", a, owner, id))
		}
	}
	slices.Sort(shadows)
	errs = append(errs, shadows...)

	if len(errs) > 0 {
		return fmt.Errorf("%w: config validation failed: %s", lotto.ErrConfiguration, strings.Join(errs, "; "))
	}
	return nil
}

func validatePool(where string, pc *PoolConfig) []string {
	if pc == nil {
		return []string{where + " is required"}
	}
	var errs []string
	if pc.Range == nil || *pc.Range < 1 {
		errs = append(errs, where+".range must be >= 1")
	}
	if pc.Count == nil || *pc.Count < 1 {
		errs = append(errs, where+".count must be >= 1")
	}
	if pc.Range != nil && pc.Count != nil && *pc.Count > *pc.Range {
		errs = append(errs, fmt.Sprintf("%s.count %d exceeds range %d", where, *pc.Count, *pc.Range))
	}
	return errs
}
