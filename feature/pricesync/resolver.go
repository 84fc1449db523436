package pricesync

import (
	"sort"

	"card-manager/core/catalog"
)

// Skip reason tags. Every recoverable failure carries one of these plus the
// (code, variant) pair so override tables can be corrected iteratively.
const (
	// ReasonNoCandidates: no catalog product in the scoped expansion yields
	// this card code.
	ReasonNoCandidates = "no_product_candidates_for_expansion"
	// ReasonInsufficientCandidates: more stored variants than candidates;
	// the excess highest-ranked cards go unmatched rather than sharing a
	// candidate with a sibling variant.
	ReasonInsufficientCandidates = "insufficient_candidates"
	// ReasonNoCandidateAtIndex: a per-card fixed index points past the end
	// of the candidate list, or the variant has no fixed mapping.
	ReasonNoCandidateAtIndex = "no_candidate_at_index"
	// ReasonMissingPriceRow: the chosen candidate has no price guide row.
	ReasonMissingPriceRow = "missing_price_guide_row"
)

// StoredCard is the projection of a card row the resolver works on.
type StoredCard struct {
	ID      uint
	Code    string
	Variant string
}

// Assignment pairs a stored card with the catalog product representing its
// variant.
type Assignment struct {
	Card    StoredCard
	Product catalog.Product
}

// Skip records one card that could not be resolved, with a machine-readable
// reason. IDProduct is set when the failure concerns a specific product.
type Skip struct {
	Code      string `json:"code"`
	Variant   string `json:"variant"`
	Reason    string `json:"reason"`
	IDProduct int    `json:"id_product,omitempty"`
}

// ResolveGroup matches every stored card sharing one code against the
// sorted, junk-filtered candidate list for that code.
//
// Per-card fixed-index rules take precedence over everything else. Absent
// those, cards are ranked by the ordering in effect for the set (per-set
// overrides, then the generic sequence) and matched positionally: i-th
// ranked card to i-th candidate. When candidates run out the excess cards
// are skipped, never clamped onto the last candidate: a shared price is
// worse than no price.
func ResolveGroup(setCode, cardCode string, group []StoredCard, candidates []catalog.Product) ([]Assignment, []Skip) {
	if len(group) == 0 {
		return nil, nil
	}

	if len(candidates) == 0 {
		skips := make([]Skip, 0, len(group))
		for _, c := range group {
			skips = append(skips, Skip{
				Code:    cardCode,
				Variant: NormalizeVariant(c.Variant),
				Reason:  ReasonNoCandidates,
			})
		}
		return nil, skips
	}

	if HasFixedRule(setCode, cardCode) {
		return resolveFixed(setCode, cardCode, group, candidates)
	}

	return resolveSequential(setCode, cardCode, group, candidates)
}

func resolveFixed(setCode, cardCode string, group []StoredCard, candidates []catalog.Product) ([]Assignment, []Skip) {
	var assignments []Assignment
	var skips []Skip

	for _, c := range group {
		variant := NormalizeVariant(c.Variant)

		idx, ok := FixedIndex(setCode, cardCode, variant)
		if !ok || idx >= len(candidates) {
			skips = append(skips, Skip{
				Code:    cardCode,
				Variant: variant,
				Reason:  ReasonNoCandidateAtIndex,
			})
			continue
		}

		assignments = append(assignments, Assignment{Card: c, Product: candidates[idx]})
	}

	return assignments, skips
}

func resolveSequential(setCode, cardCode string, group []StoredCard, candidates []catalog.Product) ([]Assignment, []Skip) {
	present := make(map[string]struct{}, len(group))
	for _, c := range group {
		present[NormalizeVariant(c.Variant)] = struct{}{}
	}

	// Rank cards by their position in the ordering in effect; ties broken
	// by tag for determinism.
	sorted := make([]StoredCard, len(group))
	copy(sorted, group)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri := VariantRank(setCode, present, sorted[i].Variant)
		rj := VariantRank(setCode, present, sorted[j].Variant)
		if ri != rj {
			return ri < rj
		}
		return NormalizeVariant(sorted[i].Variant) < NormalizeVariant(sorted[j].Variant)
	})

	var assignments []Assignment
	var skips []Skip

	for i, c := range sorted {
		if i >= len(candidates) {
			skips = append(skips, Skip{
				Code:    cardCode,
				Variant: NormalizeVariant(c.Variant),
				Reason:  ReasonInsufficientCandidates,
			})
			continue
		}
		assignments = append(assignments, Assignment{Card: c, Product: candidates[i]})
	}

	return assignments, skips
}
