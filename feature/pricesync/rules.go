package pricesync

// Variant resolution is a cascade of three rule levels, each fully
// overriding the next when it applies:
//
//  1. Per-card fixed indexes: a handful of cards whose catalog ordering
//     follows no pattern at all. Each known variant maps straight to a
//     position in the sorted candidate list. These mappings were validated
//     by hand against live catalog data; treat them as pinned fixtures,
//     not as a pattern to extend.
//  2. Per-set (or global) ordering overrides: rules that reorder the
//     generic tag sequence when a given combination of variants exists.
//  3. The generic sequence base, p1..p8.
//
// Rules live in data tables so a new catalog quirk is a new table entry,
// not a new code path.

// genericOrder is the default variant sequence.
var genericOrder = []string{"base", "p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8"}

type fixedKey struct {
	setCode  string
	cardCode string
}

// fixedIndexRules maps each known variant of an irregular card directly to
// a candidate-list position.
var fixedIndexRules = map[fixedKey]map[string]int{
	// OP13-118: manga print sorts before the special print, unlike every
	// other card in the set.
	{"OP-13", "OP13-118"}: {
		"base": 0,
		"p1":   1,
		"p4":   2,
		"p2":   3,
		"p3":   4,
	},
	// OP13-119 (Ace): the catalog carries an extra product at position 3
	// that belongs to no stored variant.
	{"OP-13", "OP13-119"}: {
		"base": 0,
		"p1":   1,
		"p4":   2,
		"p2":   4,
		"p3":   5,
	},
}

// orderingRule reorders the generic tag sequence when every variant in
// requires is present. An empty setCode matches any set. Rules are
// evaluated top-down; the first match wins.
type orderingRule struct {
	setCode  string
	requires []string
	order    []string
}

var orderingRules = []orderingRule{
	// OP-13: when the manga, special and extra prints all exist, the
	// catalog lists the extra print before the other two.
	{
		setCode:  "OP-13",
		requires: []string{"p2", "p3", "p4"},
		order:    []string{"base", "p1", "p4", "p2", "p3"},
	},
	// Any set: in the common four-variant pattern the catalog swaps the
	// manga and special prints relative to their tag names.
	{
		requires: []string{"p2", "p3"},
		order:    []string{"base", "p1", "p3", "p2", "p4", "p5", "p6", "p7", "p8"},
	},
}

// NormalizeVariant maps the unset value to the default tag.
func NormalizeVariant(variant string) string {
	if variant == "" {
		return "base"
	}
	return variant
}

// HasFixedRule reports whether a card has a per-card index override.
func HasFixedRule(setCode, cardCode string) bool {
	_, ok := fixedIndexRules[fixedKey{setCode, cardCode}]
	return ok
}

// FixedIndex returns the per-card override position for a variant.
func FixedIndex(setCode, cardCode, variant string) (int, bool) {
	rule, ok := fixedIndexRules[fixedKey{setCode, cardCode}]
	if !ok {
		return 0, false
	}
	idx, ok := rule[NormalizeVariant(variant)]
	return idx, ok
}

// VariantOrder returns the variant tag sequence in effect for a card code,
// given the set and the variants present among its stored cards.
func VariantOrder(setCode string, present map[string]struct{}) []string {
	for _, rule := range orderingRules {
		if rule.setCode != "" && rule.setCode != setCode {
			continue
		}
		if !hasAll(present, rule.requires) {
			continue
		}
		return rule.order
	}
	return genericOrder
}

// VariantRank returns the position of a variant within the order in effect.
// Unknown variants rank last.
func VariantRank(setCode string, present map[string]struct{}, variant string) int {
	order := VariantOrder(setCode, present)
	v := NormalizeVariant(variant)
	for i, tag := range order {
		if tag == v {
			return i
		}
	}
	return len(genericOrder) + 1
}

func hasAll(present map[string]struct{}, tags []string) bool {
	for _, tag := range tags {
		if _, ok := present[tag]; !ok {
			return false
		}
	}
	return true
}
