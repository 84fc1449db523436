package pricesync

import (
	"sort"

	"card-manager/core/catalog"
)

// GroupCandidates buckets the catalog products of one expansion by the card
// code extracted from their name. Products whose name yields no code are
// dropped silently (not every catalog entry is a single card), and junk
// entries never make it into a bucket. Each bucket is sorted ascending by
// product id, the dataset's only stable, semantically meaningful ordering.
func GroupCandidates(products []catalog.Product, expansionID int) map[string][]catalog.Product {
	byCode := make(map[string][]catalog.Product)

	for _, p := range products {
		if p.IDExpansion != expansionID {
			continue
		}
		code, ok := ExtractCode(p.Name)
		if !ok {
			continue
		}
		if IsJunkName(p.Name) {
			continue
		}
		byCode[code] = append(byCode[code], p)
	}

	for code := range byCode {
		list := byCode[code]
		sort.Slice(list, func(i, j int) bool {
			return list[i].IDProduct < list[j].IDProduct
		})
		byCode[code] = list
	}

	return byCode
}
