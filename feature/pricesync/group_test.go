package pricesync

import (
	"testing"

	"card-manager/core/catalog"

	"github.com/stretchr/testify/assert"
)

func TestGroupCandidates(t *testing.T) {
	products := []catalog.Product{
		{IDProduct: 1002, Name: "Monkey.D.Luffy (V.2) (OP09-118)", IDExpansion: 5755},
		{IDProduct: 1001, Name: "Monkey.D.Luffy (OP09-118)", IDExpansion: 5755},
		{IDProduct: 2001, Name: "Nami (OP09-003)", IDExpansion: 5755},
		// Different expansion: excluded.
		{IDProduct: 3001, Name: "Monkey.D.Luffy (OP09-118)", IDExpansion: 9999},
		// No extractable code: dropped silently.
		{IDProduct: 4001, Name: "OP-09 Booster Box", IDExpansion: 5755},
		// Junk marker: never a candidate.
		{IDProduct: 1000, Name: "Monkey.D.Luffy (Misprint) (OP09-118)", IDExpansion: 5755},
	}

	byCode := GroupCandidates(products, 5755)

	assert.Len(t, byCode, 2)

	luffy := byCode["OP09-118"]
	assert.Len(t, luffy, 2)
	// Ascending by product id, independent of feed order.
	assert.Equal(t, 1001, luffy[0].IDProduct)
	assert.Equal(t, 1002, luffy[1].IDProduct)

	assert.Len(t, byCode["OP09-003"], 1)
}

func TestGroupCandidates_JunkNeverSelected(t *testing.T) {
	products := []catalog.Product{
		{IDProduct: 1, Name: "Ace (Errata) (OP13-119)", IDExpansion: 6000},
		{IDProduct: 2, Name: "Ace (OP13-119)", IDExpansion: 6000},
	}

	byCode := GroupCandidates(products, 6000)
	list := byCode["OP13-119"]
	assert.Len(t, list, 1)
	assert.Equal(t, 2, list[0].IDProduct)
}

func TestGroupCandidates_NoMatches(t *testing.T) {
	byCode := GroupCandidates([]catalog.Product{
		{IDProduct: 1, Name: "Luffy (OP09-118)", IDExpansion: 5755},
	}, 1234)
	assert.Empty(t, byCode)
}
