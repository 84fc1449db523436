package cards

import (
	"context"
	"testing"

	"card-manager/core/database"
	"card-manager/feature/cards/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func ptr(f float64) *float64 { return &f }

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Set{}, &models.Card{}, &models.CardPrice{}))
	return db
}

func seedCollection(t *testing.T, db *gorm.DB) {
	t.Helper()

	op09 := models.Set{Code: "OP-09", NameEN: "Emperors in the New World", CardmarketExpansionID: 5755}
	op10 := models.Set{Code: "OP-10", NameEN: "Royal Blood", CardmarketExpansionID: 5900}
	require.NoError(t, db.Create(&op09).Error)
	require.NoError(t, db.Create(&op10).Error)

	cards := []models.Card{
		{SetID: op09.ID, Code: "OP09-118", Variant: "base", Name: "Monkey.D.Luffy", Rarity: "SEC", Color: "Purple", Type: "Character", Family: "Straw Hat Crew"},
		{SetID: op09.ID, Code: "OP09-118", Variant: "p1", Name: "Monkey.D.Luffy", Rarity: "SEC", Color: "Purple", Type: "Character", Family: "Straw Hat Crew"},
		{SetID: op09.ID, Code: "OP09-001", Variant: "base", Name: "Shanks", Rarity: "L", Color: "Red", Type: "Leader", Family: "Red Hair Pirates"},
		{SetID: op10.ID, Code: "OP10-001", Variant: "base", Name: "Sakazuki", Rarity: "L", Color: "Black", Type: "Leader", Family: "Navy"},
	}
	for i := range cards {
		require.NoError(t, db.Create(&cards[i]).Error)
	}

	prices := []models.CardPrice{
		{CardID: cards[0].ID, LowPrice: ptr(1.5), TrendPrice: ptr(2.0)},
		{CardID: cards[1].ID, LowPrice: ptr(40), TrendPrice: ptr(45)},
		{CardID: cards[2].ID, LowPrice: ptr(0.2), TrendPrice: ptr(0.3)},
	}
	for i := range prices {
		require.NoError(t, db.Create(&prices[i]).Error)
	}
}

func TestList_NoFilters(t *testing.T) {
	db := setupDB(t)
	seedCollection(t, db)
	svc := NewService(db, zap.NewNop())

	result, err := svc.List(context.Background(), ListOptions{})
	assert.NoError(t, err)
	assert.Equal(t, int64(4), result.Total)
	assert.Len(t, result.Cards, 4)

	// Default sort is code then variant ascending.
	assert.Equal(t, "OP09-001", result.Cards[0].Code)
	assert.Equal(t, "OP09-118", result.Cards[1].Code)
	assert.Equal(t, "base", result.Cards[1].Variant)
	assert.Equal(t, "p1", result.Cards[2].Variant)
	assert.Equal(t, "OP10-001", result.Cards[3].Code)
}

func TestList_SetFilter(t *testing.T) {
	db := setupDB(t)
	seedCollection(t, db)
	svc := NewService(db, zap.NewNop())

	result, err := svc.List(context.Background(), ListOptions{Set: "OP-10"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	assert.Equal(t, "OP10-001", result.Cards[0].Code)
	// The joined set is attached to the row.
	require.NotNil(t, result.Cards[0].Set)
	assert.Equal(t, "OP-10", result.Cards[0].Set.Code)
}

func TestList_Search(t *testing.T) {
	db := setupDB(t)
	seedCollection(t, db)
	svc := NewService(db, zap.NewNop())

	byName, err := svc.List(context.Background(), ListOptions{Search: "Luffy"})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), byName.Total)

	byCode, err := svc.List(context.Background(), ListOptions{Search: "OP10"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), byCode.Total)
}

func TestList_AttributeFilters(t *testing.T) {
	db := setupDB(t)
	seedCollection(t, db)
	svc := NewService(db, zap.NewNop())

	leaders, err := svc.List(context.Background(), ListOptions{Type: "Leader"})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), leaders.Total)

	navy, err := svc.List(context.Background(), ListOptions{Type: "Leader", Family: "Navy"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), navy.Total)
	assert.Equal(t, "Sakazuki", navy.Cards[0].Name)

	red, err := svc.List(context.Background(), ListOptions{Color: "Red", Rarity: "L"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), red.Total)
}

func TestList_PriceSort(t *testing.T) {
	db := setupDB(t)
	seedCollection(t, db)
	svc := NewService(db, zap.NewNop())

	result, err := svc.List(context.Background(), ListOptions{Set: "OP-09", Sort: "price_desc"})
	assert.NoError(t, err)
	require.Equal(t, int64(3), result.Total)

	// p1 at 45 outranks base at 2 outranks the leader at 0.3.
	assert.Equal(t, "p1", result.Cards[0].Variant)
	require.NotNil(t, result.Cards[0].Price)
	assert.Equal(t, 45.0, *result.Cards[0].Price.TrendPrice)
	assert.Equal(t, "OP09-001", result.Cards[2].Code)
}

func TestList_Pagination(t *testing.T) {
	db := setupDB(t)
	seedCollection(t, db)
	svc := NewService(db, zap.NewNop())

	page1, err := svc.List(context.Background(), ListOptions{Page: 1, PageSize: 3})
	assert.NoError(t, err)
	assert.Equal(t, int64(4), page1.Total)
	assert.Len(t, page1.Cards, 3)

	page2, err := svc.List(context.Background(), ListOptions{Page: 2, PageSize: 3})
	assert.NoError(t, err)
	assert.Len(t, page2.Cards, 1)

	// Oversized page sizes are capped, not rejected.
	capped, err := svc.List(context.Background(), ListOptions{PageSize: 5000})
	assert.NoError(t, err)
	assert.Equal(t, maxPageSize, capped.PageSize)
}

func TestGet(t *testing.T) {
	db := setupDB(t)
	seedCollection(t, db)
	svc := NewService(db, zap.NewNop())

	var seeded models.Card
	require.NoError(t, db.Where("code = ? AND variant = ?", "OP09-118", "p1").First(&seeded).Error)

	card, err := svc.Get(context.Background(), seeded.ID)
	assert.NoError(t, err)
	assert.Equal(t, "OP09-118", card.Code)
	require.NotNil(t, card.Set)
	assert.Equal(t, "OP-09", card.Set.Code)
	require.NotNil(t, card.Price)
	assert.Equal(t, 40.0, *card.Price.LowPrice)
}

func TestGet_NotFound(t *testing.T) {
	db := setupDB(t)
	svc := NewService(db, zap.NewNop())

	_, err := svc.Get(context.Background(), 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMeta(t *testing.T) {
	db := setupDB(t)
	seedCollection(t, db)
	svc := NewService(db, zap.NewNop())

	sets, err := svc.Sets(context.Background())
	assert.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, "OP-09", sets[0].Code)

	rarities, err := svc.Rarities(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"L", "SEC"}, rarities)

	families, err := svc.Families(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"Navy", "Red Hair Pirates", "Straw Hat Crew"}, families)
}
