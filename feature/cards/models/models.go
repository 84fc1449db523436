package models

import "time"

// Set is a card release (booster, starter deck...). Sets and cards are
// created by the import pipeline; the sync engine only reads them.
type Set struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"id"`
	Code        string    `gorm:"column:code;uniqueIndex;size:16" json:"code"`
	NameFR      string    `gorm:"column:name_fr" json:"name_fr"`
	NameEN      string    `gorm:"column:name_en" json:"name_en"`
	ReleaseDate time.Time `gorm:"column:release_date" json:"release_date"`
	Type        string    `gorm:"column:type;size:32" json:"type"`
	// CardmarketExpansionID scopes which catalog products belong to this set.
	// Zero means the set is never synced.
	CardmarketExpansionID int `gorm:"column:cardmarket_expansion_id" json:"cardmarket_expansion_id"`

	Cards []Card `gorm:"foreignKey:SetID" json:"-"`
}

// TableName overrides the default pluralized name.
func (Set) TableName() string {
	return "sets"
}

// Card is one physical print of a card. The same code exists once per
// variant ("base" plus promo tags p1..p8).
type Card struct {
	ID      uint   `gorm:"column:id;primaryKey" json:"id"`
	SetID   uint   `gorm:"column:set_id;index;uniqueIndex:idx_set_code_variant" json:"set_id"`
	Code    string `gorm:"column:code;index;size:16;uniqueIndex:idx_set_code_variant" json:"code"`
	Variant string `gorm:"column:variant;size:8;default:base;uniqueIndex:idx_set_code_variant" json:"variant"`

	Name     string `gorm:"column:name" json:"name"`
	Rarity   string `gorm:"column:rarity;size:16" json:"rarity"`
	Color    string `gorm:"column:color;size:32" json:"color"`
	Type     string `gorm:"column:type;size:32" json:"type"`
	Family   string `gorm:"column:family" json:"family"`
	Cost     *int   `gorm:"column:cost" json:"cost"`
	Power    *int   `gorm:"column:power" json:"power"`
	Counter  *int   `gorm:"column:counter" json:"counter"`
	Effect   string `gorm:"column:effect;type:text" json:"effect"`
	ImageURL string `gorm:"column:image_url" json:"image_url"`

	Set   *Set       `gorm:"foreignKey:SetID" json:"set,omitempty"`
	Price *CardPrice `gorm:"foreignKey:CardID" json:"price,omitempty"`
}

// TableName overrides the default pluralized name.
func (Card) TableName() string {
	return "cards"
}

// CardPrice is the price snapshot for one card: the four Cardmarket
// aggregates stored verbatim. At most one row exists per card; every
// successful sync replaces all four fields.
type CardPrice struct {
	ID         uint      `gorm:"column:id;primaryKey" json:"-"`
	CardID     uint      `gorm:"column:card_id;uniqueIndex" json:"-"`
	LowPrice   *float64  `gorm:"column:low_price" json:"low_price"`
	TrendPrice *float64  `gorm:"column:trend_price" json:"trend_price"`
	Avg7       *float64  `gorm:"column:avg7" json:"avg7"`
	Avg30      *float64  `gorm:"column:avg30" json:"avg30"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the default pluralized name.
func (CardPrice) TableName() string {
	return "card_prices"
}
