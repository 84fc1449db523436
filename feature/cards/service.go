package cards

import (
	"context"
	"fmt"

	"card-manager/feature/cards/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListOptions are the browse filters. Empty fields are not applied.
type ListOptions struct {
	Set    string `json:"set"`
	Search string `json:"search"`
	Color  string `json:"color"`
	Type   string `json:"type"`
	Rarity string `json:"rarity"`
	Family string `json:"family"`
	// Sort is one of code_asc, code_desc, price_asc, price_desc, recent.
	// Anything else falls back to code_asc.
	Sort     string `json:"sort"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

// ListResult is one page of cards plus the unpaged total.
type ListResult struct {
	Cards    []models.Card `json:"cards"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}

// Service reads the card collection.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new card browse service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// List returns one page of cards matching opts, each row joined with its
// set and price snapshot.
func (s *Service) List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	page := opts.Page
	if page < 1 {
		page = 1
	}
	pageSize := opts.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	q := s.db.WithContext(ctx).Model(&models.Card{}).
		Joins("JOIN sets ON sets.id = cards.set_id").
		Joins("LEFT JOIN card_prices ON card_prices.card_id = cards.id")

	if opts.Set != "" {
		q = q.Where("sets.code = ?", opts.Set)
	}
	if opts.Search != "" {
		like := "%" + opts.Search + "%"
		q = q.Where("cards.name LIKE ? OR cards.code LIKE ?", like, like)
	}
	if opts.Color != "" {
		q = q.Where("cards.color = ?", opts.Color)
	}
	if opts.Type != "" {
		q = q.Where("cards.type = ?", opts.Type)
	}
	if opts.Rarity != "" {
		q = q.Where("cards.rarity = ?", opts.Rarity)
	}
	if opts.Family != "" {
		q = q.Where("cards.family = ?", opts.Family)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count cards: %w", err)
	}

	switch opts.Sort {
	case "code_desc":
		q = q.Order("cards.code DESC, cards.variant DESC")
	case "price_asc":
		q = q.Order("card_prices.trend_price ASC")
	case "price_desc":
		q = q.Order("card_prices.trend_price DESC")
	case "recent":
		q = q.Order("card_prices.updated_at DESC")
	default:
		q = q.Order("cards.code ASC, cards.variant ASC")
	}

	var rows []models.Card
	err := q.Preload("Set").Preload("Price").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	return &ListResult{Cards: rows, Total: total, Page: page, PageSize: pageSize}, nil
}

// Get returns one card with its set and price snapshot attached.
// Returns gorm.ErrRecordNotFound for unknown ids.
func (s *Service) Get(ctx context.Context, id uint) (*models.Card, error) {
	var card models.Card
	err := s.db.WithContext(ctx).
		Preload("Set").
		Preload("Price").
		First(&card, id).Error
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// Sets returns every set ordered by code.
func (s *Service) Sets(ctx context.Context) ([]models.Set, error) {
	var sets []models.Set
	err := s.db.WithContext(ctx).Order("code ASC").Find(&sets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sets: %w", err)
	}
	return sets, nil
}

// Rarities returns the distinct non-empty rarities in the collection.
func (s *Service) Rarities(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "rarity")
}

// Families returns the distinct non-empty families in the collection.
func (s *Service) Families(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "family")
}

func (s *Service) distinct(ctx context.Context, column string) ([]string, error) {
	var values []string
	err := s.db.WithContext(ctx).
		Model(&models.Card{}).
		Distinct(column).
		Where(column + " <> ''").
		Order(column + " ASC").
		Pluck(column, &values).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list distinct %s: %w", column, err)
	}
	return values, nil
}
