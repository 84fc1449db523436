package pricesync

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"card-manager/core/catalog"
	"card-manager/feature/cards/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SyncOptions controls a sync run.
type SyncOptions struct {
	// SetCode restricts the run to one set when non-empty.
	SetCode string `json:"setCode"`
	// DryRun resolves and counts without writing anything. Used to validate
	// new override rules against production data before committing.
	DryRun bool `json:"dryRun"`
	// Verbose surfaces every skip and, for cards with per-card rules, the
	// full candidate list considered.
	Verbose bool `json:"verbose"`
}

// SetResult aggregates one set's sync outcome.
type SetResult struct {
	SetCode string `json:"setCode"`
	Updated int    `json:"updated"`
	Skipped int    `json:"skipped"`
	Details []Skip `json:"details,omitempty"`
}

// Result aggregates a whole run.
type Result struct {
	Updated int    `json:"updated"`
	Skipped int    `json:"skipped"`
	Sets    int    `json:"sets"`
	Details []Skip `json:"details,omitempty"`
}

// Service drives price reconciliation over one or all sets.
type Service struct {
	db     *gorm.DB
	cache  *catalog.Cache
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a sync service. The fetcher is wrapped in a
// populate-once cache owned by this service, so every run of this process
// shares one catalog fetch.
func NewService(db *gorm.DB, fetcher catalog.Fetcher, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		cache:  catalog.NewCache(fetcher),
		logger: logger,
		now:    time.Now,
	}
}

// Sync runs the engine over every syncable set, or just opts.SetCode.
// Sets without an expansion id are not synced. Resolution failures are
// local: they are counted and reported, never propagated. Only feed
// unavailability and storage errors abort the run.
func (s *Service) Sync(ctx context.Context, opts SyncOptions) (*Result, error) {
	var sets []models.Set
	q := s.db.WithContext(ctx).Order("code ASC")
	if opts.SetCode != "" {
		q = q.Where("code = ?", opts.SetCode)
	}
	if err := q.Find(&sets).Error; err != nil {
		return nil, fmt.Errorf("failed to list sets: %w", err)
	}

	result := &Result{}
	for _, set := range sets {
		if set.CardmarketExpansionID <= 0 {
			continue
		}

		setResult, err := s.SyncSet(ctx, set.Code, set.CardmarketExpansionID, opts)
		if err != nil {
			return nil, err
		}

		result.Sets++
		result.Updated += setResult.Updated
		result.Skipped += setResult.Skipped
		result.Details = append(result.Details, setResult.Details...)
	}

	s.logger.Info("Sync finished",
		zap.Int("sets", result.Sets),
		zap.Int("updated", result.Updated),
		zap.Int("skipped", result.Skipped),
		zap.Bool("dry_run", opts.DryRun))

	return result, nil
}

// SyncSet reconciles prices for every card of one set.
func (s *Service) SyncSet(ctx context.Context, setCode string, expansionID int, opts SyncOptions) (*SetResult, error) {
	l := s.logger.With(zap.String("set", setCode), zap.Int("expansion", expansionID))
	l.Info("Syncing set", zap.Bool("dry_run", opts.DryRun))

	cat, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}

	candidatesByCode := GroupCandidates(cat.Products, expansionID)

	var rows []models.Card
	err = s.db.WithContext(ctx).
		Select("cards.id", "cards.code", "cards.variant").
		Joins("JOIN sets ON sets.id = cards.set_id").
		Where("sets.code = ?", setCode).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cards for set %s: %w", setCode, err)
	}

	cardsByCode := make(map[string][]StoredCard)
	for _, row := range rows {
		code := strings.ToUpper(row.Code)
		cardsByCode[code] = append(cardsByCode[code], StoredCard{
			ID:      row.ID,
			Code:    code,
			Variant: NormalizeVariant(row.Variant),
		})
	}

	// Deterministic iteration keeps logs and counts stable across runs.
	codes := make([]string, 0, len(cardsByCode))
	for code := range cardsByCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	result := &SetResult{SetCode: setCode}

	for _, code := range codes {
		group := cardsByCode[code]
		candidates := candidatesByCode[code]

		if opts.Verbose && HasFixedRule(setCode, code) {
			for _, p := range candidates {
				l.Info("Override candidate",
					zap.String("code", code),
					zap.Int("id_product", p.IDProduct),
					zap.String("name", p.Name))
			}
		}

		assignments, skips := ResolveGroup(setCode, code, group, candidates)
		s.recordSkips(l, result, skips, opts)

		for _, a := range assignments {
			row, ok := cat.PriceByProductID[a.Product.IDProduct]
			if !ok {
				s.recordSkips(l, result, []Skip{{
					Code:      code,
					Variant:   a.Card.Variant,
					Reason:    ReasonMissingPriceRow,
					IDProduct: a.Product.IDProduct,
				}}, opts)
				continue
			}

			if err := s.writePrice(ctx, a.Card.ID, row, opts.DryRun); err != nil {
				return nil, fmt.Errorf("failed to upsert price for card %d: %w", a.Card.ID, err)
			}
			result.Updated++

			if opts.Verbose {
				l.Info("Price resolved",
					zap.String("code", code),
					zap.String("variant", a.Card.Variant),
					zap.Int("id_product", a.Product.IDProduct))
			}
		}
	}

	l.Info("Set synced",
		zap.Int("updated", result.Updated),
		zap.Int("skipped", result.Skipped))

	return result, nil
}

func (s *Service) recordSkips(l *zap.Logger, result *SetResult, skips []Skip, opts SyncOptions) {
	for _, skip := range skips {
		result.Skipped++
		result.Details = append(result.Details, skip)
		if opts.Verbose {
			l.Warn("Card skipped",
				zap.String("code", skip.Code),
				zap.String("variant", skip.Variant),
				zap.String("reason", skip.Reason),
				zap.Int("id_product", skip.IDProduct))
		}
	}
}

// writePrice upserts the snapshot for one card: last write wins, all four
// fields replaced together, never merged with a previous row.
func (s *Service) writePrice(ctx context.Context, cardID uint, row catalog.PriceRow, dryRun bool) error {
	if dryRun {
		return nil
	}

	price := models.CardPrice{
		CardID:     cardID,
		LowPrice:   row.Low,
		TrendPrice: row.Trend,
		Avg7:       row.Avg7,
		Avg30:      row.Avg30,
		UpdatedAt:  s.now(),
	}

	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "card_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"low_price", "trend_price", "avg7", "avg30", "updated_at",
		}),
	}).Create(&price).Error
}
