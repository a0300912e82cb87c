package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/DhavalSuthar-24/livescore/internal/scoring"
	"gorm.io/gorm"
)

// ListFilter narrows and pages a match listing. Zero values mean "any" and "everything".
type ListFilter struct {
	Status       scoring.MatchStatus
	TournamentID string
	Page         int
	PageSize     int
}

func (f ListFilter) offset() int {
	if f.Page < 1 || f.PageSize < 1 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// MatchRepository stores match documents. Load returns a NOT_FOUND scoring error for unknown ids.
type MatchRepository interface {
	Create(ctx context.Context, m scoring.Match) error
	Load(ctx context.Context, id string) (scoring.Match, error)
	// Save replaces the stored document, inserting it when missing.
	Save(ctx context.Context, m scoring.Match) error
	List(ctx context.Context, filter ListFilter) ([]scoring.Match, int64, error)
}

// GormMatchRepository implements MatchRepository using GORM
type GormMatchRepository struct {
	db *gorm.DB
}

// NewGormMatchRepository creates a new GormMatchRepository
func NewGormMatchRepository(db *gorm.DB) *GormMatchRepository {
	return &GormMatchRepository{db: db}
}

// WithTransaction implements transaction support
func (r *GormMatchRepository) WithTransaction(ctx context.Context, txFunc func(*GormMatchRepository) error) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	txRepo := &GormMatchRepository{db: tx}
	if err := txFunc(txRepo); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func (r *GormMatchRepository) Create(ctx context.Context, m scoring.Match) error {
	rec := recordFromMatch(m)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("create match %s: %w", m.ID, err)
	}
	return nil
}

func (r *GormMatchRepository) Load(ctx context.Context, id string) (scoring.Match, error) {
	var rec MatchRecord
	result := r.db.WithContext(ctx).First(&rec, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return scoring.Match{}, scoring.NotFound("match", id)
		}
		return scoring.Match{}, fmt.Errorf("load match %s: %w", id, result.Error)
	}
	return rec.toMatch(), nil
}

// Save overwrites every column except the creation time; last write wins.
func (r *GormMatchRepository) Save(ctx context.Context, m scoring.Match) error {
	return r.WithTransaction(ctx, func(tx *GormMatchRepository) error {
		rec := recordFromMatch(m)
		result := tx.db.Model(&MatchRecord{}).
			Where("id = ?", m.ID).
			Select("*").
			Omit("id", "created_at").
			Updates(&rec)
		if result.Error != nil {
			return fmt.Errorf("save match %s: %w", m.ID, result.Error)
		}
		if result.RowsAffected > 0 {
			return nil
		}
		if err := tx.db.Create(&rec).Error; err != nil {
			return fmt.Errorf("save match %s: %w", m.ID, err)
		}
		return nil
	})
}

// List returns matches ordered by start time, newest fixtures last, and the unpaged total.
func (r *GormMatchRepository) List(ctx context.Context, filter ListFilter) ([]scoring.Match, int64, error) {
	query := r.db.WithContext(ctx).Model(&MatchRecord{})
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.TournamentID != "" {
		query = query.Where("tournament_id = ?", filter.TournamentID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count matches: %w", err)
	}

	if filter.PageSize > 0 {
		query = query.Offset(filter.offset()).Limit(filter.PageSize)
	}
	var recs []MatchRecord
	if err := query.Order("start_time asc, id asc").Find(&recs).Error; err != nil {
		return nil, 0, fmt.Errorf("list matches: %w", err)
	}

	matches := make([]scoring.Match, 0, len(recs))
	for _, rec := range recs {
		matches = append(matches, rec.toMatch())
	}
	return matches, total, nil
}
