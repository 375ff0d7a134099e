package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"turnero/internal/domain/sequence"
	"turnero/internal/infrastructure/persistence/models"
	"turnero/internal/shared/config"
	"turnero/internal/shared/db"
	apperrors "turnero/internal/shared/errors"
	"turnero/internal/shared/logger"
)

// FallbackRecorder is notified every time a random fallback number is issued.
type FallbackRecorder interface {
	RecordSequenceFallback(municipality string)
}

// SequenceAllocator hands out per-municipality ticket numbers backed by the
// ticket_sequences table.
type SequenceAllocator struct {
	db       *gorm.DB
	cfg      config.SequenceConfig
	random   sequence.RandomSource
	recorder FallbackRecorder
	logger   logger.Interface
}

var _ sequence.Allocator = (*SequenceAllocator)(nil)

func NewSequenceAllocator(
	db *gorm.DB,
	cfg config.SequenceConfig,
	random sequence.RandomSource,
	recorder FallbackRecorder,
	logger logger.Interface,
) *SequenceAllocator {
	if random == nil {
		random = NewRandomSource()
	}
	return &SequenceAllocator{
		db:       db,
		cfg:      cfg,
		random:   random,
		recorder: recorder,
		logger:   logger,
	}
}

// Next advances the municipality counter and returns the formatted number.
// The work runs in a savepoint of the caller's transaction, so a failure here
// leaves the outer transaction usable for the fallback path.
func (a *SequenceAllocator) Next(ctx context.Context, municipality string) (string, error) {
	key := sequence.Prefix(municipality)
	if key == "" {
		return "", apperrors.NewValidationError("municipality is required")
	}

	var counter int64
	err := db.RunNested(ctx, a.db, func(txCtx context.Context) error {
		var err error
		counter, err = a.advance(txCtx, key)
		return err
	})
	if err == nil {
		return sequence.FormatNumber(key, counter), nil
	}

	if !a.cfg.FallbackEnabled {
		a.logger.Errorw("ticket sequence allocation failed",
			"municipality", key,
			"error", err,
		)
		return "", apperrors.NewAllocationFailureError("could not allocate a ticket number", key)
	}

	if a.recorder != nil {
		a.recorder.RecordSequenceFallback(key)
	}
	number := key + "-" + strconv.Itoa(a.random.IntBetween(sequence.FallbackMin, sequence.FallbackMax))
	a.logger.Warnw("ticket sequence allocation failed, issuing fallback number",
		"municipality", key,
		"number", number,
		"error", err,
	)
	return number, nil
}

// advance increments the row in place and reads the result back under a row
// lock. A missing row is created with counter 1; when a concurrent insert wins
// that race the increment is retried once.
func (a *SequenceAllocator) advance(ctx context.Context, key string) (int64, error) {
	tx := db.GetTxFromContext(ctx, a.db)

	incremented, err := a.increment(tx, key)
	if err != nil {
		return 0, err
	}

	if !incremented {
		row := &models.TicketSequenceModel{
			Municipality: key,
			NextNumber:   1,
			UpdatedAt:    time.Now().UTC(),
		}
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "municipality"}},
			DoNothing: true,
		}).Create(row)
		if result.Error != nil {
			return 0, fmt.Errorf("failed to create sequence for %s: %w", key, result.Error)
		}
		if result.RowsAffected == 1 {
			return 1, nil
		}

		if incremented, err = a.increment(tx, key); err != nil {
			return 0, err
		}
		if !incremented {
			return 0, fmt.Errorf("sequence for %s vanished during allocation", key)
		}
	}

	var row models.TicketSequenceModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("municipality = ?", key).
		First(&row).Error; err != nil {
		return 0, fmt.Errorf("failed to read sequence for %s: %w", key, err)
	}
	return row.NextNumber, nil
}

func (a *SequenceAllocator) increment(tx *gorm.DB, key string) (bool, error) {
	result := tx.Model(&models.TicketSequenceModel{}).
		Where("municipality = ?", key).
		Updates(map[string]any{
			"next_number": gorm.Expr("next_number + ?", 1),
			"updated_at":  time.Now().UTC(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to advance sequence for %s: %w", key, result.Error)
	}
	return result.RowsAffected > 0, nil
}
