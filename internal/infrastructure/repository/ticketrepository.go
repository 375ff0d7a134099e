package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"turnero/internal/domain/ticket"
	vo "turnero/internal/domain/ticket/valueobjects"
	"turnero/internal/infrastructure/persistence/mappers"
	"turnero/internal/infrastructure/persistence/models"
	"turnero/internal/shared/biztime"
	"turnero/internal/shared/db"
	apperrors "turnero/internal/shared/errors"
	"turnero/internal/shared/logger"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(db *gorm.DB, logger logger.Interface) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewUniquenessCollisionError("ticket number already exists", t.Number())
		}
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// Optimistic lock: the entity bumps its version on every change.
	result := tx.Model(&models.TicketModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]any{
			"status":      model.Status,
			"attended_by": model.AttendedBy,
			"attended_at": model.AttendedAt,
			"version":     model.Version,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConflictError("ticket was modified concurrently, reload and retry")
	}
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TicketModel{}, ticketID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found")
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	return r.first(ctx, "id = ?", ticketID)
}

func (r *TicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	return r.first(ctx, "number = ?", number)
}

func (r *TicketRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.TicketModel{}).Where("number = ?", number).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check ticket number: %w", err)
	}
	return count > 0, nil
}

const pendingQuery = "citizen_id = ? AND municipality = ? AND subject = ? AND status = ?"

func (r *TicketRepository) FindPending(ctx context.Context, citizenID uint, municipality, subject string) (*ticket.Ticket, error) {
	return r.first(ctx, pendingQuery, citizenID, municipality, subject, vo.StatusPending.String())
}

func (r *TicketRepository) FindPendingForUpdate(ctx context.Context, citizenID uint, municipality, subject string) (*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"})
	return r.firstIn(tx, pendingQuery, citizenID, municipality, subject, vo.StatusPending.String())
}

// first returns nil, nil when nothing matches.
func (r *TicketRepository) first(ctx context.Context, query string, args ...any) (*ticket.Ticket, error) {
	return r.firstIn(db.GetTxFromContext(ctx, r.db), query, args...)
}

func (r *TicketRepository) firstIn(tx *gorm.DB, query string, args ...any) (*ticket.Ticket, error) {
	var model models.TicketModel

	if err := tx.Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to query ticket", "query", query, "error", err)
		return nil, fmt.Errorf("failed to query ticket: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	var list []*models.TicketModel
	query := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Municipality != "" {
		query = query.Where("municipality = ?", filter.Municipality)
	}
	if filter.CitizenID != nil {
		query = query.Where("citizen_id = ?", *filter.CitizenID)
	}

	if err := query.Scopes(db.Limit(filter.Limit)).Order("created_at DESC, id DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.mapper.ToEntities(list)
}

func (r *TicketRepository) Search(ctx context.Context, term string, limit int) ([]*ticket.Ticket, error) {
	var list []*models.TicketModel
	pattern := db.Contains(term)
	like := "LIKE ? ESCAPE '" + db.LikeEscape + "'"
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.TicketModel{}).
		Joins("JOIN citizens ON citizens.id = tickets.citizen_id").
		Where("citizens.national_id "+like+" OR citizens.full_name "+like, pattern, pattern).
		Scopes(db.Limit(limit)).
		Order("tickets.created_at DESC, tickets.id DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search tickets: %w", err)
	}

	return r.mapper.ToEntities(list)
}

type groupCount struct {
	Label string
	Total int64
}

func (r *TicketRepository) Stats(ctx context.Context) (*ticket.Stats, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	stats := &ticket.Stats{
		ByStatus:       make(map[vo.TicketStatus]int64),
		ByMunicipality: make(map[string]int64),
	}

	if err := tx.Model(&models.TicketModel{}).Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}

	var byStatus []groupCount
	if err := tx.Model(&models.TicketModel{}).
		Select("status AS label, COUNT(*) AS total").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}
	for _, row := range byStatus {
		stats.ByStatus[vo.TicketStatus(row.Label)] = row.Total
	}

	var byMunicipality []groupCount
	if err := tx.Model(&models.TicketModel{}).
		Select("municipality AS label, COUNT(*) AS total").
		Group("municipality").
		Scan(&byMunicipality).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by municipality: %w", err)
	}
	for _, row := range byMunicipality {
		stats.ByMunicipality[row.Label] = row.Total
	}

	startOfDay := biztime.StartOfDayUTC(biztime.NowUTC())
	if err := tx.Model(&models.TicketModel{}).
		Where("created_at >= ?", startOfDay).
		Count(&stats.CreatedToday).Error; err != nil {
		return nil, fmt.Errorf("failed to count today's tickets: %w", err)
	}

	return stats, nil
}
