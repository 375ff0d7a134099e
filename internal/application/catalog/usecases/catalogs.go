package usecases

import (
	"context"
	"fmt"

	"turnero/internal/application/catalog/dto"
	"turnero/internal/domain/catalog"
	"turnero/internal/shared/errors"
	"turnero/internal/shared/logger"
)

type CreateEntryCommand struct {
	Kind string
	Key  string
	Name string
}

type UpdateEntryCommand struct {
	Kind   string
	ID     uint
	Name   string
	Active bool
}

// CatalogService serves the level, subject and municipality lists.
type CatalogService struct {
	repo   catalog.Repository
	logger logger.Interface
}

func NewCatalogService(repo catalog.Repository, logger logger.Interface) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// List returns the entries of one catalog; activeOnly hides deactivated ones.
func (s *CatalogService) List(ctx context.Context, kind string, activeOnly bool) ([]*dto.EntryDTO, error) {
	k, err := parseKind(kind)
	if err != nil {
		return nil, err
	}

	list, err := s.repo.List(ctx, k, activeOnly)
	if err != nil {
		s.logger.Errorw("failed to list catalog", "kind", kind, "error", err)
		return nil, errors.NewInternalError("failed to list catalog")
	}
	return dto.ToEntryDTOs(list), nil
}

func (s *CatalogService) Create(ctx context.Context, cmd CreateEntryCommand) (*dto.EntryDTO, error) {
	k, err := parseKind(cmd.Kind)
	if err != nil {
		return nil, err
	}

	entry, err := catalog.NewEntry(k, cmd.Key, cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, s.wrap("create", err)
	}

	s.logger.Infow("catalog entry created", "kind", k, "key", entry.Key())
	return dto.ToEntryDTO(entry), nil
}

func (s *CatalogService) Update(ctx context.Context, cmd UpdateEntryCommand) (*dto.EntryDTO, error) {
	k, err := parseKind(cmd.Kind)
	if err != nil {
		return nil, err
	}

	entry, err := s.repo.GetByID(ctx, k, cmd.ID)
	if err != nil {
		return nil, s.wrap("load", err)
	}
	if entry == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("%s entry %d not found", k, cmd.ID))
	}

	if err := entry.Update(cmd.Name, cmd.Active); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, s.wrap("update", err)
	}

	s.logger.Infow("catalog entry updated", "kind", k, "id", cmd.ID, "active", cmd.Active)
	return dto.ToEntryDTO(entry), nil
}

func (s *CatalogService) Delete(ctx context.Context, kind string, id uint) error {
	k, err := parseKind(kind)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, k, id); err != nil {
		return s.wrap("delete", err)
	}
	s.logger.Infow("catalog entry deleted", "kind", k, "id", id)
	return nil
}

func (s *CatalogService) wrap(op string, err error) error {
	if errors.IsAppError(err) {
		return err
	}
	s.logger.Errorw("catalog operation failed", "op", op, "error", err)
	return errors.NewInternalError(fmt.Sprintf("failed to %s catalog entry", op))
}

func parseKind(kind string) (catalog.Kind, error) {
	k, err := catalog.ParseKind(kind)
	if err != nil {
		return "", errors.NewNotFoundError("unknown catalog", kind)
	}
	return k, nil
}
