package dto

import (
	"time"

	"turnero/internal/domain/catalog"
)

type EntryDTO struct {
	ID        uint      `json:"id"`
	Key       string    `json:"key"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToEntryDTO(e *catalog.Entry) *EntryDTO {
	if e == nil {
		return nil
	}
	return &EntryDTO{
		ID:        e.ID(),
		Key:       e.Key(),
		Name:      e.Name(),
		Active:    e.IsActive(),
		UpdatedAt: e.UpdatedAt(),
	}
}

func ToEntryDTOs(list []*catalog.Entry) []*EntryDTO {
	out := make([]*EntryDTO, 0, len(list))
	for _, e := range list {
		out = append(out, ToEntryDTO(e))
	}
	return out
}
