package models

// All lists every model owned by the application, for AutoMigrate in tests
// and development databases.
func All() []any {
	return []any{
		&TicketModel{},
		&TicketSequenceModel{},
		&CitizenModel{},
		&AdminModel{},
		&CatalogEntryModel{},
	}
}
