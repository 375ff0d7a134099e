package db

import (
	"strings"

	"gorm.io/gorm"
)

// Paginate applies LIMIT/OFFSET for a 1-based page.
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		if pageSize < 1 {
			return db
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

// Limit caps the result set when n is positive.
func Limit(n int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if n <= 0 {
			return db
		}
		return db.Limit(n)
	}
}

// LikeEscape is the escape character paired with EscapeLike. It is not a
// backslash so the same clause works on MySQL and SQLite.
const LikeEscape = "!"

// EscapeLike escapes LIKE wildcards in user input.
func EscapeLike(term string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return r.Replace(term)
}

// Contains builds a "%term%" pattern for use with "LIKE ? ESCAPE '!'".
func Contains(term string) string {
	return "%" + EscapeLike(term) + "%"
}
