package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	BookInstanceStatusAvailable   = "available"
	BookInstanceStatusMaintenance = "maintenance"
	BookInstanceStatusOnLoan      = "on-loan"
	BookInstanceStatusReserved    = "reserved"
)

// BookInstanceStatuses lists every accepted status, in display order.
var BookInstanceStatuses = []string{
	BookInstanceStatusAvailable,
	BookInstanceStatusMaintenance,
	BookInstanceStatusOnLoan,
	BookInstanceStatusReserved,
}

// BookInstance is a lendable physical copy of a book. Its ID is an opaque
// token assigned on creation, never a sequence value.
type BookInstance struct {
	bun.BaseModel `bun:"table:book_instances,alias:bi"`

	ID        string `bun:",pk"`
	CreatedAt time.Time
	UpdatedAt time.Time
	BookID    int
	Imprint   string
	DueBack   *time.Time
	Status    string
}

// BookInstanceWritableColumns are the columns a full instance update
// overwrites.
var BookInstanceWritableColumns = []string{"book_id", "imprint", "due_back", "status"}

func IsValidBookInstanceStatus(status string) bool {
	for _, s := range BookInstanceStatuses {
		if s == status {
			return true
		}
	}
	return false
}
