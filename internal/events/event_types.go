package events

import "github.com/spec-kit/erp-console/internal/domain"

// EventType identifies a category of resource change.
type EventType string

const (
	ResourceCreated EventType = "resource.created"
	ResourceUpdated EventType = "resource.updated"
	ResourceDeleted EventType = "resource.deleted"
)

// Event describes one committed mutation on a resource.
type Event struct {
	Type     EventType
	Resource string
	ID       int64
	Record   domain.Record
}

// Action returns the short verb used on the wire for the change feed.
func (e Event) Action() string {
	switch e.Type {
	case ResourceCreated:
		return "created"
	case ResourceUpdated:
		return "updated"
	case ResourceDeleted:
		return "deleted"
	}
	return string(e.Type)
}
