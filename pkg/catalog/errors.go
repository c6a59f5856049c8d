package catalog

import "fmt"

// DuplicateEntryError reports a catalog load with two entries sharing an ID.
type DuplicateEntryError struct {
	ID string
}

func (e *DuplicateEntryError) Error() string {
	return fmt.Sprintf("duplicate catalog entry %q", e.ID)
}

// NotFoundError reports a lookup for an entry that is not in the store.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("catalog entry %q not found", e.ID)
}
