package domain

import "time"

// Audit carries the bookkeeping fields shared by every upstream entity.
// Creation fields are written once; modification fields track the most
// recent update.
type Audit struct {
	CreatedAt        time.Time  `json:"created_at"`
	CreatedBy        string     `json:"created_by"`
	LastModification *time.Time `json:"last_modification,omitempty"`
	LastModifiedBy   *string    `json:"last_modified_by,omitempty"`
}

// StampCreated records creation bookkeeping unconditionally.
func (a *Audit) StampCreated(at time.Time, actor string) {
	a.CreatedAt = at
	a.CreatedBy = actor
}

// StampModified records the modification time and defaults the actor
// only when the caller did not already name one.
func (a *Audit) StampModified(at time.Time, actor string) {
	a.LastModification = &at
	if a.LastModifiedBy == nil || *a.LastModifiedBy == "" {
		a.LastModifiedBy = &actor
	}
}
