package models

import "time"

// Like represents a user's like on a post. The combination of PostID and
// UserID is unique; the index is the source of truth under concurrent
// toggles. Rows are hard-deleted on un-like.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_like_post_user" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
