// Package models contains data structures for the application's domain models.
package models

import "time"

// Post represents a piece of content in a user's feed. Posts are immutable
// once created; there is no edit or delete path.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Content  string `gorm:"type:text;not null" json:"content"`
	ImageURL string `json:"image_url,omitempty"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->" json:"comments_count"`
	// Liked indicates whether the requesting viewer liked this post (computed)
	Liked     bool      `gorm:"->" json:"liked"`
	CreatedAt time.Time `json:"created_at"`

	// Comments carries the newest-first comment preview on feed items.
	// Populated by the feed assembler, never by relation autoloading.
	Comments []*Comment `gorm:"-" json:"comments,omitempty"`
}
