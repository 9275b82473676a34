package models

import "time"

type Post struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"not null" json:"content"`
	Published bool      `gorm:"not null;default:true" json:"published"`
	OwnerID   int       `gorm:"not null" json:"owner_id"`
	Owner     User      `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"owner"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePostRequest doubles as the PUT body: omitting published on an
// update writes the default, not the previous value.
type CreatePostRequest struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Published *bool  `json:"published"`
}

// PostOut pairs a post with its vote count for read endpoints.
type PostOut struct {
	Post  Post  `json:"post"`
	Votes int64 `json:"votes"`
}
