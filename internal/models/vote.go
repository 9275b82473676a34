package models

// Vote is a bare (post, user) pair: a row is an upvote, no row is no vote.
type Vote struct {
	PostID int `gorm:"primaryKey" json:"post_id"`
	UserID int `gorm:"primaryKey" json:"user_id"`

	Post Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// CastVoteRequest: dir 1 adds a vote, dir 0 removes it. Dir is a pointer so
// a literal 0 survives required-field binding.
type CastVoteRequest struct {
	PostID int  `json:"post_id" binding:"required"`
	Dir    *int `json:"dir" binding:"required"`
}
