package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/votepress/backend/internal/middleware"
	"github.com/votepress/backend/internal/models"
)

type VoteHandler struct {
	db *gorm.DB
}

func NewVoteHandler(db *gorm.DB) *VoteHandler {
	return &VoteHandler{db: db}
}

var (
	errPostNotFound = errors.New("post not found")
	errVoteExists   = errors.New("vote already exists")
	errVoteNotFound = errors.New("vote not found")
)

// Cast adds (dir=1) or removes (dir=0) the caller's vote on a post. The
// lookup and write run in one transaction.
func (h *VoteHandler) Cast(c *gin.Context) {
	userID, exists := middleware.CurrentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.CastVoteRequest
	if !bindJSON(c, &input) {
		return
	}

	if *input.Dir != 0 && *input.Dir != 1 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"detail": []gin.H{{"field": "dir", "error": "must be 0 or 1"}},
		})
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, input.PostID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errPostNotFound
			}
			return err
		}

		var vote models.Vote
		voteErr := tx.Where("post_id = ? AND user_id = ?", input.PostID, userID).First(&vote).Error

		if *input.Dir == 1 {
			if voteErr == nil {
				return errVoteExists
			}
			if !errors.Is(voteErr, gorm.ErrRecordNotFound) {
				return voteErr
			}
			return tx.Create(&models.Vote{PostID: input.PostID, UserID: userID}).Error
		}

		if errors.Is(voteErr, gorm.ErrRecordNotFound) {
			return errVoteNotFound
		}
		if voteErr != nil {
			return voteErr
		}
		return tx.Delete(&vote).Error
	})

	switch {
	case err == nil:
		c.Status(http.StatusCreated)
	case errors.Is(err, errPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
	case errors.Is(err, errVoteExists):
		c.JSON(http.StatusConflict, gin.H{"error": "Vote already exists"})
	case errors.Is(err, errVoteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Vote does not exist"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cast vote"})
	}
}
