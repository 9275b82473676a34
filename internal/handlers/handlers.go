package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/votepress/backend/internal/notify"
)

// Handler combines all handler types
type Handler struct {
	Auth *AuthHandler
	User *UserHandler
	Post *PostHandler
	Vote *VoteHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(db *gorm.DB, sms *notify.SMSNotifier) *Handler {
	return &Handler{
		Auth: NewAuthHandler(db),
		User: NewUserHandler(db, sms),
		Post: NewPostHandler(db),
		Vote: NewVoteHandler(db),
	}
}

// bindJSON binds and validates a JSON body, answering 422 with field-level
// detail on failure.
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		respondValidationError(c, err)
		return false
	}
	return true
}

func respondValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, gin.H{"field": fe.Field(), "error": fe.Tag()})
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "detail": details})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
}
