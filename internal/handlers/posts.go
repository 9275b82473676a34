package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/votepress/backend/internal/middleware"
	"github.com/votepress/backend/internal/models"
)

type PostHandler struct {
	db *gorm.DB
}

func NewPostHandler(db *gorm.DB) *PostHandler {
	return &PostHandler{db: db}
}

func (h *PostHandler) countVotes(postID int) int64 {
	var votes int64
	h.db.Model(&models.Vote{}).Where("post_id = ?", postID).Count(&votes)
	return votes
}

// requireOwner rejects mutations by anyone but the post's owner.
func requireOwner(c *gin.Context, post models.Post, userID int) bool {
	if post.OwnerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to perform requested action"})
		return false
	}
	return true
}

func postID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "post id must be an integer"})
		return 0, false
	}
	return id, true
}

// List returns posts whose title contains the search term, in insertion
// order, windowed by limit/skip. Every authenticated user sees all posts.
func (h *PostHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "limit must be an integer"})
		return
	}

	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "skip must be an integer"})
		return
	}

	search := c.Query("search")

	var posts []models.Post
	if err := h.db.Preload("Owner").
		Where("title LIKE ?", "%"+search+"%").
		Order("posts.id").
		Limit(limit).
		Offset(skip).
		Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	results := make([]models.PostOut, 0, len(posts))
	for _, post := range posts {
		results = append(results, models.PostOut{Post: post, Votes: h.countVotes(post.ID)})
	}

	c.JSON(http.StatusOK, results)
}

// Get returns a single post with its vote count
func (h *PostHandler) Get(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	var post models.Post
	if err := h.db.Preload("Owner").First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, models.PostOut{Post: post, Votes: h.countVotes(post.ID)})
}

// Create persists a new post owned by the caller
func (h *PostHandler) Create(c *gin.Context) {
	userID, exists := middleware.CurrentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.CreatePostRequest
	if !bindJSON(c, &input) {
		return
	}

	published := true
	if input.Published != nil {
		published = *input.Published
	}

	post := models.Post{
		Title:     input.Title,
		Content:   input.Content,
		Published: published,
		OwnerID:   userID,
	}

	if err := h.db.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	h.db.Preload("Owner").First(&post, post.ID)

	c.JSON(http.StatusCreated, post)
}

// Update overwrites a post's mutable fields (owner only)
func (h *PostHandler) Update(c *gin.Context) {
	userID, exists := middleware.CurrentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := postID(c)
	if !ok {
		return
	}

	var input models.CreatePostRequest
	if !bindJSON(c, &input) {
		return
	}

	var post models.Post
	if err := h.db.First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if !requireOwner(c, post, userID) {
		return
	}

	published := true
	if input.Published != nil {
		published = *input.Published
	}

	updates := map[string]any{
		"title":     input.Title,
		"content":   input.Content,
		"published": published,
	}

	if err := h.db.Model(&post).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	h.db.Preload("Owner").First(&post, post.ID)

	c.JSON(http.StatusOK, post)
}

// Delete removes a post (owner only)
func (h *PostHandler) Delete(c *gin.Context) {
	userID, exists := middleware.CurrentUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := postID(c)
	if !ok {
		return
	}

	var post models.Post
	if err := h.db.First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if !requireOwner(c, post, userID) {
		return
	}

	if err := h.db.Delete(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	c.Status(http.StatusNoContent)
}
