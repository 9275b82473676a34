package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/votepress/backend/internal/models"
	"github.com/votepress/backend/internal/notify"
)

const pgUniqueViolation = "23505"

type UserHandler struct {
	db  *gorm.DB
	sms *notify.SMSNotifier
}

func NewUserHandler(db *gorm.DB, sms *notify.SMSNotifier) *UserHandler {
	return &UserHandler{db: db, sms: sms}
}

// Register creates a new user account
func (h *UserHandler) Register(c *gin.Context) {
	var input models.RegisterRequest

	if !bindJSON(c, &input) {
		return
	}

	var existing models.User
	if err := h.db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user := models.User{
		Email:       input.Email,
		Password:    string(hashedPassword),
		PhoneNumber: input.PhoneNumber,
	}

	if err := h.db.Create(&user).Error; err != nil {
		// The unique constraint is authoritative; the pre-check only loses races.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		log.Printf("Failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	go h.sms.Welcome(user.PhoneNumber)

	c.JSON(http.StatusCreated, user)
}

// GetUser returns a registered user by id
func (h *UserHandler) GetUser(c *gin.Context) {
	var user models.User

	if err := h.db.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}
