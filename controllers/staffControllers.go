package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sethrock/AppointmentManager/models"
	"github.com/sethrock/AppointmentManager/storage"
)

// StaffController handles staff authentication.
type StaffController struct {
	store     storage.Store
	jwtSecret []byte
	log       zerolog.Logger
}

func NewStaffController(store storage.Store, jwtSecret string, log zerolog.Logger) *StaffController {
	return &StaffController{
		store:     store,
		jwtSecret: []byte(jwtSecret),
		log:       log.With().Str("component", "staff").Logger(),
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /staff/login and issues a JWT on success.
func (sc *StaffController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": err.Error()})
		return
	}

	user, err := sc.store.GetStaffUser(c.Request.Context(), req.Username)
	if err != nil {
		sc.log.Error().Err(err).Msg("staff lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Login failed"})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": "Invalid username or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": "Invalid username or password"})
		return
	}

	claims := models.StaffClaims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(sc.jwtSecret)
	if err != nil {
		sc.log.Error().Err(err).Msg("token signing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "username": user.Username})
}
