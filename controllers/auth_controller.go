package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/pbrudny/financial-decisions-retro/models"
)

// Login exchanges a party's passphrase for a bearer token. Passphrase hashes
// come from PARTY_A_PASSPHRASE_HASH / PARTY_B_PASSPHRASE_HASH (bcrypt).
func Login(c *gin.Context) {
	var input struct {
		UserID     string `json:"user_id"`
		Passphrase string `json:"passphrase"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user := models.UserID(input.UserID)
	if !user.Valid() || input.Passphrase == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id (A or B) and passphrase required"})
		return
	}

	hashEnv := "PARTY_A_PASSPHRASE_HASH"
	if user == models.UserB {
		hashEnv = "PARTY_B_PASSPHRASE_HASH"
	}
	hash := os.Getenv(hashEnv)
	if hash == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Passphrase not configured"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Passphrase)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid passphrase"})
		return
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "JWT secret not configured"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": string(user),
		"exp":     time.Now().Add(30 * 24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}
