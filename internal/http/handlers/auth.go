package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"tourops/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthUser is the staff payload returned on login.
type AuthUser struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(env config.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if !BindJSONOrError(c, &req) {
			return
		}

		var (
			user         AuthUser
			passwordHash string
		)
		err := config.DB.QueryRow(`
			SELECT id, COALESCE(name, ''), email, password_hash, COALESCE(role, 'staff'), COALESCE(status, 'active')
			FROM users
			WHERE email = ?
			LIMIT 1
		`, req.Email).Scan(&user.ID, &user.Name, &user.Email, &passwordHash, &user.Role, &user.Status)
		if err != nil {
			if err == sql.ErrNoRows {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong email or password"})
			} else {
				respondError(c, http.StatusInternalServerError, "internal_error", "login failed")
			}
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong email or password"})
			return
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": user.ID,
			"role":    user.Role,
			"exp":     time.Now().Add(24 * time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte(env.JWTSecret))
		if err != nil {
			respondError(c, http.StatusInternalServerError, "internal_error", "failed to sign token")
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": signed, "user": user})
	}
}
