package controllers

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/gustta03/meals-api/utils"

	"github.com/gin-gonic/gin"
)

// Login exchanges the admin credentials for a bearer token. The catalog API
// has a single operator identity configured through the environment.
func Login(c *gin.Context) {
	var body struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expectedUser := os.Getenv("ADMIN_USER")
	expectedPass := os.Getenv("ADMIN_PASSWORD")
	if expectedUser == "" || expectedPass == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "admin credentials not configured"})
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(body.Username), []byte(expectedUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(body.Password), []byte(expectedPass)) == 1
	if !userOK || !passOK {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(body.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
