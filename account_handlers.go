package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/doinggreatt/appetit-backend/models"
)

func createRestaurant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name string  `json:"name" binding:"required"`
			Lat  float64 `json:"lat" binding:"gte=-90,lte=90"`
			Lon  float64 `json:"lon" binding:"gte=-180,lte=180"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		restaurant := models.Restaurant{Name: req.Name, Lat: req.Lat, Lon: req.Lon}
		if err := db.WithContext(c.Request.Context()).Create(&restaurant).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, restaurant)
	}
}

func listRestaurants(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurants := []models.Restaurant{}
		if err := db.WithContext(c.Request.Context()).Order("id").Find(&restaurants).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, restaurants)
	}
}

func createUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			FirstName string `json:"first_name" binding:"required"`
			LastName  string `json:"last_name" binding:"required"`
			Email     string `json:"email" binding:"required,email"`
			Password  string `json:"password" binding:"required,min=8"`
			Password2 string `json:"password_2" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Password != req.Password2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "password should match"})
			return
		}
		email := strings.ToLower(strings.TrimSpace(req.Email))

		var existing models.User
		err := db.WithContext(c.Request.Context()).Where("email = ?", email).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "this email is already taken"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		user := models.User{
			Email:     email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Password:  string(hash),
		}
		if err := db.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

func listUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		users := []models.User{}
		if err := db.WithContext(c.Request.Context()).Order("id").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}
