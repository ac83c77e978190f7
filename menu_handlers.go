package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doinggreatt/appetit-backend/menu"
)

func getMenu(composer *menu.Composer) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, err := composer.FullMenu(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, m)
	}
}

func getFood(composer *menu.Composer) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		detail, err := composer.FoodDetail(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}

func listModifiers(composer *menu.Composer) gin.HandlerFunc {
	return func(c *gin.Context) {
		groups, err := composer.ModifierGroups(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, groups)
	}
}

type nameRequest struct {
	Name string `json:"name" binding:"required"`
}

func createFoodType(editor *menu.Editor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req nameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ft, err := editor.CreateFoodType(c.Request.Context(), req.Name)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, ft)
	}
}

func createModifierCategory(editor *menu.Editor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req nameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		mc, err := editor.CreateModifierCategory(c.Request.Context(), req.Name)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, mc)
	}
}

func createModifierOption(editor *menu.Editor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name       string  `json:"name" binding:"required"`
			CategoryID uint    `json:"category_id" binding:"required"`
			Price      float64 `json:"price" binding:"gte=0"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		mo, err := editor.CreateModifierOption(c.Request.Context(), req.CategoryID, req.Name, req.Price)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, mo)
	}
}

func createFood(editor *menu.Editor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req menu.NewFood
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		food, err := editor.CreateFood(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, food)
	}
}

func createMenuEntry(editor *menu.Editor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			FoodID        uint   `json:"food_id" binding:"required"`
			PriorityLevel int    `json:"priority_level"`
			PriorityName  string `json:"priority_name"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		entry, err := editor.AddMenuEntry(c.Request.Context(), req.FoodID, req.PriorityLevel, req.PriorityName)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, entry)
	}
}
