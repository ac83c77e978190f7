package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doinggreatt/appetit-backend/orders"
)

func createOrder(pricer *orders.Pricer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserID            uint   `json:"user_id" binding:"required"`
			RestaurantID      uint   `json:"restaurant_id"`
			FoodIDs           []uint `json:"food_ids"`
			FoodSizeIDs       []uint `json:"food_size_ids"`
			ModifierOptionIDs []uint `json:"modifier_option_ids"`
			IsPayed           bool   `json:"is_payed"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		res, err := pricer.PriceAndCreateOrder(c.Request.Context(), orders.Request{
			UserID:            req.UserID,
			RestaurantID:      req.RestaurantID,
			FoodIDs:           req.FoodIDs,
			FoodSizeIDs:       req.FoodSizeIDs,
			ModifierOptionIDs: req.ModifierOptionIDs,
			IsPayed:           req.IsPayed,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, res)
	}
}

func getOrder(r orders.Reader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		view, err := orders.Get(c.Request.Context(), r, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}
