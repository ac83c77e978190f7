package main

import (
	"net/http"
	"strconv"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/doinggreatt/appetit-backend/apperrors"
	"github.com/doinggreatt/appetit-backend/logging"
	"github.com/doinggreatt/appetit-backend/menu"
	"github.com/doinggreatt/appetit-backend/orders"
	"github.com/doinggreatt/appetit-backend/store"
)

type RouterOptions struct {
	Logger      zerolog.Logger
	Verifier    *oidc.IDTokenVerifier
	CORSOrigins []string
}

func SetupRouter(db *gorm.DB, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.Middleware(opts.Logger), corsMiddleware(opts.CORSOrigins))

	st := store.New(db)
	composer := menu.NewComposer(st, opts.Logger)
	editor := menu.NewEditor(st, opts.Logger)
	pricer := orders.NewPricer(orders.InStore(st), opts.Logger)
	auth := AuthMiddleware(opts.Verifier)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Menu
	r.GET("/menu", getMenu(composer))
	r.GET("/foods/:id", getFood(composer))
	r.GET("/modifiers", listModifiers(composer))

	// Catalog administration
	admin := r.Group("/", auth)
	admin.POST("/food-types", createFoodType(editor))
	admin.POST("/modifier-categories", createModifierCategory(editor))
	admin.POST("/modifier-options", createModifierOption(editor))
	admin.POST("/foods", createFood(editor))
	admin.POST("/menu-entries", createMenuEntry(editor))

	// Orders
	r.POST("/orders", auth, createOrder(pricer))
	r.GET("/orders/:id", auth, getOrder(st))

	// Restaurants
	r.GET("/restaurants", listRestaurants(db))
	r.POST("/restaurants", auth, createRestaurant(db))

	// Users
	r.POST("/users", createUser(db))
	r.GET("/users", auth, listUsers(db))

	return r
}

func respondError(c *gin.Context, err error) {
	c.JSON(apperrors.HTTPStatus(err), gin.H{"error": apperrors.PublicMessage(err)})
}

// paramID parses the :id path parameter, answering 400 itself on failure.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
