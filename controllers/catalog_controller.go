package controllers

import (
	"net/http"

	"nutriplan/services"

	"github.com/gin-gonic/gin"
)

// GET /user/catalog?meal_type=breakfast&cuisine=all&q=paneer
func SearchCatalog(c *gin.Context) {
	mealType := c.DefaultQuery("meal_type", "all")
	cuisine := c.DefaultQuery("cuisine", "all")
	query := c.Query("q")

	meals := services.FilterCatalog(mealType, cuisine, query)
	c.JSON(http.StatusOK, gin.H{"meals": meals, "count": len(meals)})
}
