package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gustta03/meals-api/models"
	"github.com/gustta03/meals-api/services"

	"github.com/gin-gonic/gin"
)

// FoodController is the JWT-protected admin CRUD over the nutrition catalog.
type FoodController struct {
	catalog *services.CatalogService
}

func NewFoodController(catalog *services.CatalogService) *FoodController {
	return &FoodController{catalog: catalog}
}

type foodRequest struct {
	Code       string  `json:"code" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	AltNames   string  `json:"alt_names"`
	FoodGroup  string  `json:"food_group"`
	EnergyKcal float64 `json:"energy_kcal"`
	ProteinG   float64 `json:"protein_g"`
	CarbG      float64 `json:"carb_g"`
	FatG       float64 `json:"fat_g"`
	FiberG     float64 `json:"fiber_g"`
	PortionG   float64 `json:"portion_g" binding:"required"`
	Unit       string  `json:"unit"`
}

func (fc *FoodController) Create(c *gin.Context) {
	var body foodRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food := models.Food{
		Code: body.Code, Name: body.Name, AltNames: body.AltNames,
		FoodGroup: body.FoodGroup, EnergyKcal: body.EnergyKcal,
		ProteinG: body.ProteinG, CarbG: body.CarbG, FatG: body.FatG,
		FiberG: body.FiberG, PortionG: body.PortionG, Unit: body.Unit,
	}
	if food.Unit == "" {
		food.Unit = "g"
	}
	if err := fc.catalog.Create(c.Request.Context(), &food); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, food)
}

func (fc *FoodController) Get(c *gin.Context) {
	food, err := fc.catalog.Get(c.Request.Context(), c.Param("code"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, food)
}

func (fc *FoodController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	foods, err := fc.catalog.List(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (fc *FoodController) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}
	foods, err := fc.catalog.Search(c.Request.Context(), query, 10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (fc *FoodController) Update(c *gin.Context) {
	food, err := fc.catalog.Get(c.Request.Context(), c.Param("code"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var body foodRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food.Name = body.Name
	food.AltNames = body.AltNames
	food.FoodGroup = body.FoodGroup
	food.EnergyKcal = body.EnergyKcal
	food.ProteinG = body.ProteinG
	food.CarbG = body.CarbG
	food.FatG = body.FatG
	food.FiberG = body.FiberG
	food.PortionG = body.PortionG

	if err := fc.catalog.Update(c.Request.Context(), food); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, food)
}

func (fc *FoodController) Delete(c *gin.Context) {
	err := fc.catalog.Delete(c.Request.Context(), c.Param("code"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
