package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	generator "github.com/faryal1907/bio-d-scan/src/production/BDS.Generator"
	logger "github.com/faryal1907/bio-d-scan/src/production/BDS.Logger"
	bdsmodels "github.com/faryal1907/bio-d-scan/src/production/BDS.Models"
	interfaces "github.com/faryal1907/bio-d-scan/src/production/BDS.Repository/Interfaces"
	validation "github.com/faryal1907/bio-d-scan/src/production/BDS.Validation"
)

// BeeDataController handles bee data ingestion and query requests
type BeeDataController struct {
	repo   interfaces.BeeDataRepository
	gen    *generator.Generator
	logger *logger.Logger
}

// NewBeeDataController creates a new bee data controller
func NewBeeDataController(repo interfaces.BeeDataRepository, gen *generator.Generator, logger *logger.Logger) *BeeDataController {
	return &BeeDataController{
		repo:   repo,
		gen:    gen,
		logger: logger,
	}
}

// RegisterRoutes registers the bee data routes with Gin
func (c *BeeDataController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.POST("/bee-data", c.CreateBeeData)
		api.GET("/bee-data", c.GetBeeData)
		api.GET("/bee-data/:hive_id", c.GetBeeDataByHive)
		api.DELETE("/bee-data/:id", c.DeleteBeeData)
		api.GET("/stats", c.GetStats)
		api.GET("/external-bee-data", c.GetExternalBeeData)
	}
}

// CreateBeeDataRequest is the ingestion payload. The id and timestamp are
// never accepted from clients; unknown extra fields are ignored.
type CreateBeeDataRequest struct {
	HiveID         string  `json:"hive_id"`
	Temperature    float64 `json:"temperature"`
	Humidity       float64 `json:"humidity"`
	BumbleBeeCount int     `json:"bumble_bee_count"`
	HoneyBeeCount  int     `json:"honey_bee_count"`
	LadyBugCount   int     `json:"lady_bug_count"`
	Location       string  `json:"location"`
	Notes          string  `json:"notes"`
}

func (c *BeeDataController) CreateBeeData(ctx *gin.Context) {
	var req CreateBeeDataRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	data := bdsmodels.BeeData{
		HiveID:         req.HiveID,
		Temperature:    req.Temperature,
		Humidity:       req.Humidity,
		BumbleBeeCount: req.BumbleBeeCount,
		HoneyBeeCount:  req.HoneyBeeCount,
		LadyBugCount:   req.LadyBugCount,
		Location:       req.Location,
		Notes:          req.Notes,
	}

	if err := validation.ValidateBeeData(data); err != nil {
		var ve *bdsmodels.ValidationError
		if errors.As(err, &ve) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": ve.Message, "field": ve.Field})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stored, err := c.repo.CreateBeeData(ctx, data)
	if err != nil {
		c.storeFailure(ctx, err, "failed to add bee data")
		return
	}

	ctx.JSON(http.StatusCreated, stored)
}

func (c *BeeDataController) GetBeeData(ctx *gin.Context) {
	limit, err := strconv.ParseInt(ctx.DefaultQuery("limit", "1000"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	readings, err := c.repo.GetBeeData(ctx, limit)
	if err != nil {
		c.storeFailure(ctx, err, "failed to fetch bee data")
		return
	}

	ctx.JSON(http.StatusOK, readings)
}

func (c *BeeDataController) GetBeeDataByHive(ctx *gin.Context) {
	hiveID := ctx.Param("hive_id")

	readings, err := c.repo.GetBeeDataByHive(ctx, hiveID)
	if err != nil {
		c.storeFailure(ctx, err, "failed to fetch hive data")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"hive_id": hiveID, "data": readings})
}

func (c *BeeDataController) DeleteBeeData(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.repo.DeleteBeeData(ctx, id); err != nil {
		if errors.Is(err, bdsmodels.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "data not found"})
			return
		}
		c.storeFailure(ctx, err, "failed to delete data")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Data deleted successfully"})
}

func (c *BeeDataController) GetStats(ctx *gin.Context) {
	stats, err := c.repo.GetSummaryStats(ctx)
	if err != nil {
		c.storeFailure(ctx, err, "failed to get stats")
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

func (c *BeeDataController) GetExternalBeeData(ctx *gin.Context) {
	series := c.gen.GenerateSeries()

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Synthetic bee data generated successfully",
		"data":    series,
		"count":   len(series),
	})
}

// storeFailure logs the underlying store error and answers with a generic
// message; connection details never reach the caller.
func (c *BeeDataController) storeFailure(ctx *gin.Context, err error, msg string) {
	c.logger.ErrorWithError(err, msg)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
