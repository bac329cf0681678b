package controllers

import (
	"context"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"mapfuture/internal/models/request_models"
	"mapfuture/internal/services"
	"mapfuture/pkg/utils"
	"net/http"
)

type TravelPlanController struct {
	travelPlanService services.TravelPlanServiceInterface
	log               *zap.Logger
}

func NewTravelPlanController(travelPlanService services.TravelPlanServiceInterface, log *zap.Logger) *TravelPlanController {
	return &TravelPlanController{
		travelPlanService: travelPlanService,
		log:               log,
	}
}

// POST /app/travel-plan
func (t *TravelPlanController) CreateTravelPlanHandler(c *gin.Context) {
	var req request_models.TravelPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		t.log.Info("invalid travel plan request",
			zap.String("trace_id", c.GetString(utils.TraceIDKey)),
			zap.Error(err),
		)
		utils.RespondValidationError(c, err)
		return
	}

	// The provider call runs to completion even if the client goes away.
	ctx := context.WithoutCancel(c.Request.Context())
	plan, err := t.travelPlanService.CreateTravelPlan(ctx, req)
	if err != nil {
		utils.HandleServiceError(c, t.log, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}
