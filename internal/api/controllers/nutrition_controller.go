package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"arogya/internal/models/request_models"
	"arogya/internal/services"
	"arogya/pkg/utils"
)

type NutritionController struct {
	nutritionService   services.NutritionServiceInterface
	spoonacularService services.SpoonacularService
}

func NewNutritionController(
	nutritionService services.NutritionServiceInterface,
	spoonacularService services.SpoonacularService,
) *NutritionController {
	return &NutritionController{
		nutritionService:   nutritionService,
		spoonacularService: spoonacularService,
	}
}

func (n *NutritionController) ListPlans(c *gin.Context) {
	userID, ok := ownerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	plans, err := n.nutritionService.ListPlans(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plans, "")
}

func (n *NutritionController) CreatePlan(c *gin.Context) {
	userID, ok := ownerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req request_models.CreateNutritionPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := n.nutritionService.CreatePlan(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Nutrition plan created")
}

func (n *NutritionController) DeletePlan(c *gin.Context) {
	userID, ok := ownerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	if err := n.nutritionService.DeletePlan(c.Request.Context(), userID, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Nutrition plan deleted")
}

func (n *NutritionController) AddPlanMeals(c *gin.Context) {
	userID, ok := ownerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var items []request_models.PlanMealItem
	if err := c.ShouldBindJSON(&items); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	added, err := n.nutritionService.AddPlanMeals(c.Request.Context(), userID, c.Param("id"), items)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"added": added}, "Meals added to plan")
}

func (n *NutritionController) ListMeals(c *gin.Context) {
	userID, ok := ownerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	meals, err := n.nutritionService.ListMeals(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, meals, "")
}

func (n *NutritionController) LogMeal(c *gin.Context) {
	userID, ok := ownerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req request_models.LogMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	meal, err := n.nutritionService.LogMeal(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, meal, "Meal logged")
}

func (n *NutritionController) GetMeal(c *gin.Context) {
	userID, ok := ownerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	meal, err := n.nutritionService.GetMeal(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, meal, "")
}

func (n *NutritionController) DeleteMeal(c *gin.Context) {
	userID, ok := ownerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	if err := n.nutritionService.DeleteMeal(c.Request.Context(), userID, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Meal deleted")
}

func (n *NutritionController) ListLogs(c *gin.Context) {
	userID, ok := ownerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	logs, err := n.nutritionService.ListLogs(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, logs, "")
}

// DailyTotals accepts an optional date=YYYY-MM-DD query, defaulting to
// today.
func (n *NutritionController) DailyTotals(c *gin.Context) {
	userID, ok := ownerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var day time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		day = parsed
	}

	totals, err := n.nutritionService.DailyTotals(c.Request.Context(), userID, day)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, totals, "")
}

func (n *NutritionController) SearchIngredients(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "q is required")
		return
	}
	results := n.spoonacularService.SearchIngredients(c.Request.Context(), query)
	utils.RespondSuccess(c, results, "")
}

func (n *NutritionController) IngredientInfo(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "id must be numeric")
		return
	}
	info := n.spoonacularService.IngredientInfo(c.Request.Context(), id)
	utils.RespondSuccess(c, info, "")
}
