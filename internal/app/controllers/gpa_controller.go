package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/gpacalc/internal/app/models/dto"
	"github.com/yigit/gpacalc/internal/app/services"
	"github.com/yigit/gpacalc/internal/gpa"
	"github.com/yigit/gpacalc/internal/middleware"
)

// GPAController handles GPA calculation endpoints
type GPAController struct {
	gpaService services.GPAService
}

// NewGPAController creates a new GPAController
func NewGPAController(gpaService services.GPAService) *GPAController {
	return &GPAController{
		gpaService: gpaService,
	}
}

// CalculateGPA computes a credit-weighted GPA
// @Summary Calculate GPA
// @Description Computes the credit-weighted GPA of the submitted course entries. Entries are validated in order and the first invalid one aborts the calculation. An empty list yields 0.00.
// @Tags gpa
// @Accept json
// @Produce json
// @Param request body dto.CalculateGPARequest true "Course entries"
// @Success 200 {object} dto.APIResponse{data=dto.GPAResponse} "GPA calculated"
// @Failure 400 {object} dto.ErrorResponse "Invalid entry or malformed request"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /gpa/calculate [post]
func (c *GPAController) CalculateGPA(ctx *gin.Context) {
	var req dto.CalculateGPARequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	res, err := c.gpaService.Calculate(ctx.Request.Context(), req.Entries)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewGPAResponse(res), res.String()))
}

// GetGradePoint returns the grade band for one marks value
// @Summary Look up a grade point
// @Description Returns the grade point and band lower bound for a marks value between 0 and 100
// @Tags gpa
// @Produce json
// @Param marks query string true "Marks (0-100)"
// @Success 200 {object} dto.APIResponse{data=dto.GradePointResponse} "Grade point found"
// @Failure 400 {object} dto.ErrorResponse "Invalid marks"
// @Router /gpa/grade-point [get]
func (c *GPAController) GetGradePoint(ctx *gin.Context) {
	var q dto.GradePointQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	marks, band, err := c.gpaService.GradePoint(ctx.Request.Context(), gpa.RawValue(q.Marks))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.GradePointResponse{
		Marks:      marks,
		LowerBound: band.LowerBound,
		GradePoint: band.Point,
	}, ""))
}

// GetGradeScale lists the grade bands
// @Summary Get grade scale
// @Description Returns the fixed marks-to-grade-point table, highest band first
// @Tags gpa
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.GradeScaleResponse} "Grade scale"
// @Router /gpa/scale [get]
func (c *GPAController) GetGradeScale(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.GradeScaleResponse{
		Bands: c.gpaService.Scale(ctx.Request.Context()),
	}, ""))
}
