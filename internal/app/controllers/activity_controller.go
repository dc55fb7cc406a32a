package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mergington/highschool/internal/app/models/dto"
	"github.com/mergington/highschool/internal/app/services"
	"github.com/mergington/highschool/internal/middleware"
)

// ActivityController handles activity listing and enrollment operations
type ActivityController struct {
	enrollmentService services.EnrollmentService
}

// NewActivityController creates a new ActivityController
func NewActivityController(enrollmentService services.EnrollmentService) *ActivityController {
	return &ActivityController{
		enrollmentService: enrollmentService,
	}
}

// Root redirects to the static web UI
// @Summary Redirect to the web UI
// @Description Redirects the browser to the static index page
// @Tags activities
// @Success 307 "Redirect to /static/index.html"
// @Router / [get]
func (c *ActivityController) Root(ctx *gin.Context) {
	ctx.Redirect(http.StatusTemporaryRedirect, "/static/index.html")
}

// GetAllActivities lists every activity with its roster
// @Summary List activities
// @Description Retrieves all activities, each with schedule, capacity and the enrolled student emails in signup order
// @Tags activities
// @Produce json
// @Success 200 {object} dto.ActivityMap "Activities keyed by name"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activities [get]
func (c *ActivityController) GetAllActivities(ctx *gin.Context) {
	activities, err := c.enrollmentService.ListActivities(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewActivityMap(activities))
}

// SignUp enrolls a student in an activity
// @Summary Sign up for an activity
// @Description Signs the student email up for the named activity
// @Tags activities
// @Produce json
// @Param name path string true "Activity name"
// @Param email query string true "Student email"
// @Success 200 {object} dto.SuccessResponse "Confirmation message"
// @Failure 400 {object} dto.ErrorResponse "Missing email or student already signed up"
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Failure 409 {object} dto.ErrorResponse "Activity is full"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activities/{name}/signup [post]
func (c *ActivityController) SignUp(ctx *gin.Context) {
	activityName := ctx.Param("name")
	email, ok := studentEmail(ctx)
	if !ok {
		return
	}

	if err := c.enrollmentService.SignUp(ctx, activityName, email); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, activityName),
	})
}

// Unregister removes a student from an activity
// @Summary Unregister from an activity
// @Description Removes the student email's enrollment from the named activity
// @Tags activities
// @Produce json
// @Param name path string true "Activity name"
// @Param email query string true "Student email"
// @Success 200 {object} dto.SuccessResponse "Confirmation message"
// @Failure 400 {object} dto.ErrorResponse "Missing email or student not signed up"
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activities/{name}/unregister [delete]
func (c *ActivityController) Unregister(ctx *gin.Context) {
	activityName := ctx.Param("name")
	email, ok := studentEmail(ctx)
	if !ok {
		return
	}

	if err := c.enrollmentService.Unregister(ctx, activityName, email); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, activityName),
	})
}

// studentEmail extracts the email from the query string or form body and
// writes a validation error when it is missing.
func studentEmail(ctx *gin.Context) (string, bool) {
	email := ctx.Query("email")
	if email == "" {
		email = ctx.PostForm("email")
	}
	if email == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Email is required").
			WithField("email")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return "", false
	}
	return email, true
}
