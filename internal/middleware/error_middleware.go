package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/mergington/highschool/internal/app/models/dto"
	"github.com/mergington/highschool/internal/pkg/apperrors"
)

// HandleAPIError translates service errors into HTTP responses. Status
// codes follow the public API contract: unknown activity is 404, a
// duplicate signup or an unregister without an enrollment is 400, and a
// full activity is 409.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrActivityNotFound):
		c.JSON(404, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeActivityNotFound, "Activity not found")))
	case errors.Is(err, apperrors.ErrAlreadySignedUp):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeAlreadySignedUp, "Student is already signed up")))
	case errors.Is(err, apperrors.ErrActivityFull):
		c.JSON(409, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeActivityFull, "Activity is full")))
	case errors.Is(err, apperrors.ErrNotEnrolled):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeNotEnrolled, "Student is not signed up for this activity")))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
	default:
		// Storage and other unexpected failures are isolated to the request
		c.JSON(500, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
