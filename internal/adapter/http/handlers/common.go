package handlers

import (
	"net/http"

	request "crewlo/internal/adapter/http/dto/request"
	"crewlo/internal/infrastructure/logging"
	"crewlo/pkg"

	"github.com/gin-gonic/gin"
)

// bindPayload decodes and validates the JSON body. On failure it has already
// written the 422 response listing every offending field.
func bindPayload(c *gin.Context, payload any) bool {
	details := request.Bind(c.Request.Body, payload)
	if len(details) == 0 {
		return true
	}
	appErr := pkg.NewValidationError("VALIDATION_ERROR", details, http.StatusUnprocessableEntity)
	logging.FromContext(c).WithField("fields", len(details)).Debug("rejected payload")
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	return false
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logging.FromContext(c).WithError(appErr.Err).Error(appErr.Message)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
