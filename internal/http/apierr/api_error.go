package apierr

import (
	"errors"
	"fmt"
	"net/http"

	govalidator "github.com/go-playground/validator/v10"

	"github.com/tuanvumaihuynh/catalog-service/pkg/validator"
	"github.com/tuanvumaihuynh/catalog-service/pkg/zerror"
)

// ErrorResponse is the error response for the API.
// The wire shape is {"error": "<message>"}.
type ErrorResponse struct {
	Error string `json:"error"`

	// StatusCode is the status code for the error response.
	StatusCode int `json:"-"`
}

func New(err error) ErrorResponse {
	return errorToErrorResponse(err)
}

func errorToErrorResponse(err error) ErrorResponse {
	var zErr zerror.ZError
	if errors.As(err, &zErr) {
		return ErrorResponse{
			Error:      zErr.Msg(),
			StatusCode: ZErrorStatusToHTTPStatus(zErr.Status()),
		}
	}

	var validationErrs govalidator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return ErrorResponse{
			Error:      fmt.Sprintf("%s %s", fe.Field(), validator.ValidationErrorMessage(fe)),
			StatusCode: http.StatusBadRequest,
		}
	}

	// Unexpected store failures surface with the underlying message.
	return ErrorResponse{
		Error:      err.Error(),
		StatusCode: http.StatusInternalServerError,
	}
}

func ZErrorStatusToHTTPStatus(status zerror.Status) int {
	switch status {
	case zerror.StatusNotFound:
		return http.StatusNotFound
	case zerror.StatusConflict:
		return http.StatusConflict
	case zerror.StatusBadRequest, zerror.StatusValidationFailed:
		return http.StatusBadRequest
	case zerror.StatusServiceUnavailable:
		return http.StatusServiceUnavailable
	case zerror.StatusUnknown, zerror.StatusInternalServerError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
