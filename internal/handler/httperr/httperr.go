package httperr

import (
	"net/http"

	"rentaldesk/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// ConfirmationDetail is sent with 428 so the client can show the prompt and
// retry with confirm set.
type ConfirmationDetail struct {
	Prompt string `json:"prompt"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Respond maps a usecase error onto its status and message and aborts.
func Respond(c *gin.Context, err error) {
	status, msg, detail := Classify(err)
	AbortWithError(c, status, err, msg, detail)
}

// Classify returns the status, client message and detail for err.
func Classify(err error) (int, string, any) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, "Internal server error", nil
	case errs.Is(err, errs.ErrConfirmationRequired):
		prompt := errs.UserMessage(err)
		return http.StatusPreconditionRequired, prompt, ConfirmationDetail{Prompt: prompt}
	case errs.Is(err, errs.ErrValidation):
		return http.StatusUnprocessableEntity, errs.UserMessage(err), nil
	case errs.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized, errs.UserMessage(err), nil
	case errs.Is(err, errs.ErrAuthorization):
		return http.StatusForbidden, errs.UserMessage(err), nil
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, errs.UserMessage(err), nil
	case errs.Is(err, errs.ErrTransport):
		return transportStatus(err), transportMessage(err), nil
	default:
		return http.StatusInternalServerError, "Internal server error", nil
	}
}

func transportStatus(err error) int {
	if status, ok := errs.StatusOf(err); ok && status >= 400 && status < 500 {
		return status
	}
	return http.StatusBadGateway
}

func transportMessage(err error) string {
	if msg, ok := errs.UpstreamMessage(err); ok && msg != "" {
		return msg
	}
	return "Booking service unavailable"
}
