package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"reel-server/reel-api/internal/utils/platformerrors"
)

// ErrorResponse is the wire shape of every failure body. Error carries
// the underlying error string on endpoints that echo it.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ErrorMessages selects the per-endpoint failure wording.
type ErrorMessages struct {
	NotFound string // body message for not-found errors; Failure when empty
	Failure  string // body message for everything else
	Echo     bool   // echo the underlying error string in `error`
}

// HandleError maps a platform error to its HTTP status and renders the
// endpoint's failure body.
func HandleError(c *gin.Context, err error, msgs ErrorMessages) {
	var platformErr *platformerrors.PlatformError
	if errors.As(err, &platformErr) {
		status := platformerrors.ErrorTypeToHTTPStatus(platformErr.GetErrorType())

		switch platformErr.GetErrorType() {
		case platformerrors.ErrorTypeNotFound:
			message := msgs.NotFound
			if message == "" {
				message = msgs.Failure
			}
			c.AbortWithStatusJSON(status, ErrorResponse{Message: message})
		case platformerrors.ErrorTypeValidation:
			c.AbortWithStatusJSON(status, ErrorResponse{Message: platformErr.Message})
		default:
			body := ErrorResponse{Message: msgs.Failure}
			if msgs.Echo {
				body.Error = platformErr.Detail()
			}
			c.AbortWithStatusJSON(status, body)
		}
		return
	}

	body := ErrorResponse{Message: msgs.Failure}
	if msgs.Echo && err != nil {
		body.Error = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, body)
}
