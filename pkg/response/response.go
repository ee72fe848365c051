package response

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "employees-srv/pkg/errors"
)

// OK writes data inside the standard success envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: codeSuccess,
		Message:   messageSuccess,
		Data:      data,
	})
}

// Error writes err inside the standard error envelope. HTTPErrors keep their
// own status and code, ValidationErrors are reported as 400 and anything else
// is hidden behind a generic 500.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	var valErr *pkgErrors.ValidationError

	switch {
	case stderrors.As(err, &httpErr):
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
	case stderrors.As(err, &valErr):
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: valErr.Code,
			Message:   messageValidation,
			Errors:    map[string]string{valErr.Field: valErr.Message},
		})
	default:
		c.JSON(http.StatusInternalServerError, Resp{
			ErrorCode: codeInternalError,
			Message:   messageInternalError,
		})
	}
}

// ErrorWithMap reports the mapped HTTPError when err is a key of m, and err itself otherwise.
func ErrorWithMap(c *gin.Context, err error, m ErrorMapping) {
	for target, httpErr := range m {
		if stderrors.Is(err, target) {
			Error(c, httpErr)
			return
		}
	}
	Error(c, err)
}

// PanicError reports a recovered panic as a 500.
func PanicError(c *gin.Context, _ any) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: codeInternalError,
		Message:   messageInternalError,
	})
}

// Unauthorized reports a request without valid credentials.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: codeUnauthorized,
		Message:   messageUnauthorized,
	})
}

// BindError reports a request that could not be bound as a validation error.
func BindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: codeValidation,
		Message:   messageValidation,
		Errors:    err.Error(),
	})
}
