package devserver

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/edumanage/portal/core"
)

var (
	errAuthenticationFailed = echo.NewHTTPError(http.StatusBadRequest, "Invalid email or password")
	errHTTPForbidden        = echo.NewHTTPError(http.StatusForbidden, "permission denied")
	errHTTPNotFound         = echo.NewHTTPError(http.StatusNotFound, "not found")
)

// stubHTTPErrorHandler renders every failure as the {"message": ...} body the
// client's error mapping expects.
func stubHTTPErrorHandler(err error, ctx echo.Context) {
	var code int
	var message interface{}

	switch origErr := errors.Cause(err).(type) {
	case *echo.HTTPError:
		if origErr == middleware.ErrJWTMissing {
			code = http.StatusUnauthorized
			message = origErr.Message
			break
		}
		if origErr.Internal != nil {
			if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
				origErr = herr
			}
		}
		code = origErr.Code
		message = origErr.Message
	case validator.ValidationErrors:
		fldErrs := make(map[string]string, len(origErr))
		for _, vErr := range origErr {
			fldErrs[vErr.Field()] = vErr.Translate(core.Translator)
		}
		code = http.StatusBadRequest
		message = fldErrs
	case *core.ValidationError:
		code = http.StatusBadRequest
		message = origErr.Error()
	default:
		code = http.StatusInternalServerError
		message = http.StatusText(code)
	}

	if !ctx.Response().Committed {
		var err error
		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = ctx.JSON(code, echo.Map{"message": message})
		}
		if err != nil {
			ctx.Logger().Error(err)
		}
	}
}
