package utils

import (
	"encoding/json"
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"net/http"
	"reflect"
)

// TraceIDKey is the gin context key holding the request's trace id.
const TraceIDKey = "trace_id"

// ErrorResponse is the body of every non-2xx reply. Detail is a string, or a
// list of ValidationIssue for malformed requests.
type ErrorResponse struct {
	Detail interface{} `json:"detail"`
}

type ValidationIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func RespondError(c *gin.Context, code int, detail string) {
	c.JSON(code, ErrorResponse{Detail: detail})
}

// RespondValidationError answers 422 with one issue per offending field.
func RespondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: ValidationIssues(err)})
}

func ValidationIssues(err error) []ValidationIssue {
	var fieldErrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.As(err, &fieldErrs):
		issues := make([]ValidationIssue, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msg := "field failed on " + fe.Tag()
			if fe.Tag() == "required" {
				msg = "field required"
			}
			issues = append(issues, ValidationIssue{
				Loc:  []string{"body", fe.Field()},
				Msg:  msg,
				Type: fe.Tag(),
			})
		}
		return issues
	case errors.As(err, &typeErr) && typeErr.Field == "":
		return []ValidationIssue{{
			Loc:  []string{"body"},
			Msg:  "body must be a JSON object, got " + typeErr.Value,
			Type: "type_error",
		}}
	case errors.As(err, &typeErr):
		return []ValidationIssue{{
			Loc:  []string{"body", typeErr.Field},
			Msg:  "value is not a valid " + jsonTypeName(typeErr.Type),
			Type: "type_error",
		}}
	case errors.As(err, &syntaxErr):
		return []ValidationIssue{{Loc: []string{"body"}, Msg: syntaxErr.Error(), Type: "json_invalid"}}
	default:
		return []ValidationIssue{{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error"}}
	}
}

// jsonTypeName names the JSON type a Go type is decoded from.
func jsonTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "list"
	default:
		return "object"
	}
}

// HandleServiceError maps a relay failure to its status code. Gateway
// failures answer 502, everything else 500; the detail is the error text.
// The access log already records the 5xx at error level.
func HandleServiceError(c *gin.Context, log *zap.Logger, err error) {
	code := http.StatusInternalServerError
	if errors.Is(err, ErrGatewayFailure) {
		code = http.StatusBadGateway
	}

	log.Warn("travel plan request failed",
		zap.Int("status", code),
		zap.String("trace_id", c.GetString(TraceIDKey)),
		zap.Error(err),
	)
	RespondError(c, code, err.Error())
}
