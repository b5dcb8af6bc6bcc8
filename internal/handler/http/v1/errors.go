package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/disaster_response_predictor/internal/apperrors"
	"github.com/sirupsen/logrus"
)

const locBody = "body"

// bindError переводит ошибку разбора JSON в ошибку валидации
func bindError(err error, prefix ...string) *apperrors.ValidationError {
	loc := append([]string{locBody}, prefix...)

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.Is(err, io.EOF):
		return apperrors.NewValidationError("request body is required", loc...)
	case errors.As(err, &typeErr):
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		return apperrors.NewValidationError(fmt.Sprintf("value is not a valid %s", typeErr.Type), loc...)
	case errors.As(err, &syntaxErr):
		return apperrors.NewValidationError(fmt.Sprintf("invalid JSON at offset %d", syntaxErr.Offset), loc...)
	default:
		return apperrors.NewValidationError("invalid request body", loc...)
	}
}

// structError переводит ошибки validator в ошибку валидации. index < 0 для одиночного запроса
func structError(err error, index int) *apperrors.ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewValidationError(err.Error(), locBody)
	}

	out := &apperrors.ValidationError{}
	for _, fe := range verrs {
		loc := []string{locBody}
		if index >= 0 {
			loc = append(loc, strconv.Itoa(index))
		}
		loc = append(loc, fe.Field())
		out.Fields = append(out.Fields, apperrors.FieldError{Loc: loc, Message: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "min":
		if fe.Kind() == reflect.String {
			return "must not be empty"
		}
		return "must be greater than or equal to " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "max":
		return "must be less than or equal to " + fe.Param()
	case "latitude":
		return "must be a valid latitude"
	case "longitude":
		return "must be a valid longitude"
	}
	return fmt.Sprintf("failed on the '%s' validation", fe.Tag())
}

// respondError сопоставляет ошибку с HTTP-статусом. Текст внутренних ошибок клиенту не отдается
func respondError(c *gin.Context, log *logrus.Entry, err error) {
	var validationErr *apperrors.ValidationError
	var inferenceErr *apperrors.InferenceError

	switch {
	case errors.As(err, &validationErr):
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: validationErr.Fields})
	case errors.As(err, &inferenceErr):
		log.WithError(err).Error("Prediction failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "prediction failed"})
	default:
		log.WithError(err).Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "internal server error"})
	}
}
