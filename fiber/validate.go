package fiber

import (
	"errors"
	"reflect"
	"strings"

	"github.com/fwojciec/coverletter"
	"github.com/go-playground/validator/v10"
)

// requiredMessages names the error reported for each missing JSON field.
var requiredMessages = map[string]string{
	"url":            "URL is required",
	"jobDescription": "Job description is required",
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest validates req and converts the first failure into an
// EINVALID error.
func (s *Server) validateRequest(req any) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return coverletter.Errorf(coverletter.EINVALID, "invalid request")
	}
	field := verrs[0].Field()
	if msg, ok := requiredMessages[field]; ok && verrs[0].Tag() == "required" {
		return coverletter.Errorf(coverletter.EINVALID, "%s", msg)
	}
	return coverletter.Errorf(coverletter.EINVALID, "invalid %s", field)
}
