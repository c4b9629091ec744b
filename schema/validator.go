package schema

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/padraicbc/gymapi/models"
)

// tagMessages maps validation tags to the message reported for the field.
var tagMessages = map[string]string{
	"required": MsgRequired,
	"notnull":  MsgNull,
	"jsonstr":  MsgInvalidStr,
	"jsonint":  MsgInvalidInt,
	"isodate":  MsgInvalidDate,
}

// Validator checks payload structs. It satisfies echo.Validator.
type Validator struct {
	v *validator.Validate
}

// NewValidator registers the raw-JSON tags and JSON field naming.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonName)

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("notnull", func(fl validator.FieldLevel) bool {
		return !isNull(fl.Field().Bytes())
	})
	_ = v.RegisterValidation("jsonstr", func(fl validator.FieldLevel) bool {
		_, ok := parseString(fl.Field().Bytes())
		return ok
	})
	_ = v.RegisterValidation("jsonint", func(fl validator.FieldLevel) bool {
		_, ok := parseInt(fl.Field().Bytes())
		return ok
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, ok := parseDate(fl.Field().Bytes())
		return ok
	})

	return &Validator{v: v}
}

// Validate returns Errors for a payload that fails its tags, or nil.
func (cv *Validator) Validate(i any) error {
	err := cv.v.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	errs := Errors{}
	for _, fe := range verrs {
		msg, ok := tagMessages[fe.Tag()]
		if !ok {
			msg = "Invalid value."
		}
		errs.add(fe.Field(), msg)
	}
	return errs
}

func parseDate(v []byte) (models.Date, bool) {
	s, ok := parseString(v)
	if !ok {
		return models.Date{}, false
	}
	d, err := models.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return models.Date{}, false
	}
	return d, true
}

