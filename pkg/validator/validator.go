package validator

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// CustomValidator is registered on echo and validates DTO structs against
// their `validate` tags. Error messages use the `label` tag of the failing
// field when it carries one.
type CustomValidator struct {
	validate *validator.Validate
}

func New() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})
	return &CustomValidator{validate: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validate.Struct(i); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			e := errs[0]
			return fmt.Errorf("field %s failed on rule %s", e.Field(), e.Tag())
		}
		return err
	}
	return nil
}
