package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"employeehub/internal/domain"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// report json field names
	val.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = val.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		_, ok := Role(fl.Field().String())
		return ok
	})
	return val
}

// Struct validates s by its `validate` tags and returns a readable error.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// Role accepts the stored role values, including the empty (unset) role.
func Role(s string) (string, bool) {
	s = strings.TrimSpace(s)
	switch s {
	case "", domain.RoleAdmin, domain.RoleHR, domain.RoleEmployee:
		return s, true
	}
	return "", false
}
