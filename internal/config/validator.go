package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	sumerrors "github.com/alexisbeaulieu97/sumcalc/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		_ = v.RegisterValidation("state_path", func(fl validator.FieldLevel) bool {
			return isStatePath(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema validation on resolved settings.
func Validate(s *Settings) error {
	if s == nil {
		return sumerrors.NewValidationError("settings", "settings are nil", nil)
	}

	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s (allowed: %s)", msg, ve.Param())
		}
		return sumerrors.NewValidationError(field, msg, err)
	}

	return sumerrors.NewValidationError("settings", err.Error(), err)
}

// yamlishFieldName drops the root struct name: "Settings.log.level" becomes
// "log.level".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}

// isStatePath accepts syntactically usable file paths without touching the
// filesystem.
func isStatePath(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}
	if strings.ContainsRune(path, '\x00') {
		return false
	}
	return !strings.HasSuffix(path, "/") && !strings.HasSuffix(path, string(filepath.Separator))
}
