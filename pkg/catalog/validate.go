package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	providerNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_.-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("provider_name", func(fl validator.FieldLevel) bool {
			return providerNamePattern.MatchString(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

func validateDocument(doc Document, source string) error {
	if err := validatorInstance().Struct(doc); err != nil {
		return fmt.Errorf("catalog: file %s: %w", source, err)
	}
	return nil
}

// validateSchema checks that a property schema is a well-formed schema object.
func validateSchema(ctx context.Context, entry Entry) error {
	payload, err := json.Marshal(entry.Schema)
	if err != nil {
		return fmt.Errorf("catalog: provider %q (file %s): marshal schema: %w", entry.Name, entry.Source, err)
	}
	var schema openapi3.Schema
	if err := json.Unmarshal(payload, &schema); err != nil {
		return fmt.Errorf("catalog: provider %q (file %s): decode schema: %w", entry.Name, entry.Source, err)
	}
	if err := schema.Validate(ctx); err != nil {
		return fmt.Errorf("catalog: provider %q (file %s): invalid schema: %w", entry.Name, entry.Source, err)
	}
	return nil
}
