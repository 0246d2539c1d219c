package configloader

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/fixlayer/fixlayer/pkg/config"
)

// validate performs struct tag validation on configurations.
//
//nolint:gochecknoglobals // Validator instances are designed to be cached.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a resolved configuration for consistency. It covers
// both struct tag constraints and semantic rules the tags cannot express.
func Validate(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("field %s: value %v fails constraint %q",
				fe.Namespace(), fe.Value(), fe.Tag())
		}
		return err
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		return fmt.Errorf("unknown output format %q (expected text or json)", cfg.Format)
	}

	if cfg.Jobs < 0 {
		return fmt.Errorf("jobs must be non-negative, got %d", cfg.Jobs)
	}

	return nil
}
