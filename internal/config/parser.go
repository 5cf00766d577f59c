package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	campuserrors "github.com/alexisbeaulieu97/campus/pkg/errors"
)

// EnvPrefix is prepended to every environment override, with dots in keys
// replaced by underscores: CAMPUS_TOAST_DURATION.
const EnvPrefix = "CAMPUS"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Defaults returns the built-in settings.
func Defaults() map[string]any {
	return map[string]any{
		"toast.duration":       5 * time.Second,
		"admin.username":       "admin",
		"admin.password":       "admin123",
		"registration.latency": 750 * time.Millisecond,
		"content.path":         "",
		"log.level":            "info",
		"log.human":            true,
		"log.file":             "",
	}
}

// Load resolves configuration from defaults, the optional YAML file at path,
// and CAMPUS_* environment variables, in increasing precedence.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, campuserrors.NewParseError(path, ErrorLine(err), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, campuserrors.NewParseError(path, 0, err)
	}
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ValidateConfig checks cfg against its struct tags. The first failing field
// is reported as a *errors.ValidationError.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return campuserrors.NewValidationError("config", "configuration is missing", nil)
	}
	return FirstValidationError(validatorInstance().Struct(cfg))
}

// FirstValidationError converts validator output into a
// *errors.ValidationError naming the first failing field.
func FirstValidationError(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return campuserrors.NewValidationError("", err.Error(), err)
	}
	first := fieldErrs[0]
	field := first.Field()
	if _, rest, ok := strings.Cut(first.Namespace(), "."); ok {
		field = rest
	}
	return campuserrors.NewValidationError(field, describe(first), err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt", "gte":
		return fmt.Sprintf("must be %s %s", map[string]string{"gt": ">", "gte": ">="}[fe.Tag()], fe.Param())
	case "email":
		return "must be a valid email address"
	case "log_level":
		return fmt.Sprintf("unknown log level %q", fe.Value())
	case "phone":
		return "must be a valid phone number"
	case "oneof":
		return "must be one of " + fe.Param()
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// ErrorLine pulls the line number out of a YAML decode error, or 0.
func ErrorLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
