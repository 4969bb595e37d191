package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the session server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// API holds the storefront API connection details.
	API APIConfig `mapstructure:",squash"`

	// Cloudinary holds the asset upload credentials.
	Cloudinary CloudinaryConfig `mapstructure:",squash"`

	// Checkout holds the checkout pricing rules.
	Checkout CheckoutConfig `mapstructure:",squash"`
}

// APIConfig holds the credentials for the storefront API.
type APIConfig struct {
	// BaseURL is the base URL of the storefront API.
	BaseURL string `mapstructure:"API_BASE_URL" required:"true"`
	// SessionToken is the bearer token attached to every request.
	SessionToken string `mapstructure:"API_SESSION_TOKEN"`
	// TimeoutSeconds bounds each request.
	TimeoutSeconds int `mapstructure:"API_TIMEOUT_SECONDS" default:"10"`
}

// Timeout returns the request timeout as a duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CloudinaryConfig holds the unsigned upload credentials for the asset host.
// Both fields are checked at upload time, not at load time, so the client can
// run without admin features configured.
type CloudinaryConfig struct {
	// CloudName is the Cloudinary account identifier.
	CloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	// UploadPreset is the unsigned upload preset name.
	UploadPreset string `mapstructure:"CLOUDINARY_UPLOAD_PRESET"`
}

// CheckoutConfig holds the delivery pricing rules.
type CheckoutConfig struct {
	// FreeDeliveryThreshold is the subtotal at which delivery becomes free.
	FreeDeliveryThreshold float64 `mapstructure:"FREE_DELIVERY_THRESHOLD" default:"150"`
	// DeliveryFee is the flat fee charged below the threshold.
	DeliveryFee float64 `mapstructure:"DELIVERY_FEE" default:"40"`
	// AdminEmail receives the new-order notification.
	AdminEmail string `mapstructure:"CHECKOUT_ADMIN_EMAIL"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
