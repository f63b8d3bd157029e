package flags

import (
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FlagDescriptor describes a flag whose value is read through viper under
// ConfigKey. The type of Default selects the flag type; it must be a string,
// bool, float64 or time.Duration.
type FlagDescriptor struct {
	FlagName    string
	Shorthand   string
	ConfigKey   string
	Default     any
	Description string
}

// BindFlags registers each described flag on flagSet and binds it to its
// config key in v. Unset flags fall back to env and config file values, then
// to the flag default.
func BindFlags(v *viper.Viper, flagSet *pflag.FlagSet, flagDescriptors ...FlagDescriptor) error {
	for _, flagDesc := range flagDescriptors {
		switch defaultValue := flagDesc.Default.(type) {
		case string:
			flagSet.StringP(flagDesc.FlagName, flagDesc.Shorthand, defaultValue, flagDesc.Description)
		case bool:
			flagSet.BoolP(flagDesc.FlagName, flagDesc.Shorthand, defaultValue, flagDesc.Description)
		case float64:
			flagSet.Float64P(flagDesc.FlagName, flagDesc.Shorthand, defaultValue, flagDesc.Description)
		case time.Duration:
			flagSet.DurationP(flagDesc.FlagName, flagDesc.Shorthand, defaultValue, flagDesc.Description)
		default:
			return ErrFlagInvalidValue.Wrapf("flag %q: unsupported default type %T", flagDesc.FlagName, flagDesc.Default)
		}

		flag := flagSet.Lookup(flagDesc.FlagName)
		if flag == nil {
			return ErrFlagNotRegistered.Wrapf("flag %q", flagDesc.FlagName)
		}

		// Bind the flag to the respective config key in viper.
		if err := v.BindPFlag(flagDesc.ConfigKey, flag); err != nil {
			return err
		}
	}
	return nil
}
