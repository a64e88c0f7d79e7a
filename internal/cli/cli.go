// Package cli binds command line flags to environment variables.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Opt is a single command-line option
type Opt struct {
	DestP   any // pointer to the destination
	Flag    string
	Default any
	Desc    string
}

// NewOpt creates a new command line option.
func NewOpt(destP any, flag string, dflt any, desc string) Opt {
	return Opt{
		DestP:   destP,
		Flag:    flag,
		Default: dflt,
		Desc:    desc,
	}
}

// NewViper returns a viper instance reading environment variables with the
// upper-case prefix, e.g. FLOWDUMP_LOG_LEVEL for the log-level flag.
func NewViper(prefix string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(strings.ToUpper(prefix))
	v.AutomaticEnv()
	// This normalizes "-" to an underscore in env names.
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	return v
}

// BindOptions adds opts to the persistent flags of cmd and registers them
// with v. Environment values are applied immediately; flags given on the
// command line override them when cobra parses.
func BindOptions(v *viper.Viper, cmd *cobra.Command, opts []Opt) error {
	fs := cmd.PersistentFlags()
	for _, o := range opts {
		switch destP := o.DestP.(type) {
		case *string:
			var d string
			if o.Default != nil {
				d = o.Default.(string)
			}
			fs.StringVar(destP, o.Flag, d, o.Desc)
			if err := bind(v, cmd, o.Flag); err != nil {
				return err
			}
			*destP = v.GetString(o.Flag)
		case *int:
			var d int
			if o.Default != nil {
				d = o.Default.(int)
			}
			fs.IntVar(destP, o.Flag, d, o.Desc)
			if err := bind(v, cmd, o.Flag); err != nil {
				return err
			}
			n, err := cast.ToIntE(v.Get(o.Flag))
			if err != nil {
				return fmt.Errorf("%s: %w", o.Flag, err)
			}
			*destP = n
		case *bool:
			var d bool
			if o.Default != nil {
				d = o.Default.(bool)
			}
			fs.BoolVar(destP, o.Flag, d, o.Desc)
			if err := bind(v, cmd, o.Flag); err != nil {
				return err
			}
			ok, err := cast.ToBoolE(v.Get(o.Flag))
			if err != nil {
				return fmt.Errorf("%s: %w", o.Flag, err)
			}
			*destP = ok
		case *zapcore.Level:
			var d zapcore.Level
			if o.Default != nil {
				d = o.Default.(zapcore.Level)
			}
			LevelVar(fs, destP, o.Flag, d, o.Desc)
			if err := bind(v, cmd, o.Flag); err != nil {
				return err
			}
			if s := v.GetString(o.Flag); s != "" {
				if err := (*levelValue)(destP).Set(s); err != nil {
					return fmt.Errorf("%s: %w", o.Flag, err)
				}
			}
		default:
			return fmt.Errorf("unknown destination type %T for flag %s", o.DestP, o.Flag)
		}
	}
	return nil
}

func bind(v *viper.Viper, cmd *cobra.Command, key string) error {
	return v.BindPFlag(key, cmd.PersistentFlags().Lookup(key))
}
