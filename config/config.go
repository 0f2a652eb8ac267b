// Package config registers every setting with viper and loads vidrock.toml.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/vidrock-cli/vidrock/constant"
	"github.com/vidrock-cli/vidrock/filesystem"
	"github.com/vidrock-cli/vidrock/where"
)

// EnvKeyReplacer maps a key such as embed.base to the EMBED_BASE part of VIDROCK_EMBED_BASE.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup applies defaults, binds the environment and reads the config file if there is one.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	err := viper.ReadInConfig()
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s.toml: %w", constant.App, err)
	}
	return nil
}
