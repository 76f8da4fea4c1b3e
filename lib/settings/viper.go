package settings

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// ReadConfig loads settings.json from the working directory, overridable
// through RICHNOTE_* environment variables. A missing config file is fine;
// defaults carry the application.
func ReadConfig(jsonStr string) (*Settings, error) {
	viper.SetConfigName("settings")
	viper.SetConfigType("json")

	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("richnote")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if jsonStr != "" {
		if err := viper.ReadConfig(strings.NewReader(jsonStr)); err != nil {
			return nil, err
		}
	} else {
		if err := viper.ReadInConfig(); err != nil {
			var configFileNotFoundError viper.ConfigFileNotFoundError
			if !errors.As(err, &configFileNotFoundError) {
				return nil, err
			}
		}
	}

	viper.SetDefault(IP, "127.0.0.1")
	viper.SetDefault(Port, "9002")

	viper.SetDefault(DataRoot, "var/documents")
	viper.SetDefault(ScratchDocument, "scratch")

	viper.SetDefault(DBSettingsFilename, "var/richnote.db")

	viper.SetDefault(TypographyScaleBase, 14.0)
	viper.SetDefault(TypographyScaleRatio, 1.25)
	viper.SetDefault(AccentColor, "#2e8b57")

	viper.SetDefault(Loglevel, "INFO")

	s := &Settings{
		IP:   viper.GetString(IP),
		Port: viper.GetString(Port),

		DataRoot:        viper.GetString(DataRoot),
		ScratchDocument: viper.GetString(ScratchDocument),

		DBSettings: &DBSettings{
			Filename: viper.GetString(DBSettingsFilename),
		},

		Typography: Typography{
			ScaleBase:  viper.GetFloat64(TypographyScaleBase),
			ScaleRatio: viper.GetFloat64(TypographyScaleRatio),
		},
		AccentColor: viper.GetString(AccentColor),

		LogLevel: viper.GetString(Loglevel),
	}

	return s, nil
}
