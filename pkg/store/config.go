package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/tempo/pkg/datekey"
)

// Config supplies the store location and backend settings.
type Config interface {
	BasePath() string
	APIBase() string
	OffsetHours() int
}

// LoadConfig reads .tempo.yaml (or TEMPO_* environment variables) and falls
// back to sensible defaults: ~/.tempo.db, the local development backend, and
// the backend's UTC+8 offset.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.tempo.db")
	viper.SetDefault("api", "http://localhost:5000/api")
	viper.SetDefault("offset_hours", datekey.DefaultOffsetHours)
	viper.SetConfigName(".tempo") // .yaml is implicit
	viper.SetEnvPrefix("TEMPO")
	viper.AutomaticEnv()

	if override := os.Getenv("TEMPO_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:   path,
		API:    viper.GetString("api"),
		Offset: viper.GetInt("offset_hours"),
	}, nil
}

type fileConfig struct {
	Path   string `json:"path"`
	API    string `json:"api"`
	Offset int    `json:"offset_hours"`
}

func (f *fileConfig) BasePath() string { return f.Path }
func (f *fileConfig) APIBase() string  { return f.API }
func (f *fileConfig) OffsetHours() int { return f.Offset }
