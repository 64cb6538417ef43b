package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var Conf *Config

type Config struct {
	Env            string
	AppName        string
	Build          string
	Debug          bool
	LogLevel       string
	LogFile        string // empty: stderr
	CurrencySymbol string
	RollbarToken   string // empty: rollbar disabled
}

func init() {
	conf, err := LoadConfig(".")
	if err != nil {
		log.Fatalf("core.LoadConfig: %v", err)
	}
	Conf = conf
}

// LoadConfig reads the configuration from the environment, optionally seeded by
// `<workDir>/config/.env.<env>`.
func LoadConfig(workDir string) (*Config, error) {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", false)
	v.SetDefault("appName", "Education Centre System")
	v.SetDefault("build", "dev")
	v.SetDefault("logLevel", "warn")
	v.SetDefault("logFile", "")
	v.SetDefault("currencySymbol", "$")
	v.SetDefault("rollbarToken", "")

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, PROD
	if env == "" {
		env = "DEV"
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(workDir, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "godotenv(%s)", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "os.Stat(%s)", dotEnvPath)
	}
	v.AutomaticEnv()

	return &Config{
		Env:            env,
		AppName:        v.GetString("appName"),
		Build:          v.GetString("build"),
		Debug:          v.GetBool("debug"),
		LogLevel:       v.GetString("logLevel"),
		LogFile:        v.GetString("logFile"),
		CurrencySymbol: v.GetString("currencySymbol"),
		RollbarToken:   v.GetString("rollbarToken"),
	}, nil
}
