package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/frahmantamala/hr-portal/internal"
	"github.com/frahmantamala/hr-portal/internal/chat"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "HR"

var configDir string

var rootCmd = &cobra.Command{
	Use:   "hr-portal",
	Short: "HR Portal",
	Long:  `Internal HR administration: people, time off, payroll, projects and the assistant chat.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.read_header_timeout", 5*time.Second)
	v.SetDefault("http_server.read_timeout", 15*time.Second)
	v.SetDefault("http_server.write_timeout", 30*time.Second)
	v.SetDefault("http_server.idle_timeout", 60*time.Second)
	v.SetDefault("http_server.shutdown_timeout", 30*time.Second)

	v.SetDefault("database.driver", internal.DriverSQLite)
	v.SetDefault("database.source", "hr.db")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 30*time.Minute)
	v.SetDefault("database.conn_max_idle_time", 5*time.Minute)

	v.SetDefault("security.session_secret", "change-me-dev-secret-change-me-dev-secret")
	v.SetDefault("security.session_ttl", 24*time.Hour)
	v.SetDefault("security.secure_cookie", false)
	v.SetDefault("security.bcrypt_cost", 12)

	v.SetDefault("chat.model", chat.DefaultModel)
	v.SetDefault("chat.timeout", 20*time.Second)

	v.SetDefault("observability.metrics.enabled", true)
	v.SetDefault("observability.metrics.path", "/metrics")
	v.SetDefault("observability.logging.level", "info")
	v.SetDefault("observability.logging.format", "text")
}

// loadConfig layers defaults, an optional config.yml in path, a .env file and
// HR_* environment variables, in increasing priority.
func loadConfig(path string) (*internal.Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// the chat key keeps its conventional name
	if err := v.BindEnv("chat.api_key", "GEMINI_API_KEY", envPrefix+"_CHAT_API_KEY"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("chat.model", "GEMINI_MODEL", envPrefix+"_CHAT_MODEL"); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg internal.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("error validating config: %w", err)
	}

	return &cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", ".", "directory holding config.yml")

	rootCmd.AddCommand(httpServerCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(userCmd)
}
