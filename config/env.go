package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type (
	AppConfig struct {
		Name        string `mapstructure:"name"`
		Version     string `mapstructure:"version"`
		Port        int    `mapstructure:"port"`
		Environment string `mapstructure:"environment"`
		PathPrefix  string `mapstructure:"path_prefix"` // Optional, can be used to set a base path for the application
	}

	LoggerConfig struct {
		Level       string `mapstructure:"level"`
		Format      string `mapstructure:"format"`
		FilePath    string `mapstructure:"filepath"`
		MaxSize     int    `mapstructure:"max_size"`
		MaxAge      int    `mapstructure:"max_age"`
		MaxBackups  int    `mapstructure:"max_backups"`
		Compress    bool   `mapstructure:"compress"`
		LocalTime   bool   `mapstructure:"localTime"`
		Environment string
	}

	MongoConfig struct {
		URI            string `mapstructure:"uri"`
		Database       string `mapstructure:"database"`
		AuthSource     string `mapstructure:"authSource"`
		Username       string `mapstructure:"username"`
		Password       string `mapstructure:"password"`
		ConnectTimeout int    `mapstructure:"connect_timeout"`
		MaxPoolSize    uint64 `mapstructure:"max_pool_size"`
		MinPoolSize    uint64 `mapstructure:"min_pool_size"`
		SocketTimeout  int    `mapstructure:"socket_timeout"`
	}

	RedisConfig struct {
		Enabled    bool   `mapstructure:"enabled"`
		Type       string `mapstructure:"type"` // NORMAL or SENTINEL
		Addrs      string `mapstructure:"addrs"`
		Password   string `mapstructure:"password"`
		MasterName string `mapstructure:"master_name"`
		TTL        int    `mapstructure:"ttl"` // default content cache TTL in seconds
	}

	JWTConfig struct {
		Secret      string `mapstructure:"secret"`
		ExpiryHours int    `mapstructure:"expiry_hours"`
	}

	AIConfig struct {
		Enabled    bool   `mapstructure:"enabled"`
		APIKey     string `mapstructure:"api_key"`
		Model      string `mapstructure:"model"`
		ImageModel string `mapstructure:"image_model"`
		BaseURL    string `mapstructure:"base_url"`
	}

	GithubConfig struct {
		Username string `mapstructure:"username"`
		Token    string `mapstructure:"token"`
	}

	MetricsConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	CORSConfig struct {
		Enabled          bool     `mapstructure:"enabled"`
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	}
)

type Env struct {
	AppConfig     AppConfig     `mapstructure:"app"`
	LoggerConfig  LoggerConfig  `mapstructure:"logging"`
	MongoConfig   MongoConfig   `mapstructure:"mongo"`
	RedisConfig   RedisConfig   `mapstructure:"redis"`
	JWTConfig     JWTConfig     `mapstructure:"jwt"`
	AIConfig      AIConfig      `mapstructure:"ai"`
	GithubConfig  GithubConfig  `mapstructure:"github"`
	MetricsConfig MetricsConfig `mapstructure:"metrics"`
	CORSConfig    CORSConfig    `mapstructure:"cors"`
}

var env Env
var envLoaded bool

func loadEnv() Env {
	// Set up viper to read the config.yaml file
	viper.SetConfigName("config")   // Config file name without extension
	viper.SetConfigType("yaml")     // Config file type
	viper.AddConfigPath("./config") // Look for the config file in the current directory

	/*
	   AutomaticEnv will check for an environment variable any time a viper.Get request is made.
	   It will apply the following rules.
	       It will check for an environment variable with a name matching the key uppercased and prefixed with the EnvPrefix if set.
	*/
	viper.AutomaticEnv()
	viper.SetEnvPrefix("env") // will be uppercased automatically
	viper.SetEnvKeyReplacer(
		strings.NewReplacer(".", "_"),
	) // this is useful e.g. want to use . in Get() calls, but environmental variables to use _ delimiters (e.g. app.port -> APP_PORT)

	err := viper.ReadInConfig() // Read the config file
	if err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}

	// Secrets come from the environment in deployed setups.
	viper.BindEnv("jwt.secret", "JWT_SECRET")
	viper.BindEnv("mongo.uri", "MONGODB_URI")
	viper.BindEnv("ai.api_key", "GEMINI_API_KEY")
	viper.BindEnv("github.token", "GITHUB_TOKEN")

	err = viper.Unmarshal(&env)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
	env.LoggerConfig.Environment = env.AppConfig.Environment // Set the logger environment from app config
	if env.AppConfig.Environment == "production" {
		env.LoggerConfig.Level = "info" // Default to info level in production
	}
	if env.JWTConfig.ExpiryHours <= 0 {
		env.JWTConfig.ExpiryHours = 24
	}

	printStartupConfig(&env)

	return env
}

func GetEnv() *Env {
	if envLoaded {
		return &env
	}
	env = loadEnv()
	envLoaded = true
	return &env
}

func printStartupConfig(env *Env) {
	line := strings.Repeat("=", 40)
	fmt.Println(line)
	fmt.Println("🚀 Application Configuration")
	fmt.Println(line)

	fmt.Printf("%-15s: %s\n", "App Name", env.AppConfig.Name)
	fmt.Printf("%-15s: %s\n", "Version", env.AppConfig.Version)
	fmt.Printf("%-15s: %s\n", "Environment", env.AppConfig.Environment)
	fmt.Printf("%-15s: %d\n", "Port", env.AppConfig.Port)
	fmt.Printf("%-15s: %s\n", "Log Level", env.LoggerConfig.Level)
	fmt.Printf("%-15s: %s\n", "Mongo DB", env.MongoConfig.Database)
	fmt.Printf("%-15s: %t\n", "JWT Secret Set", env.JWTConfig.Secret != "")
	fmt.Printf("%-15s: %t\n", "AI Enabled", env.AIConfig.Enabled)

	fmt.Println(line)
}
