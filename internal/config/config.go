package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress = "localhost:8080"
	defaultDataDir    = "data"
	defaultScalerPath = "artifacts/scaler.json"
	defaultModelPath  = "artifacts/model.json"
	defaultDriver     = "csv"
	defaultSQLitePath = "data/diascreen.db"
)

type Config struct {
	Env     string
	Server  server
	Storage storage
	Model   model
	Logger  logger
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type storage struct {
	// Driver выбирает реализацию хранилища: csv (таблицы-файлы) или sqlite.
	Driver     string `env:"STORAGE_DRIVER"`
	DataDir    string `env:"DATA_DIR"`
	SQLitePath string `env:"SQLITE_PATH"`
	// StrictIdentity включает проверку уникальности UserID при регистрации
	// и существования аккаунта при сохранении предсказания.
	StrictIdentity bool `env:"STRICT_IDENTITY"`
}

type model struct {
	ScalerPath string `env:"SCALER_PATH"`
	ModelPath  string `env:"MODEL_PATH"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// NewConfig читает конфигурацию из .env и переменных окружения.
func NewConfig() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("run_address", defaultRunAddress)
	viper.SetDefault("storage_driver", defaultDriver)
	viper.SetDefault("data_dir", defaultDataDir)
	viper.SetDefault("sqlite_path", defaultSQLitePath)
	viper.SetDefault("scaler_path", defaultScalerPath)
	viper.SetDefault("model_path", defaultModelPath)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("app_env", EnvLocal)

	config := Config{
		Env: viper.GetString("app_env"),
		Server: server{
			RunAddress: viper.GetString("run_address"),
		},
		Storage: storage{
			Driver:         viper.GetString("storage_driver"),
			DataDir:        viper.GetString("data_dir"),
			SQLitePath:     viper.GetString("sqlite_path"),
			StrictIdentity: viper.GetBool("strict_identity"),
		},
		Model: model{
			ScalerPath: viper.GetString("scaler_path"),
			ModelPath:  viper.GetString("model_path"),
		},
		Logger: logger{LogLevel: viper.GetString("log_level")},
	}

	return &config
}
