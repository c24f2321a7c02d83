package internal

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Metadata drivers.
const (
	DriverNone   = "none"
	DriverSQLite = "sqlite"
	DriverBadger = "badger"
)

type Config struct {
	Host                     string        `env:"HOST,default=0.0.0.0" validate:"required"`
	Port                     int           `env:"PORT,required=true" validate:"min=1,max=65535"`
	HealthPort               int           `env:"HEALTH_PORT,required=true" validate:"min=1,max=65535,nefield=Port"`
	LogLevel                 string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	ServerName               string        `env:"SERVER_NAME,required=true" validate:"required"`
	CaptureRoot              string        `env:"CAPTURE_ROOT,required=true" validate:"required"`
	MinRepairWaitTime        time.Duration `env:"MIN_REPAIR_WAIT_TIME,default=1s" validate:"gte=0"`
	ReconnectOnUnknownReason bool          `env:"RECONNECT_ON_UNKNOWN_REASON,default=true"`
	CommandBufferSize        int           `env:"COMMAND_BUFFER_SIZE,default=1024" validate:"min=1"`
	PersistenceBufferSize    int           `env:"PERSISTENCE_BUFFER_SIZE,default=256" validate:"min=1"`
	PersistenceTimeout       time.Duration `env:"PERSISTENCE_TIMEOUT,default=5s" validate:"gt=0"`
	PlaybackBufferSize       int           `env:"PLAYBACK_BUFFER_SIZE,default=16" validate:"min=1"`
	ConnectionBufferSize     int           `env:"CONNECTION_BUFFER_SIZE,default=256" validate:"min=1"`
	WriteTimeout             time.Duration `env:"WRITE_TIMEOUT,default=10s" validate:"gt=0"`
	PingTimeout              time.Duration `env:"PING_TIMEOUT,default=60s" validate:"gte=0"`
	ReadLimit                int64         `env:"READ_LIMIT,default=1048576" validate:"min=0"`
	StatsInterval            time.Duration `env:"STATS_INTERVAL,default=30s" validate:"gt=0"`
	RestartInterval          time.Duration `env:"RESTART_INTERVAL,default=1s" validate:"gt=0"`
	MetadataDriver           string        `env:"METADATA_DRIVER,default=none" validate:"oneof=none sqlite badger"`
	SQLitePath               string        `env:"SQLITE_PATH" validate:"required_if=MetadataDriver sqlite"`
	SQLitePoolSize           int           `env:"SQLITE_POOL_SIZE,default=4" validate:"min=1"`
	BadgerFilepath           string        `env:"BADGER_FILEPATH" validate:"required_if=MetadataDriver badger"`
}

// LoadConfig reads the optional .env files, then the environment, and
// validates the result.
func LoadConfig(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}
