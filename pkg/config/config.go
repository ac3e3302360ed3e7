package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// GlobalCfg is loaded once at startup by Setup and read everywhere else.
var GlobalCfg *Config

type Config struct {
	Debug bool
	Mysql struct {
		Username string
		Password string
		Hostname string
		Port     int
		Database string
	}
	Server struct {
		Addr string
	}
	Jwt struct {
		Secret string
	}
	Cron struct {
		// shared secret expected as bearer token on /cron/dispatch
		Secret string
	}
	S3 struct {
		Endpoint  string
		Region    string
		Bucket    string
		AccessKey string
		SecretKey string
	}
}

// Setup reads .env (if present) then the environment into GlobalCfg.
func Setup() error {
	// a missing .env is fine, variables may come from the real environment
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Debug = getEnvBool("DEBUG", false)
	cfg.Mysql.Username = getEnv("MYSQL_USERNAME", "root")
	cfg.Mysql.Password = getEnv("MYSQL_PASSWORD", "")
	cfg.Mysql.Hostname = getEnv("MYSQL_HOSTNAME", "127.0.0.1")
	cfg.Mysql.Port = getEnvInt("MYSQL_PORT", 3306)
	cfg.Mysql.Database = getEnv("MYSQL_DATABASE", "assetdog")
	cfg.Server.Addr = getEnv("SERVER_ADDR", ":8088")
	cfg.Jwt.Secret = getEnv("JWT_SECRET", "")
	cfg.Cron.Secret = getEnv("CRON_SECRET", "")
	cfg.S3.Endpoint = getEnv("S3_ENDPOINT", "")
	cfg.S3.Region = getEnv("S3_REGION", "us-east-1")
	cfg.S3.Bucket = getEnv("S3_BUCKET", "assetdog-files")
	cfg.S3.AccessKey = getEnv("S3_ACCESS_KEY", "")
	cfg.S3.SecretKey = getEnv("S3_SECRET_KEY", "")

	GlobalCfg = cfg
	return nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getEnvBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
