package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Address            string
		DebugHost          string
		ShutdownTimeout    time.Duration
		JWTExpirationDelta time.Duration
		DisableReqLogs     bool
	}

	StorageConfig struct {
		Engine     string // memory, sqlite, postgres, pgx, mysql
		Path       string // sqlite only
		Host       string
		Port       string
		Name       string
		User       string
		Password   string
		DisableTLS bool
	}

	ExportConfig struct {
		Sink      string // fs, s3
		Dir       string
		Bucket    string
		Region    string
		Endpoint  string
		PathStyle bool
		Schedule  string // cron spec; empty disables scheduled exports
	}

	Config struct {
		AppName      string
		Env          string
		Build        string
		Debug        bool
		TestMode     bool
		SecretKey    string
		RollbarToken string

		Server  ServerConfig
		Storage StorageConfig
		Export  ExportConfig
	}
)

// Address returns the "host:port" of the storage server.
func (sc StorageConfig) Address() string {
	if sc.Port == "" {
		return sc.Host
	}
	return sc.Host + ":" + sc.Port
}

func setDefaults(v *viper.Viper) {
	v.SetTypeByDefaultValue(true)
	v.SetDefault("appName", "Elimu")
	v.SetDefault("build", "develop")
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("secretKey", "k3n1a-cbc)8q$+x=dz&uoxh2(h!x)#*c2(#yg4h^$cegm2emy")
	v.SetDefault("rollbarToken", "")

	v.SetDefault("serverAddress", ":8000")
	v.SetDefault("serverDebugHost", ":4000")
	v.SetDefault("serverShutdownTimeout", 5*time.Second)
	v.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	v.SetDefault("disableReqLogs", false)

	v.SetDefault("storageEngine", "sqlite")
	v.SetDefault("storagePath", filepath.Join("var", "elimu.db"))
	v.SetDefault("storageHost", "localhost")
	v.SetDefault("storagePort", "5432")
	v.SetDefault("storageName", "elimu")
	v.SetDefault("storageUser", "")
	v.SetDefault("storagePassword", "")
	v.SetDefault("storageDisableTLS", true)

	v.SetDefault("exportSink", "fs")
	v.SetDefault("exportDir", filepath.Join("var", "exports"))
	v.SetDefault("exportBucket", "")
	v.SetDefault("exportRegion", "us-east-1")
	v.SetDefault("exportEndpoint", "")
	v.SetDefault("exportPathStyle", false)
	v.SetDefault("exportSchedule", "")
}

// NewConfig loads the configuration for the current environment.
// ENV selects the environment (DEV by default, TEST, QA, PROD) and prefixes every variable, e.g. PROD_STORAGEENGINE.
func NewConfig() *Config {
	v := viper.New()
	setDefaults(v)

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
		v.SetDefault("storageEngine", "memory")
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	return &Config{
		AppName:      v.GetString("appName"),
		Env:          env,
		Build:        v.GetString("build"),
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		SecretKey:    v.GetString("secretKey"),
		RollbarToken: v.GetString("rollbarToken"),
		Server: ServerConfig{
			Address:            v.GetString("serverAddress"),
			DebugHost:          v.GetString("serverDebugHost"),
			ShutdownTimeout:    v.GetDuration("serverShutdownTimeout"),
			JWTExpirationDelta: v.GetDuration("jwtExpirationDelta"),
			DisableReqLogs:     v.GetBool("disableReqLogs"),
		},
		Storage: StorageConfig{
			Engine:     strings.ToLower(v.GetString("storageEngine")),
			Path:       v.GetString("storagePath"),
			Host:       v.GetString("storageHost"),
			Port:       v.GetString("storagePort"),
			Name:       v.GetString("storageName"),
			User:       v.GetString("storageUser"),
			Password:   v.GetString("storagePassword"),
			DisableTLS: v.GetBool("storageDisableTLS"),
		},
		Export: ExportConfig{
			Sink:      strings.ToLower(v.GetString("exportSink")),
			Dir:       v.GetString("exportDir"),
			Bucket:    v.GetString("exportBucket"),
			Region:    v.GetString("exportRegion"),
			Endpoint:  v.GetString("exportEndpoint"),
			PathStyle: v.GetBool("exportPathStyle"),
			Schedule:  v.GetString("exportSchedule"),
		},
	}
}

// NewTestConfig returns the configuration used by tests: in-memory storage, no request logs.
func NewTestConfig() *Config {
	return &Config{
		AppName:   "Elimu",
		Env:       "TEST",
		Build:     "test",
		TestMode:  true,
		SecretKey: "test-secret",
		Server: ServerConfig{
			ShutdownTimeout:    time.Second,
			JWTExpirationDelta: time.Hour,
			DisableReqLogs:     true,
		},
		Storage: StorageConfig{Engine: "memory"},
		Export:  ExportConfig{Sink: "fs"},
	}
}
