// Package common provides configuration management, error helpers and HTTP
// endpoint utilities shared by the AML link service and its tools. It includes
// support for YAML configuration files, environment variable overrides, CORS
// setup, health endpoints and PostgreSQL connection pooling.
// nolint:all
package common

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"
)

// PrintSplash displays the service name banner on startup.
func PrintSplash() {
	log.Printf(`
	 ____        ____                _    __  __ _       _     _       _    
	| __ )  __ _/ ___| _   _ __  __ / \  |  \/  | |     | |   (_)_ __ | | __
	|  _ \ / _' \___ \| | | |\ \/ // _ \ | |\/| | |     | |   | | '_ \| |/ /
	| |_) | (_| |___) | |_| | >  </ ___ \| |  | | |___  | |___| | | | |   < 
	|____/ \__,_|____/ \__, |/_/\_/_/   \_\_|  |_|_____| |_____|_|_| |_|_|\_\
	                   |___/                                                
	`)
}

// Config represents the complete configuration of the AML link service.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" json:"server"`
	CorsConfig  CorsConfig        `mapstructure:"cors" json:"cors"`
	Persistence PersistenceConfig `mapstructure:"persistence" json:"persistence"`
	FileStore   FileStoreConfig   `mapstructure:"filestore" json:"filestore"`
	AML         AMLConfig         `mapstructure:"aml" json:"aml"`
	Swagger     SwaggerConfig     `mapstructure:"swagger" json:"swagger"`
}

// ServerConfig contains HTTP server configuration parameters.
type ServerConfig struct {
	Host        string `mapstructure:"host" json:"host"`
	Port        int    `mapstructure:"port" json:"port"`               // HTTP server port (default: 5080)
	ContextPath string `mapstructure:"contextPath" json:"contextPath"` // Base path for all endpoints
}

// CorsConfig contains Cross-Origin Resource Sharing (CORS) policy settings.
type CorsConfig struct {
	AllowedOrigins   []string `mapstructure:"allowedOrigins" json:"allowedOrigins"`
	AllowedMethods   []string `mapstructure:"allowedMethods" json:"allowedMethods"`
	AllowedHeaders   []string `mapstructure:"allowedHeaders" json:"allowedHeaders"`
	AllowCredentials bool     `mapstructure:"allowCredentials" json:"allowCredentials"`
}

// PersistenceConfig selects and configures the submodel store.
type PersistenceConfig struct {
	Backend  string         `mapstructure:"backend" json:"backend"` // memory | postgres | mongodb
	Postgres PostgresConfig `mapstructure:"postgres" json:"postgres"`
	MongoDB  MongoDBConfig  `mapstructure:"mongodb" json:"mongodb"`
}

// PostgresConfig contains PostgreSQL database connection parameters.
type PostgresConfig struct {
	Host                   string `mapstructure:"host" json:"host"`
	Port                   int    `mapstructure:"port" json:"port"`
	User                   string `mapstructure:"user" json:"user"`
	Password               string `mapstructure:"password" json:"password"`
	DBName                 string `mapstructure:"dbname" json:"dbname"`
	MaxOpenConnections     int    `mapstructure:"maxOpenConnections" json:"maxOpenConnections"`
	MaxIdleConnections     int    `mapstructure:"maxIdleConnections" json:"maxIdleConnections"`
	ConnMaxLifetimeMinutes int    `mapstructure:"connMaxLifetimeMinutes" json:"connMaxLifetimeMinutes"`
}

// DSN returns the lib/pq connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable", p.User, p.Password, p.Host, p.Port, p.DBName)
}

// MongoDBConfig contains MongoDB connection parameters.
type MongoDBConfig struct {
	URI        string `mapstructure:"uri" json:"uri"`
	Database   string `mapstructure:"database" json:"database"`
	Collection string `mapstructure:"collection" json:"collection"`
}

// FileStoreConfig selects where imported AML files are kept.
type FileStoreConfig struct {
	Backend string        `mapstructure:"backend" json:"backend"` // local | s3
	Local   LocalFSConfig `mapstructure:"local" json:"local"`
	S3      S3Config      `mapstructure:"s3" json:"s3"`
}

// LocalFSConfig roots the local file store.
type LocalFSConfig struct {
	Root string `mapstructure:"root" json:"root"`
}

// S3Config contains the S3 compatible object store settings.
type S3Config struct {
	Bucket       string `mapstructure:"bucket" json:"bucket"`
	Region       string `mapstructure:"region" json:"region"`
	Endpoint     string `mapstructure:"endpoint" json:"endpoint"`
	AccessKey    string `mapstructure:"accessKey" json:"accessKey"`
	SecretKey    string `mapstructure:"secretKey" json:"secretKey"`
	UsePathStyle bool   `mapstructure:"usePathStyle" json:"usePathStyle"`
}

// AMLConfig holds the AutomationML linking options.
type AMLConfig struct {
	HostName           string `mapstructure:"hostName" json:"hostName"`
	TemplateIDSubmodel string `mapstructure:"templateIdSubmodel" json:"templateIdSubmodel"`
	TemplatePath       string `mapstructure:"templatePath" json:"templatePath"`   // overrides the embedded generator template
	FileDirectory      string `mapstructure:"fileDirectory" json:"fileDirectory"` // store-relative directory of imported files
}

// SwaggerConfig controls the OpenAPI endpoints.
type SwaggerConfig struct {
	Enabled      bool   `mapstructure:"enabled" json:"enabled"`
	UIPath       string `mapstructure:"uiPath" json:"uiPath"`
	SpecPath     string `mapstructure:"specPath" json:"specPath"`
	ContactName  string `mapstructure:"contactName" json:"contactName"`
	ContactEmail string `mapstructure:"contactEmail" json:"contactEmail"`
	ContactURL   string `mapstructure:"contactUrl" json:"contactUrl"`
}

// LoadConfig loads the configuration from YAML files and environment variables.
//
// Precedence, highest first: environment variables, configuration file,
// defaults. Environment variables use underscore notation, e.g.
// PERSISTENCE_BACKEND for persistence.backend.
//
// Example:
//
//	config, err := LoadConfig("config/amllink.yaml")
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		log.Printf("📁 Loading config from file: %s", configPath)
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		log.Println("📁 No config file provided — loading from environment variables only")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	log.Println("✅ Configuration loaded successfully")
	PrintConfiguration(cfg)
	return cfg, nil
}

// setDefaults lets the service run locally without any configuration file:
// in-memory submodels, files under ./data, the embedded generator template.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5080)
	v.SetDefault("server.contextPath", "")

	v.SetDefault("cors.allowedOrigins", []string{"*"})
	v.SetDefault("cors.allowedMethods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowedHeaders", []string{"*"})
	v.SetDefault("cors.allowCredentials", true)

	v.SetDefault("persistence.backend", "memory")
	v.SetDefault("persistence.postgres.host", "db")
	v.SetDefault("persistence.postgres.port", 5432)
	v.SetDefault("persistence.postgres.user", "admin")
	v.SetDefault("persistence.postgres.password", "admin123")
	v.SetDefault("persistence.postgres.dbname", "basyxTestDB")
	v.SetDefault("persistence.postgres.maxOpenConnections", 50)
	v.SetDefault("persistence.postgres.maxIdleConnections", 50)
	v.SetDefault("persistence.postgres.connMaxLifetimeMinutes", 5)
	v.SetDefault("persistence.mongodb.uri", "mongodb://localhost:27017")
	v.SetDefault("persistence.mongodb.database", "basyx")
	v.SetDefault("persistence.mongodb.collection", "amlsubmodels")

	v.SetDefault("filestore.backend", "local")
	v.SetDefault("filestore.local.root", "./data")
	v.SetDefault("filestore.s3.region", "us-east-1")
	v.SetDefault("filestore.s3.usePathStyle", true)

	v.SetDefault("aml.hostName", DefaultHostName)
	v.SetDefault("aml.templateIdSubmodel", DefaultTemplateIDSubmodel)
	v.SetDefault("aml.templatePath", "")
	v.SetDefault("aml.fileDirectory", "/aasx/files")

	v.SetDefault("swagger.enabled", true)
	v.SetDefault("swagger.uiPath", "/swagger")
	v.SetDefault("swagger.specPath", "/api-docs/openapi.yaml")
}

// PrintConfiguration prints the configuration as JSON with credentials redacted.
func PrintConfiguration(cfg *Config) {
	cfgCopy := *cfg

	if cfg.Persistence.Postgres.Host != "" {
		cfgCopy.Persistence.Postgres.Host = "****"
		cfgCopy.Persistence.Postgres.User = "****"
		cfgCopy.Persistence.Postgres.Password = "****"
	}
	if cfg.Persistence.MongoDB.URI != "" {
		cfgCopy.Persistence.MongoDB.URI = "****"
	}
	if cfg.FileStore.S3.AccessKey != "" || cfg.FileStore.S3.SecretKey != "" {
		cfgCopy.FileStore.S3.AccessKey = "****"
		cfgCopy.FileStore.S3.SecretKey = "****"
	}

	configJSON, err := json.MarshalIndent(cfgCopy, "", "  ")
	if err != nil {
		log.Printf("Unable to marshal configuration to JSON: %v", err)
		return
	}

	log.Printf("📜 Loaded configuration:\n%s", string(configJSON))
}

// AddCors installs the configured CORS policy on the router.
func AddCors(r *chi.Mux, config *Config) {
	c := cors.New(cors.Options{
		AllowedOrigins:   config.CorsConfig.AllowedOrigins,
		AllowedMethods:   config.CorsConfig.AllowedMethods,
		AllowedHeaders:   config.CorsConfig.AllowedHeaders,
		AllowCredentials: config.CorsConfig.AllowCredentials,
	})
	r.Use(c.Handler)
}
