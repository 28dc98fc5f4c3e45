package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	HTTP    HTTPConfig    `yaml:"http"`
	Mongo   MongoConfig   `yaml:"mongo"`
	Kafka   KafkaConfig   `yaml:"kafka"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

type MongoConfig struct {
	URI    string `yaml:"uri"`
	DBName string `yaml:"db_name"`
}

// KafkaConfig configures blog event publishing. An empty bootstrap_servers
// value disables publishing entirely.
type KafkaConfig struct {
	BootstrapServers string `yaml:"bootstrap_servers"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// GetBasePath locates the project root by walking up from the working
// directory until config.yaml is found.
func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
