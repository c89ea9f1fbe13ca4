package config

import (
	"fmt"
	"log"
	"sync"

	"github.com/Astemirdum/book-catalog/pkg/logger"
	jsoniter "github.com/json-iterator/go"
	"github.com/kelseyhightower/envconfig"
)

type Catalog struct {
	Name string `yaml:"name" envconfig:"CATALOG_NAME"`
	// StrictUpdate forbids changing availability through Update.
	StrictUpdate bool `yaml:"strictUpdate" envconfig:"CATALOG_STRICT_UPDATE"`
}

type Config struct {
	Catalog Catalog    `yaml:"catalog"`
	Log     logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment. Options are applied first, so env vars win.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var err error
		if cfg, err = load(ops...); err != nil {
			log.Fatal("NewConfig ", err)
		}
		printConfig(cfg)
	})

	return cfg
}

func load(ops ...Option) (*Config, error) {
	config := Config{
		Catalog: Catalog{Name: "catalog"},
	}
	for _, op := range ops {
		op(&config)
	}
	if err := envconfig.Process("", &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func printConfig(cfg *Config) {
	jscfg, _ := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
