package config

import (
	"gopkg.in/yaml.v3"
	"os"
)

const DefaultPage = 0
const DefaultSize = 40

type ServerConfig struct {
	Mode   string `yaml:"mode"`
	Scheme string `yaml:"scheme"`
	Domain string `yaml:"domain"`
	Port   int    `yaml:"port"`
}

type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

type RedisConfig struct {
	Addr string `yaml:"addr"`
	Pass string `yaml:"pass"`
}

type JaegerConfig struct {
	Sampler struct {
		Type  string  `yaml:"type"`
		Param float64 `yaml:"param"`
	} `yaml:"sampler"`
	Reporter struct {
		LogSpans           bool   `yaml:"log_spans"`
		LocalAgentHostPort string `yaml:"local_agent_host_port"`
	} `yaml:"reporter"`
}

type GrantConfig struct {
	StarterPackSize int      `yaml:"starter_pack_size"`
	MaxRetries      int      `yaml:"max_retries"`
	Founders        []string `yaml:"founders"`
}

type Config struct {
	ServiceName string `yaml:"service_name"`
	Secret      string `yaml:"secret"`

	Server ServerConfig `yaml:"server"`
	DB     *DBConfig    `yaml:"db"`
	Redis  RedisConfig  `yaml:"redis"`
	Jaeger JaegerConfig `yaml:"jaeger"`
	Grant  GrantConfig  `yaml:"grant"`
}

func MustLoad(path string) *Config {
	conf := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		panic("failed to read configuration file: " + err.Error())
	}

	if err = yaml.Unmarshal(data, conf); err != nil {
		panic("failed to parse configuration file: " + err.Error())
	}

	if conf.Grant.StarterPackSize == 0 {
		conf.Grant.StarterPackSize = 3
	}
	if conf.Grant.MaxRetries == 0 {
		conf.Grant.MaxRetries = 5
	}

	return conf
}
