package config

import (
	"io/ioutil"

	yaml "gopkg.in/yaml.v3"
)

type Config struct {
	// Feed is the url of the feed to lint
	Feed string
	// Agent is the user agent used when fetching and checked against robots.txt
	Agent string
	// Concurrency many entries are linted in parallel
	Concurrency int
	// Advice includes non binding findings in the report
	Advice bool
	// Skip drops findings whose message contains one of the given strings
	Skip []string
}

func Load(yamlBytes []byte) (conf *Config, err error) {
	conf = &Config{
		Agent:       "foomo-atomlint",
		Concurrency: 2,
		Advice:      true,
	}
	errUnmarshal := yaml.Unmarshal(yamlBytes, conf)
	if errUnmarshal != nil {
		return nil, errUnmarshal
	}
	if conf.Concurrency < 1 {
		conf.Concurrency = 1
	}
	return conf, nil
}

func Get(filename string) (conf *Config, err error) {
	yamlBytes, errRead := ioutil.ReadFile(filename)
	if errRead != nil {
		return nil, errRead
	}
	return Load(yamlBytes)
}
