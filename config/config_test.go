package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	confComplete = `
---
feed: https://www.bestbytes.de/feed.xml
agent: bestbytes-atomlint
concurrency: 4
advice: false
skip:
  - link-rel-alternate
...
`
	confMinimal = `
---
feed: https://www.bestbytes.de/feed.xml
...
`
)

func TestLoad(t *testing.T) {
	cnf, errCnf := Load([]byte(confComplete))
	assert.NoError(t, errCnf)
	assert.Equal(t, "https://www.bestbytes.de/feed.xml", cnf.Feed)
	assert.Equal(t, "bestbytes-atomlint", cnf.Agent)
	assert.Equal(t, 4, cnf.Concurrency)
	assert.False(t, cnf.Advice)
	assert.Equal(t, []string{"link-rel-alternate"}, cnf.Skip)

	cnf, errCnf = Load([]byte(confMinimal))
	assert.NoError(t, errCnf)
	assert.Equal(t, "https://www.bestbytes.de/feed.xml", cnf.Feed)
	assert.Equal(t, "foomo-atomlint", cnf.Agent)
	assert.Equal(t, 2, cnf.Concurrency)
	assert.True(t, cnf.Advice)
}

func TestLoadEmpty(t *testing.T) {
	cnf, errCnf := Load(nil)
	assert.NoError(t, errCnf)
	assert.Equal(t, 2, cnf.Concurrency)
	assert.True(t, cnf.Advice)
	assert.Equal(t, "", cnf.Feed)
}
