package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetEnv(t *testing.T) {
	a := assert.New(t)
	const key = "CTS_TEST_SET_ENV"
	_, found := os.LookupEnv(key)
	a.False(found)

	restore1 := SetEnv(key, "memory")
	a.Equal("memory", os.Getenv(key))

	restore2 := SetEnv(key, "postgres")
	a.Equal("postgres", os.Getenv(key))

	restore2()
	a.Equal("memory", os.Getenv(key))

	restore1()
	_, found = os.LookupEnv(key)
	a.False(found, "an unset variable is unset again")
}

func TestGetenv(t *testing.T) {
	a := assert.New(t)
	const key = "CTS_TEST_GETENV"

	a.Equal("config.yaml", Getenv(key, "config.yaml"))

	restore := SetEnv(key, "")
	a.Equal("config.yaml", Getenv(key, "config.yaml"), "an empty value falls back to the default")
	restore()

	restore = SetEnv(key, "prod.yaml")
	defer restore()
	a.Equal("prod.yaml", Getenv(key, "config.yaml"))
}
