package services

import (
	"os"
	"testing"

	"zocker/config"
)

func TestMain(m *testing.M) {
	config.SetTestConfig(config.NewTestConfig())
	os.Exit(m.Run())
}
