package service

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	os.Setenv("ENVIRONMENT", "test")
	os.Setenv("PLATFORM_TREASURY_ACCOUNT", "0.0.9999")
	os.Setenv("SHARE_TOKEN_ID", "0.0.5555")
	os.Exit(m.Run())
}
