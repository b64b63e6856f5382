package service

import (
	"os"
	"testing"

	"recycle-backend/config"
	"recycle-backend/internal/util"
)

func TestMain(m *testing.M) {
	util.InitLogger("error")
	config.AppConfig.JWTSecret = "test-secret"
	os.Exit(m.Run())
}
