package handlers

import (
	"os"
	"strompris/internal/testutil"
	"testing"
)

func TestMain(m *testing.M) {
	testutil.Init()
	os.Exit(m.Run())
}
