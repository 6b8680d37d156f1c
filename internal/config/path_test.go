package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	if got := ExpandPath("~/data"); got != filepath.Join(home, "data") {
		t.Errorf("ExpandPath(~/data) = %q", got)
	}
	if got := ExpandPath("~"); got != home {
		t.Errorf("ExpandPath(~) = %q", got)
	}
	if got := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(\"\") = %q", got)
	}

	t.Setenv("DHANFLOW_TEST_DIR", "/tmp/df")
	if got := ExpandPath("$DHANFLOW_TEST_DIR/state"); got != "/tmp/df/state" {
		t.Errorf("ExpandPath with env = %q", got)
	}
}

func TestDefaultDataDir_HonorsXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	if got := DefaultDataDir(); got != filepath.Join("/tmp/xdg", "dhanflow") {
		t.Errorf("DefaultDataDir() = %q", got)
	}

	t.Setenv("XDG_DATA_HOME", "")
	if got := DefaultDataDir(); !strings.HasSuffix(got, "dhanflow") && got != "dhanflow-data" {
		t.Errorf("DefaultDataDir() = %q", got)
	}
}
