package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/oroddlokken/selca/internal/config"
)

func runCheck(t *testing.T, configContent string) (string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "flameshot-helper.json")
	if err := os.WriteFile(path, []byte(configContent), 0644); err != nil {
		t.Fatal(err)
	}

	origPath := cfgPath
	defer func() { cfgPath = origPath }()
	cfgPath = path

	var buf bytes.Buffer
	checkCmd.SetOut(&buf)
	err := checkCmd.RunE(checkCmd, nil)
	return buf.String(), err
}

func TestCheck_LocalConfig(t *testing.T) {
	out, err := runCheck(t, `{"directory": "/tmp/shots", "fname": "%Y/%m/%d/%H%M%S.png"}`)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}

	if !bytes.Contains([]byte(out), []byte("SFTP:          disabled")) {
		t.Errorf("expected SFTP disabled line, got:\n%s", out)
	}
	if !bytes.Contains([]byte(out), []byte("Local path:    /tmp/shots/")) {
		t.Errorf("expected derived local path, got:\n%s", out)
	}
}

func TestCheck_SFTPConfig(t *testing.T) {
	out, err := runCheck(t, `{
		"directory": "/tmp/shots",
		"fname": "%Y/%m/%d/%H%M%S.png",
		"sftp": {"enabled": true, "host": "h", "user": "u", "key": "/k", "port": 22, "directory": "/srv/shots"}
	}`)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}

	if !bytes.Contains([]byte(out), []byte("Rsync target:  u@h:/srv/shots/")) {
		t.Errorf("expected rsync target line, got:\n%s", out)
	}
	if !bytes.Contains([]byte(out), []byte("URL:           (no baseurl configured)")) {
		t.Errorf("expected missing-baseurl line, got:\n%s", out)
	}
}

func TestCheck_MissingConfig(t *testing.T) {
	origPath := cfgPath
	defer func() { cfgPath = origPath }()
	cfgPath = filepath.Join(t.TempDir(), "nope.json")

	var buf bytes.Buffer
	checkCmd.SetOut(&buf)
	if err := checkCmd.RunE(checkCmd, nil); err == nil {
		t.Fatal("expected error for missing config, got nil")
	}
}

func TestDefaultConfigLocation(t *testing.T) {
	if got := rootCmd.PersistentFlags().Lookup("config").DefValue; got != config.DefaultLocation {
		t.Errorf("config flag default = %q, want %q", got, config.DefaultLocation)
	}
}
