package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	conf, err := Load(writeConfig(t, "chiwawa:\n  api_token: file-token\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if conf.Chiwawa.UrlTemplate != "https://{companyId}.chiwawa.one/api/public/v1/groups/{groupId}/messages" {
		t.Errorf("unexpected url template %s", conf.Chiwawa.UrlTemplate)
	}
	if conf.Chiwawa.Timeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %s", conf.Chiwawa.Timeout)
	}
	if conf.Reply.Mode != ReplyText {
		t.Errorf("expected reply mode text, got %s", conf.Reply.Mode)
	}
	if conf.Mongo.Enabled || conf.Amqp.Enabled {
		t.Error("mongo and amqp should be disabled by default")
	}
	if conf.Chiwawa.ApiToken != "file-token" {
		t.Errorf("expected file-token, got %s", conf.Chiwawa.ApiToken)
	}
}

func TestLoad_MongoWithoutAuth(t *testing.T) {
	conf, err := Load(writeConfig(t, "mongo:\n  enabled: true\n  user: \"\"\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if conf.Mongo.User != "" || conf.Mongo.Password != "" {
		t.Errorf("expected no mongo credentials, got %q / %q", conf.Mongo.User, conf.Mongo.Password)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("CHIWAWA_VALIDATION_TOKEN", "env-secret")
	t.Setenv("CHIWAWA_API_TOKEN", "env-token")

	conf, err := Load(writeConfig(t, "chiwawa:\n  api_token: file-token\n  validation_token: file-secret\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if conf.Chiwawa.ValidationToken != "env-secret" {
		t.Errorf("expected env-secret, got %s", conf.Chiwawa.ValidationToken)
	}
	if conf.Chiwawa.ApiToken != "env-token" {
		t.Errorf("expected env-token, got %s", conf.Chiwawa.ApiToken)
	}
}

func TestLoad_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("CHIWAWA_API_TOKEN", "only-env")

	conf, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if conf.Chiwawa.ApiToken != "only-env" {
		t.Errorf("expected only-env, got %s", conf.Chiwawa.ApiToken)
	}
	if conf.Listen.Port != "9100" {
		t.Errorf("expected default port 9100, got %s", conf.Listen.Port)
	}
}

func TestLoad_InvalidYaml(t *testing.T) {
	if _, err := Load(writeConfig(t, "chiwawa: [unclosed")); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}
