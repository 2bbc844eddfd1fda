package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MONGO_URI", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_PRETTY", "")

	cfg := Load()

	if cfg.Port != "3000" {
		t.Errorf("Port = %q, want 3000", cfg.Port)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.DBName != "studypal" {
		t.Errorf("DBName = %q, want studypal", cfg.DBName)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.LogPretty {
		t.Error("LogPretty = true, want false")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("DB_NAME", "studypal_test")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "true")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.MongoURI != "mongodb://db:27017" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.DBName != "studypal_test" {
		t.Errorf("DBName = %q", cfg.DBName)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if !cfg.LogPretty {
		t.Error("LogPretty = false, want true")
	}
}

func TestLoad_BadBoolFallsBack(t *testing.T) {
	t.Setenv("LOG_PRETTY", "not-a-bool")

	if cfg := Load(); cfg.LogPretty {
		t.Error("LogPretty = true, want default false on unparseable value")
	}
}
