package shared

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func assertFileContains(t *testing.T, path, want string) {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	if !strings.Contains(string(content), want) {
		t.Errorf("expected %s to contain %q, got %q", path, want, string(content))
	}
}

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./roster.db" {
			t.Errorf("expected database path ./roster.db, got %s", config.Database.Path)
		}

		if config.Database.MaxOpenConns != 1 {
			t.Errorf("expected max_open_conns 1, got %d", config.Database.MaxOpenConns)
		}

		if config.Logging.Level != "info" {
			t.Errorf("expected log level info, got %s", config.Logging.Level)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		if config.Database.Path != DefaultConfig().Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[database]
path = "/custom/path.db"
max_open_conns = 4

[logging]
level = "debug"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}
		if config.Database.MaxOpenConns != 4 {
			t.Errorf("expected max_open_conns 4, got %d", config.Database.MaxOpenConns)
		}
		if config.Database.MaxIdleConns != 1 {
			t.Errorf("expected omitted max_idle_conns to keep default 1, got %d", config.Database.MaxIdleConns)
		}
		if config.Logging.Level != "debug" {
			t.Errorf("expected log level debug, got %s", config.Logging.Level)
		}
	})

	t.Run("LoadConfig invalid TOML", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[database\npath = "), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("SaveConfig round trip", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		config := DefaultConfig()
		config.Database.Path = "/tmp/saved.db"

		if err := SaveConfig(configPath, config); err != nil {
			t.Fatalf("failed to save config: %v", err)
		}

		loaded, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load saved config: %v", err)
		}
		if loaded.Database.Path != "/tmp/saved.db" {
			t.Errorf("expected saved path, got %s", loaded.Database.Path)
		}
	})

	t.Run("ResolveConfig", func(t *testing.T) {
		t.Run("missing file uses defaults", func(t *testing.T) {
			config, err := ResolveConfig(filepath.Join(t.TempDir(), "absent.toml"))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if config.Database.Path != "./roster.db" {
				t.Errorf("expected default path, got %s", config.Database.Path)
			}
		})

		t.Run("environment overrides", func(t *testing.T) {
			t.Setenv(EnvDatabasePath, "/env/roster.db")
			t.Setenv(EnvLogLevel, "warn")

			config, err := ResolveConfig("")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if config.Database.Path != "/env/roster.db" {
				t.Errorf("expected env path, got %s", config.Database.Path)
			}
			if config.Logging.Level != "warn" {
				t.Errorf("expected env level, got %s", config.Logging.Level)
			}
		})
	})

	t.Run("LoggingConfig.FilePath", func(t *testing.T) {
		tc := []struct {
			name string
			file string
			want string
		}{
			{name: "configured", file: "/var/log/roster.log", want: "/var/log/roster.log"},
			{name: "blank falls back to default", file: "", want: DefaultLogFile},
			{name: "whitespace falls back to default", file: "   ", want: DefaultLogFile},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				if got := (LoggingConfig{File: tt.file}).FilePath(); got != tt.want {
					t.Errorf("FilePath() = %q, want %q", got, tt.want)
				}
			})
		}
	})

	t.Run("LoadEnvFile", func(t *testing.T) {
		t.Run("missing file is ignored", func(t *testing.T) {
			if err := LoadEnvFile(filepath.Join(t.TempDir(), ".env")); err != nil {
				t.Fatalf("expected no error for missing env file, got %v", err)
			}
		})

		t.Run("loads variables", func(t *testing.T) {
			envPath := filepath.Join(t.TempDir(), ".env")
			if err := os.WriteFile(envPath, []byte(EnvDatabasePath+"=/dotenv/roster.db\n"), 0644); err != nil {
				t.Fatalf("failed to write env file: %v", err)
			}
			t.Setenv(EnvDatabasePath, "")
			os.Unsetenv(EnvDatabasePath)

			if err := LoadEnvFile(envPath); err != nil {
				t.Fatalf("failed to load env file: %v", err)
			}
			if got := os.Getenv(EnvDatabasePath); got != "/dotenv/roster.db" {
				t.Errorf("expected variable from env file, got %q", got)
			}
		})
	})
}
