package update

import "testing"

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("FOCUSFLOW_DATA_DIR", "/tmp/ff-test")
	t.Setenv("FOCUSFLOW_STORAGE", "sqlite")
	t.Setenv("FOCUSFLOW_DESKTOP_NOTIFICATIONS", "true")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.DataDir != "/tmp/ff-test" {
		t.Fatalf("DataDir = %q", cfg.DataDir)
	}
	if cfg.StorageBackend != "sqlite" {
		t.Fatalf("StorageBackend = %q", cfg.StorageBackend)
	}
	if !cfg.DesktopNotifications {
		t.Fatal("DesktopNotifications should be on")
	}
}

func TestRuntimeConfigIgnoresInvalidValues(t *testing.T) {
	t.Setenv("FOCUSFLOW_DATA_DIR", "")
	t.Setenv("FOCUSFLOW_STORAGE", "postgres")
	t.Setenv("FOCUSFLOW_DESKTOP_NOTIFICATIONS", "maybe")

	base := DefaultRuntimeConfig()
	cfg := RuntimeConfigFromEnv(base)
	if cfg.DataDir != base.DataDir {
		t.Fatalf("empty data dir should keep the default, got %q", cfg.DataDir)
	}
	if cfg.StorageBackend != "file" {
		t.Fatalf("unknown backend should keep file, got %q", cfg.StorageBackend)
	}
	if cfg.DesktopNotifications != base.DesktopNotifications {
		t.Fatal("unparsable bool should keep the default")
	}
}

func TestGetEnvBoolSpellings(t *testing.T) {
	cases := map[string]bool{
		"1": true, "true": true, "YES": true, "on": true,
		"0": false, "false": false, "No": false, "off": false,
	}
	for raw, want := range cases {
		t.Setenv("FOCUSFLOW_TEST_BOOL", raw)
		got, ok := getEnvBool("FOCUSFLOW_TEST_BOOL")
		if !ok {
			t.Fatalf("%q should be recognised", raw)
		}
		if got != want {
			t.Fatalf("%q = %v, want %v", raw, got, want)
		}
	}
}
