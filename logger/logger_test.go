package logger

import "testing"

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" || cfg.Format != "console" || cfg.Output != "stdout" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestConfig_ApplyDefaults_KeepsExplicit(t *testing.T) {
	cfg := Config{Level: "debug", Format: "json", Output: "stderr"}
	cfg.ApplyDefaults()
	if cfg.Level != "debug" || cfg.Format != "json" || cfg.Output != "stderr" {
		t.Errorf("defaults overwrote explicit values: %+v", cfg)
	}
}

func TestFields(t *testing.T) {
	m := Fields("a", 1, "b", "two")
	if m["a"] != 1 || m["b"] != "two" {
		t.Errorf("unexpected map: %v", m)
	}
}

func TestFields_OddArgs(t *testing.T) {
	m := Fields("a", 1, "dangling")
	if len(m) != 1 {
		t.Errorf("expected dangling key dropped, got %v", m)
	}
}

func TestWithComponent(t *testing.T) {
	l := NewDefault().WithComponent("test")
	if l == nil {
		t.Fatal("nil logger")
	}
	// Must not panic.
	l.Debug("debug line", Fields("k", "v"))
}

func TestGetGlobalLogger_LazyInit(t *testing.T) {
	globalLogger = nil
	if GetGlobalLogger() == nil {
		t.Fatal("expected lazily created global logger")
	}
}
