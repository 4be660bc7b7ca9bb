package bench

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/guilt/gsm/pkg/common"
	_ "github.com/guilt/gsm/pkg/hashers"
	"github.com/guilt/gsm/pkg/lifecycle"
)

func counting(total *int64) common.ProgressFunc {
	return func(desc string, n int64) common.FileLifecycle {
		return common.FileLifecycle{
			OnStart: func(int64) {},
			OnChunk: func(n int64) { atomic.AddInt64(total, n) },
			OnEnd:   func() {},
		}
	}
}

func TestRun(t *testing.T) {
	cfg := Config{
		Algorithms: []string{"sm3", "sm3-lanes", "sm4", "sm4-gmsm", "blake3"},
		Iterations: 1000,
		Size:       100,
		Workers:    4,
	}
	var chunks int64
	results, err := Run(context.Background(), cfg, counting(&chunks))
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(cfg.Algorithms) {
		t.Fatalf("got %d results", len(results))
	}
	for i, r := range results {
		if r.Name != cfg.Algorithms[i] {
			t.Errorf("result %d is %s, want %s", i, r.Name, cfg.Algorithms[i])
		}
		if r.Ops != cfg.Iterations {
			t.Errorf("%s: %d ops, want %d", r.Name, r.Ops, cfg.Iterations)
		}
		if r.Elapsed <= 0 {
			t.Errorf("%s: elapsed %v", r.Name, r.Elapsed)
		}
		if !strings.HasPrefix(r.String(), r.Name) {
			t.Errorf("String() = %q", r.String())
		}
	}
	if results[0].Bytes != int64(cfg.Iterations*cfg.Size) {
		t.Errorf("sm3 bytes = %d", results[0].Bytes)
	}
	if results[2].Bytes != int64(cfg.Iterations*16) {
		t.Errorf("sm4 bytes = %d", results[2].Bytes)
	}
	if chunks != int64(cfg.Iterations*len(cfg.Algorithms)) {
		t.Errorf("progress saw %d ops", chunks)
	}
}

func TestRunDefaultLifecycle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Iterations = 10
	if _, err := Run(context.Background(), cfg, lifecycle.MakeDefaultLifecycle); err != nil {
		t.Fatal(err)
	}
}

func TestRunUnknownAlgorithm(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Algorithms = []string{"sm3", "rot13"}
	cfg.Iterations = 1
	results, err := Run(context.Background(), cfg, lifecycle.MakeDefaultLifecycle)
	if err == nil || !strings.Contains(err.Error(), "rot13") {
		t.Fatalf("err = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected the sm3 result before the failure, got %d", len(results))
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := DefaultConfig()
	cfg.Iterations = 100000
	if _, err := Run(ctx, cfg, lifecycle.MakeDefaultLifecycle); err == nil {
		t.Fatal("expected error from canceled context")
	}
}

func TestResultRates(t *testing.T) {
	var r Result
	if r.OpsPerSec() != 0 || r.MBPerSec() != 0 {
		t.Fatal("zero elapsed must give zero rates")
	}
	r = Result{Ops: 100, Bytes: 2e6, Elapsed: 1e9}
	if r.OpsPerSec() != 100 || r.MBPerSec() != 2 {
		t.Fatalf("rates = %v, %v", r.OpsPerSec(), r.MBPerSec())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
	}{
		{"no algorithms", func(c *Config) { c.Algorithms = nil }},
		{"zero iterations", func(c *Config) { c.Iterations = 0 }},
		{"negative size", func(c *Config) { c.Size = -1 }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatal(err)
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.edit(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: accepted", tt.name)
		}
	}
}

func TestParseJSONConfig(t *testing.T) {
	path := writeTempConfig(t, `{"algorithms":["sm3","sha256"],"iterations":50,"workers":2}`)
	cfg := DefaultConfig()
	if err := ParseJSONConfig(&cfg, path); err != nil {
		t.Fatalf("ParseJSONConfig returned error: %v", err)
	}
	if len(cfg.Algorithms) != 2 || cfg.Algorithms[1] != "sha256" {
		t.Fatalf("unexpected algorithms: %+v", cfg)
	}
	if cfg.Iterations != 50 || cfg.Workers != 2 || cfg.Size != DefaultConfig().Size {
		t.Fatalf("unexpected field values: %+v", cfg)
	}
}

func TestParseJSONConfigErrors(t *testing.T) {
	var cfg Config
	if err := ParseJSONConfig(&cfg, filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if err := ParseJSONConfig(&cfg, writeTempConfig(t, `{"iterations":`)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}
