package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ant-colony/config"
	"ant-colony/game/types"

	"gopkg.in/yaml.v3"
)

const smallConfig = `simulation:
  width: 40
  height: 30
  home_size: 2
  ant_count: 20
  seed: 7
logging:
  level: warn
`

// execute runs the root command in a scratch directory
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	if err := os.WriteFile(config.DefaultFile, []byte(smallConfig), 0644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestHeadlessReport(t *testing.T) {
	out, _, err := execute(t, "headless", "--ticks", "50", "--food", "5,5", "--food", "30,20", "--terrain", "10,10")
	if err != nil {
		t.Fatalf("headless: %v", err)
	}

	var report headlessReport
	if err := yaml.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("report is not YAML: %v\n%s", err, out)
	}
	if report.RunID == "" {
		t.Error("missing run_id")
	}
	if report.Seed != 7 || report.Ticks != 50 || report.Stats.Tick != 50 {
		t.Errorf("report = %+v", report)
	}
	if report.Stats.FoodCells == 0 && report.Stats.FoodPickedUp == 0 {
		t.Errorf("food placement lost: %+v", report.Stats)
	}
}

func TestHeadlessIsDeterministic(t *testing.T) {
	run := func() headlessReport {
		out, _, err := execute(t, "headless", "--ticks", "100", "--food", "8,8", "--seed", "3")
		if err != nil {
			t.Fatalf("headless: %v", err)
		}
		var r headlessReport
		if err := yaml.Unmarshal([]byte(out), &r); err != nil {
			t.Fatal(err)
		}
		return r
	}
	a, b := run(), run()
	if a.Stats != b.Stats {
		t.Fatalf("same seed diverged:\n%+v\n%+v", a.Stats, b.Stats)
	}
	if a.RunID == b.RunID {
		t.Error("run ids should differ between runs")
	}
}

func TestHeadlessRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"negative ticks", []string{"headless", "--ticks", "-1"}},
		{"bad food point", []string{"headless", "--food", "5"}},
		{"bad terrain point", []string{"headless", "--terrain", "a,b"}},
		{"bad log level", []string{"headless", "--log-level", "loud"}},
		{"negative workers", []string{"headless", "--workers", "-3"}},
		{"missing config file", []string{"headless", "--config", "nope.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := execute(t, tt.args...); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestConfigCommand(t *testing.T) {
	out, _, err := execute(t, "config", "--ants", "99", "--brush", "2")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	var cfg config.Config
	if err := yaml.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("config output is not YAML: %v", err)
	}
	if cfg.Simulation.Width != 40 || cfg.Simulation.AntCount != 99 || cfg.Simulation.BrushRadius != 2 {
		t.Errorf("effective config = %+v", cfg.Simulation)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("log level = %q", cfg.Logging.Level)
	}
}

func TestConfigCommandJSON(t *testing.T) {
	out, _, err := execute(t, "config", "--json")
	if err != nil {
		t.Fatalf("config --json: %v", err)
	}
	var cfg config.Config
	if err := json.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("config output is not JSON: %v", err)
	}
	if cfg.Simulation.Seed != 7 {
		t.Errorf("seed = %d", cfg.Simulation.Seed)
	}
}

func TestLogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "antsim.log")
	_, stderr, err := execute(t, "headless", "--ticks", "1", "--log-level", "info", "--log-file", logPath)
	if err != nil {
		t.Fatalf("headless: %v", err)
	}
	if strings.Contains(stderr, "simulation created") {
		t.Error("logs went to stderr despite --log-file")
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "headless run finished") {
		t.Errorf("log file missing entries:\n%s", data)
	}
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		want    types.Point
		wantErr bool
	}{
		{"3,4", types.Point{X: 3, Y: 4}, false},
		{" 10 , 0 ", types.Point{X: 10, Y: 0}, false},
		{"-1,2", types.Point{X: -1, Y: 2}, false},
		{"3", types.Point{}, true},
		{"x,4", types.Point{}, true},
		{"3,", types.Point{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePoint(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parsePoint(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parsePoint(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
