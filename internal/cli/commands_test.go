package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	return executeEnv(t, nil, stdin, args...)
}

// executeEnv is execute with extra environment variables set.
func executeEnv(t *testing.T, env map[string]string, stdin string, args ...string) (string, error) {
	t.Helper()

	for _, key := range []string{
		"CONTRASTCHECK_BACKDROP",
		"CONTRASTCHECK_SWATCHES",
		"CONTRASTCHECK_FORMAT",
		"CONTRASTCHECK_PREVIEW",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("NO_COLOR", "1")
	for key, value := range env {
		t.Setenv(key, value)
	}

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestCheckPath(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "defaults", args: []string{"check", "-f", "path"}, want: "/002244/0094f0/eef9ff\n"},
		{name: "named colours", args: []string{"check", "-f", "path", "/red/white/blue"}, want: "/ff0000/ffffff/0000ff\n"},
		{name: "invalid segment falls back", args: []string{"check", "-f", "path", "/zzz/000"}, want: "/002244/000000/eef9ff\n"},
		{name: "swatches kept", args: []string{"check", "-f", "path", "/000/fff/000/abc"}, want: "/000000/ffffff/000000/abc\n"},
		{name: "override", args: []string{"check", "-f", "path", "--background", "white"}, want: "/002244/0094f0/ffffff\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, "", tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCheckTable(t *testing.T) {
	out, err := execute(t, "", "check")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{
		"Control",
		"#0094f0",
		"4.95:1",
		"3.02:1",
		"14.96:1",
		"AAA",
		"73.8% (ok)",
		"64.4% (low)",
		"132% (ok)",
		"Background luminance: 0.93",
		"Presets: #002244 #0094F0 #EEF9FF",
		"Path: /002244/0094f0/eef9ff",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Note:") {
		t.Error("opaque colours should not print the alpha note")
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("output should not contain ANSI escapes when NO_COLOR is set")
	}
}

func TestCheckTranslucentControl(t *testing.T) {
	out, err := execute(t, "", "check", "--object", "rgba(0,148,240,0.5)")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{"8.62:1", "1.74:1", "fail", "rgba(0,148,240,0.5)", "Note: alpha"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCheckJSON(t *testing.T) {
	out, err := execute(t, "", "check", "-f", "json", "/000/fff/fff")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var report struct {
		TextOnObject struct {
			Ratio float64 `json:"ratio"`
			Grade string  `json:"grade"`
			SAPC  string  `json:"sapc"`
		} `json:"text_on_object"`
		ObjectOnBackground struct {
			Ratio   float64 `json:"ratio"`
			Grade   string  `json:"grade"`
			NonText bool    `json:"non_text"`
		} `json:"object_on_background"`
		Path string `json:"path"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}

	if report.TextOnObject.Ratio != 21 || report.TextOnObject.Grade != "AAA" || report.TextOnObject.SAPC != "145%" {
		t.Errorf("text_on_object = %+v", report.TextOnObject)
	}
	if report.ObjectOnBackground.Ratio != 1 || report.ObjectOnBackground.Grade != "fail" || !report.ObjectOnBackground.NonText {
		t.Errorf("object_on_background = %+v", report.ObjectOnBackground)
	}
	if report.Path != "/000000/ffffff/ffffff" {
		t.Errorf("path = %q", report.Path)
	}
}

func TestCheckErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "invalid colour flag", args: []string{"check", "--text", "notacolour"}},
		{name: "unsupported format", args: []string{"check", "-f", "xml"}},
		{name: "too many args", args: []string{"check", "/a", "/b"}},
		{name: "missing config", args: []string{"--config", "/nonexistent/contrastcheck.toml", "check"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, "", tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestCheckOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")

	out, err := execute(t, "", "check", "-f", "path", "-o", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "/002244/0094f0/eef9ff\n" {
		t.Errorf("file = %q", data)
	}
}

func TestCheckConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contrastcheck.toml")
	config := `format = "json"
swatches = ["#ff0000", "#002244"]
`
	if err := os.WriteFile(path, []byte(config), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "", "--config", path, "check", "--swatch", "white")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var report struct {
		Presets []string `json:"presets"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("config format not applied, output:\n%s", out)
	}
	want := []string{"#ff0000", "#002244", "#ffffff"}
	if strings.Join(report.Presets, " ") != strings.Join(want, " ") {
		t.Errorf("presets = %v, want %v", report.Presets, want)
	}

	// An explicit flag beats the config file.
	out, err = execute(t, "", "--config", path, "check", "-f", "path")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "/002244/0094f0/eef9ff\n" {
		t.Errorf("output = %q", out)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "defaults", args: []string{"presets"}, want: "#002244\n#0094F0\n#EEF9FF\n"},
		{name: "deduplicated", args: []string{"presets", "#FF0000", "ff0000", "red"}, want: "#ff0000\n"},
		{name: "invalid skipped", args: []string{"presets", "nope", "navy"}, want: "#000080\n"},
		{name: "rgb", args: []string{"presets", "-f", "rgb", "navy", "teal"}, want: "rgb(0,0,128)\nrgb(0,128,128)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, "", tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPresetsJSON(t *testing.T) {
	out, err := execute(t, "", "presets", "-f", "json", "black", "white")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var got struct {
		Count  int `json:"count"`
		Colors []struct {
			Hex string `json:"hex"`
		} `json:"colors"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.Count != 2 || got.Colors[0].Hex != "#000000" || got.Colors[1].Hex != "#ffffff" {
		t.Errorf("unexpected presets %+v", got)
	}

	if _, err := execute(t, "", "presets", "-f", "yaml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestExplore(t *testing.T) {
	input := strings.Join([]string{
		"undo",
		"text #000",
		"save",
		"bg navy",
		"presets",
		"undo",
		"undo",
		"save",
		"border red",
		"# comment",
		"",
		"quit",
		"save",
	}, "\n")

	out, err := execute(t, input, "explore", "/002244/0094f0/eef9ff/f00")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{
		"nothing to undo",
		"/000000/0094f0/eef9ff/f00",
		"#002244 #0094f0 #eef9ff #ff0000",
		"/002244/0094f0/eef9ff/f00",
		"error: unknown role",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Nothing after quit is processed.
	if strings.Contains(out, "#000080") {
		t.Error("edits should not change the presets")
	}
	if strings.Count(out, "/002244/0094f0/eef9ff") != 1 {
		t.Errorf("expected exactly one saved default path:\n%s", out)
	}
	if strings.Contains(out, "> ") {
		t.Error("prompt should not be printed for non-terminal input")
	}
}

func TestExploreShowAndEOF(t *testing.T) {
	out, err := execute(t, "show\nhelp\n", "explore", "/000/fff/fff")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{"21.00:1", "Path: /000000/ffffff/ffffff", "Commands:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(out, "contrastcheck version ") {
		t.Errorf("output = %q", out)
	}
}

func TestVersionIgnoresBrokenConfig(t *testing.T) {
	env := map[string]string{"CONTRASTCHECK_FORMAT": "xml"}

	out, err := executeEnv(t, env, "", "version")
	if err != nil {
		t.Fatalf("version should not load configuration, got %v", err)
	}
	if !strings.HasPrefix(out, "contrastcheck version ") {
		t.Errorf("output = %q", out)
	}

	if _, err := executeEnv(t, env, "", "check"); err == nil {
		t.Error("check should still reject an invalid format")
	}
}

func TestCheckSwatchesLine(t *testing.T) {
	out, err := execute(t, "", "check", "/000/fff/fff/ff0000")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "Swatches: ff0000") {
		t.Errorf("output missing swatches line:\n%s", out)
	}
}
