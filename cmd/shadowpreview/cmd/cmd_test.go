package cmd

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// capture swaps stdout for a buffer for the duration of the test.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shadow.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}

func TestRender_WritesPNG(t *testing.T) {
	out := capture(t)
	cfg := writeConfig(t, "shadow:\n  radius: 0\n  size: 10\n  color: \"#FF000000\"\n")
	outPath := filepath.Join(t.TempDir(), "ring.png")

	err := run([]string{"render", "--config", cfg, "--width", "60", "--height=40", "--out", outPath})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out.String(), "ring.png (60x40)") {
		t.Errorf("unexpected output %q", out.String())
	}

	img := decodePNG(t, outPath)
	if got := img.Bounds().Size(); got != image.Pt(60, 40) {
		t.Fatalf("expected 60x40, got %v", got)
	}
	r, g, b, a := img.At(30, 20).RGBA()
	if a < 0xF000 || r < 0xF000 || g < 0xF000 || b < 0xF000 {
		t.Errorf("expected white content, got %v", img.At(30, 20))
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Errorf("expected a transparent outer corner, got alpha %d", a)
	}
	if _, _, _, a := img.At(30, 9).RGBA(); a == 0 {
		t.Errorf("expected the top band near the content to be painted")
	}
}

func TestRender_Background(t *testing.T) {
	capture(t)
	dir := t.TempDir()
	bgPath := filepath.Join(dir, "bg.png")
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, color.RGBA{R: 0xFF, A: 0xFF})
		}
	}
	f, err := os.Create(bgPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	out := filepath.Join(dir, "out.png")
	cfg := writeConfig(t, "canvas:\n  width: 80\n  height: 80\n")
	if err := run([]string{"render", "--config", cfg, "--background", bgPath, "--out", out}); err != nil {
		t.Fatalf("render: %v", err)
	}

	r, g, b, a := decodePNG(t, out).At(40, 40).RGBA()
	if a < 0xF000 || r < 0xF000 || g > 0x0FFF || b > 0x0FFF {
		t.Errorf("expected red content, got %v %v %v %v", r, g, b, a)
	}
}

func TestRender_Errors(t *testing.T) {
	capture(t)
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad fill", []string{"--config", writeConfig(t, "{}\n"), "--fill", "blue"}, "invalid fill"},
		{"bad color", []string{"--config", writeConfig(t, "shadow:\n  color: nope\n")}, "invalid color"},
		{"missing background", []string{"--config", writeConfig(t, "{}\n"), "--background", filepath.Join(dir, "none.png")}, "failed to open background"},
		{"missing config", []string{"--config", filepath.Join(dir, "none.yaml")}, "failed to read"},
		{"too wide", []string{"--config", writeConfig(t, "canvas:\n  width: 10000\n")}, "exceeds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"render", "--out", filepath.Join(dir, "x.png")}, tt.args...)
			err := run(args)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestInspect_DefaultGeometry(t *testing.T) {
	out := capture(t)
	cfg := writeConfig(t, "shadow: {}\n")
	if err := run([]string{"inspect", "--config", cfg}); err != nil {
		t.Fatalf("inspect: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"Bounds:  [0 0 200 100]",
		"Content: [20 20 180 80]",
		"Padding: start=20 top=20 end=20 bottom=20",
		"[0 40 20 60]",
		"[40 0 160 20]",
		"[180 40 200 60]",
		"[40 80 160 100]",
		"[0 0 40 40]",
		"[160 60 200 100]",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in output:\n%s", want, text)
		}
	}
}

func TestInspect_HiddenSide(t *testing.T) {
	out := capture(t)
	cfg := writeConfig(t, "shadow:\n  show_top: false\n")
	if err := run([]string{"inspect", "--config", cfg, "--width", "120"}); err != nil {
		t.Fatalf("inspect: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "Content: [20 0 100 80]") {
		t.Errorf("expected content flush with the hidden top:\n%s", text)
	}
	if strings.Count(text, "false") < 3 {
		t.Errorf("expected the top edge and two top corners to be off:\n%s", text)
	}
}

func TestParsePreviewArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    previewOptions
		wantErr bool
	}{
		{"empty", nil, previewOptions{}, false},
		{"separate values", []string{"--width", "10", "--fill", "#FF00FF00"}, previewOptions{width: 10, fill: "#FF00FF00"}, false},
		{"inline values", []string{"--height=7", "--config=a.yaml"}, previewOptions{height: 7, configPath: "a.yaml"}, false},
		{"missing value", []string{"--width"}, previewOptions{}, true},
		{"not a number", []string{"--width", "wide"}, previewOptions{}, true},
		{"zero", []string{"--height", "0"}, previewOptions{}, true},
		{"too large", []string{"--height", "9000"}, previewOptions{}, true},
		{"unknown flag", []string{"--depth", "3"}, previewOptions{}, true},
		{"positional", []string{"shadow.yaml"}, previewOptions{}, true},
		{"not allowed", []string{"--out", "x.png"}, previewOptions{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePreviewArgs(tt.args, "config", "width", "height", "fill")
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestRun_Dispatch(t *testing.T) {
	out := capture(t)

	if err := run([]string{"version"}); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out.String(), "shadowpreview version "+Version) {
		t.Errorf("unexpected version output %q", out.String())
	}

	out.Reset()
	if err := run([]string{"render", "--help"}); err != nil {
		t.Fatalf("help: %v", err)
	}
	if !strings.Contains(out.String(), "shadowpreview render") {
		t.Errorf("expected render usage, got %q", out.String())
	}

	if err := run([]string{"paint"}); err == nil {
		t.Error("expected an error for an unknown command")
	}
}
