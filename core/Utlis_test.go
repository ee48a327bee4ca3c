package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

func newTestViper(t *testing.T, files map[string]string) *viper.Viper {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		if err := afero.WriteFile(fs, name, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	v := viper.New()
	v.SetFs(fs)
	return v
}

func TestReadGamePropertiesDefaults(t *testing.T) {
	v := newTestViper(t, nil)

	p, err := ReadGameProperties(v, "", "")
	if err != nil {
		t.Fatalf("Expected defaults without a file, got %v", err)
	}
	if p != testProperties() {
		t.Errorf("Expected %+v, got %+v", testProperties(), p)
	}
}

func TestReadGamePropertiesFile(t *testing.T) {
	v := newTestViper(t, map[string]string{
		"/etc/pong/pong.properties": `
canvasWidth = 400
canvasHeight = 200
cellWidth = 4
cellHeight = 8
canvasLeftCol = 0
canvasTopRow = 2
tickMillis = 16
background = #101010
foreground = yellow
`,
	})

	p, err := ReadGameProperties(v, "", "/etc/pong/pong.properties")
	if err != nil {
		t.Fatalf("Failed to read properties: %v", err)
	}

	want := GameProperties{
		CanvasWidth:   400,
		CanvasHeight:  200,
		CellWidth:     4,
		CellHeight:    8,
		CanvasLeftCol: 0,
		CanvasTopRow:  2,
		TickInterval:  16 * time.Millisecond,
		Background:    "#101010",
		Foreground:    "yellow",
	}
	if p != want {
		t.Errorf("Expected %+v, got %+v", want, p)
	}
	if p.OffsetTop() != 16 {
		t.Errorf("Expected offset 16, got %v", p.OffsetTop())
	}
}

func TestReadGamePropertiesEnv(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	v := newTestViper(t, map[string]string{
		filepath.Join(wd, "properties", "pong-test.properties"): "canvasWidth = 200\n",
	})

	p, err := ReadGameProperties(v, "test", "")
	if err != nil {
		t.Fatalf("Failed to read properties: %v", err)
	}
	if p.CanvasWidth != 200 {
		t.Errorf("Expected width 200 from pong-test.properties, got %v", p.CanvasWidth)
	}
	if p.CanvasHeight != 150 {
		t.Errorf("Expected default height 150, got %v", p.CanvasHeight)
	}
}

func TestReadGamePropertiesMissingExplicitFile(t *testing.T) {
	v := newTestViper(t, nil)

	if _, err := ReadGameProperties(v, "", "/nowhere/pong.properties"); err == nil {
		t.Errorf("Expected an error for a missing file")
	}
}

func TestReadGamePropertiesInvalid(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantCanvas bool
	}{
		{"Zero width", "canvasWidth = 0\n", true},
		{"Negative height", "canvasHeight = -10\n", true},
		{"Zero cell", "cellHeight = 0\n", false},
		{"Negative offset", "canvasTopRow = -1\n", false},
		{"Zero tick", "tickMillis = 0\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestViper(t, map[string]string{"/cfg/pong.properties": tt.content})

			_, err := ReadGameProperties(v, "", "/cfg/pong.properties")
			if err == nil {
				t.Fatalf("Expected an error")
			}
			if errors.Is(err, ErrInvalidCanvas) != tt.wantCanvas {
				t.Errorf("Expected ErrInvalidCanvas %v, got %v", tt.wantCanvas, err)
			}
		})
	}
}
