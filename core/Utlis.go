package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const PropertiesName = "pong"

// GameProperties is the runtime setup read from pong.properties. Gameplay
// constants are deliberately absent.
type GameProperties struct {
	CanvasWidth  float64
	CanvasHeight float64

	// canvas units covered by one terminal cell
	CellWidth  float64
	CellHeight float64

	CanvasLeftCol int
	CanvasTopRow  int

	TickInterval time.Duration

	Background string
	Foreground string
}

// OffsetTop is the canvas' vertical offset from the top of the terminal, in canvas units.
func (p GameProperties) OffsetTop() float64 {
	return float64(p.CanvasTopRow) * p.CellHeight
}

func setGameDefaults(v *viper.Viper) {
	v.SetDefault("canvasWidth", 300)
	v.SetDefault("canvasHeight", 150)
	v.SetDefault("cellWidth", 3)
	v.SetDefault("cellHeight", 6)
	v.SetDefault("canvasLeftCol", 1)
	v.SetDefault("canvasTopRow", 1)
	v.SetDefault("tickMillis", int(TickInterval/time.Millisecond))
	v.SetDefault("background", "black")
	v.SetDefault("foreground", "white")
}

func propertiesName(env string) string {
	if env == "" {
		return PropertiesName
	}
	return fmt.Sprintf("%s-%s", PropertiesName, env)
}

// ReadGameProperties loads pong.properties (or pong-<env>.properties) from
// ./properties or ./, or configFile when given. A missing file in the search
// path leaves the defaults in place; a missing explicit file is an error.
func ReadGameProperties(v *viper.Viper, env, configFile string) (GameProperties, error) {
	setGameDefaults(v)
	v.SetEnvPrefix("PONG")
	v.AutomaticEnv()
	v.SetConfigType("properties")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(propertiesName(env))
		v.AddConfigPath("./properties")
		v.AddConfigPath("./")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return GameProperties{}, fmt.Errorf("read game properties: %w", err)
		}
	}

	p := GameProperties{
		CanvasWidth:   cast.ToFloat64(v.Get("canvasWidth")),
		CanvasHeight:  cast.ToFloat64(v.Get("canvasHeight")),
		CellWidth:     cast.ToFloat64(v.Get("cellWidth")),
		CellHeight:    cast.ToFloat64(v.Get("cellHeight")),
		CanvasLeftCol: cast.ToInt(v.Get("canvasLeftCol")),
		CanvasTopRow:  cast.ToInt(v.Get("canvasTopRow")),
		TickInterval:  time.Duration(cast.ToInt(v.Get("tickMillis"))) * time.Millisecond,
		Background:    cast.ToString(v.Get("background")),
		Foreground:    cast.ToString(v.Get("foreground")),
	}

	if err := p.validate(); err != nil {
		return GameProperties{}, err
	}
	return p, nil
}

func (p GameProperties) validate() error {
	if p.CanvasWidth <= 0 || p.CanvasHeight <= 0 {
		return fmt.Errorf("%w: got %vx%v", ErrInvalidCanvas, p.CanvasWidth, p.CanvasHeight)
	}
	if p.CellWidth <= 0 || p.CellHeight <= 0 {
		return fmt.Errorf("cell size must be positive: got %vx%v", p.CellWidth, p.CellHeight)
	}
	if p.CanvasLeftCol < 0 || p.CanvasTopRow < 0 {
		return fmt.Errorf("canvas offset must not be negative: got col %d row %d", p.CanvasLeftCol, p.CanvasTopRow)
	}
	if p.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive: got %v", p.TickInterval)
	}
	return nil
}
