package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/OCAP2/polysymbol/pkg/symbol"
	"github.com/spf13/viper"
)

// FileName is the name of the JSON config file looked up in the config dir.
const FileName = "polysymbol.cfg.json"

// ProjectionConfig selects and parameterises the screen projection.
type ProjectionConfig struct {
	Type          string  `json:"type" mapstructure:"type"`
	Zoom          float64 `json:"zoom" mapstructure:"zoom"`
	TileSize      float64 `json:"tileSize" mapstructure:"tileSize"`
	PixelsPerUnit float64 `json:"pixelsPerUnit" mapstructure:"pixelsPerUnit"`
}

// MetricsConfig holds the symbol metrics exporter settings.
type MetricsConfig struct {
	Enabled     bool          `json:"enabled" mapstructure:"enabled"`
	ServiceName string        `json:"serviceName" mapstructure:"serviceName"`
	Interval    time.Duration `json:"interval" mapstructure:"interval"`
}

// SetDefaults registers the default value of every known key.
func SetDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "")
	viper.SetDefault("workers", 4)

	viper.SetDefault("projection.type", "mercator")
	viper.SetDefault("projection.zoom", 12)
	viper.SetDefault("projection.tileSize", 256)
	viper.SetDefault("projection.pixelsPerUnit", 1)

	viper.SetDefault("metrics.enabled", false)
	viper.SetDefault("metrics.serviceName", "polysymbol")
	viper.SetDefault("metrics.interval", "10s")

	dash := symbol.DefaultDashOptions()
	viper.SetDefault("symbols.dash.pixelSize", dash.PixelSize)

	arrow := symbol.DefaultArrowHeadOptions()
	viper.SetDefault("symbols.arrowHead.pixelSize", arrow.PixelSize)
	viper.SetDefault("symbols.arrowHead.headAngle", arrow.HeadAngle)
	viper.SetDefault("symbols.arrowHead.asPolygon", arrow.AsPolygon)

	viper.SetDefault("symbols.number.className", symbol.DefaultNumberOptions().ClassName)
}

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file.
func Load(configDir string) error {
	SetDefaults()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetProjectionConfig returns the projection settings.
func GetProjectionConfig() ProjectionConfig {
	return ProjectionConfig{
		Type:          viper.GetString("projection.type"),
		Zoom:          viper.GetFloat64("projection.zoom"),
		TileSize:      viper.GetFloat64("projection.tileSize"),
		PixelsPerUnit: viper.GetFloat64("projection.pixelsPerUnit"),
	}
}

// GetMetricsConfig returns the metrics exporter settings.
func GetMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled:     viper.GetBool("metrics.enabled"),
		ServiceName: viper.GetString("metrics.serviceName"),
		Interval:    viper.GetDuration("metrics.interval"),
	}
}

// GetSymbolOptions returns the option overrides stored under symbols.<kind>
// as a nested map, merged across defaults and the config file. The result
// is meant for symbol.New.
func GetSymbolOptions(kind string) map[string]any {
	prefix := "symbols." + strings.ToLower(kind) + "."
	out := make(map[string]any)
	for _, key := range viper.AllKeys() {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		setPath(out, strings.Split(strings.TrimPrefix(key, prefix), "."), viper.Get(key))
	}
	return out
}

func setPath(m map[string]any, path []string, value any) {
	for _, part := range path[:len(path)-1] {
		next, ok := m[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[part] = next
		}
		m = next
	}
	m[path[len(path)-1]] = value
}
