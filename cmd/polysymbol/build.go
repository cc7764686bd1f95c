package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/OCAP2/polysymbol/internal/cache"
	"github.com/OCAP2/polysymbol/internal/config"
	"github.com/OCAP2/polysymbol/internal/geo"
	"github.com/OCAP2/polysymbol/internal/logging"
	intOtel "github.com/OCAP2/polysymbol/internal/otel"
	"github.com/OCAP2/polysymbol/pkg/symbol"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configFileHint = config.FileName
	meterName      = "github.com/OCAP2/polysymbol/cmd/polysymbol"
)

// newBuildCmd creates the "build" command.
func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build symbols for a list of direction points",
		Long: "Build reads direction points as JSON, builds one symbol per point with the selected factory " +
			"and writes the shapes as a GeoJSON FeatureCollection or one WKT geometry per line.",
		Args: cobra.NoArgs,
		RunE: runBuild,
	}

	cmd.Flags().String("points", "-", "JSON file of direction points, - for stdin")
	cmd.Flags().String("symbol", "", "Symbol kind: "+strings.Join(symbol.Kinds(), ", ")+" (required)")
	cmd.Flags().String("format", "geojson", "Output format: geojson or wkt")
	cmd.Flags().StringP("output", "o", "", "Output file; stdout when empty, gzip compressed when ending in .gz")
	cmd.Flags().Float64("zoom", 12, "Zoom level for the mercator projection")
	cmd.Flags().Float64Slice("zoom-levels", nil, "Build one layer per zoom level, e.g. 10,12,14; overrides --zoom")
	cmd.Flags().String("projection", "mercator", "Projection: mercator or planar")
	cmd.Flags().Int("workers", 4, "Number of concurrent symbol builders, 0 for unlimited")
	cmd.Flags().Bool("metrics", false, "Export symbol metrics to stderr")
	_ = cmd.MarkFlagRequired("symbol")

	// Bind flags to viper so they override the config file.
	_ = viper.BindPFlag("projection.zoom", cmd.Flags().Lookup("zoom"))
	_ = viper.BindPFlag("projection.type", cmd.Flags().Lookup("projection"))
	_ = viper.BindPFlag("workers", cmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("metrics.enabled", cmd.Flags().Lookup("metrics"))

	return cmd
}

// runBuild executes the build command.
func runBuild(cmd *cobra.Command, _ []string) error {
	start := time.Now()

	configDir, _ := cmd.Flags().GetString("config")
	if configDir == "" {
		config.SetDefaults()
	} else if err := config.Load(configDir); err != nil {
		return err
	}

	logs := logging.NewSlogManager()
	var logFile io.Writer
	if dir := config.GetString("logsDir"); dir != "" {
		f, err := logging.OpenLogFile(dir, appName, start)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		logFile = f
	}
	logs.Setup(cmd.ErrOrStderr(), logFile, config.GetString("logLevel"))
	logger := logs.Logger()

	kind, _ := cmd.Flags().GetString("symbol")
	format, _ := cmd.Flags().GetString("format")
	format = strings.ToLower(format)
	if format != formatGeoJSON && format != formatWKT {
		return fmt.Errorf("unknown output format %q", format)
	}

	factory, err := symbol.New(kind, config.GetSymbolOptions(kind))
	if err != nil {
		return err
	}

	pc := config.GetProjectionConfig()
	if _, err := newProjection(pc); err != nil {
		return err
	}
	zooms, _ := cmd.Flags().GetFloat64Slice("zoom-levels")
	if len(zooms) == 0 {
		zooms = []float64{pc.Zoom}
	}

	pointsPath, _ := cmd.Flags().GetString("points")
	data, err := readPoints(cmd, pointsPath)
	if err != nil {
		return err
	}
	points, err := geo.ParseDirectionPoints(data)
	if err != nil {
		return err
	}
	logger.Debug("Parsed direction points", "count", len(points), "source", pointsPath)

	mc := config.GetMetricsConfig()
	provider, err := intOtel.New(intOtel.Config{
		Enabled:     mc.Enabled,
		ServiceName: mc.ServiceName,
		Interval:    mc.Interval,
		Writer:      cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(cmd.Context()); err != nil {
			logger.Warn("Metrics shutdown failed", "error", err)
		}
	}()
	if provider.Enabled() {
		factory, err = symbol.Instrument(kind, factory, provider.Meter(meterName))
		if err != nil {
			return fmt.Errorf("failed to instrument factory: %w", err)
		}
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	workers := config.GetInt("workers")
	shapeCache := cache.NewShapeCache(factory.ZoomDependent())
	layers := make([]layer, 0, len(zooms))
	for _, zoom := range zooms {
		zpc := pc
		zpc.Zoom = zoom
		shapes, err := shapeCache.GetOrBuild(zoom, func() ([]symbol.Shape, error) {
			proj, err := newProjection(zpc)
			if err != nil {
				return nil, err
			}
			return symbol.BuildAll(ctx, factory, points, proj, workers)
		})
		if err != nil {
			logger.Error("Failed to build symbols", "kind", kind, "zoom", zoom, "error", err)
			return err
		}
		layers = append(layers, layer{zoom: zoom, shapes: shapes})
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if err := writeOutput(cmd.OutOrStdout(), outputPath, format, kind, factory.ZoomDependent(), layers); err != nil {
		return err
	}

	logger.Info("Built symbols",
		"kind", kind,
		"points", len(points),
		"zoomLevels", len(zooms),
		"cacheHits", shapeCache.Hits(),
		"projection", pc.Type,
		"zoomDependent", factory.ZoomDependent(),
		"workers", workers,
		"duration", time.Since(start),
	)
	return nil
}

// readPoints reads the points document from path, or from the command's
// input when path is "-".
func readPoints(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" || path == "" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read points from stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read points file: %w", err)
	}
	return data, nil
}

// newProjection builds the projection selected in the configuration.
func newProjection(pc config.ProjectionConfig) (symbol.Projection, error) {
	switch strings.ToLower(pc.Type) {
	case "mercator", "webmercator":
		return geo.WebMercator{Zoom: pc.Zoom, TileSize: pc.TileSize}, nil
	case "planar":
		return geo.Planar{PixelsPerUnit: pc.PixelsPerUnit}, nil
	default:
		return nil, fmt.Errorf("unknown projection type %q", pc.Type)
	}
}
