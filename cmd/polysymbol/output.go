package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/OCAP2/polysymbol/pkg/symbol"
	geom "github.com/peterstace/simplefeatures/geom"
)

const (
	formatGeoJSON = "geojson"
	formatWKT     = "wkt"
)

// layer is the set of shapes built for one zoom level.
type layer struct {
	zoom   float64
	shapes []symbol.Shape
}

// writeOutput writes the layers to stdout, or to path when set. A .gz path is
// gzip compressed.
func writeOutput(stdout io.Writer, path, format, kind string, zoomDependent bool, layers []layer) error {
	if path == "" {
		return writeShapes(stdout, format, kind, zoomDependent, layers)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if !strings.HasSuffix(path, ".gz") {
		if err := writeShapes(f, format, kind, zoomDependent, layers); err != nil {
			return err
		}
		return f.Close()
	}

	gzWriter := gzip.NewWriter(f)
	if err := writeShapes(gzWriter, format, kind, zoomDependent, layers); err != nil {
		_ = gzWriter.Close()
		return err
	}
	if err := gzWriter.Close(); err != nil {
		return fmt.Errorf("error writing to gzip: %w", err)
	}
	return f.Close()
}

func writeShapes(w io.Writer, format, kind string, zoomDependent bool, layers []layer) error {
	switch format {
	case formatWKT:
		return writeWKT(w, layers)
	default:
		return writeGeoJSON(w, kind, zoomDependent, layers)
	}
}

// writeGeoJSON writes every layer into a single FeatureCollection. Feature
// ids count up across layers; the index property is the 1-based point index.
func writeGeoJSON(w io.Writer, kind string, zoomDependent bool, layers []layer) error {
	fc := make(geom.GeoJSONFeatureCollection, 0)
	for _, l := range layers {
		for i, s := range l.shapes {
			props := featureProperties(kind, zoomDependent, i+1, s)
			props["zoom"] = l.zoom
			fc = append(fc, geom.GeoJSONFeature{
				Geometry:   s.Geometry,
				ID:         len(fc) + 1,
				Properties: props,
			})
		}
	}
	if err := json.NewEncoder(w).Encode(fc); err != nil {
		return fmt.Errorf("error encoding GeoJSON: %w", err)
	}
	return nil
}

func featureProperties(kind string, zoomDependent bool, index int, s symbol.Shape) map[string]any {
	props := map[string]any{
		"kind":          kind,
		"shape":         s.Kind.String(),
		"index":         index,
		"zoomDependent": zoomDependent,
	}
	if s.Kind == symbol.KindMarker {
		props["style"] = s.Marker
	} else {
		props["style"] = s.Path
	}
	if s.Icon != nil {
		props["icon"] = s.Icon
	}
	return props
}

func writeWKT(w io.Writer, layers []layer) error {
	for _, l := range layers {
		for _, s := range l.shapes {
			if _, err := fmt.Fprintln(w, s.Geometry.AsText()); err != nil {
				return fmt.Errorf("error writing WKT: %w", err)
			}
		}
	}
	return nil
}
