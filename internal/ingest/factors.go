package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/lcafocus/internal/lca"
	"github.com/rshade/lcafocus/internal/logging"
)

// ReadFactors loads a nested material -> stage -> impact factor document.
// JSON is the canonical format; YAML documents of the same shape are also
// accepted.
func ReadFactors(ctx context.Context, path string) (lca.FactorSource, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("component", "ingest").
		Str("operation", "read_factors").
		Str("path", path).
		Msg("reading impact factors")

	if err := checkExists(path); err != nil {
		return nil, fmt.Errorf("impact factors: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ExtJSON && ext != ExtYAML && ext != ExtYML {
		return nil, fmt.Errorf("%w: impact factors must be JSON or YAML, got %q", ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading impact factors %s: %w", path, err)
	}

	var src lca.FactorSource
	if ext == ExtJSON {
		src, err = ParseFactorsJSON(data)
	} else {
		src, err = ParseFactorsYAML(data)
	}
	if err != nil {
		log.Error().
			Str("component", "ingest").
			Err(err).
			Str("path", path).
			Msg("failed to parse impact factors")
		return nil, err
	}

	log.Debug().
		Str("component", "ingest").
		Int("material_count", len(src)).
		Msg("impact factors loaded")
	return src, nil
}

// rawFactors is a factor document before impact values are coerced.
type rawFactors map[string]map[string]map[string]any

// ParseFactorsJSON decodes a JSON factor document.
func ParseFactorsJSON(data []byte) (lca.FactorSource, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return lca.FactorSource{}, nil
	}
	var raw rawFactors
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing impact factors JSON: %w", err)
	}
	return factorSource(raw)
}

// ParseFactorsYAML decodes a YAML factor document.
func ParseFactorsYAML(data []byte) (lca.FactorSource, error) {
	var raw rawFactors
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing impact factors YAML: %w", err)
	}
	return factorSource(raw)
}

// factorSource keeps the three impact names of every entry. Other keys,
// such as units or provenance notes, are dropped whatever their type. A
// null impact set or impact value reads as zero.
func factorSource(raw rawFactors) (lca.FactorSource, error) {
	src := make(lca.FactorSource, len(raw))
	for material, stages := range raw {
		src[material] = make(map[string]map[string]float64, len(stages))
		for stage, impacts := range stages {
			entry := make(map[string]float64, len(lca.ImpactMetrics()))
			for _, name := range lca.ImpactMetrics() {
				v, ok := impacts[name]
				if !ok || v == nil {
					continue
				}
				f, ok := lca.ToFloat(v)
				if !ok {
					return nil, fmt.Errorf("impact factor %s/%s/%s is not numeric: %v", material, stage, name, v)
				}
				entry[name] = f
			}
			src[material][stage] = entry
		}
	}
	return src, nil
}
