// Package exporter writes the catalogued entity samples as JSON so that
// front-end tests can load the same fixtures as the Go tests.
package exporter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nimdaved/toolrent/internal/catalog"
	"github.com/nimdaved/toolrent/internal/common"
	"github.com/nimdaved/toolrent/internal/exporter/config"
	"github.com/nimdaved/toolrent/internal/filex"
	"github.com/nimdaved/toolrent/internal/logging"
)

// FileSuffix is appended to the entity name to form the output file name.
const FileSuffix = ".test-samples.json"

// Exporter writes fixture sets according to its config.
type Exporter struct {
	config *config.Config
	logger logging.Logger
	stdout io.Writer
}

// New returns an Exporter that logs to l and writes to stdout when no
// output directory is configured.
func New(c *config.Config, l logging.Logger, stdout io.Writer) *Exporter {
	return &Exporter{config: c, logger: l, stdout: stdout}
}

// Run exports every configured entity. It stops at the first failure.
func (e *Exporter) Run(ctx context.Context) error {
	names := uniq(e.config.Entities)
	if len(names) == 0 {
		names = catalog.Names()
	}

	// Resolve everything before writing so a bad name leaves no partial output.
	sets := make([]catalog.Set, 0, len(names))
	for _, n := range names {
		s, err := catalog.Lookup(n)
		if err != nil {
			return err
		}
		sets = append(sets, s)
	}

	if e.config.OutputDir != "" {
		if _, err := filex.EnsureDir(e.config.OutputDir); err != nil {
			return fmt.Errorf("%w: %w", common.ErrOutput, err)
		}
	}

	for _, s := range sets {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.export(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) export(ctx context.Context, s catalog.Set) error {
	data, err := e.encode(s)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.Entity, err)
	}

	log := e.logger.With("entity", s.Entity)

	if e.config.OutputDir == "" {
		if _, err := e.stdout.Write(data); err != nil {
			return fmt.Errorf("%w: stdout: %w", common.ErrOutput, err)
		}
		log.Debug(ctx, "samples written to stdout")
		return nil
	}

	path := filepath.Join(e.config.OutputDir, s.Entity+FileSuffix)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", common.ErrOutput, path, err)
	}
	log.Info(ctx, "samples exported", "path", path)
	return nil
}

func (e *Exporter) encode(s catalog.Set) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	if e.config.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// uniq drops repeated names, keeping the first occurrence.
func uniq(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
