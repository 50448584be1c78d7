package supplier

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"seller-sync/core/reconcile"

	"github.com/go-resty/resty/v2"
)

// Source produces the supplier records for one sync run.
type Source interface {
	// Records downloads and parses the current feed.
	Records(ctx context.Context) ([]reconcile.SupplierRecord, error)
}

// Feed is the HTTP-backed Source for the supplier's zipped spreadsheet.
type Feed struct {
	cfg  Config
	http *resty.Client
}

// NewFeed creates a Feed based on the configuration.
func NewFeed(cfg Config) *Feed {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 60
	}

	return &Feed{
		cfg:  cfg,
		http: resty.New().SetTimeout(time.Duration(timeout) * time.Second),
	}
}

// Records downloads the feed archive and returns its parsed rows.
func (f *Feed) Records(ctx context.Context) ([]reconcile.SupplierRecord, error) {
	resp, err := f.http.R().SetContext(ctx).Get(f.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download supplier feed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("supplier feed returned %d", resp.StatusCode())
	}

	sheet, err := extractSpreadsheet(resp.Body())
	if err != nil {
		return nil, err
	}

	return ParseSpreadsheet(sheet, f.cfg)
}

// extractSpreadsheet returns the first spreadsheet entry of the archive,
// fully read into memory. The feed archive always holds exactly one.
func extractSpreadsheet(archive []byte) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("failed to open feed archive: %w", err)
	}

	for _, entry := range r.File {
		name := strings.ToLower(entry.Name)
		if !strings.HasSuffix(name, ".xls") && !strings.HasSuffix(name, ".xlsx") {
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s in feed archive: %w", entry.Name, err)
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s from feed archive: %w", entry.Name, err)
		}
		return data, nil
	}

	return nil, fmt.Errorf("feed archive contains no spreadsheet")
}
