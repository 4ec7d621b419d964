/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"fmt"
	"io"
	"os"
	"time"
)

func humanReadableSize(bytes int64) string {
	const unit int64 = 1000
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := unit, 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB",
		float64(bytes)/float64(div),
		"kMGTPE"[exp])
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)

	return n, err
}

// openData opens path from disk, or the embedded fallback when path is empty.
func openData(path, fallback string) (io.ReadCloser, string, error) {
	if path == "" {
		f, err := data.Open(fallback)

		return f, "embedded " + fallback, err
	}

	f, err := os.Open(path)

	return f, path, err
}

// loadFile decodes one data file with load, reporting its size when verbose.
func loadFile[T any](cfg *Config, path, fallback string, load func(io.Reader) (T, error)) (T, error) {
	var zero T

	startTime := time.Now()

	f, name, err := openData(path, fallback)
	if err != nil {
		return zero, err
	}
	defer f.Close()

	cr := &countingReader{r: f}

	v, err := load(cr)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", name, err)
	}

	logf(cfg, "LOAD: %s (%s) in %s",
		name,
		humanReadableSize(cr.n),
		time.Since(startTime).Round(time.Microsecond),
	)

	return v, nil
}
