package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	reportpdf "github.com/alnah/go-reportpdf"
	"github.com/alnah/go-reportpdf/internal/fileutil"
	"github.com/alnah/go-reportpdf/internal/hints"
	"github.com/alnah/go-reportpdf/internal/yamlutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrReadPayload   = errors.New("failed to read payload file")
	ErrDecodePayload = errors.New("failed to decode payload")
	ErrWritePDF      = errors.New("failed to write PDF file")
)

// ReportGenerator is the interface for the report engine.
type ReportGenerator interface {
	Generate(ctx context.Context, payload reportpdf.Payload) (*reportpdf.Result, error)
}

// Compile-time interface implementation check.
var _ ReportGenerator = (*reportpdf.Generator)(nil)

// GenerationResult holds the outcome of a single payload.
type GenerationResult struct {
	InputPath  string
	OutputPath string
	Pages      int
	ID         string
	Err        error
	Duration   time.Duration
}

// batchParams groups parameters shared across the batch.
type batchParams struct {
	output       string // -o value
	configDir    string // output.dir from the config
	hasAssetBase bool   // a base URL or asset directory is configured
	log          logrus.FieldLogger
}

// outputClaims hands out distinct output paths when several payloads
// share a document title.
type outputClaims struct {
	mu   sync.Mutex
	seen map[string]int
}

func newOutputClaims() *outputClaims {
	return &outputClaims{seen: make(map[string]int)}
}

// claim returns path, or path with a "-N" suffix if it was already taken.
func (c *outputClaims) claim(path string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.seen[path]
	c.seen[path] = n + 1
	if n == 0 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), n+1, ext)
}

// generateBatch processes payloads concurrently with a fixed number of workers.
// Results are returned in input order.
func generateBatch(ctx context.Context, gen ReportGenerator, workers int, inputs []string, params *batchParams) []GenerationResult {
	if len(inputs) == 0 {
		return nil
	}

	concurrency := workers
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > len(inputs) {
		concurrency = len(inputs)
	}

	results := make([]GenerationResult, len(inputs))
	claims := newOutputClaims()
	var wg sync.WaitGroup
	jobs := make(chan int, len(inputs))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = GenerationResult{
						InputPath: inputs[idx],
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = generateFile(ctx, gen, inputs[idx], params, claims)
			}
		}()
	}

	for i := range inputs {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// generateFile renders a single payload file and writes the PDF.
func generateFile(ctx context.Context, gen ReportGenerator, inputPath string, params *batchParams, claims *outputClaims) GenerationResult {
	start := time.Now()
	result := GenerationResult{InputPath: inputPath}
	fail := func(err error) GenerationResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(inputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrReadPayload, err))
	}

	var payload reportpdf.Payload
	if err := yamlutil.UnmarshalDocument(content, &payload); err != nil {
		return fail(fmt.Errorf("%w: %s: %v%s", ErrDecodePayload, inputPath, err, hints.ForPayload()))
	}

	log := params.log.WithField("payload", inputPath)
	if !params.hasAssetBase {
		for _, u := range []string{payload.WordcloudURL, payload.FontURL} {
			if isRelativeURL(u) {
				log.WithField("url", u).Warn("relative asset URL will not load" + hints.ForRelativeAsset())
			}
		}
	}

	res, err := gen.Generate(ctx, payload)
	if err != nil {
		return fail(err)
	}
	result.Pages = res.Pages
	result.ID = res.ID

	outputPath := claims.claim(resolveOutputPath(params.output, params.configDir, inputPath, payload.DocumentTitle))
	result.OutputPath = outputPath

	if err := os.MkdirAll(filepath.Dir(outputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory()))
	}
	if err := fileutil.WriteFileAtomic(outputPath, res.PDF, filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrWritePDF, err))
	}

	result.Duration = time.Since(start)
	return result
}

// isRelativeURL reports whether u needs a base URL or directory to load.
func isRelativeURL(u string) bool {
	if u == "" || fileutil.IsURL(u) {
		return false
	}
	return !strings.HasPrefix(strings.ToLower(u), "file:")
}

// ResultSummary holds the count of succeeded and failed reports.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed reports.
func countResults(results []GenerationResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs the results and returns the first failure, if any.
func printResults(results []GenerationResult, quiet, verbose bool, env *Environment) error {
	summary := countResults(results)
	var first error

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			if first == nil {
				first = r.Err
			}
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%d pages, %v)\n", r.InputPath, r.OutputPath, r.Pages, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return first
}
