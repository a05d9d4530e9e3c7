// Package main provides a performance benchmarking tool for the rangemerge CLI.
// It generates synthetic range datasets of increasing size, runs the merge
// command on each one several times, treats the first successful run as cold
// and averages the rest as warm, then writes a CSV summary.
//
// Prerequisites:
// - rangemerge binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory to write generated datasets into
package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Dataset  string
	Format   string
	Ranges   int
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir   string
	Timeout   time.Duration
	Runs      int
	Threshold string
	Sizes     map[string]int
	Order     []string
	Formats   []string
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir:   os.Args[1],
		Timeout:   2 * time.Minute,
		Runs:      4,
		Threshold: "5",
		Sizes: map[string]int{
			"small":  1_000,
			"medium": 100_000,
			"large":  1_000_000,
		},
		Order:   []string{"small", "medium", "large"},
		Formats: []string{"json", "csv"},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the rangemerge binary exists and the work dir is usable
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("rangemerge"); err != nil {
		return fmt.Errorf("rangemerge binary not found in PATH")
	}
	return os.MkdirAll(config.WorkDir, 0o755)
}

// runBenchmarks generates every dataset and benchmarks it in each format
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d datasets, %v timeout, %d runs each\n",
		len(config.Order), config.Timeout, config.Runs)

	for _, name := range config.Order {
		size := config.Sizes[name]
		fmt.Printf("Benchmarking %s (%d ranges)\n", name, size)

		ranges := generateRanges(size, uint64(size))
		for _, format := range config.Formats {
			path := filepath.Join(config.WorkDir, fmt.Sprintf("%s.%s", name, format))
			if err := writeDataset(path, format, ranges); err != nil {
				fmt.Printf("  Skipping %s: %v\n", path, err)
				continue
			}
			results = append(results, runBenchmarkSuite(config, name, format, path, size))
		}
	}

	return results
}

// runBenchmarkSuite runs the merge command on one dataset and summarizes the timings
func runBenchmarkSuite(config BenchmarkConfig, dataset, format, path string, size int) BenchmarkResult {
	fmt.Printf("  %s input (%d runs)\n", format, config.Runs)

	coldTime, warmTimes := runBenchmark(config, path, format)

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}
	warmAvg := "TIMEOUT"
	if len(warmTimes) > 0 {
		var sum float64
		for _, t := range warmTimes {
			sum += t
		}
		warmAvg = fmt.Sprintf("%.3fs", sum/float64(len(warmTimes)))
	}

	fmt.Printf("  Cold time: %s, Warm average: %s\n", coldTimeStr, warmAvg)

	return BenchmarkResult{
		Dataset:  dataset,
		Format:   format,
		Ranges:   size,
		ColdTime: coldTimeStr,
		WarmTime: warmAvg,
	}
}

// runBenchmark executes the merge command multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, path, format string) (coldTime float64, warmTimes []float64) {
	args := []string{"merge", path, "--input-format", format, "--threshold", config.Threshold, "--color", "no"}

	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("rangemerge", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			if cmd.Process != nil {
				_ = cmd.Process.Kill()
			}
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// generateRanges builds n ranges in clusters so that merging has real work to do
func generateRanges(n int, seed uint64) [][2]float64 {
	r := rand.New(rand.NewPCG(seed, 42))
	ranges := make([][2]float64, n)
	for i := range ranges {
		start := float64(r.IntN(n * 10))
		ranges[i] = [2]float64{start, start + float64(r.IntN(20))}
	}
	return ranges
}

// writeDataset writes ranges as a JSON array or as start,end CSV rows
func writeDataset(path, format string, ranges [][2]float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	if format == "json" {
		return json.NewEncoder(file).Encode(ranges)
	}

	writer := csv.NewWriter(file)
	for _, rg := range ranges {
		if err := writer.Write([]string{
			strconv.FormatFloat(rg[0], 'f', -1, 64),
			strconv.FormatFloat(rg[1], 'f', -1, 64),
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte) bool {
	return strings.Contains(string(output), "Merge completed in")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/rangemerge_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"dataset", "format", "ranges", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Dataset, result.Format, strconv.Itoa(result.Ranges), result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, format := range []string{"json", "csv"} {
		fmt.Printf("%s input:\n", strings.ToUpper(format))
		for _, result := range results {
			if result.Format == format {
				fmt.Printf("  %-8s (%7d ranges): Cold: %s, Warm: %s\n", result.Dataset, result.Ranges, result.ColdTime, result.WarmTime)
			}
		}
	}
}
