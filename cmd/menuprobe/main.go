// Command menuprobe measures response times of the menu listing, which is
// served from Redis when REDIS_URL is configured.
package main

import (
	"flag"
	"io"
	"net/http"
	"time"

	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
)

func main() {
	baseURL := flag.String("url", "http://localhost:5002", "server base URL")
	count := flag.Int("n", 5, "number of requests")
	pause := flag.Duration("pause", time.Second, "delay between requests")
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer func() { _ = logger.Sync() }()

	client := &http.Client{Timeout: 10 * time.Second}
	url := *baseURL + "/api/menu"

	var samples stats.Float64Data
	for i := 0; i < *count; i++ {
		start := time.Now()
		resp, err := client.Get(url)
		if err != nil {
			logger.Warn("request failed", zap.Int("n", i+1), zap.Error(err))
			continue
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		took := time.Since(start)
		samples = append(samples, float64(took.Microseconds())/1000)
		logger.Info("request", zap.Int("n", i+1), zap.Int("status", resp.StatusCode), zap.Duration("took", took))

		if i < *count-1 {
			time.Sleep(*pause)
		}
	}

	if len(samples) == 0 {
		logger.Fatal("no successful requests", zap.String("url", url))
	}
	mean, _ := samples.Mean()
	p50, _ := samples.Median()
	p95, _ := samples.Percentile(95)
	maxMs, _ := samples.Max()
	logger.Info("summary",
		zap.Int("ok", len(samples)),
		zap.Float64("mean_ms", mean),
		zap.Float64("p50_ms", p50),
		zap.Float64("p95_ms", p95),
		zap.Float64("max_ms", maxMs),
	)
}
