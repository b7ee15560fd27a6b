package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fenwrith/daylog"
)

const configFile = "simple_config.toml"

// Example TOML content
var tomlContent = `
# Example simple_config.toml
[daylog]
  directory = "logs"
  console_enabled = true
  file_enabled = true
  file_timeout_ms = 5000
  timestamp_format = "3:04:05 PM"
  console_target = "stdout"
  styled = true
  inspect_depth = 10
`

func main() {
	if err := os.WriteFile(configFile, []byte(tomlContent), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write example config: %v\n", err)
		os.Exit(1)
	}
	defer os.Remove(configFile)

	cfg, err := daylog.NewConfigFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	server, err := daylog.New(cfg, "example", "server")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log: %v\n", err)
		os.Exit(1)
	}
	defer server.Close()

	worker, err := daylog.NewBuilder().
		Directory(cfg.Directory).
		FileTimeout(0).
		Values(map[string]any{"worker_id": 7}).
		Build("example", "worker")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log: %v\n", err)
		os.Exit(1)
	}

	// Consecutive lines from one instance share a console window
	server.Info("listening on {}", ":8080")
	server.Info("ready after {} ms", 12)
	server.Debug(map[string]any{"routes": []string{"/health", "/v1/items"}})

	// A different instance closes the previous window and opens its own
	worker.Warn("queue depth {} above soft limit", 42)
	worker.SetValues(map[string]any{"job": "reindex"})
	worker.Error(errors.New("upstream timed out"))
	_ = worker.Close()

	// Package statics address the console only
	daylog.Info("both instances wrote to", server.AbsolutePath())

	time.Sleep(50 * time.Millisecond)
	daylog.Default().Close()

	files, err := daylog.Walk(cfg.Directory)
	if err != nil {
		fmt.Fprintf(os.Stderr, "walk failed: %v\n", err)
		return
	}
	for _, f := range files {
		fmt.Printf("wrote %s\n", f.Path)
	}
}
