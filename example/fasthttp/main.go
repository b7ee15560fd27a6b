package main

import (
	"fmt"
	"strings"

	"github.com/fenwrith/daylog"
	"github.com/fenwrith/daylog/compat"
	"github.com/valyala/fasthttp"
)

func main() {
	logger, err := daylog.NewBuilder().
		Directory("logs").
		Build("fasthttp", "server")
	if err != nil {
		panic(err)
	}
	defer logger.Close()

	// Create fasthttp adapter with custom level detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		logger,
		compat.WithDefaultLevel(daylog.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  fasthttpAdapter,
	}

	logger.Info("starting server on {}", ":8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		logger.Error(err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	fmt.Fprintf(ctx, "hello from %s", ctx.Path())
}

// customLevelDetector treats connection resets as debug noise
func customLevelDetector(msg string) int64 {
	if strings.Contains(msg, "connection reset") {
		return daylog.LevelDebug
	}
	return compat.DetectLogLevel(msg)
}
