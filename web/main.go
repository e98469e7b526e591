package main

import (
	"flag"
	"log/slog"
	"os"
	"strconv"

	"github.com/df07/go-whitted-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	static := flag.String("static", "", "Directory of static files to serve at / (optional)")
	verbose := flag.Bool("v", false, "Log per-tile progress")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Create and start web server
	webServer := server.NewServer(*port, *static, logger)

	logger.Info("Whitted ray caster web server", "url", "http://localhost:"+strconv.Itoa(*port))

	if err := webServer.Start(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
