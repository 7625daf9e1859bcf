package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"blogapi/app/config"
	"blogapi/app/logging"
	"blogapi/service"

	"go.uber.org/zap"
)

const CliVersion = "1.0.0"

// exit is replaced in tests.
var exit = os.Exit

func main() {
	RealMain()
}

// RealMain dispatches the command named by os.Args[1].
func RealMain() {
	if len(os.Args) < 2 {
		printHelp()
		exit(1)
		return
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("blogapi version %s\n", CliVersion)
	case "serve":
		exit(serve())
	case "db":
		exit(database(os.Args[2:]))
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		exit(1)
	}
}

func printHelp() {
	helpText := `Usage: blogapi <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve                          Run the blog HTTP service.
  db <command>                   Manage the embedded database:
                                   clean, init, backup, restore <file>

Configuration is read from .env, the file named by BLOG_CONFIG and
BLOG_* environment variables (e.g. BLOG_ADDR, BLOG_STORE, BLOG_LOG_LEVEL).
`
	fmt.Println(helpText)
}

// serve loads configuration and runs the HTTP service until it is stopped.
func serve() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, flush, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer func() { _ = flush() }()

	if err := service.RunAppServer(context.Background(), cfg, logger); err != nil {
		logger.Error("blog service stopped", zap.Error(err))
		return 1
	}
	return 0
}

// database runs a db subcommand against the configured badger store.
func database(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	service.Configure(cfg)
	return service.HandleCommand(args)
}
