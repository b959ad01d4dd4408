package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/audiobook-downloader/internal/config"
	"github.com/handiism/audiobook-downloader/internal/download"
	"github.com/handiism/audiobook-downloader/internal/logger"
)

func main() {
	// Command line flags
	var (
		configFlag    = flag.String("config", "", "Path to config file")
		urlFlag       = flag.String("url", "", "Catalog URL (overrides config)")
		templateFlag  = flag.String("template", "", "Detail URL template with {id} placeholder (overrides config)")
		albumFlag     = flag.String("album", "", "Album name written into tags (overrides config)")
		playlistFlag  = flag.Bool("playlist", false, "Create playlist file")
		verboseFlag   = flag.Bool("verbose", false, "Show verbose output")
		logLevelFlag  = flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
		logFormatFlag = flag.String("log-format", "", "Log format: text, json (overrides config)")
		dryRunFlag    = flag.Bool("dry-run", false, "Scan the catalog without downloading")
	)

	flag.Parse()

	// CLI mode - require destination directory
	if flag.NArg() != 1 {
		fmt.Println("Audiobook Downloader - Download audiobooks from the catalog")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  audiobook-dl [options] <destination-dir>")
		fmt.Println()
		fmt.Println("For interactive mode, use: audiobook-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	destRoot := flag.Arg(0)
	if info, err := os.Stat(destRoot); err != nil || !info.IsDir() {
		fmt.Fprintf(os.Stderr, "Error: destination directory does not exist: %s\n", destRoot)
		os.Exit(1)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *urlFlag != "" {
		settings.CatalogURL = *urlFlag
	}
	if *templateFlag != "" {
		settings.DetailURLTemplate = *templateFlag
	}
	if *albumFlag != "" {
		settings.AlbumName = *albumFlag
	}
	if *playlistFlag {
		settings.CreatePlaylist = true
	}
	if *logLevelFlag != "" {
		settings.LogLevel = *logLevelFlag
	}
	if *logFormatFlag != "" {
		settings.LogFormat = *logFormatFlag
	}

	log := logger.New(logger.Config{
		Format: settings.LogFormat,
		Level:  logger.ParseLevel(settings.LogLevel),
	})

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback
	manager := download.NewManager(settings, destRoot, log, func(event download.ProgressEvent) {
		if event.Level == download.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case download.LevelError:
			prefix = "❌ "
		case download.LevelWarning:
			prefix = "⚠️  "
		case download.LevelSuccess:
			prefix = "✅ "
		case download.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	})

	// Scan the catalog
	fmt.Println("📚 Audiobook Downloader")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	if err := manager.Initialize(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning catalog: %v\n", err)
		os.Exit(1)
	}

	if *dryRunFlag {
		for _, title := range manager.Titles() {
			fmt.Printf("  ♪ %s\n", title)
		}
		fmt.Println("\n[Dry run - not downloading]")
		return
	}

	// Start downloads
	fmt.Println("\n📥 Starting downloads...")
	fmt.Println()

	if err := manager.Run(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nDownload cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error during run: %v\n", err)
		os.Exit(1)
	}

	done, failed, total := manager.Progress()
	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("✨ Complete! Processed %d/%d audiobooks\n", done, total)
	if failed > 0 {
		fmt.Printf("   (%d failed, rerun to retry)\n", failed)
	}
}
