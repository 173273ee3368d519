package main

import (
	"fmt"
	"log"
	"os"

	"github.com/docbound/docbound-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("docbound-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		case "detect":
			runDetectCLI(os.Args[2:])
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	logLevel := os.Getenv("DOCBOUND_MCP_LOG_LEVEL")
	if logLevel == "debug" {
		log.Printf("docbound-mcp Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New()
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printUsage() {
	fmt.Println("docbound-mcp - MCP server and CLI for document boundary detection")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  docbound-mcp                 Run as an MCP server over stdin/stdout")
	fmt.Println("  docbound-mcp detect <path>   Detect document boundaries in an image file")
	fmt.Println()
	fmt.Println("detect options:")
	fmt.Println("  --out <path>          Overlay PNG output path (default <path>.boundaries.png)")
	fmt.Println("  --max-dimension <n>   Downscale the image so its longer side is at most n pixels")
	fmt.Println("  --enhanced            Run the multi-strategy detector instead of a single pass")
	fmt.Println()
	fmt.Println("Other flags:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  DOCBOUND_MCP_LOG_LEVEL=debug    Enable debug logging")
	fmt.Println()
	fmt.Println("With no subcommand, this binary speaks MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}
