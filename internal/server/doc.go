// Package server implements the MCP (Model Context Protocol) server for the
// document boundary detector.
//
// This package provides a JSON-RPC 2.0 server that exposes the detection
// pipeline through the MCP protocol. It's designed to work with Claude and
// other MCP-compatible clients, enabling AI systems to locate document and
// page boundaries in scanned or photographed images.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Boundary Detection:
//   - docbound_detect: Single fixed-parameter detection pass
//   - docbound_detect_enhanced: Multi-strategy detection with fallback overrides
//   - docbound_extract_boundary: Crop the source image down to a detected boundary
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
