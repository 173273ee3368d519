package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/docbound/docbound-mcp/internal/detect"
	"github.com/docbound/docbound-mcp/internal/imaging"
	"github.com/docbound/docbound-mcp/internal/preprocess"
	"github.com/docbound/docbound-mcp/internal/raster"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "docbound_detect", "image_load").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	content, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": content,
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
// Detection handlers return two content blocks (the JSON result, then a
// base64 PNG overlay); every other handler returns a single text block.
func (s *Server) executeTool(name string, args json.RawMessage) ([]map[string]interface{}, error) {
	switch name {
	case "docbound_detect":
		return s.handleDocboundDetect(args)
	case "docbound_detect_enhanced":
		return s.handleDocboundDetectEnhanced(args)
	case "docbound_extract_boundary":
		return s.handleDocboundExtractBoundary(args)

	case "image_load":
		return textContent(s.handleImageLoad(args))
	case "image_dimensions":
		return textContent(s.handleImageDimensions(args))

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Marshal errors are ignored; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// textContent wraps a single handler result (or its error) into the
// single-text-block content shape most tools use.
func textContent(result interface{}, err error) ([]map[string]interface{}, error) {
	if err != nil {
		return nil, err
	}
	return []map[string]interface{}{
		{"type": "text", "text": mustMarshalJSON(result)},
	}, nil
}

// === Boundary Detection Handlers ===

type detectionResult struct {
	Boundaries []detect.Boundary `json:"boundaries"`
	Stats      detect.Stats      `json:"stats"`
}

type docboundDetectArgs struct {
	Path          string  `json:"path"`
	MaxDimension  int     `json:"max_dimension"`
	MinAreaRatio  float64 `json:"min_area_ratio"`
	MaxAreaRatio  float64 `json:"max_area_ratio"`
	EdgeThreshold int     `json:"edge_threshold"`
	BlurRadius    int     `json:"blur_radius"`
}

func (s *Server) handleDocboundDetect(args json.RawMessage) ([]map[string]interface{}, error) {
	var a docboundDetectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	opts := detect.DefaultOptions()
	if a.MinAreaRatio != 0 {
		opts.MinAreaRatio = a.MinAreaRatio
	}
	if a.MaxAreaRatio != 0 {
		opts.MaxAreaRatio = a.MaxAreaRatio
	}
	if a.EdgeThreshold != 0 {
		opts.EdgeThreshold = a.EdgeThreshold
	}
	if a.BlurRadius != 0 {
		opts.BlurRadius = a.BlurRadius
	}

	r, err := s.rasterFor(a.Path, a.MaxDimension)
	if err != nil {
		return nil, err
	}

	result, err := detect.Detect(r, opts)
	if err != nil {
		return nil, err
	}

	return renderDetectionResult(r, result)
}

type docboundDetectEnhancedArgs struct {
	Path         string `json:"path"`
	MaxDimension int    `json:"max_dimension"`
}

func (s *Server) handleDocboundDetectEnhanced(args json.RawMessage) ([]map[string]interface{}, error) {
	var a docboundDetectEnhancedArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	r, err := s.rasterFor(a.Path, a.MaxDimension)
	if err != nil {
		return nil, err
	}

	result := detect.DetectEnhanced(r, detect.DefaultOptions())
	return renderDetectionResult(r, result)
}

// rasterFor loads path via the server's image cache, converts it to a
// raster.Raster, and — if maxDimension is set — downscales it first.
func (s *Server) rasterFor(path string, maxDimension int) (raster.Raster, error) {
	img, err := s.cache.Load(path)
	if err != nil {
		return raster.Raster{}, err
	}
	r, err := imaging.RasterFromImage(img)
	if err != nil {
		return raster.Raster{}, err
	}
	if maxDimension <= 0 {
		return r, nil
	}
	plan := preprocess.Plan(r.Width, r.Height, maxDimension)
	return preprocess.Downscale(r, plan)
}

// renderDetectionResult packages a detect.Result as two content blocks: the
// JSON detection result, then a base64 PNG boundary overlay.
func renderDetectionResult(r raster.Raster, result detect.Result) ([]map[string]interface{}, error) {
	overlay, err := imaging.RenderBoundaries(r, result, imaging.RenderOptions{LabelVertices: true})
	if err != nil {
		return nil, err
	}

	dr := detectionResult{Boundaries: result.Boundaries, Stats: result.Stats}
	return []map[string]interface{}{
		{"type": "text", "text": mustMarshalJSON(dr)},
		{"type": "image", "mimeType": "image/png", "data": base64.StdEncoding.EncodeToString(overlay)},
	}, nil
}

type docboundExtractBoundaryArgs struct {
	Path          string  `json:"path"`
	BoundaryIndex int     `json:"boundary_index"`
	Padding       int     `json:"padding"`
	Scale         float64 `json:"scale"`
}

// handleDocboundExtractBoundary runs detection against the full-resolution
// image (so the returned boundary's BoundingRect stays in the same pixel
// space as img) and crops to the requested boundary, padded/rescaled as
// requested. It is the "give me just the page" counterpart to
// docbound_detect's overlay: the overlay shows where the boundary is, this
// tool returns the pixels inside it.
func (s *Server) handleDocboundExtractBoundary(args json.RawMessage) ([]map[string]interface{}, error) {
	var a docboundExtractBoundaryArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	r, err := imaging.RasterFromImage(img)
	if err != nil {
		return nil, err
	}
	result, err := detect.Detect(r, detect.DefaultOptions())
	if err != nil {
		return nil, err
	}
	if a.BoundaryIndex < 0 || a.BoundaryIndex >= len(result.Boundaries) {
		return nil, fmt.Errorf("boundary_index %d out of range: detected %d boundary(ies)", a.BoundaryIndex, len(result.Boundaries))
	}

	extracted, err := imaging.ExtractBoundary(img, result.Boundaries[a.BoundaryIndex].BoundingRect, a.Padding, a.Scale)
	if err != nil {
		return nil, err
	}
	return textContent(extracted, nil)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

