package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func optionsSchemaProperties() map[string]interface{} {
	return map[string]interface{}{
		"min_area_ratio": map[string]interface{}{
			"type":        "number",
			"description": "Minimum fraction of image area a boundary must cover (default 0.02)",
		},
		"max_area_ratio": map[string]interface{}{
			"type":        "number",
			"description": "Maximum fraction of image area a boundary may cover (default 0.95)",
		},
		"edge_threshold": map[string]interface{}{
			"type":        "integer",
			"description": "Sobel magnitude threshold in the combine stage, 0-255 (default 50)",
		},
		"blur_radius": map[string]interface{}{
			"type":        "integer",
			"description": "Gaussian blur kernel radius, >= 1 (default 2)",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	detectProps := map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the image file",
		},
		"max_dimension": map[string]interface{}{
			"type":        "integer",
			"description": "If set, downscale the image so its longer side does not exceed this many pixels before detecting",
		},
	}
	for k, v := range optionsSchemaProperties() {
		detectProps[k] = v
	}

	return []Tool{
		{
			Name:        "docbound_detect",
			Description: "Detect document/page boundaries in an image using a single fixed-parameter pass, returning ordered boundary polygons plus a PNG overlay visualizing them.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": detectProps,
				"required":   []string{"path"},
			},
		},
		{
			Name:        "docbound_detect_enhanced",
			Description: "Detect document/page boundaries, retrying under a fixed sequence of parameter overrides until a clean 4-vertex boundary is found. Returns ordered boundary polygons plus a PNG overlay.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"max_dimension": map[string]interface{}{
						"type":        "integer",
						"description": "If set, downscale the image so its longer side does not exceed this many pixels before detecting",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "docbound_extract_boundary",
			Description: "Detect document/page boundaries in an image and crop the source image down to the Nth detected boundary's bounding box, with optional padding and rescaling. Use this to pull out just the page after docbound_detect has located it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"boundary_index": map[string]interface{}{
						"type":        "integer",
						"description": "Index into the detected boundaries, in detection order (default 0)",
						"default":     0,
					},
					"padding": map[string]interface{}{
						"type":        "integer",
						"description": "Pixels to expand the bounding box by on every side before cropping, clamped to the image's own bounds (default 0)",
						"default":     0,
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor applied to the cropped region (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format. The decoded image stays cached by path for later tool calls.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
