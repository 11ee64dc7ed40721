// Package mcptools exposes the ladder solver as Model Context Protocol tools.
//
//	ladder_solve       shortest ladder between two words, optionally avoiding some
//	ladder_largest     longest shortest ladder among words of one length
//	ladder_word_exists dictionary membership
package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/ladder"
)

// Name and Version identify the server to MCP clients.
const (
	Name    = "wordladder"
	Version = "1.0.0"
)

// NewServer returns an MCP server with every ladder tool registered.
func NewServer(solver *ladder.Solver) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{Name: Name, Version: Version}, nil)
	Register(srv, solver)
	return srv
}

// Register adds the ladder tools to srv.
func Register(srv *mcp.Server, solver *ladder.Solver) {
	registerSolve(srv, solver)
	registerLargest(srv, solver)
	registerWordExists(srv, solver)
}

// endpoint handles one decoded tool call and returns a JSON-marshalable result.
type endpoint func(ctx context.Context, args json.RawMessage) (any, error)

func addTool(srv *mcp.Server, tool *mcp.Tool, fn endpoint) {
	srv.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		resp, err := fn(ctx, req.Params.Arguments)
		if err != nil {
			var res mcp.CallToolResult
			res.SetError(err)
			return &res, nil
		}
		data, err := json.Marshal(resp)
		if err != nil {
			var res mcp.CallToolResult
			res.SetError(fmt.Errorf("marshal: %w", err))
			return &res, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
		}, nil
	})
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func decode(args json.RawMessage, v any) error {
	if len(args) == 0 {
		return errors.New("invalid arguments: empty")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

type ladderResult struct {
	Path  ladder.Path `json:"path"`
	Steps int         `json:"steps"`
}

// --- solve ---

type solveArgs struct {
	Origin  string   `json:"origin"`
	Target  string   `json:"target"`
	Exclude []string `json:"exclude"`
}

func registerSolve(srv *mcp.Server, solver *ladder.Solver) {
	tool := &mcp.Tool{
		Name:        "ladder_solve",
		Description: "Find a shortest word ladder from origin to target, changing one letter per step. Words in exclude are never used.",
		InputSchema: inputSchema(map[string]any{
			"origin":  map[string]any{"type": "string", "description": "First word of the ladder"},
			"target":  map[string]any{"type": "string", "description": "Last word of the ladder, same length as origin"},
			"exclude": map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "description": "Words the ladder must avoid"},
		}, []string{"origin", "target"}),
	}

	addTool(srv, tool, func(ctx context.Context, raw json.RawMessage) (any, error) {
		var a solveArgs
		if err := decode(raw, &a); err != nil {
			return nil, err
		}
		origin, target := dictionary.Normalize(a.Origin), dictionary.Normalize(a.Target)
		if origin == "" || target == "" {
			return nil, errors.New("origin and target are required")
		}
		exclude := ladder.NewExceptionSet()
		for _, w := range a.Exclude {
			exclude.Add(dictionary.Normalize(w))
		}
		path, err := solver.SolveExcluding(origin, target, exclude, ladder.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		return ladderResult{Path: path, Steps: path.Steps()}, nil
	})
}

// --- largest ---

type largestArgs struct {
	Length int `json:"length"`
}

func registerLargest(srv *mcp.Server, solver *ladder.Solver) {
	tool := &mcp.Tool{
		Name:        "ladder_largest",
		Description: "Approximate the longest shortest ladder among dictionary words of the given length.",
		InputSchema: inputSchema(map[string]any{
			"length": map[string]any{"type": "integer", "minimum": 1, "description": "Word length"},
		}, []string{"length"}),
	}

	addTool(srv, tool, func(ctx context.Context, raw json.RawMessage) (any, error) {
		var a largestArgs
		if err := decode(raw, &a); err != nil {
			return nil, err
		}
		if a.Length <= 0 {
			return nil, errors.New("length must be a positive integer")
		}
		path, err := solver.FindLargestLadder(a.Length, ladder.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		return ladderResult{Path: path, Steps: path.Steps()}, nil
	})
}

// --- word_exists ---

type wordArgs struct {
	Word string `json:"word"`
}

func registerWordExists(srv *mcp.Server, solver *ladder.Solver) {
	tool := &mcp.Tool{
		Name:        "ladder_word_exists",
		Description: "Report whether a word is in the dictionary.",
		InputSchema: inputSchema(map[string]any{
			"word": map[string]any{"type": "string", "description": "Word to look up"},
		}, []string{"word"}),
	}

	addTool(srv, tool, func(_ context.Context, raw json.RawMessage) (any, error) {
		var a wordArgs
		if err := decode(raw, &a); err != nil {
			return nil, err
		}
		word := dictionary.Normalize(a.Word)
		return map[string]any{"word": word, "exists": solver.WordExists(word)}, nil
	})
}
