// Package mcp exposes a resolved decay table as Model Context Protocol tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/decaytable"
	"github.com/aretw0/decaytable/internal/dto"
	"github.com/aretw0/decaytable/pkg/chain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// TableURI is the resource listing the decaying particles.
const TableURI = "decaytable://mothers"

// Table is the query surface exposed as tools. *decaytable.Parser implements it.
type Table interface {
	ListDecayMotherNames() ([]string, error)
	DecayModes(mother string, opts decaytable.PrintOptions) ([]decaytable.ModeRow, error)
	BuildDecayChains(mother string, stable ...string) (*chain.Chain, error)
	FinalStates(mother string, stable ...string) ([]chain.FinalState, error)
}

// ModesArgs are the arguments of the decay_modes tool.
type ModesArgs struct {
	Mother    string  `json:"mother"`
	Ascending bool    `json:"ascending"`
	Normalize bool    `json:"normalize"`
	Scale     float64 `json:"scale"`
}

// ChainArgs are the arguments of the decay_chain, final_states and flatten tools.
type ChainArgs struct {
	Mother string   `json:"mother"`
	Stable []string `json:"stable"`
}

// ModesResponse is the structured result of decay_modes.
type ModesResponse struct {
	Mother string          `json:"mother" jsonschema_description:"The decaying particle"`
	Modes  []dto.DecayMode `json:"modes" jsonschema_description:"Decay modes sorted by branching fraction"`
}

// FinalStatesResponse is the structured result of final_states.
type FinalStatesResponse struct {
	Mother string           `json:"mother" jsonschema_description:"The decaying particle"`
	States []dto.FinalState `json:"states" jsonschema_description:"Exclusive final states"`
}

// Server wraps a decay table and exposes it as an MCP Server.
type Server struct {
	table     Table
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(table Table, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		table:     table,
		logger:    logger,
		mcpServer: server.NewMCPServer("decaytable-mcp", strings.TrimSpace(decaytable.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_decays",
		mcp.WithDescription("List the decaying particles of the table in file order."),
	), s.handleListDecays)

	modesTool := mcp.NewTool("decay_modes",
		mcp.WithDescription("Get the decay modes of a particle, sorted by branching fraction."),
		mcp.WithString("mother", mcp.Required(), mcp.Description("The decaying particle, e.g. D0")),
		mcp.WithBoolean("ascending", mcp.Description("Sort by increasing branching fraction")),
		mcp.WithBoolean("normalize", mcp.Description("Rescale the fractions so they sum to scale")),
		mcp.WithNumber("scale", mcp.Description("Sum of the normalized fractions, in (0, 1]; default 1")),
		mcp.WithOutputSchema[ModesResponse](),
	)
	s.mcpServer.AddTool(modesTool, mcp.NewStructuredToolHandler(s.handleDecayModes))

	chainTool := mcp.NewTool("decay_chain",
		mcp.WithDescription("Expand a particle recursively into its nested decay chain."),
		mcp.WithString("mother", mcp.Required(), mcp.Description("The decaying particle")),
		mcp.WithArray("stable", mcp.Description("Particles that are not expanded"), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithOutputSchema[dto.Chain](),
	)
	s.mcpServer.AddTool(chainTool, mcp.NewStructuredToolHandler(s.handleDecayChain))

	finalTool := mcp.NewTool("final_states",
		mcp.WithDescription("Enumerate the exclusive final states of a particle with their branching fractions."),
		mcp.WithString("mother", mcp.Required(), mcp.Description("The decaying particle")),
		mcp.WithArray("stable", mcp.Description("Particles that are not expanded"), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithOutputSchema[FinalStatesResponse](),
	)
	s.mcpServer.AddTool(finalTool, mcp.NewStructuredToolHandler(s.handleFinalStates))

	flattenTool := mcp.NewTool("flatten",
		mcp.WithDescription("Collapse a decay chain into one decay. Every expanded particle must have exactly one mode."),
		mcp.WithString("mother", mcp.Required(), mcp.Description("The decaying particle")),
		mcp.WithArray("stable", mcp.Description("Particles that are not expanded"), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithOutputSchema[dto.Flat](),
	)
	s.mcpServer.AddTool(flattenTool, mcp.NewStructuredToolHandler(s.handleFlatten))
}

func (s *Server) handleListDecays(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := s.table.ListDecayMotherNames()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
	}
	return mcp.NewToolResultText(strings.Join(names, "\n")), nil
}

func (s *Server) handleDecayModes(ctx context.Context, request mcp.CallToolRequest, args ModesArgs) (ModesResponse, error) {
	opts := decaytable.DefaultPrintOptions()
	opts.Ascending = args.Ascending
	opts.Normalize = args.Normalize
	if args.Scale != 0 {
		opts.Scale = args.Scale
	}
	rows, err := s.table.DecayModes(args.Mother, opts)
	if err != nil {
		s.logger.Debug("MCP decay_modes rejected", "mother", args.Mother, "err", err)
		return ModesResponse{}, fmt.Errorf("decay modes failed: %w", err)
	}
	return ModesResponse{Mother: args.Mother, Modes: dto.Modes(rows)}, nil
}

func (s *Server) handleDecayChain(ctx context.Context, request mcp.CallToolRequest, args ChainArgs) (dto.Chain, error) {
	c, err := s.table.BuildDecayChains(args.Mother, args.Stable...)
	if err != nil {
		s.logger.Debug("MCP decay_chain rejected", "mother", args.Mother, "err", err)
		return dto.Chain{}, fmt.Errorf("decay chain failed: %w", err)
	}
	return *dto.FromChain(c), nil
}

func (s *Server) handleFinalStates(ctx context.Context, request mcp.CallToolRequest, args ChainArgs) (FinalStatesResponse, error) {
	states, err := s.table.FinalStates(args.Mother, args.Stable...)
	if err != nil {
		s.logger.Debug("MCP final_states rejected", "mother", args.Mother, "err", err)
		return FinalStatesResponse{}, fmt.Errorf("final states failed: %w", err)
	}
	return FinalStatesResponse{Mother: args.Mother, States: dto.FinalStates(states)}, nil
}

func (s *Server) handleFlatten(ctx context.Context, request mcp.CallToolRequest, args ChainArgs) (dto.Flat, error) {
	c, err := s.table.BuildDecayChains(args.Mother, args.Stable...)
	if err != nil {
		s.logger.Debug("MCP flatten rejected", "mother", args.Mother, "err", err)
		return dto.Flat{}, fmt.Errorf("flatten failed: %w", err)
	}
	flat, err := dto.Flatten(c, args.Stable...)
	if err != nil {
		s.logger.Debug("MCP flatten rejected", "mother", args.Mother, "err", err)
		return dto.Flat{}, fmt.Errorf("flatten failed: %w", err)
	}
	return *flat, nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(TableURI, "Decaying particles",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		names, err := s.table.ListDecayMotherNames()
		if err != nil {
			return nil, fmt.Errorf("failed to list decays: %w", err)
		}
		jsonBytes, _ := json.Marshal(names)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      TableURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
