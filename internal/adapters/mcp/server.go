package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aretw0/motif"
	"github.com/aretw0/motif/internal/protocol"
	"github.com/aretw0/motif/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// FramesResponse is the structured payload returned by the load_frames tool.
type FramesResponse struct {
	Frames []domain.Frame `json:"frames" jsonschema_description:"Top-level frames with their layer trees"`
}

// GroupsResponse is the structured payload returned by the list_groups tool.
type GroupsResponse struct {
	Groups []*domain.AnimationGroup `json:"groups" jsonschema_description:"All stored animation groups"`
}

// Server wraps a protocol Host and exposes it as an MCP server.
type Server struct {
	host      *protocol.Host
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance around the given host.
func NewServer(host *protocol.Host) *Server {
	s := &Server{
		host:      host,
		mcpServer: server.NewMCPServer("motif-mcp", strings.TrimSpace(motif.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: load_frames
	loadTool := mcp.NewTool("load_frames",
		mcp.WithDescription("Load the scene's top-level frames and their layer trees."),
		mcp.WithOutputSchema[FramesResponse](),
	)
	s.mcpServer.AddTool(loadTool, mcp.NewStructuredToolHandler(s.handleLoadFrames))

	// TOOL: list_groups
	listTool := mcp.NewTool("list_groups",
		mcp.WithDescription("List all stored animation groups."),
		mcp.WithOutputSchema[GroupsResponse](),
	)
	s.mcpServer.AddTool(listTool, mcp.NewStructuredToolHandler(s.handleListGroups))

	// TOOL: create_animation_group
	createTool := mcp.NewTool("create_animation_group",
		mcp.WithDescription("Create (or overwrite) an animation group and persist it."),
		mcp.WithString("group", mcp.Required(), mcp.Description("JSON object with id, layerNames, keyframes and easing")),
	)
	s.mcpServer.AddTool(createTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw := request.GetString("group", "")
		var group map[string]any
		if err := json.Unmarshal([]byte(raw), &group); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid group JSON: %v", err)), nil
		}
		env := protocol.Envelope{
			"type":           string(protocol.MsgCreateGroup),
			"animationGroup": group,
		}
		if _, err := s.host.Handle(ctx, env); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("create failed: %v", err)), nil
		}
		return mcp.NewToolResultText("animation group created"), nil
	})

	// TOOL: update_keyframe
	updateTool := mcp.NewTool("update_keyframe",
		mcp.WithDescription("Replace one keyframe of a stored group and apply it to the scene."),
		mcp.WithString("group_id", mcp.Required(), mcp.Description("ID of the animation group")),
		mcp.WithString("keyframe", mcp.Required(), mcp.Description("JSON object with id and properties")),
	)
	s.mcpServer.AddTool(updateTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw := request.GetString("keyframe", "")
		var keyframe map[string]any
		if err := json.Unmarshal([]byte(raw), &keyframe); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid keyframe JSON: %v", err)), nil
		}
		env := protocol.Envelope{
			"type":           string(protocol.MsgUpdateKeyframe),
			"animationGroup": map[string]any{"id": request.GetString("group_id", "")},
			"keyframe":       keyframe,
		}
		if _, err := s.host.Handle(ctx, env); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("update failed: %v", err)), nil
		}
		return mcp.NewToolResultText("keyframe updated"), nil
	})

	// TOOL: preview
	previewTool := mcp.NewTool("preview",
		mcp.WithDescription("Apply all animation groups at a point in time without starting playback."),
		mcp.WithNumber("time", mcp.Required(), mcp.Description("Timeline position in seconds")),
	)
	s.mcpServer.AddTool(previewTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		at := request.GetFloat("time", 0)
		env := protocol.Envelope{
			"type":        string(protocol.MsgPreview),
			"previewTime": at,
		}
		if _, err := s.host.Handle(ctx, env); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("preview failed: %v", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("previewed at %gs", at)), nil
	})

	// TOOL: play
	playTool := mcp.NewTool("play",
		mcp.WithDescription("Start timed playback from the current playhead."),
		mcp.WithNumber("duration", mcp.Description("Playback duration in seconds (defaults to the longest group)")),
	)
	s.mcpServer.AddTool(playTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		env := protocol.Envelope{
			"type":     string(protocol.MsgPlay),
			"duration": request.GetFloat("duration", 0),
		}
		if _, err := s.host.Handle(ctx, env); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("play failed: %v", err)), nil
		}
		return mcp.NewToolResultText("playback started"), nil
	})

	// TOOL: stop
	s.mcpServer.AddTool(mcp.NewTool("stop",
		mcp.WithDescription("Stop playback, keeping the playhead where it is."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		env := protocol.Envelope{"type": string(protocol.MsgStop)}
		if _, err := s.host.Handle(ctx, env); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("stop failed: %v", err)), nil
		}
		return mcp.NewToolResultText("playback stopped"), nil
	})
}

// Structured tool handlers.

func (s *Server) handleLoadFrames(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (FramesResponse, error) {
	event, err := s.host.Handle(ctx, protocol.Envelope{"type": string(protocol.MsgLoadFrames)})
	if err != nil {
		return FramesResponse{}, fmt.Errorf("load frames failed: %w", err)
	}
	loaded, ok := event.(*protocol.FramesLoadedEvent)
	if !ok {
		return FramesResponse{}, fmt.Errorf("unexpected reply %T", event)
	}
	return FramesResponse{Frames: loaded.Frames}, nil
}

func (s *Server) handleListGroups(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (GroupsResponse, error) {
	groups, err := s.host.Groups().ListAll(ctx)
	if err != nil {
		return GroupsResponse{}, fmt.Errorf("list groups failed: %w", err)
	}
	return GroupsResponse{Groups: groups}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: motif://groups
	s.mcpServer.AddResource(mcp.NewResource("motif://groups", "Stored Animation Groups",
		mcp.WithMIMEType("application/json"),
	), s.handleGroupsResource)
}

func (s *Server) handleGroupsResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	groups, err := s.host.Groups().ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	jsonBytes, err := json.Marshal(groups)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal groups: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "motif://groups",
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
