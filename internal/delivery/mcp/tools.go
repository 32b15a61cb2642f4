package mcp

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"

	"github.com/messmeal/backend/internal/domain"
	"github.com/messmeal/backend/internal/usecase"
)

// Tool names served by ToolServer
const (
	ToolSearchFood       = "search_food"
	ToolCalculateTargets = "calculate_targets"
	ToolResolveMenu      = "resolve_menu"
)

// SearchFoodParams are the arguments of search_food
type SearchFoodParams struct {
	Name string `json:"name" description:"Food name as printed on the menu"`
}

// CalculateTargetsParams are the arguments of calculate_targets
type CalculateTargetsParams struct {
	Age           int                  `json:"age" description:"Age in years"`
	Height        float64              `json:"height" description:"Height in cm"`
	Weight        float64              `json:"weight" description:"Weight in kg"`
	Gender        domain.Gender        `json:"gender,omitempty" description:"male or female (defaults to male)"`
	Goal          domain.Goal          `json:"goal" description:"bulk, cut or maintain"`
	ActivityLevel domain.ActivityLevel `json:"activity_level,omitempty" description:"sedentary, light, moderate, active or very_active"`
}

// ToolInfo describes one tool for listing
type ToolInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Arguments   []string `json:"arguments"`
}

type toolHandler func(req *protocol.CallToolRequest) (*protocol.CallToolResult, error)

// ToolServer exposes the nutrition engine as MCP tools over plain JSON calls
type ToolServer struct {
	planner  *usecase.PlannerService
	info     protocol.Implementation
	tools    []ToolInfo
	handlers map[string]toolHandler
}

// NewToolServer creates a tool server backed by the planner service
func NewToolServer(planner *usecase.PlannerService) *ToolServer {
	s := &ToolServer{
		planner: planner,
		info: protocol.Implementation{
			Name:    "mess-meal-planner",
			Version: "1.0.0",
		},
	}

	s.register(ToolInfo{
		Name:        ToolSearchFood,
		Description: "Resolve a mess-hall food name to its nutrition per serving",
		Arguments:   []string{"name"},
	}, s.handleSearchFood)
	s.register(ToolInfo{
		Name:        ToolCalculateTargets,
		Description: "Compute TDEE and daily macro targets from body metrics and goal",
		Arguments:   []string{"age", "height", "weight", "gender", "goal", "activity_level"},
	}, s.handleCalculateTargets)
	s.register(ToolInfo{
		Name:        ToolResolveMenu,
		Description: "Annotate an extracted menu with nutrition for every food",
		Arguments:   []string{"menus"},
	}, s.handleResolveMenu)

	return s
}

func (s *ToolServer) register(info ToolInfo, handler toolHandler) {
	if s.handlers == nil {
		s.handlers = make(map[string]toolHandler)
	}
	s.tools = append(s.tools, info)
	s.handlers[info.Name] = handler
	log.Printf("[MCP] Registered tool: %s", info.Name)
}

// Info returns the server implementation info
func (s *ToolServer) Info() protocol.Implementation {
	return s.info
}

// Tools lists the served tools sorted by name
func (s *ToolServer) Tools() []ToolInfo {
	tools := make([]ToolInfo, len(s.tools))
	copy(tools, s.tools)
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name < tools[j].Name })
	return tools
}

// Call routes a tool call to its handler
func (s *ToolServer) Call(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	if req == nil || strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: tool name is required", domain.ErrInvalidRequest)
	}

	handler, ok := s.handlers[req.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTool, req.Name)
	}
	return handler(req)
}

func (s *ToolServer) handleSearchFood(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params SearchFoodParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidRequest)
	}

	return createJSONResponse(s.planner.SearchFood(params.Name))
}

func (s *ToolServer) handleCalculateTargets(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params CalculateTargetsParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	if params.Age <= 0 || params.Height <= 0 || params.Weight <= 0 {
		return nil, fmt.Errorf("%w: age, height and weight must be positive", domain.ErrInvalidRequest)
	}
	if params.Goal == "" {
		return nil, fmt.Errorf("%w: goal is required", domain.ErrInvalidRequest)
	}

	targets := s.planner.SetupProfile(domain.BiometricProfile{
		Age:           params.Age,
		Height:        params.Height,
		Weight:        params.Weight,
		Gender:        params.Gender,
		Goal:          params.Goal,
		ActivityLevel: params.ActivityLevel,
	})
	return createJSONResponse(targets)
}

func (s *ToolServer) handleResolveMenu(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var structure domain.MenuStructure
	if err := extractParams(req, &structure); err != nil {
		return nil, err
	}

	menus := s.planner.ResolveMenu(structure)
	return createJSONResponse(map[string]interface{}{
		"menus": menus,
		"count": len(menus),
	})
}

// extractParams converts the request arguments into target
func extractParams(req *protocol.CallToolRequest, target interface{}) error {
	jsonBytes, err := json.Marshal(req.Arguments)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal arguments: %v", domain.ErrInvalidRequest, err)
	}

	if err := json.Unmarshal(jsonBytes, target); err != nil {
		return fmt.Errorf("%w: failed to unmarshal parameters: %v", domain.ErrInvalidRequest, err)
	}
	return nil
}

func createJSONResponse(data interface{}) (*protocol.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}

	return &protocol.CallToolResult{
		Content: []protocol.Content{
			protocol.TextContent{
				Type: "text",
				Text: string(jsonBytes),
			},
		},
	}, nil
}
