package mcp

import (
	"encoding/json"
	"testing"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/messmeal/backend/internal/domain"
	"github.com/messmeal/backend/internal/infrastructure/catalog"
	"github.com/messmeal/backend/internal/usecase"
)

func newTestToolServer() *ToolServer {
	planner := usecase.NewPlannerService(
		catalog.New(catalog.MessHallFoods()),
		nil, nil, nil,
		usecase.PlannerServiceConfig{},
	)
	return NewToolServer(planner)
}

// decodeText unmarshals the single text content of a tool result
func decodeText(t *testing.T, result *protocol.CallToolResult, target interface{}) {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(protocol.TextContent)
	require.True(t, ok, "content should be text")
	assert.Equal(t, "text", text.Type)
	require.NoError(t, json.Unmarshal([]byte(text.Text), target))
}

func TestTools(t *testing.T) {
	server := newTestToolServer()

	tools := server.Tools()

	require.Len(t, tools, 3)
	assert.Equal(t, ToolCalculateTargets, tools[0].Name)
	assert.Equal(t, ToolResolveMenu, tools[1].Name)
	assert.Equal(t, ToolSearchFood, tools[2].Name)
	assert.Equal(t, "mess-meal-planner", server.Info().Name)
}

func TestCall_SearchFood(t *testing.T) {
	server := newTestToolServer()

	result, err := server.Call(&protocol.CallToolRequest{
		Name:      ToolSearchFood,
		Arguments: map[string]interface{}{"name": "  PANEER "},
	})
	require.NoError(t, err)

	var match domain.FoodMatch
	decodeText(t, result, &match)
	assert.True(t, match.Matched)
	assert.Equal(t, domain.MatchExact, match.Match)
	assert.Equal(t, "Paneer", match.Name)
	assert.Equal(t, 265.0, match.Calories)
}

func TestCall_SearchFoodUnknownGetsDefault(t *testing.T) {
	server := newTestToolServer()

	result, err := server.Call(&protocol.CallToolRequest{
		Name:      ToolSearchFood,
		Arguments: map[string]interface{}{"name": "xyzzy"},
	})
	require.NoError(t, err)

	var match domain.FoodMatch
	decodeText(t, result, &match)
	assert.False(t, match.Matched)
	assert.Equal(t, domain.MatchDefault, match.Match)
	assert.Equal(t, "xyzzy", match.Name)
}

func TestCall_CalculateTargets(t *testing.T) {
	server := newTestToolServer()

	result, err := server.Call(&protocol.CallToolRequest{
		Name: ToolCalculateTargets,
		Arguments: map[string]interface{}{
			"age": 25, "height": 180, "weight": 75, "goal": "bulk", "activity_level": "moderate",
		},
	})
	require.NoError(t, err)

	var targets domain.ProfileTargets
	decodeText(t, result, &targets)
	assert.Equal(t, 2720, targets.TDEE)
	assert.Equal(t, domain.MacroTargets{Calories: 3020, Protein: 150, Carbs: 416, Fats: 84}, targets.Targets)
}

func TestCall_ResolveMenu(t *testing.T) {
	server := newTestToolServer()

	result, err := server.Call(&protocol.CallToolRequest{
		Name: ToolResolveMenu,
		Arguments: map[string]interface{}{
			"menus": []interface{}{
				map[string]interface{}{
					"date": "2025-11-03", "day": "Monday",
					"meals": map[string]interface{}{"Breakfast": []interface{}{"Poha"}},
				},
			},
		},
	})
	require.NoError(t, err)

	var payload struct {
		Menus []domain.ResolvedMenuEntry `json:"menus"`
		Count int                        `json:"count"`
	}
	decodeText(t, result, &payload)
	assert.Equal(t, 1, payload.Count)
	require.Len(t, payload.Menus, 1)
	breakfast, ok := payload.Menus[0].Meals.Get("Breakfast")
	require.True(t, ok)
	poha, ok := breakfast.Get("Poha")
	require.True(t, ok)
	assert.Equal(t, 160.0, poha.Calories)
}

func TestCall_Errors(t *testing.T) {
	server := newTestToolServer()

	tests := []struct {
		name    string
		req     *protocol.CallToolRequest
		wantErr error
	}{
		{"nil request", nil, domain.ErrInvalidRequest},
		{"missing tool name", &protocol.CallToolRequest{}, domain.ErrInvalidRequest},
		{"unknown tool", &protocol.CallToolRequest{Name: "log_meal"}, domain.ErrUnknownTool},
		{
			"search without name",
			&protocol.CallToolRequest{Name: ToolSearchFood, Arguments: map[string]interface{}{}},
			domain.ErrInvalidRequest,
		},
		{
			"targets with wrong argument type",
			&protocol.CallToolRequest{Name: ToolCalculateTargets, Arguments: map[string]interface{}{"age": "old"}},
			domain.ErrInvalidRequest,
		},
		{
			"targets without goal",
			&protocol.CallToolRequest{Name: ToolCalculateTargets, Arguments: map[string]interface{}{
				"age": 30, "height": 170, "weight": 70,
			}},
			domain.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := server.Call(tt.req)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
