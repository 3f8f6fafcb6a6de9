package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftlens/driftlens/pkg/scanner"
	"github.com/driftlens/driftlens/pkg/store"
)

// --- helpers ---

func fixtureProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"app.css":  ".app { margin: 16px; padding: 13px; }",
		"card.css": ".card { margin: 16px; color: #1e90ff; }",
		"nav.css":  ".nav { margin: 16px; }",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0o644))
	}
	return root
}

func testServer(t *testing.T) (*Server, string) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "driftlens.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	s := NewServer(scanner.NewScanner(nil, nil), st, nil, nil)
	return s, fixtureProject(t)
}

func makeRequest(toolName string, args map[string]any) mcp.CallToolRequest {
	var arguments any
	if args != nil {
		arguments = args
	}
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      toolName,
			Arguments: arguments,
		},
	}
}

func callTool(t *testing.T, s *Server, req mcp.CallToolRequest) *mcp.CallToolResult {
	t.Helper()
	var handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

	switch req.Params.Name {
	case "scan_project":
		handler = s.handleScanProject
	case "get_signal_stats":
		handler = s.handleGetSignalStats
	case "get_tokens":
		handler = s.handleGetTokens
	case "get_drift_groups":
		handler = s.handleGetDriftGroups
	case "suggest_fix":
		handler = s.handleSuggestFix
	case "list_scans":
		handler = s.handleListScans
	default:
		t.Fatalf("unknown tool: %s", req.Params.Name)
	}

	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func resultJSON(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return textContent.Text
}

func scanOnce(t *testing.T, s *Server, root string) string {
	t.Helper()
	result := callTool(t, s, makeRequest("scan_project", map[string]any{"root": root}))
	require.False(t, result.IsError, resultJSON(t, result))

	var payload struct {
		ScanID string `json:"scanId"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &payload))
	return payload.ScanID
}

// --- scan_project ---

func TestHandleScanProject(t *testing.T) {
	s, root := testServer(t)
	result := callTool(t, s, makeRequest("scan_project", map[string]any{"root": root}))
	assert.False(t, result.IsError)

	var payload struct {
		ScanID        string            `json:"scanId"`
		Persisted     bool              `json:"persisted"`
		Stats         scanner.ScanStats `json:"stats"`
		SignalsByType map[string]int    `json:"signalsByType"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &payload))
	assert.NotEmpty(t, payload.ScanID)
	assert.True(t, payload.Persisted)
	assert.Equal(t, 3, payload.Stats.FilesDiscovered)
	assert.Equal(t, 4, payload.SignalsByType["spacing-value"])
	assert.Equal(t, 1, payload.SignalsByType["color-value"])
}

func TestHandleScanProject_MissingRoot(t *testing.T) {
	s, _ := testServer(t)
	result := callTool(t, s, makeRequest("scan_project", nil))
	assert.True(t, result.IsError)
}

func TestHandleScanProject_WithoutStore(t *testing.T) {
	s := NewServer(scanner.NewScanner(nil, nil), nil, nil, nil)
	root := fixtureProject(t)

	result := callTool(t, s, makeRequest("scan_project", map[string]any{"root": root}))
	assert.False(t, result.IsError)

	var payload struct {
		ScanID    string `json:"scanId"`
		Persisted bool   `json:"persisted"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &payload))
	assert.Empty(t, payload.ScanID)
	assert.False(t, payload.Persisted)

	// Followup tools still work, served from memory.
	tokens := callTool(t, s, makeRequest("get_tokens", nil))
	assert.False(t, tokens.IsError)
}

// --- get_signal_stats ---

func TestHandleGetSignalStats(t *testing.T) {
	s, root := testServer(t)
	scanOnce(t, s, root)

	result := callTool(t, s, makeRequest("get_signal_stats", nil))
	assert.False(t, result.IsError)

	var payload struct {
		Total  int            `json:"total"`
		ByType map[string]int `json:"byType"`
		ByFile map[string]int `json:"byFile"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &payload))
	assert.Equal(t, 5, payload.Total)
	assert.Equal(t, 4, payload.ByType["spacing-value"])
	assert.Len(t, payload.ByFile, 3)
}

func TestHandleGetSignalStats_ExplicitScanID(t *testing.T) {
	s, root := testServer(t)
	id := scanOnce(t, s, root)

	result := callTool(t, s, makeRequest("get_signal_stats", map[string]any{"scan_id": id}))
	assert.False(t, result.IsError)
}

func TestHandleGetSignalStats_NoScan(t *testing.T) {
	s, _ := testServer(t)
	result := callTool(t, s, makeRequest("get_signal_stats", nil))
	assert.True(t, result.IsError)
}

// --- get_tokens ---

func TestHandleGetTokens(t *testing.T) {
	s, root := testServer(t)
	scanOnce(t, s, root)

	result := callTool(t, s, makeRequest("get_tokens", map[string]any{"include_css": true}))
	assert.False(t, result.IsError)

	var payload struct {
		Tokens []struct {
			Name     string `json:"name"`
			Category string `json:"category"`
		} `json:"tokens"`
		CSS string `json:"css"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &payload))

	names := map[string]string{}
	for _, tok := range payload.Tokens {
		names[tok.Name] = tok.Category
	}
	// 13px and 16px sit more than the spacing tolerance apart, so two tokens.
	assert.Equal(t, "spacing", names["spacing-1"])
	assert.Equal(t, "spacing", names["spacing-2"])
	assert.Equal(t, "color", names["color-1"])
	assert.Contains(t, payload.CSS, "--spacing-2: 16px;")
}

func TestHandleGetTokens_CategoryFilter(t *testing.T) {
	s, root := testServer(t)
	scanOnce(t, s, root)

	result := callTool(t, s, makeRequest("get_tokens", map[string]any{"category": "spacing"}))

	var payload struct {
		Tokens []struct {
			Category string `json:"category"`
		} `json:"tokens"`
		CSS string `json:"css"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &payload))
	require.NotEmpty(t, payload.Tokens)
	for _, tok := range payload.Tokens {
		assert.Equal(t, "spacing", tok.Category)
	}
	assert.Empty(t, payload.CSS, "css only included on request")
}

func TestHandleGetTokens_NameLookup(t *testing.T) {
	s, root := testServer(t)
	scanOnce(t, s, root)

	result := callTool(t, s, makeRequest("get_tokens", map[string]any{"name": "spacing-2"}))
	assert.False(t, result.IsError)

	var payload struct {
		Tokens []struct {
			Name string `json:"name"`
		} `json:"tokens"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &payload))

	// Exact match first, sibling spacing token by word overlap, the
	// color token scores below the cutoff.
	require.Len(t, payload.Tokens, 2)
	assert.Equal(t, "spacing-2", payload.Tokens[0].Name)
	assert.Equal(t, "spacing-1", payload.Tokens[1].Name)
}

// --- get_drift_groups ---

func TestHandleGetDriftGroups(t *testing.T) {
	s, root := testServer(t)
	scanOnce(t, s, root)

	result := callTool(t, s, makeRequest("get_drift_groups", nil))
	assert.False(t, result.IsError)

	var payload struct {
		Groups []struct {
			GroupingKey struct {
				Strategy string `json:"strategy"`
				Value    string `json:"value"`
			} `json:"groupingKey"`
			TotalCount int `json:"totalCount"`
		} `json:"groups"`
		Ungrouped    []any `json:"ungrouped"`
		TotalSignals int   `json:"totalSignals"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &payload))
	assert.Equal(t, 5, payload.TotalSignals)

	grouped := 0
	var keys []string
	for _, g := range payload.Groups {
		grouped += g.TotalCount
		keys = append(keys, g.GroupingKey.Value)
	}
	assert.Equal(t, payload.TotalSignals, grouped+len(payload.Ungrouped))
	// The three identical margins share an exact spacing-2 suggestion.
	assert.Contains(t, keys, "spacing-2")
}

func TestHandleGetDriftGroups_UnknownStrategy(t *testing.T) {
	s, root := testServer(t)
	scanOnce(t, s, root)

	result := callTool(t, s, makeRequest("get_drift_groups", map[string]any{"strategies": "bogus"}))
	assert.True(t, result.IsError)
}

// --- suggest_fix ---

func TestHandleSuggestFix(t *testing.T) {
	s, root := testServer(t)
	scanOnce(t, s, root)

	result := callTool(t, s, makeRequest("suggest_fix", map[string]any{
		"drift_type": "hardcoded-spacing",
		"value":      "15px",
	}))
	assert.False(t, result.IsError)

	var payload struct {
		Token      string `json:"token"`
		Confidence string `json:"confidence"`
		Suggestion string `json:"suggestion"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &payload))
	assert.Equal(t, "spacing-2", payload.Token)
	assert.Equal(t, "medium", payload.Confidence)
	assert.Equal(t, "15px → spacing-2 (medium)", payload.Suggestion)
}

func TestHandleSuggestFix_ExactColor(t *testing.T) {
	s, root := testServer(t)
	scanOnce(t, s, root)

	result := callTool(t, s, makeRequest("suggest_fix", map[string]any{
		"drift_type": "hardcoded-color",
		"value":      "#1e90ff",
	}))
	assert.False(t, result.IsError)

	var payload struct {
		Confidence string `json:"confidence"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &payload))
	assert.Equal(t, "exact", payload.Confidence)
}

func TestHandleSuggestFix_NoCloseToken(t *testing.T) {
	s, root := testServer(t)
	scanOnce(t, s, root)

	result := callTool(t, s, makeRequest("suggest_fix", map[string]any{
		"drift_type": "hardcoded-spacing",
		"value":      "400px",
	}))
	assert.True(t, result.IsError)
}

// --- list_scans ---

func TestHandleListScans(t *testing.T) {
	s, root := testServer(t)
	scanOnce(t, s, root)
	scanOnce(t, s, root)

	result := callTool(t, s, makeRequest("list_scans", nil))
	assert.False(t, result.IsError)

	var scans []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &scans))
	assert.Len(t, scans, 2)
}

func TestHandleListScans_NoStore(t *testing.T) {
	s := NewServer(scanner.NewScanner(nil, nil), nil, nil, nil)
	result := callTool(t, s, makeRequest("list_scans", nil))
	assert.True(t, result.IsError)
}
