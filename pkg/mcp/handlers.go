package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/driftlens/driftlens/pkg/drift"
	"github.com/driftlens/driftlens/pkg/match"
	"github.com/driftlens/driftlens/pkg/scanner"
	"github.com/driftlens/driftlens/pkg/store"
	"github.com/driftlens/driftlens/pkg/synth"
)

func (s *Server) handleScanProject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := req.RequireString("root")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cfg := scanner.DefaultScanConfig()
	if inc := req.GetString("include", ""); inc != "" {
		cfg.Include = splitList(inc)
	}
	if exc := req.GetString("exclude", ""); exc != "" {
		cfg.Exclude = append(cfg.Exclude, splitList(exc)...)
	}

	result, err := s.scanner.Run(root, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scan failed: %v", err)), nil
	}

	var id string
	if s.store != nil {
		id, err = s.store.SaveScan(root, result)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("persist scan: %v", err)), nil
		}
	}

	rec := &store.ScanRecord{ID: id, Root: root, CreatedAt: time.Now().UTC(), Result: *result}
	s.mu.Lock()
	s.last = rec
	s.mu.Unlock()

	return jsonResult(map[string]any{
		"scanId":        id,
		"persisted":     s.store != nil,
		"stats":         result.Stats,
		"signalsByType": typeCounts(rec),
	})
}

func (s *Server) handleGetSignalStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rec, rerr := s.resolveScan(req.GetString("scan_id", ""))
	if rerr != nil {
		return mcp.NewToolResultError(rerr.Error()), nil
	}

	byFile := make(map[string]int, len(rec.Result.Files))
	for _, f := range rec.Result.Files {
		if len(f.Signals) > 0 {
			byFile[f.Path] = len(f.Signals)
		}
	}

	return jsonResult(map[string]any{
		"scanId": rec.ID,
		"root":   rec.Root,
		"total":  len(rec.Result.Signals),
		"byType": typeCounts(rec),
		"byFile": byFile,
	})
}

func (s *Server) handleGetTokens(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rec, rerr := s.resolveScan(req.GetString("scan_id", ""))
	if rerr != nil {
		return mcp.NewToolResultError(rerr.Error()), nil
	}
	res, err := s.tokensFor(rec)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	tokens := res.Tokens
	if cat := req.GetString("category", ""); cat != "" {
		filtered := tokens[:0:0]
		for _, tok := range tokens {
			if string(tok.Category) == cat {
				filtered = append(filtered, tok)
			}
		}
		tokens = filtered
	}
	if name := req.GetString("name", ""); name != "" {
		tokens = tokensByName(tokens, name)
	}

	payload := map[string]any{"scanId": rec.ID, "tokens": tokens}
	if req.GetBool("include_css", false) {
		payload["css"] = res.CSS
	}
	return jsonResult(payload)
}

func (s *Server) handleGetDriftGroups(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rec, rerr := s.resolveScan(req.GetString("scan_id", ""))
	if rerr != nil {
		return mcp.NewToolResultError(rerr.Error()), nil
	}
	tokens, err := s.tokensFor(rec)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cfg := drift.Config{MinGroupSize: req.GetInt("min_group_size", 0)}
	if raw := req.GetString("strategies", ""); raw != "" {
		cfg.Passes = drift.BuiltinPasses(splitList(raw)...)
	}
	agg, err := drift.NewAggregator(cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := agg.Aggregate(drift.Detect(rec.Result.Signals, tokens.Tokens))
	if s.store != nil && rec.ID != "" {
		if serr := s.store.SaveDrift(rec.ID, result); serr != nil {
			s.log.Warn("persist drift result failed", "scanId", rec.ID, "error", serr)
		}
	}
	return jsonResult(result)
}

func (s *Server) handleSuggestFix(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	driftType, err := req.RequireString("drift_type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	value, err := req.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rec, rerr := s.resolveScan(req.GetString("scan_id", ""))
	if rerr != nil {
		return mcp.NewToolResultError(rerr.Error()), nil
	}
	tokens, terr := s.tokensFor(rec)
	if terr != nil {
		return mcp.NewToolResultError(terr.Error()), nil
	}

	fix, ok := match.BestFix(driftType, value, drift.Candidates(tokens.Tokens))
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no %s token close enough to %q", driftType, value)), nil
	}
	return jsonResult(map[string]any{
		"token":      fix.Candidate.Name,
		"tokenValue": fix.Candidate.Value,
		"confidence": fix.Confidence,
		"score":      fix.Score,
		"suggestion": fmt.Sprintf("%s → %s (%s)", value, fix.Candidate.Name, fix.Confidence),
	})
}

func (s *Server) handleListScans(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.store == nil {
		return mcp.NewToolResultError("no store configured; scans are not persisted"), nil
	}
	recs, err := s.store.ListScans()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out := make([]map[string]any, 0, len(recs))
	for _, r := range recs {
		out = append(out, map[string]any{
			"id":        r.ID,
			"root":      r.Root,
			"createdAt": r.CreatedAt.Format(time.RFC3339),
		})
	}
	return jsonResult(out)
}

// resolveScan picks the scan a tool call refers to: an explicit id from
// the store, otherwise the in-memory result of the last scan_project
// call, otherwise the newest persisted scan.
func (s *Server) resolveScan(scanID string) (*store.ScanRecord, error) {
	if scanID != "" {
		if s.store == nil {
			return nil, fmt.Errorf("scan_id given but no store configured")
		}
		rec, err := s.store.GetScan(scanID)
		if err != nil {
			return nil, fmt.Errorf("load scan %q: %w", scanID, err)
		}
		return rec, nil
	}

	s.mu.Lock()
	last := s.last
	s.mu.Unlock()
	if last != nil {
		return last, nil
	}

	if s.store != nil {
		rec, err := s.store.LatestScan()
		if err != nil {
			return nil, err
		}
		if rec != nil {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("no scan available, call scan_project first")
}

// tokensFor returns the token set for a scan, preferring a persisted
// synthesis result and computing (and persisting) one otherwise.
func (s *Server) tokensFor(rec *store.ScanRecord) (synth.Result, error) {
	if s.store != nil && rec.ID != "" {
		saved, err := s.store.GetTokens(rec.ID)
		if err != nil {
			return synth.Result{}, err
		}
		if saved != nil {
			return *saved, nil
		}
	}

	res := synth.Synthesize(synth.FromSignals(rec.Result.Signals))
	if s.store != nil && rec.ID != "" {
		if err := s.store.SaveTokens(rec.ID, res); err != nil {
			s.log.Warn("persist token set failed", "scanId", rec.ID, "error", err)
		}
	}
	return res, nil
}

// minNameScore keeps fuzzy name lookups from returning every token.
const minNameScore = 40

// tokensByName filters tokens by fuzzy name match, best score first.
func tokensByName(tokens []synth.DesignToken, name string) []synth.DesignToken {
	type scored struct {
		tok   synth.DesignToken
		score float64
	}
	var hits []scored
	for _, tok := range tokens {
		if sc := match.NameScore(name, tok.Name); sc >= minNameScore {
			hits = append(hits, scored{tok: tok, score: sc})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	out := make([]synth.DesignToken, len(hits))
	for i, h := range hits {
		out[i] = h.tok
	}
	return out
}

func typeCounts(rec *store.ScanRecord) map[string]int {
	counts := make(map[string]int)
	for _, sig := range rec.Result.Signals {
		counts[string(sig.Type)]++
	}
	return counts
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
