package mcp

import "github.com/mark3labs/mcp-go/mcp"

func scanProjectTool() mcp.Tool {
	return mcp.NewTool("scan_project",
		mcp.WithDescription("Scan a project directory for hardcoded design values. Returns scan id, file stats, and signal counts."),
		mcp.WithString("root",
			mcp.Required(),
			mcp.Description("Absolute path of the project directory to scan"),
		),
		mcp.WithString("include",
			mcp.Description("Comma-separated include globs, overrides the defaults (e.g. 'src/**/*.tsx,src/**/*.css')"),
		),
		mcp.WithString("exclude",
			mcp.Description("Comma-separated exclude globs added to the defaults"),
		),
	)
}

func getSignalStatsTool() mcp.Tool {
	return mcp.NewTool("get_signal_stats",
		mcp.WithDescription("Signal counts by type and by file for a scan. Defaults to the most recent scan."),
		mcp.WithString("scan_id",
			mcp.Description("Scan id; omit for the most recent scan"),
		),
	)
}

func getTokensTool() mcp.Tool {
	return mcp.NewTool("get_tokens",
		mcp.WithDescription("Synthesized design tokens for a scan, with optional category filtering and generated CSS."),
		mcp.WithString("scan_id",
			mcp.Description("Scan id; omit for the most recent scan"),
		),
		mcp.WithString("category",
			mcp.Description("Restrict to one token category (color, spacing, radius, border, typography, shadow, breakpoint)"),
		),
		mcp.WithString("name",
			mcp.Description("Fuzzy token name lookup; results come back best match first"),
		),
		mcp.WithBoolean("include_css",
			mcp.Description("Include the generated :root stylesheet in the response"),
		),
	)
}

func getDriftGroupsTool() mcp.Tool {
	return mcp.NewTool("get_drift_groups",
		mcp.WithDescription("Drift findings grouped into actionable clusters. Defaults to the most recent scan."),
		mcp.WithString("scan_id",
			mcp.Description("Scan id; omit for the most recent scan"),
		),
		mcp.WithString("strategies",
			mcp.Description("Comma-separated grouping strategies in priority order (value, suggestion, path, entity)"),
		),
		mcp.WithNumber("min_group_size",
			mcp.Description("Minimum signals per group, default 2"),
		),
	)
}

func suggestFixTool() mcp.Tool {
	return mcp.NewTool("suggest_fix",
		mcp.WithDescription("Closest design token for one hardcoded value, with a confidence tier."),
		mcp.WithString("drift_type",
			mcp.Required(),
			mcp.Description("Drift type (hardcoded-color, hardcoded-spacing, hardcoded-radius, hardcoded-font-size, hardcoded-shadow)"),
		),
		mcp.WithString("value",
			mcp.Required(),
			mcp.Description("The hardcoded value to replace (e.g. '13px', '#ff0001')"),
		),
		mcp.WithString("scan_id",
			mcp.Description("Scan whose token set to match against; omit for the most recent scan"),
		),
	)
}

func listScansTool() mcp.Tool {
	return mcp.NewTool("list_scans",
		mcp.WithDescription("Persisted scans, newest first. Requires a configured store."),
	)
}
