package synth

import (
	"fmt"
	"strings"
)

// categoryOrder fixes the stylesheet section order.
var categoryOrder = []Category{
	CategoryColor,
	CategorySpacing,
	CategoryRadius,
	CategoryBorder,
	CategoryTypography,
	CategoryShadow,
	CategoryBreakpoint,
	CategoryOther,
}

// categoryHeaders carries hand-written plurals; "Border Radii" is not a
// naive +s away from its category name.
var categoryHeaders = map[Category]string{
	CategoryColor:      "Colors",
	CategorySpacing:    "Spacing",
	CategoryRadius:     "Border Radii",
	CategoryBorder:     "Border Widths",
	CategoryTypography: "Font Sizes",
	CategoryShadow:     "Shadows",
	CategoryBreakpoint: "Breakpoints",
	CategoryOther:      "Other",
}

// GenerateCSS renders the token set as a :root block, one custom property
// per token, grouped under a comment header per non-empty category.
func GenerateCSS(tokens []DesignToken) string {
	if len(tokens) == 0 {
		return ""
	}

	byCat := map[Category][]DesignToken{}
	for _, t := range tokens {
		byCat[t.Category] = append(byCat[t.Category], t)
	}

	var b strings.Builder
	b.WriteString(":root {\n")
	first := true
	for _, cat := range categoryOrder {
		group := byCat[cat]
		if len(group) == 0 {
			continue
		}
		if !first {
			b.WriteString("\n")
		}
		first = false
		fmt.Fprintf(&b, "  /* %s */\n", categoryHeaders[cat])
		for _, t := range group {
			fmt.Fprintf(&b, "  --%s: %s;\n", t.Name, t.Value.Raw)
		}
	}
	b.WriteString("}\n")
	return b.String()
}
