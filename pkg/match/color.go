// Package match holds the shared matching utilities: color distance,
// fuzzy name scoring, and category-constrained fix matching.
package match

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// RGB is a parsed color in 8-bit channels.
type RGB struct {
	R, G, B float64
}

// Lightness is the perceptual proxy used for scale ordering: the mean of
// the normalized channels.
func (c RGB) Lightness() float64 {
	return (c.R + c.G + c.B) / 3 / 255
}

// Neutral reports whether the color is grayscale-like: channel spread
// small relative to the full range.
func (c RGB) Neutral() bool {
	max := math.Max(c.R, math.Max(c.G, c.B))
	min := math.Min(c.R, math.Min(c.G, c.B))
	return max-min <= 16
}

// Hex renders the color in canonical lowercase six-digit form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", int(math.Round(c.R)), int(math.Round(c.G)), int(math.Round(c.B)))
}

var (
	rgbFuncRe = regexp.MustCompile(`^rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)`)
	hslFuncRe = regexp.MustCompile(`^hsla?\(\s*(\d*\.?\d+)\s*,\s*(\d*\.?\d+)%\s*,\s*(\d*\.?\d+)%`)
)

// ParseColor parses hex (3/4/6/8 digit), rgb()/rgba(), and hsl()/hsla()
// literals. Alpha is ignored: drift cares about the base color.
func ParseColor(raw string) (RGB, bool) {
	s := strings.TrimSpace(strings.ToLower(raw))

	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	if m := rgbFuncRe.FindStringSubmatch(s); m != nil {
		r, _ := strconv.ParseFloat(m[1], 64)
		g, _ := strconv.ParseFloat(m[2], 64)
		b, _ := strconv.ParseFloat(m[3], 64)
		if r > 255 || g > 255 || b > 255 {
			return RGB{}, false
		}
		return RGB{r, g, b}, true
	}
	if m := hslFuncRe.FindStringSubmatch(s); m != nil {
		h, _ := strconv.ParseFloat(m[1], 64)
		sat, _ := strconv.ParseFloat(m[2], 64)
		l, _ := strconv.ParseFloat(m[3], 64)
		return hslToRGB(h, sat/100, l/100), true
	}
	return RGB{}, false
}

func parseHex(digits string) (RGB, bool) {
	switch len(digits) {
	case 3, 4:
		digits = expandShortHex(digits[:3])
	case 6:
	case 8:
		digits = digits[:6]
	default:
		return RGB{}, false
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{
		R: float64(v >> 16 & 0xff),
		G: float64(v >> 8 & 0xff),
		B: float64(v & 0xff),
	}, true
}

func expandShortHex(digits string) string {
	var b strings.Builder
	for _, c := range digits {
		b.WriteRune(c)
		b.WriteRune(c)
	}
	return b.String()
}

func hslToRGB(h, s, l float64) RGB {
	h = math.Mod(h, 360) / 360
	if s == 0 {
		v := l * 255
		return RGB{v, v, v}
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	conv := func(t float64) float64 {
		if t < 0 {
			t++
		}
		if t > 1 {
			t--
		}
		switch {
		case t < 1.0/6:
			return p + (q-p)*6*t
		case t < 1.0/2:
			return q
		case t < 2.0/3:
			return p + (q-p)*(2.0/3-t)*6
		}
		return p
	}
	return RGB{
		R: math.Round(conv(h+1.0/3) * 255),
		G: math.Round(conv(h) * 255),
		B: math.Round(conv(h-1.0/3) * 255),
	}
}

// maxColorDistance is the RGB-space diagonal, sqrt(3 * 255^2).
var maxColorDistance = math.Sqrt(3 * 255 * 255)

// DefaultColorThreshold is the similarity above which two colors count as
// a token match.
const DefaultColorThreshold = 80.0

// ColorSimilarity scores two color literals 0 to 100 by Euclidean distance
// in RGB space. Unparseable input scores 0.
func ColorSimilarity(a, b string) float64 {
	ca, ok := ParseColor(a)
	if !ok {
		return 0
	}
	cb, ok := ParseColor(b)
	if !ok {
		return 0
	}
	return RGBSimilarity(ca, cb)
}

// RGBSimilarity scores two parsed colors 0 to 100.
func RGBSimilarity(a, b RGB) float64 {
	d := math.Sqrt((a.R-b.R)*(a.R-b.R) + (a.G-b.G)*(a.G-b.G) + (a.B-b.B)*(a.B-b.B))
	return (1 - d/maxColorDistance) * 100
}

// ColorsMatch applies the default acceptance threshold.
func ColorsMatch(a, b string) bool {
	return ColorSimilarity(a, b) >= DefaultColorThreshold
}
