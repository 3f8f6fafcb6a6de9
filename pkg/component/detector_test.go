package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftlens/driftlens/pkg/signal"
)

func newTestDetector(t *testing.T) *Detector {
	t.Helper()
	d := NewDetector(nil)
	t.Cleanup(d.Close)
	return d
}

func names(sigs []signal.RawSignal) []string {
	out := make([]string, len(sigs))
	for i, s := range sigs {
		out[i] = s.Value
	}
	return out
}

func TestDetect_FunctionComponent(t *testing.T) {
	d := newTestDetector(t)
	src := `
function Button(props) {
  return <button>{props.label}</button>;
}

function formatLabel(s) { return s; }
`
	sigs := d.Detect(src, "src/Button.jsx")
	assert.Equal(t, []string{"Button"}, names(sigs))

	require.Len(t, sigs, 1)
	assert.Equal(t, signal.TypeComponentDef, sigs[0].Type)
	assert.Equal(t, "react", sigs[0].Context.Framework)
	assert.Equal(t, 2, sigs[0].Location.Line)
	assert.Equal(t, "Button", sigs[0].Metadata.Name)
}

func TestDetect_ArrowAndClassComponents(t *testing.T) {
	d := newTestDetector(t)
	src := `
const Card = (props) => <div>{props.children}</div>;
const useCounter = () => 0;
const MAX_ITEMS = compute();

class Modal extends React.Component {
  render() { return null; }
}
`
	sigs := d.Detect(src, "src/ui.tsx")
	assert.ElementsMatch(t, []string{"Card", "Modal"}, names(sigs))
}

func TestDetect_WrappedComponent(t *testing.T) {
	d := newTestDetector(t)
	src := `const Memoized = memo(function Inner() { return null; });`
	sigs := d.Detect(src, "src/memo.tsx")
	assert.Contains(t, names(sigs), "Memoized")
}

func TestDetect_TypeScriptWithoutJSX(t *testing.T) {
	d := newTestDetector(t)
	src := `
export class Tooltip {
  show(): void {}
}
`
	sigs := d.Detect(src, "src/tooltip.ts")
	assert.Equal(t, []string{"Tooltip"}, names(sigs))
	require.Len(t, sigs, 1)
	assert.Equal(t, "", sigs[0].Context.Framework)
}

func TestDetect_UnsupportedExtension(t *testing.T) {
	d := newTestDetector(t)
	assert.Empty(t, d.Detect("body { margin: 0; }", "src/app.css"))
}

func TestDetect_DeterministicIDs(t *testing.T) {
	d := newTestDetector(t)
	src := `function Button() { return null; }`
	a := d.Detect(src, "src/Button.jsx")
	b := d.Detect(src, "src/Button.jsx")
	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, a[0].ID, b[0].ID)
}
