package signal

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ComputeID derives the content-addressed id for a signal occurrence.
//
// The id is a function of (type, path, line, value) only, so re-extracting
// unchanged content yields identical ids. Downstream dedup and incremental
// diffing depend on this.
func ComputeID(t Type, path string, line int, value string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d|%s", t, path, line, value)))
	return hex.EncodeToString(sum[:12])
}

// New builds a RawSignal with its id precomputed from the identifying fields.
func New(t Type, value string, loc Location, ctx Context, meta Metadata) RawSignal {
	return RawSignal{
		ID:       ComputeID(t, loc.Path, loc.Line, value),
		Type:     t,
		Value:    value,
		Location: loc,
		Context:  ctx,
		Metadata: meta,
	}
}
