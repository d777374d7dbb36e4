package export

// Format specifies the output projection.
type Format string

const (
	// FormatPoints produces a vector-index point list.
	FormatPoints Format = "points"

	// FormatEdges produces a node/edge list.
	FormatEdges Format = "edges"

	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatPoints: {
		Name:        FormatPoints,
		MIMEType:    "application/json",
		Extension:   ".json",
		Description: "Vector index point list with convergence payloads",
	},
	FormatEdges: {
		Name:        FormatEdges,
		MIMEType:    "application/json",
		Extension:   ".json",
		Description: "Node/edge list for workflow-graph consumers",
	},
	FormatTurtle: {
		Name:        FormatTurtle,
		MIMEType:    "text/turtle",
		Extension:   ".ttl",
		Description: "Turtle - Terse RDF Triple Language",
	},
	FormatNTriples: {
		Name:        FormatNTriples,
		MIMEType:    "application/n-triples",
		Extension:   ".nt",
		Description: "N-Triples - Line-based RDF format",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}
