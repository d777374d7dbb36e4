package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/c360studio/semstore/graph"
	"github.com/c360studio/semstore/vocabulary"
)

// RDFExporter serializes graph triples to Turtle or N-Triples.
type RDFExporter struct {
	triples  []*graph.Triple
	prefixes map[string]string
}

// NewRDFExporter creates an exporter with the standard namespace prefixes.
func NewRDFExporter() *RDFExporter {
	return &RDFExporter{
		prefixes: defaultPrefixes(),
	}
}

// defaultPrefixes returns the standard namespace prefixes for RDF export.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":      "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
		"rdfs":     "http://www.w3.org/2000/01/rdf-schema#",
		"xsd":      "http://www.w3.org/2001/XMLSchema#",
		"dc":       "http://purl.org/dc/terms/",
		"skos":     "http://www.w3.org/2004/02/skos/core#",
		"semstore": vocabulary.Namespace,
		"entity":   vocabulary.EntityNamespace,
	}
}

// SetPrefix sets a namespace prefix.
func (e *RDFExporter) SetPrefix(prefix, iri string) {
	e.prefixes[prefix] = iri
}

// Add queues triples for export.
func (e *RDFExporter) Add(triples ...*graph.Triple) {
	e.triples = append(e.triples, triples...)
}

// Export serializes the queued triples to the specified format.
func (e *RDFExporter) Export(format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return e.toTurtle(), nil
	case FormatNTriples:
		return e.toNTriples(), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// toTurtle serializes to Turtle format, grouping triples by subject in
// first-appearance order.
func (e *RDFExporter) toTurtle() string {
	var sb strings.Builder

	// Sort prefixes for consistent output
	keys := make([]string, 0, len(e.prefixes))
	for k := range e.prefixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, prefix := range keys {
		sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", prefix, e.prefixes[prefix]))
	}
	sb.WriteString("\n")

	var subjects []string
	grouped := make(map[string][]*graph.Triple)
	for _, t := range e.triples {
		if _, ok := grouped[t.Subject.Value]; !ok {
			subjects = append(subjects, t.Subject.Value)
		}
		grouped[t.Subject.Value] = append(grouped[t.Subject.Value], t)
	}

	for _, subject := range subjects {
		group := grouped[subject]
		sb.WriteString(fmt.Sprintf("<%s>\n", subjectIRI(subject)))
		for i, t := range group {
			terminator := " ;"
			if i == len(group)-1 {
				terminator = " ."
			}
			sb.WriteString(fmt.Sprintf("    <%s> %s%s\n",
				predicateIRI(t.Predicate.Value), formatObject(t.Object.Value), terminator))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// toNTriples serializes to N-Triples format, one line per triple.
func (e *RDFExporter) toNTriples() string {
	var sb strings.Builder
	for _, t := range e.triples {
		sb.WriteString(fmt.Sprintf("<%s> <%s> %s .\n",
			subjectIRI(t.Subject.Value), predicateIRI(t.Predicate.Value), formatObject(t.Object.Value)))
	}
	return sb.String()
}

// subjectIRI converts a document or entity ID to an IRI.
func subjectIRI(value string) string {
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value
	}
	return vocabulary.EntityNamespace + escapeIRIPath(value)
}

// predicateIRI converts a predicate name to an IRI.
func predicateIRI(name string) string {
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		return name
	}
	return vocabulary.Namespace + escapeIRIPath(name)
}

// formatObject formats an object value as an IRI reference or a literal.
func formatObject(value string) string {
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return fmt.Sprintf("<%s>", value)
	}
	return fmt.Sprintf("\"%s\"", escapeString(value))
}

// escapeIRIPath replaces characters that cannot appear in an IRI path.
func escapeIRIPath(s string) string {
	s = strings.ReplaceAll(s, " ", "%20")
	s = strings.ReplaceAll(s, "<", "%3C")
	s = strings.ReplaceAll(s, ">", "%3E")
	return s
}

// escapeString escapes special characters in strings for RDF serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
