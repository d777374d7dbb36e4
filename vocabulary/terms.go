package vocabulary

// EntityClass is the closed union of structural roles a term can play in a
// triple. Implementations must not invent new classes at runtime; the
// enumeration is part of the wire format of persisted snapshots.
type EntityClass string

const (
	// ClassSystem tags the historical entity being described, typically a
	// document or file identifier.
	ClassSystem EntityClass = "system-reference"

	// ClassSubject tags the relational verb of a triple.
	ClassSubject EntityClass = "subject-reference"

	// ClassAction tags the target entity or literal value.
	ClassAction EntityClass = "action-reference"
)

// Valid reports whether the class is a member of the closed enumeration.
func (c EntityClass) Valid() bool {
	switch c {
	case ClassSystem, ClassSubject, ClassAction:
		return true
	default:
		return false
	}
}

// String returns the string representation of the entity class.
func (c EntityClass) String() string {
	return string(c)
}

// Core predicates emitted by the extraction strategies. Strategy code and
// queries reference these constants instead of string literals.
const (
	// PredHasName links a document to its display name.
	PredHasName = "hasName"

	// PredHasCategory links a document to one human-assigned category.
	// Emitted once per category.
	PredHasCategory = "hasCategory"

	// PredHasAnalysisType links an analyzed document to its analysis type.
	PredHasAnalysisType = "hasAnalysisType"

	// PredHasRelevance links a document to its bucketed relevance
	// (high, medium, low).
	PredHasRelevance = "hasRelevance"

	// PredMentionsKeyword links a document to a keyword category found in
	// its content.
	PredMentionsKeyword = "mentionsKeyword"

	// PredConvergenceTheme links a document to a synthetic convergence
	// theme label derived from co-occurring keyword categories.
	PredConvergenceTheme = "hasConvergenceTheme"

	// PredHasEntity links a document to an entity surfaced by upstream AI
	// analysis.
	PredHasEntity = "hasEntity"

	// PredRecommends links a document to an action recommended by upstream
	// AI analysis.
	PredRecommends = "recommendsAction"
)

// Relevance bucket values used as objects of PredHasRelevance triples.
const (
	RelevanceHigh   = "high"
	RelevanceMedium = "medium"
	RelevanceLow    = "low"
)

// Namespace is the IRI namespace for semstore vocabulary terms, used by the
// RDF export projections.
const Namespace = "https://semstore.dev/ontology/"

// EntityNamespace is the IRI namespace for entity identifiers.
const EntityNamespace = "https://semstore.dev/entity/"
