package vocabulary

// RegisterDefaults registers the core extraction predicates on the given
// registry. Callers may re-register any of them afterwards to tighten or
// loosen the schema.
func RegisterDefaults(r *Registry) {
	docSubject := []EntityClass{ClassSystem}
	literalObject := []EntityClass{ClassAction}

	r.Register(PredHasName, docSubject, literalObject,
		WithDescription("Display name of the document"),
		WithCardinality(CardinalityOne),
		WithIRI(Namespace+"hasName"))

	r.Register(PredHasCategory, docSubject, literalObject,
		WithDescription("Human-assigned category, one triple per category"),
		WithCardinality(CardinalityMany),
		WithIRI(Namespace+"hasCategory"))

	r.Register(PredHasAnalysisType, docSubject, literalObject,
		WithDescription("Analysis type assigned by the upstream analyzer"),
		WithCardinality(CardinalityOne),
		WithIRI(Namespace+"hasAnalysisType"))

	r.Register(PredHasRelevance, docSubject, literalObject,
		WithDescription("Bucketed relevance: high, medium, low"),
		WithCardinality(CardinalityOne),
		WithIRI(Namespace+"hasRelevance"))

	r.Register(PredMentionsKeyword, docSubject, literalObject,
		WithDescription("Keyword category found in document content"),
		WithCardinality(CardinalityMany),
		WithIRI(Namespace+"mentionsKeyword"))

	r.Register(PredConvergenceTheme, docSubject, literalObject,
		WithDescription("Convergence theme from co-occurring keyword categories"),
		WithCardinality(CardinalityMany),
		WithIRI(Namespace+"hasConvergenceTheme"))

	r.Register(PredHasEntity, docSubject, literalObject,
		WithDescription("Entity surfaced by upstream AI analysis"),
		WithCardinality(CardinalityMany),
		WithIRI(Namespace+"hasEntity"))

	r.Register(PredRecommends, docSubject, literalObject,
		WithDescription("Action recommended by upstream AI analysis"),
		WithCardinality(CardinalityMany),
		WithIRI(Namespace+"recommendsAction"))
}
