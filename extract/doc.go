// Package extract turns documents into candidate triples by running several
// independent extraction strategies and concatenating their outputs.
//
// # Strategies
//
// Four strategies run in fixed order (the order is not significant for
// correctness, only for reproducibility):
//
//  1. structural: deterministic triples from document metadata alone
//     (hasName, hasCategory, hasAnalysisType, hasRelevance), confidence 1.0
//  2. keywords: mentionsKeyword triples from a configured keyword
//     dictionary, confidence proportional to occurrence density
//  3. cooccurrence: hasConvergenceTheme triples when several keyword
//     categories appear within one text window, confidence saturating
//     below 1.0
//  4. analysis: triples translated from upstream AI analysis metadata,
//     source "ai-analysis", upstream scores clamped to [0,1]
//
// # Failure Isolation
//
// A strategy that returns an error or panics is logged and skipped; the
// remaining strategies still run, and ExtractFromDocument never fails on a
// strategy's account. Empty documents yield the structural triples only.
//
// # Configuration
//
// The keyword dictionary, co-occurrence window, relevance buckets, and
// confidence tuning are configuration data (see Config and DefaultConfig),
// not code, so the heuristics can be replaced without recompilation.
package extract
