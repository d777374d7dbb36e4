package consolidator_test

import (
	"strings"
	"testing"

	"github.com/c360studio/semstore/graph"
	"github.com/c360studio/semstore/vocabulary"
)

func TestGenerateInsightsConvergenceHub(t *testing.T) {
	svc, store := newService(t)

	for _, theme := range []string{"a+b", "b+c", "a+c"} {
		store.Add(graph.Subject("doc-hub"), graph.Predicate(vocabulary.PredConvergenceTheme), graph.Object(theme),
			graph.Metadata{Source: "co-occurrence", Confidence: 0.6})
	}
	store.Add(graph.Subject("doc-quiet"), graph.Predicate(vocabulary.PredConvergenceTheme), graph.Object("a+b"),
		graph.Metadata{Source: "co-occurrence", Confidence: 0.5})

	insights := svc.GenerateInsights(graph.Pattern{})
	var hub bool
	for _, in := range insights {
		if in.Kind == "convergence-hub" {
			if in.Subject != "doc-hub" {
				t.Errorf("hub subject = %q, want doc-hub", in.Subject)
			}
			if !strings.Contains(in.Detail, "3") {
				t.Errorf("hub detail %q should mention the theme count", in.Detail)
			}
			hub = true
		}
	}
	if !hub {
		t.Errorf("no convergence-hub insight in %+v", insights)
	}
}

func TestGenerateInsightsDominantCategory(t *testing.T) {
	svc, store := newService(t)

	for i := 0; i < 6; i++ {
		store.Add(graph.Subject("doc-a"), graph.Predicate(vocabulary.PredMentionsKeyword), graph.Object("python"),
			graph.Metadata{Source: "keyword-pattern", Confidence: 0.4})
	}
	store.Add(graph.Subject("doc-b"), graph.Predicate(vocabulary.PredMentionsKeyword), graph.Object("golang"),
		graph.Metadata{Source: "keyword-pattern", Confidence: 0.4})

	insights := svc.GenerateInsights(graph.Pattern{})
	var dominant bool
	for _, in := range insights {
		if in.Kind == "dominant-category" && in.Subject == "python" {
			dominant = true
		}
	}
	if !dominant {
		t.Errorf("no dominant-category insight for python in %+v", insights)
	}
}

func TestGenerateInsightsRespectsFilter(t *testing.T) {
	svc, store := newService(t)

	for _, theme := range []string{"a+b", "b+c", "a+c"} {
		store.Add(graph.Subject("doc-hub"), graph.Predicate(vocabulary.PredConvergenceTheme), graph.Object(theme),
			graph.Metadata{Source: "co-occurrence", Confidence: 0.6})
	}

	insights := svc.GenerateInsights(graph.Pattern{Subject: "doc-other"})
	if len(insights) != 0 {
		t.Errorf("insights = %+v, want none outside the filter", insights)
	}
}

func TestGenerateInsightsEmptyStore(t *testing.T) {
	svc, _ := newService(t)
	if got := svc.GenerateInsights(graph.Pattern{}); len(got) != 0 {
		t.Errorf("insights on empty store = %+v", got)
	}
}
