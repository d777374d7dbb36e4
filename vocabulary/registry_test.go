package vocabulary_test

import (
	"strings"
	"testing"

	"github.com/c360studio/semstore/vocabulary"
)

func TestRegisterAndLookup(t *testing.T) {
	reg := vocabulary.NewRegistry()
	reg.Register("hasOwner",
		[]vocabulary.EntityClass{vocabulary.ClassSystem},
		[]vocabulary.EntityClass{vocabulary.ClassAction},
		vocabulary.WithDescription("Document owner"),
		vocabulary.WithCardinality(vocabulary.CardinalityOne))

	entry, ok := reg.Lookup("hasOwner")
	if !ok {
		t.Fatal("Lookup failed for registered predicate")
	}
	if entry.Description != "Document owner" {
		t.Errorf("Description = %q, want %q", entry.Description, "Document owner")
	}
	if entry.Cardinality != vocabulary.CardinalityOne {
		t.Errorf("Cardinality = %q, want %q", entry.Cardinality, vocabulary.CardinalityOne)
	}
}

func TestRegisterOverwrites(t *testing.T) {
	reg := vocabulary.NewRegistry()
	reg.Register("hasOwner",
		[]vocabulary.EntityClass{vocabulary.ClassSystem},
		[]vocabulary.EntityClass{vocabulary.ClassAction})

	// Last writer wins: no object classes allowed anymore.
	reg.Register("hasOwner",
		[]vocabulary.EntityClass{vocabulary.ClassSystem},
		[]vocabulary.EntityClass{vocabulary.ClassSystem})

	res := reg.Validate(vocabulary.ClassSystem, "hasOwner", vocabulary.ClassAction)
	if res.Valid {
		t.Error("Validate should fail after constraints were overwritten")
	}
	res = reg.Validate(vocabulary.ClassSystem, "hasOwner", vocabulary.ClassSystem)
	if !res.Valid {
		t.Errorf("Validate failed after overwrite: %s", res.Reason)
	}
}

func TestValidateUnregisteredPredicate(t *testing.T) {
	reg := vocabulary.NewRegistry()

	res := reg.Validate(vocabulary.ClassSystem, "neverRegistered", vocabulary.ClassAction)
	if res.Valid {
		t.Fatal("Validate should reject unregistered predicate")
	}
	if !strings.Contains(res.Reason, "not registered") {
		t.Errorf("Reason = %q, want mention of unregistered predicate", res.Reason)
	}
}

func TestValidateClassMismatch(t *testing.T) {
	reg := vocabulary.NewRegistry()
	vocabulary.RegisterDefaults(reg)

	tests := []struct {
		name         string
		subjectClass vocabulary.EntityClass
		predicate    string
		objectClass  vocabulary.EntityClass
		wantValid    bool
	}{
		{"valid structural", vocabulary.ClassSystem, vocabulary.PredHasCategory, vocabulary.ClassAction, true},
		{"subject class rejected", vocabulary.ClassAction, vocabulary.PredHasCategory, vocabulary.ClassAction, false},
		{"object class rejected", vocabulary.ClassSystem, vocabulary.PredHasCategory, vocabulary.ClassSubject, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := reg.Validate(tt.subjectClass, tt.predicate, tt.objectClass)
			if res.Valid != tt.wantValid {
				t.Errorf("Valid = %v (reason %q), want %v", res.Valid, res.Reason, tt.wantValid)
			}
		})
	}
}

func TestRegisterDefaultsCoversCorePredicates(t *testing.T) {
	reg := vocabulary.NewRegistry()
	vocabulary.RegisterDefaults(reg)

	for _, pred := range []string{
		vocabulary.PredHasName,
		vocabulary.PredHasCategory,
		vocabulary.PredHasAnalysisType,
		vocabulary.PredHasRelevance,
		vocabulary.PredMentionsKeyword,
		vocabulary.PredConvergenceTheme,
		vocabulary.PredHasEntity,
		vocabulary.PredRecommends,
	} {
		if _, ok := reg.Lookup(pred); !ok {
			t.Errorf("default predicate %q not registered", pred)
		}
	}
}

func TestEntityClassValid(t *testing.T) {
	if !vocabulary.ClassSystem.Valid() {
		t.Error("ClassSystem should be valid")
	}
	if vocabulary.EntityClass("made-up").Valid() {
		t.Error("unknown class should be invalid")
	}
}
