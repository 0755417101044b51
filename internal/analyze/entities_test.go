package analyze

import (
	"reflect"
	"testing"
)

func TestEntitiesOrganization(t *testing.T) {
	e := NewEntityExtractor()
	res := e.Analyze("Great product from Apple Inc. released in 2007!")

	if !reflect.DeepEqual(res.Organizations, []string{"Apple Inc."}) {
		t.Errorf("expected organizations [Apple Inc.], got %v", res.Organizations)
	}
	if !reflect.DeepEqual(res.Dates, []string{"2007"}) {
		t.Errorf("expected dates [2007], got %v", res.Dates)
	}
	// "from Apple" overlaps the organization span, so it is not a place
	if len(res.Places) != 0 {
		t.Errorf("expected no places, got %v", res.Places)
	}
	if len(res.People) != 0 {
		t.Errorf("expected no people, got %v", res.People)
	}
}

func TestEntitiesPeopleAndPlaces(t *testing.T) {
	e := NewEntityExtractor()
	res := e.Analyze("Dr. Jane Goodall met John Smith in London.")

	want := []string{"Dr. Jane Goodall", "John Smith"}
	if !reflect.DeepEqual(res.People, want) {
		t.Errorf("expected people %v, got %v", want, res.People)
	}
	if !reflect.DeepEqual(res.Places, []string{"London"}) {
		t.Errorf("expected places [London], got %v", res.Places)
	}
}

func TestEntitiesDatesAndValues(t *testing.T) {
	e := NewEntityExtractor()
	res := e.Analyze("She flew to Paris on March 5, 2020 and paid $5 million, a 20% increase.")

	if !reflect.DeepEqual(res.Dates, []string{"March 5, 2020"}) {
		t.Errorf("expected dates [March 5, 2020], got %v", res.Dates)
	}
	if !reflect.DeepEqual(res.Values, []string{"$5 million", "20%"}) {
		t.Errorf("expected values [$5 million, 20%%], got %v", res.Values)
	}
	if !reflect.DeepEqual(res.Places, []string{"Paris"}) {
		t.Errorf("expected places [Paris], got %v", res.Places)
	}
}

func TestEntitiesPlacePrefixNotPerson(t *testing.T) {
	e := NewEntityExtractor()
	res := e.Analyze("They moved from New York last year.")

	if len(res.People) != 0 {
		t.Errorf("New York should not be a person, got %v", res.People)
	}
	if !reflect.DeepEqual(res.Places, []string{"New York"}) {
		t.Errorf("expected places [New York], got %v", res.Places)
	}
}

func TestEntitiesEmptyListsNotNil(t *testing.T) {
	e := NewEntityExtractor()
	res := e.Analyze("nothing notable here")

	for name, list := range map[string][]string{
		"people":        res.People,
		"places":        res.Places,
		"organizations": res.Organizations,
		"dates":         res.Dates,
		"values":        res.Values,
	} {
		if list == nil {
			t.Errorf("%s should be an empty list, not nil", name)
		}
		if len(list) != 0 {
			t.Errorf("%s should be empty, got %v", name, list)
		}
	}
}
