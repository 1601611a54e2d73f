package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPetTag(t *testing.T) {
	p := Pet{ID: "p1", Name: "Rex", Species: "dog"}
	if got := p.Tag(); got != "Rex (dog)" {
		t.Fatalf("expected tag %q, got %q", "Rex (dog)", got)
	}

	free := Pet{Name: "Spike", Species: "iguana"}
	if got := free.Tag(); got != "Spike (iguana)" {
		t.Fatalf("expected free-text species to render verbatim, got %q", got)
	}
}

func TestCustomerContactLine(t *testing.T) {
	c := Customer{Email: "a@x.com", Phone: "555"}
	if got := c.ContactLine(); got != "a@x.com • 555" {
		t.Fatalf("unexpected contact line %q", got)
	}
}

func TestCustomerJSONFieldNames(t *testing.T) {
	body := []byte(`{"id":"1","name":"Ann","email":"a@x.com","phone":"555","pets":[{"id":"p1","name":"Rex","species":"dog"}]}`)

	var got Customer
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := Customer{
		ID:    "1",
		Name:  "Ann",
		Email: "a@x.com",
		Phone: "555",
		Pets:  []Pet{{ID: "p1", Name: "Rex", Species: "dog"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("customer mismatch (-want +got):\n%s", diff)
	}
}
