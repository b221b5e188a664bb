package plan

import "testing"

func TestDefaultIsFreeFiveGiB(t *testing.T) {
	p := Default()
	if p.Name != "Free" {
		t.Fatalf("expected default plan Free, got %s", p.Name)
	}
	if p.LimitBytes() != 5*1024*1024*1024 {
		t.Fatalf("expected 5 GiB in bytes, got %d", p.LimitBytes())
	}
}

func TestByName(t *testing.T) {
	p, ok := ByName("Business")
	if !ok {
		t.Fatalf("expected Business plan to exist")
	}
	if p.LimitBytes() != 1000*GiB {
		t.Fatalf("unexpected Business limit: %d", p.LimitBytes())
	}

	if _, ok := ByName("Enterprise"); ok {
		t.Fatalf("expected unknown plan to be absent")
	}
}

func TestCatalogOrderIsStable(t *testing.T) {
	names := []string{"Free", "Basic", "Pro", "Business"}
	got := Catalog()
	if len(got) != len(names) {
		t.Fatalf("expected %d plans, got %d", len(names), len(got))
	}
	for i, name := range names {
		if got[i].Name != name {
			t.Fatalf("expected plan %d to be %s, got %s", i, name, got[i].Name)
		}
	}
}
