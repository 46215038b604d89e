package usecases

import (
	"reflect"
	"testing"

	"room-rental-server/entities"
)

func sampleListings() []entities.Listing {
	return []entities.Listing{
		{ID: 1, Title: "Sunny Downtown Studio", Location: "Downtown", Type: entities.TypeStudio},
		{ID: 2, Title: "Riverside Apartment", Location: "Riverside", Type: entities.TypeApartment},
		{ID: 3, Title: "Shared Room near Campus", Location: "University District", Type: entities.TypeShared},
		{ID: 4, Title: "Downtown Family House", Location: "Old Town", Type: entities.TypeHouse},
	}
}

func ids(listings []entities.Listing) []uint {
	out := make([]uint, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

func TestSearch(t *testing.T) {
	t.Run("empty term and all filter return input unchanged", func(t *testing.T) {
		listings := sampleListings()
		got := Search(listings, "", entities.FilterAll)
		if !reflect.DeepEqual(got, listings) {
			t.Errorf("expected input unchanged, got %v", ids(got))
		}
	})

	t.Run("term matches title case-insensitively", func(t *testing.T) {
		got := Search(sampleListings(), "SUNNY", entities.FilterAll)
		if !reflect.DeepEqual(ids(got), []uint{1}) {
			t.Errorf("expected [1], got %v", ids(got))
		}
	})

	t.Run("term matches title or location", func(t *testing.T) {
		// "downtown" appears in listing 1's location and listing 4's title.
		got := Search(sampleListings(), "downtown", entities.FilterAll)
		if !reflect.DeepEqual(ids(got), []uint{1, 4}) {
			t.Errorf("expected [1 4], got %v", ids(got))
		}
	})

	t.Run("filter narrows by exact type", func(t *testing.T) {
		got := Search(sampleListings(), "", entities.TypeApartment)
		if !reflect.DeepEqual(ids(got), []uint{2}) {
			t.Errorf("expected [2], got %v", ids(got))
		}
	})

	t.Run("term and filter compose with AND", func(t *testing.T) {
		got := Search(sampleListings(), "downtown", entities.TypeHouse)
		if !reflect.DeepEqual(ids(got), []uint{4}) {
			t.Errorf("expected [4], got %v", ids(got))
		}
	})

	t.Run("no match yields empty result", func(t *testing.T) {
		got := Search(sampleListings(), "penthouse", entities.FilterAll)
		if len(got) != 0 {
			t.Errorf("expected empty result, got %v", ids(got))
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		once := Search(sampleListings(), "downtown", entities.FilterAll)
		twice := Search(once, "downtown", entities.FilterAll)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("expected idempotence, got %v then %v", ids(once), ids(twice))
		}
	})

	t.Run("preserves relative order", func(t *testing.T) {
		listings := sampleListings()
		// Reverse so the input order differs from id order.
		reversed := []entities.Listing{listings[3], listings[2], listings[1], listings[0]}
		got := Search(reversed, "downtown", entities.FilterAll)
		if !reflect.DeepEqual(ids(got), []uint{4, 1}) {
			t.Errorf("expected [4 1], got %v", ids(got))
		}
	})
}
