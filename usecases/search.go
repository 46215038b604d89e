package usecases

import (
	"strings"

	"room-rental-server/entities"
)

// Search narrows a fetched listing collection by a free-text term and a room
// type filter. The term matches case-insensitively against title or
// location; a filter other than "all" requires an exact type match. Both
// conditions compose with AND and the input order is preserved.
//
// An empty term with filter "all" returns the input unchanged, and applying
// the same search twice yields the same result.
func Search(listings []entities.Listing, term, filter string) []entities.Listing {
	noTerm := term == ""
	noFilter := filter == "" || filter == entities.FilterAll
	if noTerm && noFilter {
		return listings
	}

	lowered := strings.ToLower(term)
	out := make([]entities.Listing, 0, len(listings))
	for _, l := range listings {
		if !noTerm {
			title := strings.ToLower(l.Title)
			location := strings.ToLower(l.Location)
			if !strings.Contains(title, lowered) && !strings.Contains(location, lowered) {
				continue
			}
		}
		if !noFilter && l.Type != filter {
			continue
		}
		out = append(out, l)
	}
	return out
}
