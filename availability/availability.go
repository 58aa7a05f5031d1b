// Package availability matches watch-provider offers against the user's
// preferred streaming platforms.
package availability

import (
	"github.com/s0up4200/streamcheck/tmdb"
)

// Match returns the offers whose provider name appears in the preferred
// list, preserving the order the API returned them in. Names are compared
// by exact equality.
func Match(offers []tmdb.Offer, preferred []string) []tmdb.Offer {
	wanted := make(map[string]struct{}, len(preferred))
	for _, name := range preferred {
		wanted[name] = struct{}{}
	}

	var matched []tmdb.Offer
	for _, offer := range offers {
		if _, ok := wanted[offer.ProviderName]; ok {
			matched = append(matched, offer)
		}
	}

	return matched
}
