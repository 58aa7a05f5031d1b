package tmdb

import "fmt"

// SearchResponse is the payload of /search/movie.
type SearchResponse struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// Movie is a single movie record as returned by the search and detail
// endpoints. Only the fields streamcheck displays are mapped.
type Movie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date,omitempty"`
	Overview    string  `json:"overview,omitempty"`
	VoteAverage float64 `json:"vote_average,omitempty"`
}

// IsZero reports whether the record is an empty placeholder.
func (m Movie) IsZero() bool {
	return m.ID == 0 && m.Title == ""
}

// Year extracts the release year, if known.
func (m Movie) Year() string {
	if len(m.ReleaseDate) >= 4 {
		return m.ReleaseDate[:4]
	}
	return ""
}

// Label formats the movie for display, appending the release year when known.
func (m Movie) Label() string {
	if year := m.Year(); year != "" {
		return fmt.Sprintf("%s (%s)", m.Title, year)
	}
	return m.Title
}

// WatchProvidersResponse is the payload of /movie/{id}/watch/providers,
// keyed by watch-region code.
type WatchProvidersResponse struct {
	ID      int64                   `json:"id"`
	Results map[string]RegionOffers `json:"results"`
}

// RegionOffers groups the availability entries for one watch region.
type RegionOffers struct {
	Link     string  `json:"link"`
	Flatrate []Offer `json:"flatrate"`
	Rent     []Offer `json:"rent"`
	Buy      []Offer `json:"buy"`
}

// Offer is a single availability entry on one streaming platform.
type Offer struct {
	ProviderID      int64  `json:"provider_id"`
	ProviderName    string `json:"provider_name"`
	LogoPath        string `json:"logo_path"`
	DisplayPriority int    `json:"display_priority"`
}

// ProviderListResponse is the payload of /watch/providers/movie.
type ProviderListResponse struct {
	Results []Offer `json:"results"`
}
