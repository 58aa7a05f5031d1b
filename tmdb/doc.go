// Package tmdb provides a client for the TMDB (The Movie Database) v3 API.
//
// The client covers the read-only surface streamcheck needs: free-text movie
// search, title lookup by id, and watch-provider availability scoped to a
// region. Every response status is classified by CheckStatus before the body
// is parsed; network-level failures surface as *TransportError.
//
// # Usage
//
//	client, err := tmdb.NewClient(apiKey, token, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	results, err := client.SearchMovies(ctx, "heat")
//
//	offers, err := client.WatchProviders(ctx, 949, "US")
//	for _, offer := range offers.Flatrate {
//	    fmt.Println(offer.ProviderName)
//	}
package tmdb
