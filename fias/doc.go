// Package fias is a client for the FIAS public address API (SPAS v2.0),
// the Russian federal address-directory service.
//
// A Client is constructed from a bearer token obtained with GetToken and
// exposes one method per remote endpoint: region and address-item
// listings, object details by id, guid, or cadastral number, hierarchy
// checks, free-text search, address hints, and IP geolocation. Responses
// come back as the verbatim JSON the service produced.
//
// Operations never retry on their own. Wrap the call with the retry
// package when the first request is allowed to fail:
//
//	regions, err := retry.Do(ctx, retry.DefaultPolicy(),
//		func(ctx context.Context) (json.RawMessage, error) {
//			return api.GetRegions(ctx)
//		})
//
// A Client is immutable after construction and safe for concurrent use.
package fias
