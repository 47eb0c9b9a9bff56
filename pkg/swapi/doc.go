// Package swapi provides types, interfaces, and helpers for browsing the
// Star Wars catalog REST API (people, planets, species, starships, vehicles
// and films).
//
// # Overview
//
// The swapi package defines the domain types (Person, Planet, Species,
// Starship, Vehicle, Film), the generic Collection page wrapper and the
// ResourceClient interface implemented once for every entity type. A concrete
// implementation is provided by the swapiclient package, which wires
// configuration and transport. Most consumers should import swapiclient to
// construct a client and then use the typed resource clients exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/swapi/pkg/swapi"
//	  "github.com/fivetwenty-io/swapi/pkg/swapiclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := swapiclient.NewDefault()
//	  if err != nil { log.Fatal(err) }
//
//	  luke, err := cli.People().Get(ctx, "1")
//	  if err != nil { log.Fatal(err) }
//
//	  films, err := swapi.Resolve(ctx, cli.Films(), luke.Films)
//	  if err != nil { log.Fatal(err) }
//	  _ = films
//	}
//
// # Validation
//
// Every payload is checked against the documented field set of its entity
// type before it is decoded. A missing field or a value of the wrong JSON kind
// fails with a ValidationError instead of being silently zero-filled.
//
// # Errors
//
// Non-success HTTP responses surface as *APIError carrying the numeric status
// and status text. IsNotFound, IsStatus and IsValidationError make it easy to
// branch on the common cases.
//
// # Reference resolution
//
// Entities refer to each other through locators such as
// "https://swapi.py4e.com/api/planets/1/". Resolve turns an ordered list of
// locators into an ordered list of Resolved values, fetching them
// concurrently. A reference that cannot be fetched becomes a placeholder
// labelled "Unknown <Type>" and never fails the batch.
package swapi
