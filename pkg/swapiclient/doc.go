// Package swapiclient provides the primary entry point for constructing a
// catalog client that implements the swapi.Client interface.
//
// It layers configuration and HTTP transport on top of the resource
// interfaces and types defined in the swapi package. Most applications should
// import swapiclient to build a client, then use the returned swapi.Client to
// access resource-specific clients, for example People(), Films(), etc.
//
// Quick start
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
//
//	  // Public mirror with defaults.
//	  cli, err := swapiclient.NewDefault()
//	  if err != nil { log.Fatal(err) }
//
//	  // Or a self-hosted mirror with retries enabled:
//	  cli, err = swapiclient.New(ctx, &swapi.Config{
//	    BaseURL:  "swapi.example.com/api",
//	    RetryMax: 2,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  film, err := cli.Films().Get(ctx, "1")
//	  if err != nil { log.Fatal(err) }
//	  log.Println(film.Title)
//	}
//
// Endpoint normalization
//
// The base URL is trimmed of trailing slashes and gets an "https://" scheme
// when none is given, so "swapi.py4e.com/api/" and
// "https://swapi.py4e.com/api" are equivalent.
package swapiclient
