// Package openklant provides types, interfaces, and helpers for working with the
// Open Klant "klantinteracties" API.
//
// # Overview
//
// The openklant package defines the record types (Actor, Betrokkene,
// DigitaalAdres, InterneTaak, KlantContact, OnderwerpObject,
// PartijIdentificator, Partij), the payload types used to create them, their
// list filters, and the interfaces of the resource clients. A concrete
// implementation of those clients is provided by the klantclient package,
// which wires configuration, transport and authentication. Most consumers
// import klantclient to construct a client and then use the interfaces here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/open-inwoner/openklant/pkg/klantclient"
//	  "github.com/open-inwoner/openklant/pkg/openklant"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := klantclient.New(&openklant.Config{
//	    BaseURL: "https://klanten.example.nl/klantinteracties/api/v1",
//	    Token:   "secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  actor, err := cli.Actor().Create(ctx, &openklant.ActorCreateData{
//	    Naam:            "Jan Janssen",
//	    SoortActor:      openklant.SoortActorMedewerker,
//	    IndicatieActief: openklant.Bool(true),
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = actor
//	}
//
// # Pagination
//
// List returns a single page. ListIter walks every page by following the
// "next" locator returned by the server and yields records one at a time:
//
//	for actor, err := range cli.Actor().ListIter(ctx, &openklant.ActorListParams{SoortActor: openklant.SoortActorMedewerker}) {
//	  if err != nil { return err }
//	  fmt.Println(actor.Naam)
//	}
//
// Every range over the returned sequence starts again from the first page.
//
// # Errors
//
// Failures fall into three kinds: TransportError (no HTTP response was
// obtained), APIError (the server answered with status 400 or higher) and
// ValidationError (a payload or response did not match its schema). Helpers
// such as IsNotFound, IsUnauthorized and IsValidation make it easy to branch
// on them.
//
// # Validation
//
// Each record and payload type has a Schema. Create always validates the
// payload before anything is sent; responses are validated only when
// Config.ValidateResponses is set.
package openklant
