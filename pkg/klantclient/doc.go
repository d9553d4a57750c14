// Package klantclient is the entry point for creating klantinteracties API
// clients.
//
//	client, err := klantclient.NewWithToken("https://klanten.example.nl/klantinteracties/api/v1", token)
//	if err != nil {
//		return err
//	}
//
//	actor, err := client.Actor().Create(ctx, &openklant.ActorCreateData{
//		Naam:       "Jan Janssen",
//		SoortActor: openklant.SoortActorMedewerker,
//	})
package klantclient
