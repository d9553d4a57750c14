// Package openklanttest provides an in-memory klantinteracties server and
// payload factories for tests.
//
// The server keeps every collection in memory, resolves foreign keys, fills
// reverse relations and honours the filters, pagination and expansion the
// real API offers. It answers with the same problem documents, so client
// error handling can be exercised without a running Open Klant.
//
//	server, baseURL := openklanttest.NewServer(t, openklanttest.Options{Token: "secret"})
//	server.MustSeed(t, "/actoren", openklanttest.Actor().MustBuild(t))
package openklanttest
