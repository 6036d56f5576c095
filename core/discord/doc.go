// Package discord wraps the discordgo REST client as the upstream message source.
//
// Only the paginated "list messages after cursor" call is used. The session is
// never opened as a gateway connection; the token is sent verbatim in the
// Authorization header, so bot tokens must carry the "Bot " prefix.
//
// Non-2xx responses surface as *StatusError carrying the status code and the
// raw body, which the poll loop logs before skipping the cycle. The Client
// interface allows the poll loop to be tested against core/discord/mocks.
package discord
