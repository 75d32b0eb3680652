// Package nexus provides a typed Go client for the Nexus agent platform
// REST API.
//
// A [Client] binds one exported method to each backend endpoint: reading
// agent info, listing datasets, updating an agent's base settings,
// abilities, output and engine configuration, publishing an agent, and
// invoking a run. Chatroom management endpoints are exposed the same way.
//
// Every method issues exactly one HTTP request and decodes the platform's
// {code, detail, data} envelope. Failures surface either as a wrapped
// transport error or as an [APIError] carrying the HTTP status and the
// platform error code; the client performs no retries and keeps no state
// between calls beyond the access token.
//
//	client := nexus.NewClient("https://nexus.example.com", nil)
//	client.SetAccessToken(token)
//	info, err := client.AgentInfo(ctx, 42, true)
package nexus
