// Package session is the single entry point to an initialized rankings
// database. A session is opened in one of two modes: ephemeral, backed by a
// private in-memory store that vanishes when the session closes, or
// persistent, backed by a fixed file next to the running executable that is
// shared across process invocations. In both modes the rankings schema is
// guaranteed to exist before a handle is handed out, and the scoped With
// form releases the handle on every exit path.
package session
