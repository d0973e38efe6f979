package types

type ContextKey string

// ClientAppKey is the context key under which the initialized client app is
// passed to subcommands.
const ClientAppKey ContextKey = "app"
