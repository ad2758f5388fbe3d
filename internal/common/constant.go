package common

// AuthorizationHeader carries the bearer token on outbound API requests.
const AuthorizationHeader = "Authorization"

// BearerPrefix is prepended to the session token in AuthorizationHeader.
const BearerPrefix = "Bearer "
