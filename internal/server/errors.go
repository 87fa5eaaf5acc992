package server

import "errors"

// errNoServersAreCreated means the configuration has no API address; the
// metrics listener alone is not a usable server.
var errNoServersAreCreated = errors.New("no servers are created: api address is empty")
