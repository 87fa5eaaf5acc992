package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration has no API address.
var errNoHandlersAreCreated = errors.New("no handlers are created: api address is empty")
