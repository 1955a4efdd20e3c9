package server

import "errors"

// errNoTransports is returned by NewServer when the handlers enable neither
// HTTP nor gRPC.
var errNoTransports = errors.New("neither HTTP nor gRPC is configured")
