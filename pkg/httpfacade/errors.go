package httpfacade

import (
	"errors"
	"net"
)

var errInvalidNodeID = errors.New("httpfacade: invalid node id, expected ns=<n>;i=<n> or ns=<n>;s=<string>")

func newListener(addr string) (net.Listener, error) {
	return net.Listen("tcp", addr)
}
