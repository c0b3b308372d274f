// Package netx holds small networking helpers.
package netx

import "net"

type iface struct {
	name     string
	up       bool
	loopback bool
	addrs    int
}

// listInterfaces is a test seam for net.Interfaces.
var listInterfaces = func() ([]iface, error) {
	ifs, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	out := make([]iface, 0, len(ifs))
	for i := range ifs {
		addrs, err := ifs[i].Addrs()
		if err != nil {
			addrs = nil
		}
		out = append(out, iface{
			name:     ifs[i].Name,
			up:       ifs[i].Flags&net.FlagUp != 0,
			loopback: ifs[i].Flags&net.FlagLoopback != 0,
			addrs:    len(addrs),
		})
	}
	return out, nil
}

// HasNetwork reports whether the host has at least one non-loopback
// interface that is up and carries an address. It says nothing about
// whether a particular server is reachable.
//
// When the interface list cannot be read the answer is true, so a broken
// probe never turns a connection error into an offline one.
func HasNetwork() bool {
	ifs, err := listInterfaces()
	if err != nil {
		return true
	}
	for _, i := range ifs {
		if i.up && !i.loopback && i.addrs > 0 {
			return true
		}
	}
	return false
}
