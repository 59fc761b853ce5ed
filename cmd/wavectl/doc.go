// wavectl is a demonstration harness for package wave. It is not the host
// key-value store described in the package's design (that remains out of
// scope, modelled only as an interface the core could be embedded
// behind); it exercises create/set/get/destroy end-to-end against a
// replayed stream of (ts, v) pairs. It does not call resize or reset.
package main
