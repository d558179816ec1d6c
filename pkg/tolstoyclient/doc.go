// Package tolstoyclient provides the entry points for creating Tolstoy API
// clients.
//
// Two construction shapes are supported and produce equivalent clients: the
// configuration-object form (New) and the legacy positional form
// (NewWithCredentials). Both normalize to one tolstoy.Config before the
// tenant header map is derived.
package tolstoyclient
