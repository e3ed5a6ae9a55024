// Package store owns the shopping list state.
//
// A ListStore holds the items and the "add item" form draft. Renderers
// read it through snapshots (State, Subscribe) and change it only
// through the intent methods. Every intent runs under one mutex, so
// intents never interleave and subscribers see snapshots in the order
// the mutations happened.
package store
