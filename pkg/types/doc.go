// Package types defines the Pantry interface, the inventory entity types,
// the command records used to create and edit items, and the standard error
// values for the foodfresh inventory store.
package types
