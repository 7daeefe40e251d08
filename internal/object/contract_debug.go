//go:build spaceblaster_debug

package object

const strictContracts = true
