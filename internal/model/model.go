// Package model contains the example types shown by the cheatsheet.
// Each type is a plain value holder; none of them share state.
package model

// SoundMaker is implemented by every animal. Calls through it dispatch to the
// most specific MakeSound, which is how Go expresses method overriding.
type SoundMaker interface {
	MakeSound() string
}
