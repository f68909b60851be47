//go:build windows

package typedpath

// Native is the rule set of the platform the binary was built for.
type Native = Windows

// NativeKind is the EncodingKind of Native.
const NativeKind = EncodingWindows
