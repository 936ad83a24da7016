//go:build android

package main

// Android refuses cgo-less DNS resolution unless this workaround is
// linked in.
import _ "github.com/mtibben/androiddnsfix"
