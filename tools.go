//go:build tools

// tools.go records build-time tool dependencies (go:generate enumer).
package main

import _ "github.com/dmarkham/enumer"
