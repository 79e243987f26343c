//go:build !windows

package main

import (
	"flag"

	"github.com/pkg/errors"
)

func main() {
	flag.Parse()
	fatal(errors.New("dxinfo: Direct3D 12 is only available on windows"))
}
