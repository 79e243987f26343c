package main

import (
	"log"
	"os"
)

// fatal runs finalizers, logs err with its stack and exits. A nil err is a
// no-op.
func fatal(err error, finalizers ...func()) {
	if err == nil {
		return
	}
	for _, fn := range finalizers {
		fn()
	}
	l := log.New(os.Stderr, "FATAL: ", log.Ldate|log.Ltime)
	l.Fatalf("%+v", err)
}
