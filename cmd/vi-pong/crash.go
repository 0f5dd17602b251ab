package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
)

var (
	crashMu     sync.Mutex
	crashScreen tcell.Screen
)

// setCrashScreen registers the screen restored by handleCrash
func setCrashScreen(s tcell.Screen) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// handleCrash restores the terminal, prints the panic with its stack and exits
func handleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	if crashScreen != nil {
		crashScreen.Fini()
		crashScreen = nil
	}
	crashMu.Unlock()

	stack := debug.Stack()
	log.Printf("Crash: %v\n%s", r, stack)
	fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-PONG CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", stack)
	os.Exit(1)
}

// goSafe runs fn in a goroutine whose panic still restores the terminal
func goSafe(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				handleCrash(r)
			}
		}()
		fn()
	}()
}
