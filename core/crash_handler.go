// Package core holds process-wide panic recovery for the terminal front-end
package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

var (
	crashMu     sync.Mutex
	crashScreen tcell.Screen
	crashLogger logrus.FieldLogger
	exit        = os.Exit
)

// RegisterScreen sets the screen finalized on crash; nil unregisters
func RegisterScreen(s tcell.Screen) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// RegisterLogger sets the logger that records the crash before exit
func RegisterLogger(l logrus.FieldLogger) {
	crashMu.Lock()
	crashLogger = l
	crashMu.Unlock()
}

// HandleCrash restores the terminal, prints the stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	screen, logger := crashScreen, crashLogger
	crashScreen = nil
	crashMu.Unlock()

	if screen != nil {
		screen.Fini()
	}

	stack := debug.Stack()
	if logger != nil {
		logger.WithField("stack", string(stack)).Errorf("crash: %v", r)
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", stack)

	exit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
