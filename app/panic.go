package app

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"prism/hal"
)

var ErrPanic = errors.New("step panicked")

// Guard wraps step so a panic inside it is logged with its stack and returned
// as an error wrapping ErrPanic.
func Guard(l hal.Logger, step hal.StepFunc) hal.StepFunc {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if l != nil {
				l.WriteLineString(fmt.Sprintf("app: panic: %v", v))
				for _, line := range strings.Split(string(debug.Stack()), "\n") {
					if line == "" {
						continue
					}
					l.WriteLineString(line)
				}
			}
			err = fmt.Errorf("%w: %v", ErrPanic, v)
		}()
		return step()
	}
}
