// builtin_time.go
//
// Builtins surfaced:
//  1. clock() -> number of seconds since the Unix epoch (wall clock)
//
// Conventions:
//   - Natives register into Globals during NewInterpreter, before any user
//     code runs, so they are visible from every environment chain.
//   - Arity is checked by the interpreter before Impl is invoked.
package lox

import "time"

func registerTimeBuiltins(ip *Interpreter) {
	// clock() -> Num
	// Wall-clock seconds since the Unix epoch, with sub-second precision.
	ip.Globals.Define("clock", CallableVal(&NativeFn{
		Name:   "clock",
		Params: 0,
		Impl: func(_ *Interpreter, _ []Value) Value {
			return Num(float64(time.Now().UnixNano()) / 1e9)
		},
	}))
}
