// Package builtin provides the commands available without any schema file.
package builtin

import (
	"fmt"

	"argconsole/internal/commands"
)

func init() {
	if err := commands.GlobalRegistry.Register(&SumCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register sum command: %v", err))
	}
	if err := commands.GlobalRegistry.Register(&GreetCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register greet command: %v", err))
	}
}
