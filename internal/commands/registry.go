// Package commands registers commands and dispatches invocations to them.
package commands

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"argconsole/internal/command"
)

// ErrDuplicateCommand means a command name is already taken in a registry.
var ErrDuplicateCommand = errors.New("commands: command already registered")

// Registry holds commands in registration order, the order a console
// tries them in.
type Registry struct {
	mu       sync.RWMutex
	commands []command.Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends cmd. Empty and duplicate names are rejected.
func (r *Registry) Register(cmd command.Command) error {
	name := cmd.Name()
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.index(name) >= 0 {
		return fmt.Errorf("%w: command %s already registered", ErrDuplicateCommand, name)
	}
	r.commands = append(r.commands, cmd)
	return nil
}

// Get retrieves a command by name.
func (r *Registry) Get(name string) (command.Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.index(name); i >= 0 {
		return r.commands[i], true
	}
	return nil, false
}

// GetAll returns a copy of the registered commands in registration order.
func (r *Registry) GetAll() []command.Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.commands)
}

// IsValidCommand checks if a command exists in the registry.
func (r *Registry) IsValidCommand(name string) bool {
	_, exists := r.Get(name)
	return exists
}

func (r *Registry) index(name string) int {
	return slices.IndexFunc(r.commands, func(cmd command.Command) bool {
		return cmd.Name() == name
	})
}

// GlobalRegistry is the registry built-in commands add themselves to during init.
var GlobalRegistry = NewRegistry()
