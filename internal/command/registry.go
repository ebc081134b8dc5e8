package command

var registry = map[string]Command{}

// Register registers a command
func Register(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get returns the command with the given name
func Get(name string) (Command, bool) {
	cmd, ok := registry[name]
	return cmd, ok
}

// All returns all registered commands
func All() []Command {
	list := make([]Command, 0, len(registry))
	for _, cmd := range registry {
		list = append(list, cmd)
	}
	return list
}
