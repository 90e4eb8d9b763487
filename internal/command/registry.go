package command

import (
	"fmt"
	"sort"

	"github.com/bwmarrin/discordgo"
)

// Commands is the sealed registry: a mapping from top-level command name to
// its base command. It is built once at startup and read-only afterwards.
type Commands map[string]*BaseCommand

// Get finds a base command by its top-level name. Lookup is case-sensitive.
func (c Commands) Get(name string) (*BaseCommand, bool) {
	cmd, ok := c[name]
	return cmd, ok
}

// Names returns the registered top-level names, sorted.
func (c Commands) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Schemas collects the platform registration schemas of every registered
// command.
func (c Commands) Schemas() []*discordgo.ApplicationCommand {
	var out []*discordgo.ApplicationCommand
	for _, name := range c.Names() {
		out = append(out, c[name].Schemas()...)
	}
	return out
}

// RegistryBuilder collects base commands and seals them into a registry.
type RegistryBuilder struct {
	list []*BaseCommand
}

// NewRegistry creates an empty registry builder.
func NewRegistry() *RegistryBuilder {
	return &RegistryBuilder{}
}

// Bind adds a command to the registry.
func (r *RegistryBuilder) Bind(b *Builder) *RegistryBuilder {
	r.list = append(r.list, b.Build())
	return r
}

// BindCommand adds an already-built command to the registry.
func (r *RegistryBuilder) BindCommand(cmd *BaseCommand) *RegistryBuilder {
	r.list = append(r.list, cmd)
	return r
}

// Validate checks every member and top-level name uniqueness across the
// registry.
func (r *RegistryBuilder) Validate() error {
	seen := make(map[string]struct{}, len(r.list))

	for _, cmd := range r.list {
		if err := Validate(cmd); err != nil {
			return fmt.Errorf("command '%s': %w", cmd.Root.Name, err)
		}
		if _, dup := seen[cmd.Root.Name]; dup {
			return ruleErr(RuleDuplicateCommand, cmd.Root.Name,
				"duplicate command name '%s'", cmd.Root.Name)
		}
		seen[cmd.Root.Name] = struct{}{}
	}

	return nil
}

// Build validates and seals the registry.
func (r *RegistryBuilder) Build() (Commands, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	cmds := make(Commands, len(r.list))
	for _, cmd := range r.list {
		cmds[cmd.Root.Name] = cmd
	}
	return cmds, nil
}
