package command

import (
	"fmt"
	"regexp"
	"strings"
)

// Validation rule names; each failure names exactly one rule.
const (
	RuleIdentifier       = "identifier-shape"
	RuleDescription      = "description-bounds"
	RuleArgOrder         = "required-before-optional"
	RuleDuplicateName    = "ambiguous-name"
	RuleBranchArgs       = "branch-owns-args"
	RuleGroupDepth       = "group-depth"
	RuleTargetOptions    = "target-command-options"
	RuleDuplicateCommand = "duplicate-command"
)

const maxDescriptionLen = 100

// Platform identifier pattern: 1-32 chars of letters, digits, dash or
// underscore, lowercase.
var namePattern = regexp.MustCompile(`^[-_\p{Ll}\p{Lo}\p{N}]{1,32}$`)

// ValidationError reports a single violated rule at a path in the tree.
type ValidationError struct {
	Rule   string
	Path   string
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid command '%s': rule %s: %s", e.Path, e.Rule, e.Detail)
}

func ruleErr(rule, path, format string, args ...any) error {
	return &ValidationError{Rule: rule, Path: path, Detail: fmt.Sprintf(format, args...)}
}

// Validate checks the structural invariants of a single base command. It is
// a pure function over the declarative tree; the registry builder calls it
// on every member before sealing.
func Validate(cmd *BaseCommand) error {
	if err := validateNode(cmd.Root.Name, cmd.Root, 0); err != nil {
		return err
	}

	// Message- and user-target surfaces carry no options at all and cannot
	// descend, so their handlers must sit on the root of an optionless tree.
	if cmd.Root.HasVariant(VariantMessage) || cmd.Root.HasVariant(VariantUser) {
		if len(cmd.Root.Options) > 0 {
			return ruleErr(RuleTargetOptions, cmd.Root.Name,
				"message- and user-target commands cannot have options")
		}
	}

	return nil
}

func validateName(path, name string) error {
	if name == "" {
		return ruleErr(RuleIdentifier, path, "name is empty")
	}
	if strings.TrimSpace(name) != name {
		return ruleErr(RuleIdentifier, path, "name '%s' has surrounding whitespace", name)
	}
	if !namePattern.MatchString(name) {
		return ruleErr(RuleIdentifier, path, "name '%s' does not match the identifier pattern", name)
	}
	return nil
}

func validateDescription(path, description string) error {
	if description == "" {
		return ruleErr(RuleDescription, path, "description is empty")
	}
	if len(description) > maxDescriptionLen {
		return ruleErr(RuleDescription, path,
			"description exceeds %d characters", maxDescriptionLen)
	}
	return nil
}

func validateNode(path string, n *Node, depth int) error {
	if err := validateName(path, n.Name); err != nil {
		return err
	}
	if err := validateDescription(path, n.Description); err != nil {
		return err
	}

	var hasArg, hasChild, optionalSeen bool
	seen := make(map[string]struct{}, len(n.Options))

	for _, o := range n.Options {
		name := o.Name()
		if _, dup := seen[name]; dup {
			return ruleErr(RuleDuplicateName, path, "duplicate option name '%s'", name)
		}
		seen[name] = struct{}{}

		switch {
		case o.Arg != nil:
			hasArg = true
			if err := validateArg(path+" "+name, o.Arg); err != nil {
				return err
			}
			if o.Arg.Required && optionalSeen {
				return ruleErr(RuleArgOrder, path,
					"required argument '%s' declared after an optional one", name)
			}
			if !o.Arg.Required {
				optionalSeen = true
			}

		case o.Sub != nil:
			hasChild = true
			if depth >= 1 {
				return ruleErr(RuleGroupDepth, path, "subcommand '%s' nested too deep", name)
			}
			if err := validateNode(path+" "+name, o.Sub, depth+1); err != nil {
				return err
			}

		case o.Group != nil:
			hasChild = true
			if depth >= 1 {
				return ruleErr(RuleGroupDepth, path,
					"group '%s' may only appear at the top level", name)
			}
			if err := validateGroup(path+" "+name, o.Group); err != nil {
				return err
			}
		}
	}

	if hasArg && hasChild {
		return ruleErr(RuleBranchArgs, path,
			"a node with subcommands or groups cannot own arguments")
	}

	return nil
}

func validateGroup(path string, g *Group) error {
	if err := validateName(path, g.Name); err != nil {
		return err
	}
	if err := validateDescription(path, g.Description); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(g.Subs))
	for _, sub := range g.Subs {
		if _, dup := seen[sub.Name]; dup {
			return ruleErr(RuleDuplicateName, path, "duplicate subcommand name '%s'", sub.Name)
		}
		seen[sub.Name] = struct{}{}

		// Group members sit below root and group, so they may not branch
		// further.
		if err := validateNode(path+" "+sub.Name, sub, 1); err != nil {
			return err
		}
	}

	return nil
}

func validateArg(path string, d *ArgDesc) error {
	if err := validateName(path, d.Name); err != nil {
		return err
	}
	if err := validateDescription(path, d.Description); err != nil {
		return err
	}
	return nil
}
