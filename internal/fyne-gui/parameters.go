package fynegui

import "strings"

// Parameters are the raw launch arguments as captured by the launcher.
type Parameters struct {
	raw []string
}

func NewParameters(args []string) Parameters {
	raw := make([]string, len(args))
	copy(raw, args)
	return Parameters{raw: raw}
}

// Raw returns a copy of the arguments in their original order.
func (p Parameters) Raw() []string {
	raw := make([]string, len(p.raw))
	copy(raw, p.raw)
	return raw
}

// Named returns every "--name=value" argument keyed by name.
func (p Parameters) Named() map[string]string {
	named := make(map[string]string)
	for _, arg := range p.raw {
		if name, value, ok := splitNamed(arg); ok {
			named[name] = value
		}
	}
	return named
}

// Unnamed returns the arguments Named does not cover.
func (p Parameters) Unnamed() []string {
	unnamed := []string{}
	for _, arg := range p.raw {
		if _, _, ok := splitNamed(arg); !ok {
			unnamed = append(unnamed, arg)
		}
	}
	return unnamed
}

func splitNamed(arg string) (string, string, bool) {
	if !strings.HasPrefix(arg, "--") {
		return "", "", false
	}
	name, value, ok := strings.Cut(arg[2:], "=")
	if !ok || name == "" {
		return "", "", false
	}
	return name, value, true
}
