package clicklite

import (
	"fmt"
	"strings"

	"github.com/raman4793/click-lite/pkg/textutil"
)

const usageWidth = 80

// commandUsage renders the help text for a single resolved command from its signature:
// the documentation's short and long text followed by a flag table derived from the
// parameters.
func commandUsage(path string, sig *Signature) string {
	var b strings.Builder

	doc := sig.Doc()
	if doc.Short != "" {
		for _, line := range textutil.Wrap(doc.Short, usageWidth) {
			b.WriteString(line)
			b.WriteRune('\n')
		}
		b.WriteRune('\n')
	}

	b.WriteString("Usage:\n  ")
	b.WriteString(path)
	if len(sig.Params()) > 0 {
		b.WriteString(" [flags]")
	}
	b.WriteRune('\n')

	if doc.Long != "" {
		b.WriteRune('\n')
		for _, line := range strings.Split(doc.Long, "\n") {
			for _, wrapped := range textutil.Wrap(line, usageWidth) {
				b.WriteString(wrapped)
				b.WriteRune('\n')
			}
		}
	}

	if params := sig.Params(); len(params) > 0 {
		b.WriteString("\nFlags:\n")

		maxLen := 0
		for _, p := range params {
			if len(p.Name)+1 > maxLen {
				maxLen = len(p.Name) + 1
			}
		}
		nameWidth := maxLen + 4

		for _, p := range params {
			description := p.Description
			if p.Required {
				description = appendUsageNote(description, "required")
			} else if p.Default != nil {
				description = appendUsageNote(description, fmt.Sprintf("default: %v", p.Default))
			}

			name := "-" + p.Name
			lines := textutil.Wrap(description, usageWidth-nameWidth)
			if len(lines) == 0 {
				lines = []string{""}
			}
			padding := strings.Repeat(" ", maxLen-len(name)+4)
			fmt.Fprintf(&b, "  %s%s%s\n", name, padding, lines[0])

			indentPadding := strings.Repeat(" ", nameWidth+2)
			for _, line := range lines[1:] {
				fmt.Fprintf(&b, "%s%s\n", indentPadding, line)
			}
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func appendUsageNote(description, note string) string {
	if description == "" {
		return "(" + note + ")"
	}
	return description + " (" + note + ")"
}

// registryUsage renders the top-level help: the registered command names with their
// subcommands, one per line.
func registryUsage(r *Registry) string {
	var b strings.Builder

	b.WriteString("Usage:\n  <command> [<subcommand>] [flags]\n")

	names := r.Names()
	if len(names) > 0 {
		b.WriteString("\nAvailable Commands:\n")
		for _, name := range names {
			b.WriteString("  " + name)
			if subs := r.SubNames(name); len(subs) > 0 {
				b.WriteString(" <" + strings.Join(subs, "|") + ">")
			}
			b.WriteRune('\n')
		}
		b.WriteString("\nUse \"<command> --help\" for more information about a command.\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
