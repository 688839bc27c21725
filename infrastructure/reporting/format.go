package reporting

import (
	"fmt"
	"strings"

	"demoqa_automation/domain/entities"
)

// Format - renders a step tree as indented text, one step per line
func Format(roots []*entities.StepResult) string {
	var sb strings.Builder
	var walk func(nodes []*entities.StepResult, depth int)
	walk = func(nodes []*entities.StepResult, depth int) {
		for _, n := range nodes {
			fmt.Fprintf(&sb, "%s[%s] %s", strings.Repeat("  ", depth), n.Status, n.Title)
			if n.Error != "" {
				fmt.Fprintf(&sb, ": %s", firstLine(n.Error))
			}
			sb.WriteByte('\n')
			walk(n.Steps, depth+1)
		}
	}
	walk(roots, 0)
	return sb.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
