package ignorance

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

const (
	warningColor = lipgloss.Color("214")
	successColor = lipgloss.Color("42")
)

// reporter writes styled messages. Each style is bound to the renderer of
// its destination, so pipes and buffers get plain text.
type reporter struct {
	out, err     io.Writer
	successStyle lipgloss.Style
	warningStyle lipgloss.Style
}

func newReporter(out, err io.Writer) reporter {
	return reporter{
		out:          out,
		err:          err,
		successStyle: lipgloss.NewRenderer(out).NewStyle().Foreground(successColor),
		warningStyle: lipgloss.NewRenderer(err).NewStyle().Foreground(warningColor),
	}
}

func (r reporter) warn(token, file, path string) {
	fmt.Fprintln(r.err, r.warningStyle.Render(warningMessage(token, file, path)))
}

func (r reporter) prompt(token, file string) {
	fmt.Fprint(r.out, promptMessage(token, file))
}

func (r reporter) confirm(token, file string) {
	fmt.Fprintln(r.out, r.successStyle.Render(addedMessage(token, file)))
}

func warningMessage(token, file, path string) string {
	return fmt.Sprintf(`WARNING: "%s" is not ignored by version control. Please add "%s" to %s (%s).`,
		token, token, file, path)
}

func promptMessage(token, file string) string {
	return fmt.Sprintf(`"%s" is not in %s. Add it now? [y/N]: `, token, file)
}

func addedMessage(token, file string) string {
	return fmt.Sprintf(`Added "%s" to %s.`, token, file)
}
