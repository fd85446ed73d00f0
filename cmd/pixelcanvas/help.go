package main

import (
	"bytes"
	"embed"
	"flag"
	"fmt"
	"os"
	"sync"
	"text/template"

	"github.com/sirupsen/logrus"

	"github.com/example/pixelcanvas/internal/appstate"
)

//go:embed templates/*.txt
var helpFS embed.FS

var (
	helpOnce sync.Once
	helpTmpl *template.Template
)

func parseHelpTemplates() {
	helpTmpl = template.Must(template.New("").Funcs(map[string]any{
		"flags": func(fs *flag.FlagSet) []flagInfo {
			result := []flagInfo{}
			if fs == nil {
				return result
			}
			fs.VisitAll(func(f *flag.Flag) {
				result = append(result, flagInfo{f.Name, f.DefValue, f.Usage})
			})
			return result
		},
		"shortcuts": appstate.ShortcutHelp,
	}).ParseFS(helpFS, "templates/*.txt"))
}

type flagInfo struct {
	Name     string
	DefValue string
	Usage    string
}

type HelpData interface {
	Program() string
	Template() string
	FlagSet() *flag.FlagSet
}

type UsageError struct {
	of  HelpData
	msg string
}

func (e *UsageError) Error() string {
	help, err := e.renderHelp()
	if err != nil {
		return err.Error()
	}
	if e.msg != "" {
		return e.msg + "\n\n" + help
	}
	return help
}

func (e *UsageError) renderHelp() (string, error) {
	helpOnce.Do(parseHelpTemplates)
	var buf bytes.Buffer
	if err := helpTmpl.ExecuteTemplate(&buf, e.of.Template(), e.of); err != nil {
		logrus.WithError(err).Error("rendering help template")
		return "", err
	}
	return buf.String(), nil
}

// usageFunc makes -h print the same help as a UsageError.
func usageFunc(of HelpData) func() {
	return func() {
		help, err := (&UsageError{of: of}).renderHelp()
		if err != nil {
			return
		}
		fmt.Fprint(os.Stderr, help)
	}
}

func (r *root) Template() string {
	return "root.txt"
}

func (e *editCmd) Template() string {
	return "edit.txt"
}

func (n *newCmd) Template() string {
	return "new.txt"
}

func (p *paintCmd) Template() string {
	return "paint.txt"
}

func (c *clearCmd) Template() string {
	return "clear.txt"
}

func (s *showCmd) Template() string {
	return "show.txt"
}

func (e *exportCmd) Template() string {
	return "export.txt"
}

func (c *copyCmd) Template() string {
	return "copy.txt"
}

func (p *pasteCmd) Template() string {
	return "paste.txt"
}

func (c *colorsCmd) Template() string {
	return "colors.txt"
}

func (c *configCmd) Template() string {
	return "config.txt"
}
