package java

import (
	"embed"
	"fmt"
	"sync"

	"github.com/flosch/pongo2/v6"
)

//go:embed templates/*.tpl
var templateFS embed.FS

const (
	tplHeader  = "templates/header.java.tpl"
	tplMessage = "templates/message.java.tpl"
	tplEnum    = "templates/enum.java.tpl"
	tplShared  = "templates/shared.java.tpl"
)

type templates struct {
	compiled map[string]*pongo2.Template
}

var (
	loadOnce sync.Once
	loaded   *templates
	loadErr  error
)

// load compiles the embedded template set once per process. Autoescaping is
// disabled: the output is Java source, not HTML.
func load() (*templates, error) {
	loadOnce.Do(func() {
		pongo2.SetAutoescape(false)

		t := &templates{compiled: make(map[string]*pongo2.Template, 4)}
		for _, name := range []string{tplHeader, tplMessage, tplEnum, tplShared} {
			data, err := templateFS.ReadFile(name)
			if err != nil {
				loadErr = fmt.Errorf("java: read template %s: %w", name, err)
				return
			}
			tpl, err := pongo2.FromString(string(data))
			if err != nil {
				loadErr = fmt.Errorf("java: compile template %s: %w", name, err)
				return
			}
			t.compiled[name] = tpl
		}
		loaded = t
	})
	return loaded, loadErr
}

func (t *templates) render(name string, ctx pongo2.Context) (string, error) {
	tpl, ok := t.compiled[name]
	if !ok {
		return "", fmt.Errorf("java: unknown template %s", name)
	}
	out, err := tpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("java: render %s: %w", name, err)
	}
	return out, nil
}
