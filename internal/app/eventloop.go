package app

import (
	"errors"

	"github.com/dshills/regect/internal/renderer"
	"github.com/dshills/regect/internal/renderer/backend"
	"github.com/dshills/regect/internal/renderer/highlight"
	"github.com/dshills/regect/internal/textarea"
)

// eventLoop draws, waits for one event and applies it, until quit.
func (app *Application) eventLoop() error {
	for {
		select {
		case <-app.done:
			return nil
		default:
		}

		app.draw()

		ev := app.backend.PollEvent()
		if err := app.handleBackendEvent(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				app.logger.Info("quit requested")
				return nil
			}
			return err
		}
	}
}

// draw renders the current state.
func (app *Application) draw() {
	app.renderer.Render(renderer.Frame{
		Pattern: app.pattern,
		Body:    app.body,
		Runs:    app.runs,
		Invalid: !app.validator.Valid() && !app.validator.Empty(),
		Focus:   app.mode.Focus(),
		Hint:    app.mode.Hint(),
	})
}

// handleBackendEvent processes a backend event.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKeyEvent(ev)
	case backend.EventPaste:
		app.pasting = ev.PasteStart
	case backend.EventResize:
		app.logger.Debug("resize %dx%d", ev.Width, ev.Height)
	}
	return nil
}

// handleKeyEvent applies a key to the application or the active text area.
func (app *Application) handleKeyEvent(ev backend.Event) error {
	switch ev.Key {
	case backend.KeyCtrlC:
		return ErrQuit
	case backend.KeyEscape:
		if !app.pasting {
			return ErrQuit
		}
		return nil
	case backend.KeyTab:
		if !app.pasting {
			app.toggleMode()
			return nil
		}
	}

	area := app.activeArea()

	var changed bool
	switch {
	case app.pasting && ev.Key == backend.KeyTab:
		changed = area.InsertRune('\t')
	case app.pasting && ev.Key == backend.KeyEnter:
		// A newline in the body; the single-line pattern stores a space
		changed = area.InsertString("\n")
	default:
		changed = area.HandleKey(ev)
	}

	if !changed {
		return nil
	}
	if app.mode == ModePatternEdit {
		app.updatePattern()
	} else {
		app.updateBody()
	}
	return nil
}

func (app *Application) toggleMode() {
	app.mode = app.mode.Toggle()
	app.logger.Debug("mode %s", app.mode)
}

func (app *Application) activeArea() *textarea.TextArea {
	if app.mode == ModeBodyEdit {
		return app.body
	}
	return app.pattern
}

// updatePattern recompiles the pattern and re-highlights the body.
func (app *Application) updatePattern() {
	app.validator.Update(app.pattern.Text())
	if err := app.validator.Err(); err != nil {
		app.logger.Debug("pattern %q does not compile: %v", app.validator.Pattern(), err)
	}
	app.updateBody()
}

// updateBody re-highlights the body with the current matcher.
func (app *Application) updateBody() {
	app.runs = highlight.Render(app.validator.Matcher(), app.body.Text())
}
