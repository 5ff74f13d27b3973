// Package charts renders bar charts in the terminal.
package charts

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const closeHint = "q / Esc / Enter: close"

var newApplication = tview.NewApplication

var runApplication = func(app *tview.Application) error {
	return app.Run()
}

// Show displays the chart full screen and blocks until the user closes it.
func Show(chart tview.Primitive) error {
	app := newApplication()
	frame := tview.NewFrame(chart)
	frame.SetBorders(0, 0, 0, 0, 0, 0)
	frame.AddText(closeHint, false, tview.AlignCenter, tcell.ColorGray)
	app.SetRoot(frame, true)
	app.SetInputCapture(closeOnKey(app.Stop))
	return runApplication(app)
}

func closeOnKey(stop func()) func(event *tcell.EventKey) *tcell.EventKey {
	return func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape, tcell.KeyEnter:
			stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' || event.Rune() == 'Q' {
				stop()
				return nil
			}
		default:
		}
		return event
	}
}

// ShowAll displays charts one after another; each waits for the previous one to be closed.
func ShowAll(charts ...tview.Primitive) error {
	for _, chart := range charts {
		if err := Show(chart); err != nil {
			return err
		}
	}
	return nil
}
