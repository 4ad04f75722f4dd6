package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// resultField is a single-line Entry that shows a computed value. The value
// can be selected and copied but not edited.
type resultField struct {
	widget.Entry
}

func newResultField(placeholder string) *resultField {
	e := &resultField{}
	e.TextStyle = fyne.TextStyle{Monospace: true}
	e.PlaceHolder = placeholder
	e.ExtendBaseWidget(e)
	return e
}

// MinSize keeps the field wide enough for a full-precision value.
func (e *resultField) MinSize() fyne.Size {
	min := e.Entry.MinSize()
	if min.Width < resultFieldMinWidth {
		min.Width = resultFieldMinWidth
	}
	return min
}

// TypedRune blocks all character input.
func (e *resultField) TypedRune(_ rune) {}

// TypedKey allows only navigation and selection keys.
func (e *resultField) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyBackspace, fyne.KeyDelete, fyne.KeyReturn, fyne.KeyEnter, fyne.KeyTab:
		return
	}
	e.Entry.TypedKey(ev)
}

// TypedShortcut allows copy and select-all only.
func (e *resultField) TypedShortcut(s fyne.Shortcut) {
	switch s.(type) {
	case *fyne.ShortcutCopy, *fyne.ShortcutSelectAll, *desktop.CustomShortcut:
		e.Entry.TypedShortcut(s)
	}
}
