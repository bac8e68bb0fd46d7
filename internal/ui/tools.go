package ui

import (
	"fmt"
	"io"
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	fynestorage "fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"FieldPath/internal/editor"
	"FieldPath/internal/export"
	"FieldPath/internal/storage"
)

// Toolbar is the strip above the field: mode toggles, field size and scale
// entries, and the document actions.
type Toolbar struct {
	Root fyne.CanvasObject

	ctrl  *editor.Controller
	field *FieldWidget
	win   fyne.Window

	modeButtons map[editor.CursorMode]*widget.Button
	sizeEntry   *widget.Entry
	scaleEntry  *widget.Entry
	status      *widget.Label
}

func NewToolbar(ctrl *editor.Controller, field *FieldWidget, win fyne.Window) *Toolbar {
	t := &Toolbar{
		ctrl:        ctrl,
		field:       field,
		win:         win,
		modeButtons: make(map[editor.CursorMode]*widget.Button),
		status:      widget.NewLabel("Ready"),
	}

	modeBox := container.NewHBox()
	for _, mode := range editor.ToolModes {
		btn := widget.NewButton(mode.String(), func() {
			ctrl.ToggleMode(mode)
			t.Sync()
		})
		t.modeButtons[mode] = btn
		modeBox.Add(btn)
	}

	t.sizeEntry = widget.NewEntry()
	t.sizeEntry.OnSubmitted = func(text string) {
		size, err := strconv.ParseFloat(text, 64)
		if err != nil || !ctrl.SetSize(size) {
			t.SetStatus("Field size may not be changed once path is created")
			t.Sync()
			return
		}
		t.field.Refresh()
	}

	t.scaleEntry = widget.NewEntry()
	t.scaleEntry.OnSubmitted = func(text string) {
		scale, err := strconv.Atoi(text)
		if err != nil || !ctrl.SetScale(scale) {
			t.SetStatus("Scale must be a positive pixel count")
			t.Sync()
			return
		}
		t.field.Refresh()
	}

	clearBtn := widget.NewButton("Clear", func() {
		ctrl.Clear()
		t.Sync()
		t.SetStatus("Path cleared")
	})
	saveBtn := widget.NewButton("Save", t.savePath)
	openBtn := widget.NewButton("Open", t.openPath)
	exportBtn := widget.NewButton("Export", t.exportPDF)

	t.Root = container.NewHBox(
		widget.NewLabel("FieldPath"),
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		container.New(layout.NewGridWrapLayout(fyne.NewSize(80, 38)), t.sizeEntry),
		widget.NewLabel("Scale:"),
		container.New(layout.NewGridWrapLayout(fyne.NewSize(80, 38)), t.scaleEntry),
		widget.NewSeparator(),
		modeBox,
		widget.NewSeparator(),
		clearBtn, saveBtn, openBtn, exportBtn,
		layout.NewSpacer(),
		t.status,
	)
	t.Sync()
	return t
}

// Sync refreshes the toolbar from editor state: active-mode highlight and
// the size lock once a path exists.
func (t *Toolbar) Sync() {
	for mode, btn := range t.modeButtons {
		if t.ctrl.Mode() == mode {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
	t.sizeEntry.SetText(strconv.FormatFloat(t.ctrl.Size(), 'f', -1, 64))
	t.scaleEntry.SetText(strconv.Itoa(t.ctrl.Scale()))
	if t.ctrl.Path.Len() > 0 {
		t.sizeEntry.Disable()
	} else {
		t.sizeEntry.Enable()
	}
}

func (t *Toolbar) SetStatus(text string) {
	t.status.SetText(text)
}

func (t *Toolbar) savePath() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		data, err := storage.Encode(t.ctrl.Snapshot())
		if err != nil {
			log.Printf("ui: failed to encode path: %v", err)
			t.SetStatus("Error saving path")
			return
		}
		if _, err := writer.Write(data); err != nil {
			log.Printf("ui: failed to write path: %v", err)
			t.SetStatus("Error writing file")
			return
		}
		t.SetStatus(fmt.Sprintf("Saved %d points", t.ctrl.Path.Len()))
	}, t.win)
	d.SetFilter(fynestorage.NewExtensionFileFilter([]string{".json"}))
	d.SetFileName("path.json")
	d.Show()
}

func (t *Toolbar) openPath() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		data, err := io.ReadAll(reader)
		if err != nil {
			log.Printf("ui: failed to read path file: %v", err)
			t.SetStatus("Error reading file")
			return
		}
		rec, err := storage.Decode(data)
		if err != nil {
			log.Printf("ui: failed to parse path file: %v", err)
			t.SetStatus("Error parsing file - invalid format")
			return
		}
		t.ctrl.Load(rec)
		t.Sync()
		t.field.Refresh()
		t.SetStatus(fmt.Sprintf("Loaded %d points", t.ctrl.Path.Len()))
	}, t.win)
	d.SetFilter(fynestorage.NewExtensionFileFilter([]string{".json"}))
	d.Show()
}

func (t *Toolbar) exportPDF() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := export.PathDiagram(writer, t.ctrl.Size(), t.ctrl.Path.Points()); err != nil {
			log.Printf("ui: pdf export failed: %v", err)
			t.SetStatus("Error exporting PDF")
			return
		}
		t.SetStatus("Exported path diagram")
	}, t.win)
	d.SetFilter(fynestorage.NewExtensionFileFilter([]string{".pdf"}))
	d.SetFileName("path.pdf")
	d.Show()
}
