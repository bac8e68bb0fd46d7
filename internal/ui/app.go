package ui

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"FieldPath/internal/editor"
	"FieldPath/internal/storage"
)

// Preference keys for session state. The background image, cursor mode and
// selection are session-transient and never stored.
const (
	prefSizeKey  = "field.size"
	prefScaleKey = "field.scale"
	prefPathKey  = "field.path"
)

const frameInterval = time.Second / 30

func RunApp() {
	myApp := app.NewWithID("io.fieldpath.editor")
	myWindow := myApp.NewWindow("FieldPath")

	ctrl := editor.NewController()
	ctrl.Load(loadPreferences(myApp.Preferences()))

	field := NewFieldWidget(ctrl)
	toolbar := NewToolbar(ctrl, field, myWindow)
	field.OnEdited = toolbar.Sync

	content := container.NewBorder(toolbar.Root, nil, nil, nil, container.NewScroll(field))
	myWindow.SetContent(content)
	myWindow.Resize(fyne.NewSize(float32(ctrl.Scale())+60, float32(ctrl.Scale())+140))

	// Mode hotkeys work anywhere in the window.
	myWindow.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if mode, ok := editor.ModeForKey(string(ev.Name)); ok {
			ctrl.ToggleMode(mode)
			toolbar.Sync()
		}
	})

	// Dropping an image file replaces the field background. A file that
	// fails to decode keeps whatever background was there before.
	myWindow.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		if len(uris) == 0 {
			return
		}
		img, err := decodeImageURI(uris[len(uris)-1])
		if err != nil {
			log.Printf("ui: dropped file is not a usable image: %v", err)
			toolbar.SetStatus("Could not read dropped image")
			return
		}
		field.SetBackground(img)
		toolbar.SetStatus("Field background updated")
	})

	myWindow.SetCloseIntercept(func() {
		savePreferences(myApp.Preferences(), ctrl.Snapshot())
		myWindow.Close()
	})

	// Frame driver: the editor runs one synchronous pass per tick.
	go func() {
		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()
		for range ticker.C {
			fyne.Do(field.Tick)
		}
	}()

	myWindow.ShowAndRun()
}

func loadPreferences(p fyne.Preferences) storage.Record {
	rec := storage.Default()
	rec.Size = p.FloatWithFallback(prefSizeKey, storage.DefaultSize)
	rec.Scale = p.IntWithFallback(prefScaleKey, storage.DefaultScale)
	if blob := p.StringWithFallback(prefPathKey, ""); blob != "" {
		points, err := storage.DecodePoints([]byte(blob))
		if err != nil {
			log.Printf("ui: stored path is unreadable, starting empty: %v", err)
			return rec
		}
		rec.Points = points
	}
	return rec
}

func savePreferences(p fyne.Preferences, rec storage.Record) {
	p.SetFloat(prefSizeKey, rec.Size)
	p.SetInt(prefScaleKey, rec.Scale)
	blob, err := storage.EncodePoints(rec.Points)
	if err != nil {
		log.Printf("ui: failed to encode path for preferences: %v", err)
		return
	}
	p.SetString(prefPathKey, string(blob))
}
