package fynegui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// Stage is what an application gets to build its UI on.
type Stage struct {
	app    fyne.App
	window fyne.Window
	params Parameters

	// after schedules delayed UI work such as hiding notices.
	after func(d time.Duration, f func())

	mu      sync.Mutex
	running bool
	exited  bool
}

func newStage(app fyne.App, window fyne.Window, params Parameters) *Stage {
	return &Stage{
		app:    app,
		window: window,
		params: params,
		after: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
}

func (s *Stage) App() fyne.App {
	return s.app
}

func (s *Stage) Window() fyne.Window {
	return s.window
}

func (s *Stage) Parameters() Parameters {
	return s.params
}

func (s *Stage) SetTitle(title string) {
	s.window.SetTitle(title)
}

func (s *Stage) SetContent(content fyne.CanvasObject) {
	s.window.SetContent(content)
}

func (s *Stage) Show() {
	s.window.Show()
}

// Quit ends the event loop. Called from Start it stops the loop from ever
// running.
func (s *Stage) Quit() {
	s.mu.Lock()
	s.exited = true
	running := s.running
	s.mu.Unlock()

	if running {
		s.app.Quit()
	}
}

// abort tears the stage down after a failed start. The event loop never runs.
func (s *Stage) abort() {
	s.mu.Lock()
	s.exited = true
	s.mu.Unlock()

	s.app.Quit()
}

// Exited reports whether Quit was called.
func (s *Stage) Exited() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exited
}

// enterLoop marks the stage as running unless it already quit.
func (s *Stage) enterLoop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.exited {
		return false
	}
	s.running = true
	return true
}
