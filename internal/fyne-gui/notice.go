package fynegui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeSuccess
	NoticeWarning
	NoticeError
)

const (
	noticeWidth   = 300
	noticeHeight  = 60
	noticeMargin  = 20
	noticeSlide   = 250 * time.Millisecond
	noticeVisible = 1500 * time.Millisecond
)

func (l NoticeLevel) style() (fyne.Resource, color.Color) {
	switch l {
	case NoticeSuccess:
		return theme.ConfirmIcon(), color.NRGBA{34, 197, 94, 240}
	case NoticeWarning:
		return theme.WarningIcon(), color.NRGBA{255, 184, 108, 240}
	case NoticeError:
		return theme.ErrorIcon(), color.NRGBA{255, 85, 85, 240}
	default:
		return theme.InfoIcon(), color.NRGBA{98, 114, 164, 240}
	}
}

// Notify slides a short message in at the top of the window. It hides itself
// after a moment or when tapped.
func (s *Stage) Notify(level NoticeLevel, message string) {
	canvasRef := s.window.Canvas()
	res, bg := level.style()
	icon := widget.NewIcon(res)

	label := widget.NewLabelWithStyle(message, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	background := canvas.NewRectangle(bg)
	background.CornerRadius = 8

	dismiss := widget.NewButton("", nil)
	dismiss.Importance = widget.LowImportance

	body := container.NewStack(
		background,
		container.NewPadded(container.New(layout.NewBorderLayout(nil, nil, icon, nil), icon, label)),
		dismiss,
	)
	overlay := container.NewWithoutLayout(body)

	remove := func() { canvasRef.Overlays().Remove(overlay) }
	dismiss.OnTapped = remove

	x := (canvasRef.Size().Width - noticeWidth) / 2
	hidden, shown := float32(-noticeHeight), float32(noticeMargin)
	body.Resize(fyne.NewSize(noticeWidth, noticeHeight))
	body.Move(fyne.NewPos(x, hidden))
	canvasRef.Overlays().Add(overlay)

	slide := func(from, to float32) *fyne.Animation {
		return fyne.NewAnimation(noticeSlide, func(p float32) {
			body.Move(fyne.NewPos(x, from+(to-from)*p))
		})
	}

	in := slide(hidden, shown)
	in.Curve = fyne.AnimationEaseOut
	in.Start()

	s.after(noticeVisible, func() {
		if s.Exited() {
			return
		}
		fyne.Do(func() {
			out := slide(shown, hidden)
			out.Curve = fyne.AnimationEaseIn
			out.Start()
		})
		s.after(noticeSlide, func() {
			if !s.Exited() {
				fyne.Do(remove)
			}
		})
	})
}
