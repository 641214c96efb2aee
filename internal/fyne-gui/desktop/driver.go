// Package desktop binds the launcher to Fyne's native desktop driver.
package desktop

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

// Driver creates a native Fyne application.
func Driver(appID string) fyne.App {
	if appID == "" {
		return app.New()
	}
	return app.NewWithID(appID)
}
