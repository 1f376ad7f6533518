package views

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"food-delivery/internal/views/components"
)

// LoginScreen collects an email and password. Neither is validated: the
// Login button always lets the user in.
type LoginScreen struct {
	container     *fyne.Container
	title         *canvas.Text
	emailEntry    *widget.Entry
	passwordEntry *widget.Entry
	loginButton   *widget.Button

	loginHandler func(email, password string)
}

func NewLoginScreen(onLogin func(email, password string)) *LoginScreen {
	ls := &LoginScreen{loginHandler: onLogin}
	ls.createComponents()
	ls.buildLayout()
	return ls
}

func (ls *LoginScreen) createComponents() {
	ls.title = canvas.NewText("Login", color.Black)
	ls.title.TextSize = components.TitleTextSize
	ls.title.TextStyle = fyne.TextStyle{Bold: true}
	ls.title.Alignment = fyne.TextAlignCenter

	ls.emailEntry = widget.NewEntry()
	ls.emailEntry.SetPlaceHolder("Email")

	ls.passwordEntry = widget.NewPasswordEntry()
	ls.passwordEntry.SetPlaceHolder("Password")

	ls.loginButton = widget.NewButton("Login", func() {
		if ls.loginHandler != nil {
			ls.loginHandler(ls.emailEntry.Text, ls.passwordEntry.Text)
		}
	})
	ls.loginButton.Importance = widget.HighImportance
}

func (ls *LoginScreen) buildLayout() {
	form := container.NewVBox(
		ls.title,
		layout.NewSpacer(),
		ls.emailEntry,
		ls.passwordEntry,
		layout.NewSpacer(),
		ls.loginButton,
	)

	card := components.NewPanel(container.NewPadded(form))
	ls.container = container.NewPadded(container.NewVBox(
		layout.NewSpacer(),
		card,
		layout.NewSpacer(),
	))
}

func (ls *LoginScreen) GetContainer() *fyne.Container {
	return ls.container
}
