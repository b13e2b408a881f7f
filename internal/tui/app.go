package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/veilpost/veilpost-go/models"
)

// RootModel is the screen router:
// 1) keeps the active screen
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) delegates everything else to the active screen
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	buildInfo     models.BuildInfo
	showBuildInfo bool
}

// NewRootModel registers all screens and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.BuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys, on every screen.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "v":
			if r.isWelcomePage() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	// Cross-screen navigation.
	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if nav.Payload != nil {
			return r, func() tea.Msg { return nav.Payload }
		}
		return r, r.current.Init()
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("VEILPOST", "", "")
	}
	return r.current.View()
}

func (r RootModel) isWelcomePage() bool {
	_, ok := r.current.(*WelcomeModel)
	return ok
}
