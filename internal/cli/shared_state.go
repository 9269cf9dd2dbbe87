package cli

// SharedState carries what every screen needs: the service handles and
// the navigation stack. It is built once by the root model and injected
// into each screen constructor, never reached as a global.
type SharedState struct {
	App *App
	Nav *NavigationStack

	// Terminal dimensions from the last tea.WindowSizeMsg.
	Width  int
	Height int
}

// headerRows and statusRows are the chrome the root model draws around
// the active screen.
const (
	headerRows = 2
	statusRows = 1
)

// ContentHeight is the rows left for the active screen after the
// header and status bar.
func (s *SharedState) ContentHeight() int {
	h := s.Height - headerRows - statusRows
	if h < 1 {
		return 1
	}
	return h
}
