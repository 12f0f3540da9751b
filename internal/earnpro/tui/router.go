package tui

// Screens and sections. A screen is a full view transition (recorded in
// history, like browser navigation); a section is a tab inside the main
// screen.
const (
	ScreenLogin  = "login"
	ScreenSignup = "signup"
	ScreenMain   = "main"
	ScreenAdmin  = "admin"
)

const (
	SectionDashboard = "dashboard"
	SectionTasks     = "tasks"
	SectionWallet    = "wallet"
	SectionProfile   = "profile"
)

type routerEntry struct {
	screen  string
	section string
}

// Router tracks the active screen/section with a history stack, the
// terminal analog of browser pushState/popState.
type Router struct {
	active  routerEntry
	back    []routerEntry
	forward []routerEntry
}

// NewRouter starts at the login screen.
func NewRouter() Router {
	return Router{active: routerEntry{screen: ScreenLogin, section: SectionDashboard}}
}

// Screen returns the active screen.
func (r Router) Screen() string { return r.active.screen }

// Section returns the active main-screen section.
func (r Router) Section() string { return r.active.section }

// ShowScreen navigates to a screen, pushing the current location onto
// the back stack and clearing the forward stack.
func (r *Router) ShowScreen(screen string) {
	if screen == r.active.screen {
		return
	}
	r.back = append(r.back, r.active)
	r.forward = nil
	r.active.screen = screen
}

// ShowContent switches the section without a screen transition. Section
// changes are still navigable history.
func (r *Router) ShowContent(section string) {
	if section == r.active.section {
		return
	}
	r.back = append(r.back, r.active)
	r.forward = nil
	r.active.section = section
}

// Back pops the history stack. Returns false at the bottom.
func (r *Router) Back() bool {
	if len(r.back) == 0 {
		return false
	}
	r.forward = append(r.forward, r.active)
	r.active = r.back[len(r.back)-1]
	r.back = r.back[:len(r.back)-1]
	return true
}

// Forward replays a location undone by Back.
func (r *Router) Forward() bool {
	if len(r.forward) == 0 {
		return false
	}
	r.back = append(r.back, r.active)
	r.active = r.forward[len(r.forward)-1]
	r.forward = r.forward[:len(r.forward)-1]
	return true
}

// Reset drops all history and jumps to the given location. Used on
// login, logout and 401.
func (r *Router) Reset(screen, section string) {
	r.back = nil
	r.forward = nil
	r.active = routerEntry{screen: screen, section: section}
}
