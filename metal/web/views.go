package web

import (
	"github.com/skillpath/handler/payload"
	"github.com/skillpath/pkg/toast"
)

const LandingPage = "landing"
const DashboardPage = "dashboard"
const SettingsPage = "settings"

// Meta is the layout data shared by every page.
type Meta struct {
	Page     string
	Title    string
	SiteName string
	Lang     string
	SignedIn bool
}

type Stat struct {
	Label  string
	Value  string
	Icon   string
	Colour string
}

type Achievement struct {
	Name        string
	Description string
	Unlocked    bool
}

type DashboardView struct {
	Meta         Meta
	Stats        []Stat
	Skills       []payload.Skill
	Achievements []Achievement
	Toasts       []toast.Toast
}

type SettingsView struct {
	Meta    Meta
	Details *payload.UserDetails
	Toasts  []toast.Toast
}

type LandingView struct {
	Meta           Meta
	UserID         string
	Toasts         []toast.Toast
	SignInDisabled bool
}
