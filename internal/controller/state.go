package controller

type State int

const (
	// Idle means no role is selected; the form adds new roles.
	Idle State = iota
	// RoleSelected means a role row is selected; the form edits it.
	RoleSelected
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case RoleSelected:
		return "role selected"
	default:
		return "unknown"
	}
}

type Tab string

const (
	RolesTab     Tab = "roles"
	CompaniesTab Tab = "companies"
)

const noSelection = -1

// Form mirrors the entry fields and action flags of the UI.
// CompanyIndex and StatusIndex point into the lookup lists, -1 means nothing is selected.
type Form struct {
	State            State
	SelectedRoleID   int64
	CompanyIndex     int
	StatusIndex      int
	RoleName         string
	Notes            string
	CompanyName      string
	ActiveTab        Tab
	AddEnabled       bool
	UpdateEnabled    bool
	RoleNameReadOnly bool
}

func newForm() Form {
	form := Form{CompanyIndex: noSelection, StatusIndex: noSelection, ActiveTab: RolesTab}
	form.refreshFlags()
	return form
}

func (f *Form) refreshFlags() {
	switch f.State {
	case RoleSelected:
		f.AddEnabled = false
		f.UpdateEnabled = f.StatusIndex != noSelection
		f.RoleNameReadOnly = true
	default:
		f.AddEnabled = true
		f.UpdateEnabled = false
		f.RoleNameReadOnly = false
	}
}
