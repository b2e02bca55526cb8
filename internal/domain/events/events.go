package events

var (
	CompaniesReloadedTopic = "CompaniesReloadedEvent"
	RolesReloadedTopic     = "RolesReloadedEvent"
	FormChangedTopic       = "FormChangedEvent"
)

type CompaniesReloaded struct {
	Count        int
	SelectedName string
}

type RolesReloaded struct {
	Count int
}

type FormChanged struct {
	Action string
}
