package repositories

// Repositories groups the data access operations bound to one connection scope.
type Repositories struct {
	Companies *Companies
	Statuses  *CachedStatuses
	Roles     *Roles
}
