package domain

// PermissionStatus is the photo library access state reported by the
// permission subsystem.
type PermissionStatus string

const (
	// PermissionNotDetermined means the user has not been asked yet.
	PermissionNotDetermined PermissionStatus = "not-determined"
	// PermissionDenied means the user refused access.
	PermissionDenied PermissionStatus = "denied"
	// PermissionLimited means only a user-picked subset is accessible.
	PermissionLimited PermissionStatus = "limited"
	// PermissionFull means the whole library is accessible.
	PermissionFull PermissionStatus = "full"
)

// Granted reports whether any photos are reachable at all. Limited access
// counts as granted; reconciliation handles the reduced visibility.
func (s PermissionStatus) Granted() bool {
	return s == PermissionLimited || s == PermissionFull
}
