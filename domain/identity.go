package domain

// DisplayNamePolicy resolves the sender name rendered in notifications.
type DisplayNamePolicy struct {
	// PrivilegedName is the single persona shared by every privileged
	// account. Stored full names are ignored for those accounts.
	// TODO(product): confirm whether the shared persona is privacy masking
	// or a placeholder before exposing individual privileged names.
	PrivilegedName string
	// DefaultName is used when no profile or full name is available.
	DefaultName string
}

// DisplayName applies the resolution order: privileged persona first,
// then the stored full name, then the default. Callers that failed to
// fetch the profile pass privileged=false and an empty fullName.
func (p DisplayNamePolicy) DisplayName(fullName string, privileged bool) string {
	if privileged {
		return p.PrivilegedName
	}
	if fullName != "" {
		return fullName
	}
	return p.DefaultName
}
