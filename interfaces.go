// Package nautilus contains core domain types and interfaces shared by the
// in-memory filesystem, its provisioning requests and the interactive shell.
package nautilus

// RootUser is the privileged account. It bypasses every permission check and
// is the only account allowed to change ownership.
const RootUser = "root"

// UserLookup answers whether an account name is known. The filesystem core only
// needs this read-only view of the account bookkeeping.
type UserLookup interface {
	Exists(name string) bool
}
