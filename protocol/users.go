package protocol

import "time"

// UserDetails describes a server user account.
type UserDetails struct {
	LoginName   string
	FullName    string
	Groups      []string
	Disabled    bool
	LastUpdated time.Time
}
