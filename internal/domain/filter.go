package domain

// EntryFilter determines whether a directory entry should be left out of a listing.
type EntryFilter interface {
	ShouldExclude(name string) bool
}
