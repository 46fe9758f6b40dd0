package contract

// IIDGenerator allocates entity ids. Ids are time-derived decimal strings,
// unique and increasing within a process.
type IIDGenerator interface {
	NewID() string
}
