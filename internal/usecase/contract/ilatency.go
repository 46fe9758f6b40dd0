package usecasecontract

// ILatency simulates the network round trip the original client faked with a
// timer. Wait blocks for the configured delay; once started the delay always
// runs to completion, there is no cancellation.
type ILatency interface {
	Wait()
}
