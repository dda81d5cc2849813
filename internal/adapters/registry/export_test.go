package registry

// NewStoreWithPath exposes the path-based constructor for tests.
var NewStoreWithPath = newStoreWithPath
