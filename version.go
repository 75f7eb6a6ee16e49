package wasmbridge

// Version of the bridge. Compilation caches are keyed by it.
const Version = "0.3.0"
