// Package resource provides the reference table behind externref and
// funcref values.
//
// A reference crossing the bridge is a uint32 handle. The table maps handles
// to host values and is owned by a single store:
//
//	table := resource.NewTable()
//
//	// Insert a value, get a fresh handle
//	h := table.Insert(resource.KindExtern, conn)
//
//	// Intern reuses the handle already issued for the same value
//	same := table.Intern(resource.KindExtern, jsObject)
//
//	// Kind-checked retrieval
//	v, ok := table.GetKind(h, resource.KindExtern) // ok
//	v, ok = table.GetKind(h, resource.KindFunc)    // !ok
//
// Handle 0 is the null reference and is never issued. Values are not
// garbage collected; a store closes its table when it is released, calling
// Drop on values implementing Dropper.
package resource
