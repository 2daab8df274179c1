// Package project stores contour drawings as versioned JSON documents.
//
// A document holds both boundaries, the drawing settings, the center and the
// committed control points of the outer boundary. Layers are never stored;
// they are recomputed from the boundaries after loading.
//
// Loading is all-or-nothing: a document is decoded and validated completely
// before any session state changes. All decoding and validation failures
// wrap [ErrInvalidFile].
package project
