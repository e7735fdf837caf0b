// Package home builds the home page layout.
//
// The pipeline is InsertStudioSlot, then GenerateLayoutGroups, then Arrange.
// Every step is a pure function of its inputs and returns fresh slices, so a
// layout can be recomputed on every request without locking. The only
// stateful pieces are Viewport (width subscribers) and ConfigStore (the
// reloadable layout configuration).
package home
