// Package commands defines the contour CLI.
//
// Commands
//
//   - shape    Build a drawing from two quick shapes and save it as a project
//   - layers   Print the layers of a saved project
//   - render   Render a saved project to a PNG preview
//   - version  Print the project file version
//
// The root command loads the configuration and sets up logging before any
// subcommand runs.
package commands
