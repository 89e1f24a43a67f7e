// Package viz renders trajectory results in the terminal.
//
// [Panels] turns a solve into the five named panels of the trajectory view
// (path, position, velocity, acceleration, energy). Renderers only see
// [Panel] and [Curve] values, so the same model feeds the ASCII plots here
// and the PNG export:
//
//   - [RenderPanel]: asciigraph line chart for time panels, braille
//     [Canvas] for the x-y path
//   - [Canvas]: Braille-based pixel canvas
package viz
