// Package viz renders computed planes and orbits in the terminal.
//
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//   - [RenderPlane]: filled-set preview of a computed plane
//   - [RenderOrbit]: orbit trace through a single point
//   - [Summary]: styled per-kind statistics panel
package viz
