// Package render exports segmentation results: label grids as CSV, path
// overlays, seed markers, strength maps and region colourings as images.
//
// Conventions:
//   - CSV: one line per image row, labels of that row comma separated, no
//     trailing comma.
//   - Overlays are two pixels thick: vertical paths yellow, horizontal
//     paths white, drawn in that order.
//   - Seeds are marked with red crosses clipped to the image.
package render
