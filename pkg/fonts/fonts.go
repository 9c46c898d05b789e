// Package fonts holds the font stacks shared by the SVG renderer and the
// HTML preview page.
//
// The stacks lean on widely installed faces so rendered scenes look the
// same everywhere without embedding font data into every SVG.
package fonts

// Family is the primary stack for wall text (headers, labels).
const Family = `'Avenir Next', 'Segoe UI', 'Helvetica Neue', Arial, sans-serif`

// PlaqueFamily is the serif stack used on title plaques for a museum
// label look.
const PlaqueFamily = `Georgia, 'Times New Roman', serif`
