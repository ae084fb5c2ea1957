// Package qrsvg renders a QR module matrix into styled, self-contained SVG
// markup. The symbol encoder is a collaborator (see Encode); this package
// owns everything between the boolean matrix and the final document text:
// layout, module shapes, finder/locator styling, gradients, logo holes,
// borders, background patterns and micro typography.
//
// Render is a pure function. Given the same matrix and config it always
// produces byte-identical output, and it is safe to call from any number of
// goroutines.
package qrsvg
