// Package encode renders interpolated text straight into an encoded byte
// slice.
//
// The text is assembled in a build function, the same way messages are
// built in package interp, but values are formatted immediately instead
// of being captured as placeholders:
//
//	b, err := encode.GetBytes(charmap.ISO8859_1, func(b *encode.Builder) {
//		b.Literal("Int: ")
//		b.AppendAligned(42, 4, "000")
//	})
//
// Rendering happens in a pooled UTF-8 scratch buffer which is transformed
// by the encoding's encoder at the end. Runes the target encoding cannot
// represent make GetBytes fail.
package encode
