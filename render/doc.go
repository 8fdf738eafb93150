// Package render rasterizes motion node trees into RGBA frames and writes
// them as PNG sequences.
//
// A [Renderer] owns a [Camera] that maps scene units (Y up, 8 units tall
// at zoom 1) to pixels. Fills and strokes are drawn with the anti-aliasing
// rasterizer of golang.org/x/image/vector; a [FrameWriter] encodes frames
// on a bounded pool of goroutines.
package render
