// Package conv provides checked integer conversions between Go's int and
// the uint32 sizes and indices used by frames and bitmaps.
package conv
