// SPDX-License-Identifier: MIT

package visualizer

import "gonum.org/v1/plot/vg"

// Default canvas size.
const (
	DefaultWidth  = 16 * vg.Centimeter
	DefaultHeight = 16 * vg.Centimeter
)

// Option configures rendering.
type Option func(*Options)

// Options holds rendering parameters.
type Options struct {
	Width, Height vg.Length
	Title         string

	// Factors toggles drawing of factor segments and prior markers.
	Factors bool
}

// DefaultOptions returns a 16cm square canvas with factors drawn.
func DefaultOptions() Options {
	return Options{Width: DefaultWidth, Height: DefaultHeight, Title: "factor graph", Factors: true}
}

// WithSize sets the canvas size. Non-positive values are ignored.
func WithSize(w, h vg.Length) Option {
	return func(o *Options) {
		if w > 0 {
			o.Width = w
		}
		if h > 0 {
			o.Height = h
		}
	}
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithoutFactors draws variables only.
func WithoutFactors() Option {
	return func(o *Options) { o.Factors = false }
}
