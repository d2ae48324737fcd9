package colour

// Flatten composites a translucent foreground over a background using the
// standard "over" operator in gamma-encoded sRGB. The result is always opaque.
// The background's own alpha is ignored; flatten it onto a backdrop first with
// FlattenOnto when it may be translucent.
func Flatten(fg, bg RGBA) RGBA {
	a := clampAlpha(fg.A)
	switch a {
	case 1:
		return RGBA{R: fg.R, G: fg.G, B: fg.B, A: 1}
	case 0:
		return RGBA{R: bg.R, G: bg.G, B: bg.B, A: 1}
	}

	mix := func(f, b uint8) uint8 {
		return clampChannel(float64(b)*(1-a) + float64(f)*a)
	}
	return RGBA{
		R: mix(fg.R, bg.R),
		G: mix(fg.G, bg.G),
		B: mix(fg.B, bg.B),
		A: 1,
	}
}

// FlattenOnto composites a stack of layers, bottom first, onto a backdrop.
// A translucent backdrop is itself flattened onto White, the page canvas.
//
//	FlattenOnto(White, background, object) == Flatten(object, Flatten(background, White))
func FlattenOnto(backdrop RGBA, layers ...RGBA) RGBA {
	result := Flatten(backdrop, White)
	for _, layer := range layers {
		result = Flatten(layer, result)
	}
	return result
}
