package layout

// axes flags a boolean per axis.
type axes struct {
	width, height bool
}

// applyAspectRatio fills the indefinite axis of size from the definite one
// using ratio (width / height). The derived axis is clamped by its own
// min/max; if that clamp changed it and the driving axis is not in
// explicit, the driving axis is derived back from the clamped value and
// clamped once. Sizes with both or neither axis defined are returned as is.
func applyAspectRatio(size Size, ratio float32, minSize, maxSize Size, explicit axes) Size {
	if !(ratio > 0) {
		return size
	}

	hasWidth, hasHeight := IsDefined(size.Width), IsDefined(size.Height)
	switch {
	case hasWidth == hasHeight:
		return size

	case hasWidth:
		derived := size.Width / ratio
		size.Height = clamp(derived, minSize.Height, maxSize.Height)
		if size.Height != derived && !explicit.width {
			size.Width = clamp(size.Height*ratio, minSize.Width, maxSize.Width)
		}

	default:
		derived := size.Height * ratio
		size.Width = clamp(derived, minSize.Width, maxSize.Width)
		if size.Width != derived && !explicit.height {
			size.Height = clamp(size.Width/ratio, minSize.Height, maxSize.Height)
		}
	}
	return size
}
