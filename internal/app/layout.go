package app

// Layout computes the dimensions for each panel.
type Layout struct {
	SelectorWidth int
	PreviewWidth  int
	DetailsWidth  int
	Height        int
	HeaderHeight  int
	StatusHeight  int
}

// ComputeLayout calculates panel dimensions based on total width/height
// and whether the details panel is visible.
func ComputeLayout(totalWidth, totalHeight int, showDetails bool, selectorWidth, detailsWidth int) Layout {
	// During live resizes some terminals momentarily report 0 (or even negative)
	// dimensions; clamp to avoid propagating invalid sizes into panels.
	if totalWidth < 1 {
		totalWidth = 1
	}
	if totalHeight < 3 { // header + content + status
		totalHeight = 3
	}

	l := Layout{
		HeaderHeight: 1,
		StatusHeight: 1,
		Height:       totalHeight - 2,
	}

	remaining := totalWidth

	l.SelectorWidth = selectorWidth
	if l.SelectorWidth > remaining/3 {
		l.SelectorWidth = remaining / 3
	}
	remaining -= l.SelectorWidth - 1 // -1 for border overlap

	if showDetails {
		l.DetailsWidth = detailsWidth
		if l.DetailsWidth > remaining/3 {
			l.DetailsWidth = remaining / 3
		}
		remaining -= l.DetailsWidth - 1
	}

	l.PreviewWidth = remaining
	if l.PreviewWidth < 1 {
		l.PreviewWidth = 1
	}

	return l
}
