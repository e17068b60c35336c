package tui

import uv "github.com/charmbracelet/ultraviolet"

// Layout breakpoints and dimensions
const (
	// CompactWidthBreakpoint is the minimum width for desktop mode
	CompactWidthBreakpoint = 100
	// CompactHeightBreakpoint is the minimum height for desktop mode
	CompactHeightBreakpoint = 25
	// SidebarWidthDesktop is the width of the answers sidebar in desktop mode
	SidebarWidthDesktop = 36
	// HeaderHeight is the height of the title row
	HeaderHeight = 1
	// IndicatorHeight covers the step list and the progress bar
	IndicatorHeight = 3
	// ButtonsHeight is the height of the navigation buttons
	ButtonsHeight = 1
	// FooterHeight is the height of the hint bar
	FooterHeight = 1
)

// LayoutMode represents the layout mode based on terminal size
type LayoutMode int

const (
	// LayoutDesktop shows every step title and the answers sidebar
	LayoutDesktop LayoutMode = iota
	// LayoutCompact shows only the current step and no sidebar
	LayoutCompact
)

// Layout defines the rectangular regions for all UI components
type Layout struct {
	Mode      LayoutMode
	Area      uv.Rectangle
	Header    uv.Rectangle
	Indicator uv.Rectangle
	Body      uv.Rectangle
	Sidebar   uv.Rectangle
	Buttons   uv.Rectangle
	Footer    uv.Rectangle
}

// IsCompact returns true if the layout is in compact mode
func (l Layout) IsCompact() bool {
	return l.Mode == LayoutCompact
}

// WithoutSidebar gives the sidebar columns to the body.
func (l Layout) WithoutSidebar() Layout {
	if l.Sidebar.Empty() {
		return l
	}
	l.Body.Max.X = l.Sidebar.Max.X
	l.Sidebar = uv.Rectangle{}
	return l
}

// CalculateLayout computes the layout rectangles based on terminal dimensions
func CalculateLayout(width, height int) Layout {
	mode := LayoutDesktop
	if width < CompactWidthBreakpoint || height < CompactHeightBreakpoint {
		mode = LayoutCompact
	}

	area := uv.Rectangle{
		Max: uv.Position{X: width, Y: height},
	}

	// header | indicator | content | buttons | footer
	headerRect, rest := uv.SplitVertical(area, uv.Fixed(min(HeaderHeight, area.Dy())))
	indicatorRect, rest := uv.SplitVertical(rest, uv.Fixed(min(IndicatorHeight, rest.Dy())))
	contentRect, rest := uv.SplitVertical(rest, uv.Fixed(max(0, rest.Dy()-ButtonsHeight-FooterHeight)))
	buttonsRect, footerRect := uv.SplitVertical(rest, uv.Fixed(min(ButtonsHeight, rest.Dy())))

	var bodyRect, sidebarRect uv.Rectangle
	if mode == LayoutDesktop {
		sidebarWidth := SidebarWidthDesktop
		if contentRect.Dx()/3 < sidebarWidth {
			sidebarWidth = contentRect.Dx() / 3
		}
		bodyRect, sidebarRect = uv.SplitHorizontal(contentRect, uv.Fixed(contentRect.Dx()-sidebarWidth))
		bodyRect.Max.X -= 1 // gap between the form and the sidebar rule
	} else {
		bodyRect = contentRect
	}

	return Layout{
		Mode:      mode,
		Area:      area,
		Header:    headerRect,
		Indicator: indicatorRect,
		Body:      bodyRect,
		Sidebar:   sidebarRect,
		Buttons:   buttonsRect,
		Footer:    footerRect,
	}
}
