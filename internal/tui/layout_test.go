package tui

import (
	"testing"
)

// TestCalculateLayout_Minimum tests layout at 80x24 (minimum terminal size)
func TestCalculateLayout_Minimum(t *testing.T) {
	width, height := 80, 24
	layout := CalculateLayout(width, height)

	if layout.Mode != LayoutCompact {
		t.Errorf("Expected LayoutCompact mode at %dx%d, got %v", width, height, layout.Mode)
	}

	if layout.Area.Dx() != width || layout.Area.Dy() != height {
		t.Errorf("Area size mismatch: got %dx%d, want %dx%d",
			layout.Area.Dx(), layout.Area.Dy(), width, height)
	}

	if layout.Header.Dy() != HeaderHeight {
		t.Errorf("Header height mismatch: got %d, want %d", layout.Header.Dy(), HeaderHeight)
	}
	if layout.Footer.Dy() != FooterHeight {
		t.Errorf("Footer height mismatch: got %d, want %d", layout.Footer.Dy(), FooterHeight)
	}

	// In compact mode, sidebar should be empty (no dedicated area)
	if layout.Sidebar.Dx() > 0 || layout.Sidebar.Dy() > 0 {
		t.Errorf("Sidebar should be empty in compact mode, got %dx%d",
			layout.Sidebar.Dx(), layout.Sidebar.Dy())
	}

	if layout.Body.Dx() != width {
		t.Errorf("Body width should equal total width in compact mode: got %d, want %d",
			layout.Body.Dx(), width)
	}

	expectedBody := height - HeaderHeight - IndicatorHeight - ButtonsHeight - FooterHeight
	if layout.Body.Dy() != expectedBody {
		t.Errorf("Body height mismatch: got %d, want %d", layout.Body.Dy(), expectedBody)
	}
}

// TestCalculateLayout_Standard tests layout at 120x40 (standard terminal size)
func TestCalculateLayout_Standard(t *testing.T) {
	width, height := 120, 40
	layout := CalculateLayout(width, height)

	if layout.Mode != LayoutDesktop {
		t.Errorf("Expected LayoutDesktop mode at %dx%d, got %v", width, height, layout.Mode)
	}

	if layout.Sidebar.Dx() != SidebarWidthDesktop {
		t.Errorf("Sidebar width mismatch: got %d, want %d", layout.Sidebar.Dx(), SidebarWidthDesktop)
	}

	// Body + gap + sidebar should fill the width
	if got := layout.Body.Dx() + 1 + layout.Sidebar.Dx(); got != width {
		t.Errorf("Body, gap and sidebar should span %d columns, got %d", width, got)
	}

	if layout.Buttons.Min.Y != layout.Body.Max.Y {
		t.Errorf("Buttons should start right below the body: got %d, want %d",
			layout.Buttons.Min.Y, layout.Body.Max.Y)
	}
	if layout.Footer.Max.Y != height {
		t.Errorf("Footer should end at the last row: got %d, want %d", layout.Footer.Max.Y, height)
	}
}

// TestCalculateLayout_Breakpoints checks the compact thresholds
func TestCalculateLayout_Breakpoints(t *testing.T) {
	tests := []struct {
		width, height int
		compact       bool
	}{
		{CompactWidthBreakpoint, CompactHeightBreakpoint, false},
		{CompactWidthBreakpoint - 1, CompactHeightBreakpoint, true},
		{CompactWidthBreakpoint, CompactHeightBreakpoint - 1, true},
		{200, 60, false},
	}

	for _, tt := range tests {
		if got := CalculateLayout(tt.width, tt.height).IsCompact(); got != tt.compact {
			t.Errorf("CalculateLayout(%d, %d).IsCompact() = %v, want %v", tt.width, tt.height, got, tt.compact)
		}
	}
}

// TestCalculateLayout_Tiny must not produce negative regions
func TestCalculateLayout_Tiny(t *testing.T) {
	layout := CalculateLayout(10, 3)
	for name, r := range map[string]int{
		"header":    layout.Header.Dy(),
		"indicator": layout.Indicator.Dy(),
		"body":      layout.Body.Dy(),
		"buttons":   layout.Buttons.Dy(),
		"footer":    layout.Footer.Dy(),
	} {
		if r < 0 {
			t.Errorf("%s height is negative: %d", name, r)
		}
	}
}

// TestLayout_WithoutSidebar gives the sidebar columns back to the body
func TestLayout_WithoutSidebar(t *testing.T) {
	full := CalculateLayout(120, 40)
	layout := full.WithoutSidebar()

	if !layout.Sidebar.Empty() {
		t.Errorf("Sidebar should be empty, got %dx%d", layout.Sidebar.Dx(), layout.Sidebar.Dy())
	}
	if layout.Body.Dx() != 120 {
		t.Errorf("Body should span the full width: got %d", layout.Body.Dx())
	}
	if layout.Body.Dy() != full.Body.Dy() {
		t.Errorf("Body height changed: got %d, want %d", layout.Body.Dy(), full.Body.Dy())
	}

	compact := CalculateLayout(80, 24)
	if compact.WithoutSidebar() != compact {
		t.Error("Compact layout should be unchanged")
	}
}
