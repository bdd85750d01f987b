package romstat

import "testing"

func TestDefaultRegions(t *testing.T) {
	regions := DefaultRegions()

	want := []struct {
		name   string
		origin uint64
		length uint64
	}{
		{"FLASH", 0x08000000, 256 * 1024},
		{"FLASH_RO", 0x08040000, 256 * 1024},
		{"RAM", 0x20000000, 96 * 1024},
	}

	if len(regions) != len(want) {
		t.Fatalf("DefaultRegions() returned %d regions, want %d", len(regions), len(want))
	}

	for i, w := range want {
		r := regions[i]
		if r.Name != w.name {
			t.Errorf("region[%d].Name = %q, want %q", i, r.Name, w.name)
		}
		if r.Origin != w.origin {
			t.Errorf("region[%d].Origin = 0x%08x, want 0x%08x", i, r.Origin, w.origin)
		}
		if r.Length != w.length {
			t.Errorf("region[%d].Length = %d, want %d", i, r.Length, w.length)
		}
		if r.Used != 0 {
			t.Errorf("region[%d].Used = %d, want 0", i, r.Used)
		}
	}
}

func TestRegionContains(t *testing.T) {
	reg := &Region{Name: "FLASH", Origin: 0x08000000, Length: 0x40000}

	tests := []struct {
		name string
		addr uint64
		want bool
	}{
		{"below origin", 0x07ffffff, false},
		{"at origin", 0x08000000, true},
		{"inside", 0x08010000, true},
		{"last byte", 0x0803ffff, true},
		{"one past the end", 0x08040000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reg.Contains(tt.addr); got != tt.want {
				t.Errorf("Contains(0x%08x) = %v, want %v", tt.addr, got, tt.want)
			}
		})
	}
}

func TestRegionHolds(t *testing.T) {
	flash := &Region{Name: "FLASH", Origin: 0x08000000, Length: 0x40000}

	tests := []struct {
		name    string
		section Section
		want    bool
	}{
		{
			name:    "vma inside",
			section: Section{VirtAddr: 0x08001000, LoadAddr: 0x00000000},
			want:    true,
		},
		{
			name:    "lma inside",
			section: Section{VirtAddr: 0x20000000, LoadAddr: 0x08010000},
			want:    true,
		},
		{
			name:    "both inside",
			section: Section{VirtAddr: 0x08001000, LoadAddr: 0x08001000},
			want:    true,
		},
		{
			name:    "neither inside",
			section: Section{VirtAddr: 0x20000000, LoadAddr: 0x20000000},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := flash.Holds(tt.section); got != tt.want {
				t.Errorf("Holds(%+v) = %v, want %v", tt.section, got, tt.want)
			}
		})
	}
}
