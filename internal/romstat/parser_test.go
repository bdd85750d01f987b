package romstat

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSections(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Section
		wantErr string
	}{
		{
			name:  "six token layout",
			input: "0 .text 00001000 08000000 08000000 TEXT\n",
			want: []Section{
				{Name: ".text", Size: 0x1000, VirtAddr: 0x08000000, LoadAddr: 0x08000000, Kind: KindText},
			},
		},
		{
			name:  "five token layout defaults lma to vma",
			input: "3 .bss 00000400 20000100 BSS\n",
			want: []Section{
				{Name: ".bss", Size: 0x400, VirtAddr: 0x20000100, LoadAddr: 0x20000100, Kind: KindBSS},
			},
		},
		{
			name:  "relocated data section",
			input: "1 .data 00000100 20000000 08010000 DATA\n",
			want: []Section{
				{Name: ".data", Size: 0x100, VirtAddr: 0x20000000, LoadAddr: 0x08010000, Kind: KindData},
			},
		},
		{
			name: "wrong token counts are skipped",
			input: strings.Join([]string{
				"Sections:",
				"Idx Name Size VMA LMA Type Extra",
				"",
				"0 .text 00001000 08000000 08000000 TEXT",
			}, "\n") + "\n",
			want: []Section{
				{Name: ".text", Size: 0x1000, VirtAddr: 0x08000000, LoadAddr: 0x08000000, Kind: KindText},
			},
		},
		{
			name: "unsupported kinds are dropped",
			input: strings.Join([]string{
				"1 .comment 00000010 00000000 00000000 NOTE",
				"2 .debug_info 00002000 00000000 00000000 DEBUG",
				"3 .text 00000080 08000000 08000000 TEXT",
			}, "\n") + "\n",
			want: []Section{
				{Name: ".text", Size: 0x80, VirtAddr: 0x08000000, LoadAddr: 0x08000000, Kind: KindText},
			},
		},
		{
			name:  "kind match is case sensitive",
			input: "0 .text 00001000 08000000 08000000 text\n",
			want:  nil,
		},
		{
			name:    "malformed size aborts",
			input:   "2 .text zzzz 08000000 08000000 TEXT\n",
			wantErr: `"zzzz"`,
		},
		{
			name:    "malformed vma aborts",
			input:   "2 .text 00000100 08g00000 08000000 TEXT\n",
			wantErr: `"08g00000"`,
		},
		{
			name: "malformed field on a dropped kind is not an error",
			// The kind filter runs before numeric parsing, so corruption in
			// lines that would be dropped anyway never surfaces.
			input: "1 .comment zzzz 00000000 00000000 NOTE\n",
			want:  nil,
		},
		{
			name: "input order is preserved",
			input: strings.Join([]string{
				"0 .data 00000100 20000000 08010000 DATA",
				"1 .text 00001000 08000000 08000000 TEXT",
			}, "\n") + "\n",
			want: []Section{
				{Name: ".data", Size: 0x100, VirtAddr: 0x20000000, LoadAddr: 0x08010000, Kind: KindData},
				{Name: ".text", Size: 0x1000, VirtAddr: 0x08000000, LoadAddr: 0x08000000, Kind: KindText},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSections(strings.NewReader(tt.input))

			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("ParseSections() error = nil, want error containing %s", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("ParseSections() error = %v, want it to contain %s", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseSections() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseSections() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseSectionsFiveTokenMatchesSixToken(t *testing.T) {
	// A five-token record must be indistinguishable from the six-token
	// record that spells out the same address twice.
	five, err := ParseSections(strings.NewReader("0 .bss 00000400 20000100 BSS\n"))
	if err != nil {
		t.Fatalf("ParseSections(five-token) error = %v", err)
	}
	six, err := ParseSections(strings.NewReader("0 .bss 00000400 20000100 20000100 BSS\n"))
	if err != nil {
		t.Fatalf("ParseSections(six-token) error = %v", err)
	}

	if diff := cmp.Diff(six, five); diff != "" {
		t.Errorf("five-token layout differs from explicit six-token layout (-six +five):\n%s", diff)
	}
}
