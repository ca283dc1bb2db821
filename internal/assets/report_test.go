package assets

import "testing"

func TestInspect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		files      map[string]bool
		want       Report
		ready      bool
		hasPicture bool
	}{
		{
			name:       "all present",
			files:      map[string]bool{TemplateFile: true, StyleFile: true, PictureFile: true, DefaultPictureFile: true},
			want:       Report{Template: true, Style: true, Picture: true, DefaultPicture: true},
			ready:      true,
			hasPicture: true,
		},
		{
			name:       "only template",
			files:      map[string]bool{TemplateFile: true},
			want:       Report{Template: true},
			ready:      true,
			hasPicture: false,
		},
		{
			name:       "default picture only",
			files:      map[string]bool{DefaultPictureFile: true},
			want:       Report{DefaultPicture: true},
			ready:      false,
			hasPicture: true,
		},
		{
			name:  "nothing",
			files: map[string]bool{},
			want:  Report{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Inspect(&stubLoader{files: tt.files}, DefaultNames())
			if got != tt.want {
				t.Errorf("Inspect() = %+v, want %+v", got, tt.want)
			}
			if got.Ready() != tt.ready {
				t.Errorf("Ready() = %v, want %v", got.Ready(), tt.ready)
			}
			if got.HasPicture() != tt.hasPicture {
				t.Errorf("HasPicture() = %v, want %v", got.HasPicture(), tt.hasPicture)
			}
		})
	}
}
