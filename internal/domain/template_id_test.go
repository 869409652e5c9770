package domain

import "testing"

func TestNewTemplateID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "simple", value: "planning", wantErr: false},
		{name: "with hyphen", value: "primary-fermentation", wantErr: false},
		{name: "mixed case", value: "SecondaryFermentation", wantErr: false},
		{name: "empty", value: "", wantErr: true},
		{name: "blank", value: "   ", wantErr: true},
		{name: "inner space", value: "dry hop", wantErr: true},
		{name: "too long", value: string(make([]byte, 101)), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTemplateID(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewTemplateID(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}
