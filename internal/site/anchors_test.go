package site

import (
	"errors"
	"strings"
	"testing"
)

func TestVerifyAnchors(t *testing.T) {
	tests := []struct {
		name    string
		html    string
		wantErr bool
	}{
		{
			name: "resolved",
			html: `<header id="top"></header><a href="#a">a</a><section id="a"></section><a href="#top">top</a>`,
		},
		{
			name: "external links ignored",
			html: `<a href="https://example.com/#x">x</a><a href="style.css">css</a><a href="#">empty</a>`,
		},
		{
			name:    "missing target",
			html:    `<a href="#nowhere">x</a>`,
			wantErr: true,
		},
		{
			name:    "duplicate id",
			html:    `<div id="a"></div><div id="a"></div>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyAnchors(strings.NewReader(tt.html))
			if (err != nil) != tt.wantErr {
				t.Fatalf("VerifyAnchors() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestVerifyAnchorsListsEachTargetOnce(t *testing.T) {
	err := VerifyAnchors(strings.NewReader(`<a href="#x"></a><a href="#x"></a><a href="#y"></a>`))
	var aerr *AnchorError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected *AnchorError, got %v", err)
	}
	if len(aerr.Missing) != 2 || aerr.Missing[0] != "#x" || aerr.Missing[1] != "#y" {
		t.Errorf("missing = %v, want [#x #y]", aerr.Missing)
	}
}
