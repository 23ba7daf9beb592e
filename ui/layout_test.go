package ui

import (
	"strings"
	"testing"
)

func TestHeaderEscapesTitle(t *testing.T) {
	header := string(Header("Buttons & <Links>"))
	if !strings.HasPrefix(header, "<!DOCTYPE html>") {
		t.Errorf("Expected doctype first, got: %.40s", header)
	}
	if !strings.Contains(header, "<title>Buttons &amp; &lt;Links&gt;</title>") {
		t.Errorf("Expected escaped title in header")
	}
	if !strings.Contains(header, "bootstrap-icons") {
		t.Errorf("Expected bootstrap icons stylesheet")
	}
}

func TestPageChromeIsBalanced(t *testing.T) {
	page := string(Header("x") + ContainerStart() + ContainerEnd() + Footer())
	if strings.Count(page, "<div") != strings.Count(page, "</div>") {
		t.Errorf("Unbalanced div tags in page chrome")
	}
	if !strings.HasSuffix(strings.TrimSpace(page), "</html>") {
		t.Errorf("Expected page to end with </html>")
	}
}
