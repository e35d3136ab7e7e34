package main

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGetCheckboxValue(t *testing.T) {
	server := &Server{}
	r := httptest.NewRequest("POST", "/tasks", strings.NewReader("title=walk&assign-to-me=on&reminder=off"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if !server.getCheckboxValue(r, "assign-to-me") {
		t.Error("checked box should read as true")
	}
	if server.getCheckboxValue(r, "reminder") {
		t.Error("value other than 'on' should read as false")
	}
	if server.getCheckboxValue(r, "missing") {
		t.Error("absent box should read as false")
	}
}
