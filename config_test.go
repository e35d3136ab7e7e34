package main

import "testing"

func TestURLForAnimal(t *testing.T) {
	c := Config{Shelter: ShelterConfig{PublicURL: "https://pets.example.org"}}
	got := c.URLForAnimal(42)
	want := "https://pets.example.org/animal/42"
	if got != want {
		t.Errorf("URLForAnimal = %q, want %q", got, want)
	}
}
