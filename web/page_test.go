package web

import (
	"bytes"
	"strings"
	"testing"

	"svw.info/calpuzzle/internal/domain"
)

func TestNewPageMarksDateCells(t *testing.T) {
	p := NewPage(domain.Date{Month: 9, Day: 19})
	if p.Title != "October 19" {
		t.Fatalf("title = %q", p.Title)
	}
	var blocked []string
	total := 0
	for _, row := range p.Rows {
		for _, c := range row {
			total++
			if c.Blocked {
				blocked = append(blocked, c.Label)
			}
		}
	}
	if total != 43 {
		t.Fatalf("cells = %d, want 43", total)
	}
	if len(blocked) != 2 || blocked[0] != "OCT" || blocked[1] != "19" {
		t.Fatalf("blocked labels = %v", blocked)
	}
}

func TestNewPageInvalidDate(t *testing.T) {
	p := NewPage(domain.Date{Month: 1, Day: 32})
	for _, row := range p.Rows {
		for _, c := range row {
			if c.Blocked {
				t.Fatalf("cell %d,%d marked for an invalid date", c.Row, c.Col)
			}
		}
	}
}

func TestIndexTemplate(t *testing.T) {
	var buf bytes.Buffer
	if err := Templates().ExecuteTemplate(&buf, "index.tmpl", NewPage(domain.Date{Month: 0, Day: 1})); err != nil {
		t.Fatalf("ExecuteTemplate failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"January 1", `class="cell blocked"`, "Thumb"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
	if n := strings.Count(out, `class="cell blocked"`); n != 2 {
		t.Errorf("blocked cells rendered = %d, want 2", n)
	}
}

func TestStaticFS(t *testing.T) {
	f, err := StaticFS().Open("style.css")
	if err != nil {
		t.Fatalf("open style.css failed: %v", err)
	}
	_ = f.Close()
}
