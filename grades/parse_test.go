package grades

import "testing"

func TestParse_GradeThenCredit(t *testing.T) {
	p := NewParser()
	cg := p.Parse("A 2")
	if !cg.HasCredit || cg.Credit != 2.0 {
		t.Errorf("Expected credit 2.0, got %+v", cg)
	}
	if !cg.HasGrade || cg.Grade != "A" {
		t.Errorf("Expected grade A, got %+v", cg)
	}

	cg = p.Parse("c- 3")
	if cg.Credit != 3.0 || cg.Grade != "C-" {
		t.Errorf("Expected (3.0, C-), got %+v", cg)
	}
}

func TestParse_CreditThenGrade(t *testing.T) {
	p := NewParser()
	cg := p.Parse("3 B-")
	if cg.Credit != 3.0 || cg.Grade != "B-" {
		t.Errorf("Expected (3.0, B-), got %+v", cg)
	}
}

func TestParse_PassExempt(t *testing.T) {
	p := NewParser()
	cg := p.Parse("通過")
	if !cg.PassExempt {
		t.Fatal("Expected pass/exempt")
	}
	if cg.HasCredit {
		t.Error("Pass/exempt cell should carry no credit")
	}
	if cg.Grade != "通過" {
		t.Errorf("Grade should be the normalized phrase, got %q", cg.Grade)
	}

	if !p.Parse("抵免").PassExempt {
		t.Error("抵免 should be pass/exempt")
	}
	if !p.Parse("Exempt").PassExempt {
		t.Error("Exempt should match case-insensitively")
	}
}

func TestParse_CreditOnly(t *testing.T) {
	p := NewParser()
	cg := p.Parse("3")
	if !cg.HasCredit || cg.Credit != 3.0 {
		t.Errorf("Expected credit 3.0, got %+v", cg)
	}
	if cg.HasGrade {
		t.Errorf("Expected no grade, got %q", cg.Grade)
	}
}

func TestParse_GradeOnly(t *testing.T) {
	p := NewParser()
	cg := p.Parse("B+")
	if cg.HasCredit {
		t.Error("Expected no credit")
	}
	if cg.Grade != "B+" {
		t.Errorf("Expected grade B+, got %q", cg.Grade)
	}
	if cg.CreditOrZero() != 0 {
		t.Error("CreditOrZero should be 0")
	}
}

func TestParse_CreditOutOfRange(t *testing.T) {
	p := NewParser()
	// 85 looks like a score, not a credit count.
	cg := p.Parse("85")
	if cg.HasCredit {
		t.Errorf("Out-of-range number should not be a credit: %+v", cg)
	}
}

func TestParse_NumberWithTrailingGradeElsewhere(t *testing.T) {
	p := NewParser()
	// Neither anchored pattern matches; fallback finds the number and
	// then a grade token in the remaining text.
	cg := p.Parse("必修 3 A")
	if cg.Credit != 3.0 {
		t.Errorf("Expected credit 3.0, got %+v", cg)
	}
	if cg.Grade != "A" {
		t.Errorf("Expected grade A, got %+v", cg)
	}
}

func TestParse_Empty(t *testing.T) {
	p := NewParser()
	cg := p.Parse("")
	if !cg.Empty() {
		t.Errorf("Expected empty result, got %+v", cg)
	}
	if cg.GradeOrEmpty() != "" {
		t.Error("GradeOrEmpty should be empty")
	}
}

func TestParse_WhitespaceInvariant(t *testing.T) {
	p := NewParser()
	variants := []string{"A 3", " A 3 ", "A　3", "A\n3"}
	for _, v := range variants {
		cg := p.Parse(v)
		if cg.Credit != 3.0 || cg.Grade != "A" {
			t.Errorf("Parse(%q) = %+v, want (3.0, A)", v, cg)
		}
	}
}

func TestIsPassExempt(t *testing.T) {
	p := NewParser()
	if !p.IsPassExempt("本課程 通過 認列") {
		t.Error("Substring pass keyword should match")
	}
	if p.IsPassExempt("微積分") {
		t.Error("Plain subject should not be pass/exempt")
	}
	if p.IsPassExempt("") {
		t.Error("Empty text should not be pass/exempt")
	}
}

func TestIsGradeToken(t *testing.T) {
	for _, ok := range []string{"A", "b-", "F", "C+"} {
		if !IsGradeToken(ok) {
			t.Errorf("%q should be a grade token", ok)
		}
	}
	for _, bad := range []string{"AB", "3", "A3", "", "通過"} {
		if IsGradeToken(bad) {
			t.Errorf("%q should not be a grade token", bad)
		}
	}
}
