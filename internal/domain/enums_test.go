package domain

import "testing"

func TestParseAmbitoIsCaseSensitive(t *testing.T) {
	if _, ok := ParseAmbito("ccaa"); ok {
		t.Fatalf("lowercase level must not parse")
	}
	a, ok := ParseAmbito("CCAA")
	if !ok || a != AmbitoCCAA {
		t.Fatalf("ParseAmbito(CCAA): want=(CCAA,true) got=(%q,%v)", a, ok)
	}
}

func TestAmbitosSeverityOrder(t *testing.T) {
	want := []Ambito{AmbitoUE, AmbitoEstado, AmbitoCCAA, AmbitoProvincia}
	if len(Ambitos) != len(want) {
		t.Fatalf("len: want=%d got=%d", len(want), len(Ambitos))
	}
	for i, w := range want {
		if Ambitos[i] != w {
			t.Fatalf("Ambitos[%d]: want=%q got=%q", i, w, Ambitos[i])
		}
	}
}

func TestNacionalLevels(t *testing.T) {
	for _, a := range Ambitos {
		want := a == AmbitoEstado || a == AmbitoUE
		if got := a.Nacional(); got != want {
			t.Fatalf("%q.Nacional(): want=%v got=%v", a, want, got)
		}
	}
}

func TestParseTramite(t *testing.T) {
	for _, valid := range Tramites {
		if _, ok := ParseTramite(string(valid)); !ok {
			t.Fatalf("ParseTramite(%q): want ok", valid)
		}
	}
	if _, ok := ParseTramite("quizas"); ok {
		t.Fatalf("unknown tramite must not parse")
	}
}

func TestParseDestaque(t *testing.T) {
	if d, ok := ParseDestaque("nueva"); !ok || d != DestaqueNueva {
		t.Fatalf("ParseDestaque(nueva): got=(%q,%v)", d, ok)
	}
	if _, ok := ParseDestaque("ambas"); ok {
		t.Fatalf("ambas is a filter mode, not a slot label")
	}
}
