package messages

import "testing"

func TestForLanguageFallback(t *testing.T) {
	if lang := ForLanguage("xx").Language(); lang != "en" {
		t.Errorf("expected fallback to en, got %s", lang)
	}
	if lang := ForLanguage("RU").Language(); lang != "ru" {
		t.Errorf("expected ru, got %s", lang)
	}
	if lang := ForLanguage("").Language(); lang != "en" {
		t.Errorf("expected en for empty, got %s", lang)
	}
}

func TestGet(t *testing.T) {
	en := ForLanguage("en")
	ru := ForLanguage("ru")

	if got := en.Get("main_menu"); got != "Main Menu:" {
		t.Errorf("unexpected en main_menu: %q", got)
	}
	if got := ru.Get("main_menu"); got != "Главное меню:" {
		t.Errorf("unexpected ru main_menu: %q", got)
	}
}

func TestGetWithParams(t *testing.T) {
	got := ForLanguage("en").Get("welcome_new", Params{"name": "Test User"})
	want := "👋 Welcome, Test User! You have been registered as a customer."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGetIsPure(t *testing.T) {
	b := ForLanguage("ru")
	first := b.Get("car_details", Params{"make": "Lada", "model": "Niva", "year": "1999", "dealer": "Иван"})
	for i := 0; i < 10; i++ {
		if got := b.Get("car_details", Params{"make": "Lada", "model": "Niva", "year": "1999", "dealer": "Иван"}); got != first {
			t.Fatalf("rendering not deterministic: %q vs %q", got, first)
		}
	}
}

func TestGetMissingKey(t *testing.T) {
	if got := ForLanguage("en").Get("no_such_key"); got != "no_such_key" {
		t.Errorf("expected key echo for unknown key, got %q", got)
	}
}

func TestCatalogsCoverSameKeys(t *testing.T) {
	for key := range catalog["en"] {
		if _, ok := catalog["ru"][key]; !ok {
			t.Errorf("key %q missing from ru catalog", key)
		}
	}
	for key := range catalog["ru"] {
		if _, ok := catalog["en"][key]; !ok {
			t.Errorf("key %q missing from en catalog", key)
		}
	}
}
