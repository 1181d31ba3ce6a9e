package ui

import "testing"

func TestLocalizationDefaults(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}
	if l.GetText(KeyDownload) != "Download image" {
		t.Errorf("Unexpected download button text: %s", l.GetText(KeyDownload))
	}
}

func TestLocalizationSetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if got := l.GetText(KeyImageSaved); got != "Изображение загружено и сохранено" {
		t.Errorf("Unexpected ru success notice: %s", got)
	}
	if got := l.GetText(KeyDownloadError); got != "Ошибка загрузки изображения" {
		t.Errorf("Unexpected ru download error notice: %s", got)
	}

	// Unknown languages are ignored
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Unknown language should not change current, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("System language should resolve to en, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalizationFallback(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("pt")

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Missing key should fall back to itself, got %s", got)
	}
}

func TestLocalizationCoversAllLanguages(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !ok {
			t.Errorf("No texts for language %s", code)
			continue
		}
		for key := range english {
			if _, found := texts[key]; !found {
				t.Errorf("Language %s is missing key %s", code, key)
			}
		}
	}
}
