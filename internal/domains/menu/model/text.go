package model

import (
	"bytes"
	"encoding/json"
	"sort"

	"kahramana-backend/internal/shared/i18n"
)

// LocalizedText is a catalog string that is either plain ("Tikka") or a
// language map ({"ar": "...", "en": "..."}).
type LocalizedText struct {
	Plain  string
	ByLang map[string]string
}

// Text builds a plain LocalizedText
func Text(s string) LocalizedText { return LocalizedText{Plain: s} }

// Translations builds a map LocalizedText, dropping empty values
func Translations(ar, en string) LocalizedText {
	m := map[string]string{}
	if ar != "" {
		m[string(i18n.Arabic)] = ar
	}
	if en != "" {
		m[string(i18n.English)] = en
	}
	return LocalizedText{ByLang: m}
}

func (t LocalizedText) IsZero() bool {
	return t.Plain == "" && len(t.ByLang) == 0
}

// Resolve picks the value for lang, then English, then Arabic, then the
// plain string, then any remaining translation in key order.
func (t LocalizedText) Resolve(lang i18n.Language) string {
	if len(t.ByLang) == 0 {
		return t.Plain
	}
	for _, l := range []string{string(lang), string(i18n.English), string(i18n.Arabic)} {
		if v := t.ByLang[l]; v != "" {
			return v
		}
	}
	if t.Plain != "" {
		return t.Plain
	}
	keys := make([]string, 0, len(t.ByLang))
	for k := range t.ByLang {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := t.ByLang[k]; v != "" {
			return v
		}
	}
	return ""
}

// Lookup returns the value for exactly lang, without fallback
func (t LocalizedText) Lookup(lang i18n.Language) (string, bool) {
	if len(t.ByLang) == 0 {
		return "", false
	}
	v, ok := t.ByLang[string(lang)]
	return v, ok && v != ""
}

// UnmarshalJSON never fails on shape: anything that is neither a string nor
// an object decodes to the zero value.
func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	*t = LocalizedText{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		t.Plain = s
	case '{':
		var raw map[string]interface{}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
		t.ByLang = make(map[string]string, len(raw))
		for k, v := range raw {
			if s, ok := v.(string); ok {
				t.ByLang[k] = s
			}
		}
	}
	return nil
}

func (t LocalizedText) MarshalJSON() ([]byte, error) {
	if len(t.ByLang) > 0 {
		return json.Marshal(t.ByLang)
	}
	return json.Marshal(t.Plain)
}
