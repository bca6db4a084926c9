package i18n

import "strings"

// Translator retrieves localized messages for error codes.
// data provides optional metadata to embed in the message (for example,
// "expected", "found" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var tmpl string
	switch t.lang {
	case "ja":
		switch code {
		case "key_not_found":
			tmpl = "キー {key} が見つかりません"
		case "type_mismatch":
			tmpl = "{expected} を期待しましたが {found} でした"
		case "data_corrupted":
			tmpl = "データが破損しています: {detail}"
		case "unexpected_keys":
			tmpl = "未知のキーがあります: {keys}"
		case "encode_failed":
			tmpl = "エンコードに失敗しました: {detail}"
		case "unsupported_type":
			tmpl = "サポートされていない型です: {type}"
		}
	default: // "en"
		switch code {
		case "key_not_found":
			tmpl = "key {key} not found"
		case "type_mismatch":
			tmpl = "expected {expected} but found {found}"
		case "data_corrupted":
			tmpl = "data corrupted: {detail}"
		case "unexpected_keys":
			tmpl = "unexpected keys: {keys}"
		case "encode_failed":
			tmpl = "encode failed: {detail}"
		case "unsupported_type":
			tmpl = "unsupported type {type}"
		}
	}
	if tmpl == "" {
		return code
	}
	return expand(tmpl, data)
}

// expand substitutes {name} placeholders; missing values render as empty.
func expand(tmpl string, data map[string]string) string {
	if !strings.Contains(tmpl, "{") {
		return tmpl
	}
	b := &strings.Builder{}
	for {
		i := strings.IndexByte(tmpl, '{')
		if i < 0 {
			b.WriteString(tmpl)
			return b.String()
		}
		j := strings.IndexByte(tmpl[i:], '}')
		if j < 0 {
			b.WriteString(tmpl)
			return b.String()
		}
		b.WriteString(tmpl[:i])
		b.WriteString(data[tmpl[i+1:i+j]])
		tmpl = tmpl[i+j+1:]
	}
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
