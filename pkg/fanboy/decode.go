package fanboy

import "fmt"

func decodeVersion(v any) (string, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return "", false
	}
	version, ok := obj["version"].(string)
	return version, ok
}

func decodePodcasts(v any) ([]Podcast, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	podcasts := make([]Podcast, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}
		podcasts = append(podcasts, Podcast(obj))
	}
	return podcasts, true
}

func decodeSuggestions(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	terms := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		terms = append(terms, s)
	}
	return terms, true
}

func typeName(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%T", v)
}
