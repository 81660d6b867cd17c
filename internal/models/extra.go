package models

import "encoding/json"

// Extra хранит поля документа каталога, не описанные в модели. Они
// отдаются клиенту рядом с известными полями.
type Extra map[string]any

// marshalWithExtra кодирует base и дописывает поля extra, не перекрывая известные.
func marshalWithExtra(base any, extra Extra) ([]byte, error) {
	data, err := json.Marshal(base)
	if err != nil || len(extra) == 0 {
		return data, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, ok := fields[k]; ok {
			continue
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		fields[k] = raw
	}
	return json.Marshal(fields)
}

// extraFields возвращает поля объекта data, не входящие в known.
func extraFields(data []byte, known ...string) (Extra, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(fields, k)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	extra := make(Extra, len(fields))
	for k, raw := range fields {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		extra[k] = v
	}
	return extra, nil
}
