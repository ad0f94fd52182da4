package client

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Envelope is the API's wrapper around single objects.
type Envelope[T any] struct {
	Data       T      `json:"data"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

// Result is what a mutation hands back to the screen: the saved object and
// the API's message for the toast.
type Result[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// decodeOne accepts both {data, message, status_code} and a bare object.
func decodeOne[T any](raw json.RawMessage) (Result[T], error) {
	var res Result[T]
	if isNull(raw) {
		return res, nil
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal(raw, &root); err == nil {
		if data, ok := root["data"]; ok {
			if msg, ok := root["message"]; ok {
				_ = json.Unmarshal(msg, &res.Message)
			}
			if isNull(data) {
				return res, nil
			}
			if err := json.Unmarshal(data, &res.Data); err != nil {
				return res, fmt.Errorf("decode data: %w", err)
			}
			return res, nil
		}
	}

	if err := json.Unmarshal(raw, &res.Data); err != nil {
		return res, fmt.Errorf("decode object: %w", err)
	}
	return res, nil
}

// decodeList reads {<key>: [...], total}. The same object may also come
// nested under "data", and some endpoints return data as a bare array.
func decodeList[T any](raw json.RawMessage, key string) ([]T, int64, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(raw, &root); err != nil {
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, 0, fmt.Errorf("decode list: %w", err)
		}
		return items, int64(len(items)), nil
	}

	var total *int64
	if t, ok := root["total"]; ok {
		var n int64
		if json.Unmarshal(t, &n) == nil {
			total = &n
		}
	}

	list, ok := root[key]
	if !ok {
		data, ok := root["data"]
		if !ok {
			return nil, 0, fmt.Errorf("decode list: no %q or data field", key)
		}
		list = data

		var nested map[string]json.RawMessage
		if !isNull(data) && json.Unmarshal(data, &nested) == nil {
			if list, ok = nested[key]; !ok {
				return nil, 0, fmt.Errorf("decode list: no %q in data", key)
			}
			if t, ok := nested["total"]; ok {
				var n int64
				if json.Unmarshal(t, &n) == nil {
					total = &n
				}
			}
		}
	}

	var items []T
	if !isNull(list) {
		if err := json.Unmarshal(list, &items); err != nil {
			return nil, 0, fmt.Errorf("decode %s: %w", key, err)
		}
	}

	if total == nil {
		n := int64(len(items))
		total = &n
	}
	return items, *total, nil
}
